/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-12-04 14:27:09
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-28 14:05:31
 * @FilePath: \go-fishpi\redpacket_test.go
 * @Description:
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/kamalyes/go-fishpi/models"
	"github.com/stretchr/testify/assert"
)

func TestNewRedPacketDefaults(t *testing.T) {
	rp := models.NewRedPacket()
	assert.Equal(t, models.RedPacketRandom, rp.Type)
	assert.Equal(t, 32, rp.Money)
	assert.Equal(t, 1, rp.Count)
	assert.Equal(t, "摸鱼者, 事竟成!", rp.Msg)
}

func TestRedPacketSendMarkup(t *testing.T) {
	var content string
	mux := http.NewServeMux()
	mux.HandleFunc("/chat-room/send", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		content, _ = body["content"].(string)
		_, _ = w.Write([]byte(`{"code":0}`))
	})
	f, _ := newTestClient(t, mux)

	rp := models.NewRedPacket()
	rp.Msg = "接好运"
	assert.NoError(t, f.RedPacket.Send(context.Background(), rp))

	// 红包消息走聊天室 redpacket 标记
	assert.True(t, strings.HasPrefix(content, "[redpacket]"))
	assert.True(t, strings.HasSuffix(content, "[/redpacket]"))

	payload := strings.TrimSuffix(strings.TrimPrefix(content, "[redpacket]"), "[/redpacket]")
	var sent struct {
		models.RedPacket
		APIKey string `json:"apiKey"`
	}
	assert.NoError(t, json.Unmarshal([]byte(payload), &sent))
	assert.Equal(t, "接好运", sent.Msg)
	assert.Equal(t, "test-key", sent.APIKey)
}

func TestRedPacketOpen(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat-room/red-packet/open", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		assert.Equal(t, "123", body["oId"])
		_, _ = w.Write([]byte(`{
			"info":{"count":2,"got":1,"msg":"好运","userName":"alice"},
			"who":[{"userId":"1","userName":"bob","userMoney":16,"time":"2026-02-28 14:00:00"}]
		}`))
	})
	f, _ := newTestClient(t, mux)

	info, err := f.RedPacket.Open(context.Background(), "123", nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, info.Info.Count)
	assert.Equal(t, "alice", info.Info.UserName)
	assert.Len(t, info.Who, 1)
	assert.Equal(t, 16, info.Who[0].Money)
}

func TestRedPacketStatusWhoGot(t *testing.T) {
	// whoGot 线上既可能是单个字符串也可能是数组
	var single models.RedPacketStatusMsg
	assert.NoError(t, json.Unmarshal([]byte(`{"oId":"1","whoGive":"bob","whoGot":"alice"}`), &single))
	assert.Equal(t, models.StringList{"alice"}, single.WhoGot)

	var multi models.RedPacketStatusMsg
	assert.NoError(t, json.Unmarshal([]byte(`{"oId":"1","whoGive":"bob","whoGot":["alice","carol"]}`), &multi))
	assert.Equal(t, models.StringList{"alice", "carol"}, multi.WhoGot)
}

func TestRedPacketGestureString(t *testing.T) {
	assert.Equal(t, "石头", models.GestureRock.String())
	assert.Equal(t, "剪刀", models.GestureScissors.String())
	assert.Equal(t, "布", models.GesturePaper.String())
}
