/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-12-03 09:05:12
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-28 10:14:27
 * @FilePath: \go-fishpi\chatroom_test.go
 * @Description:
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/kamalyes/go-fishpi/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyChatRoomFrame(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ChatRoomEventType
	}{
		{
			name: "在线用户变更",
			raw:  `{"type":"online","users":[{"userName":"alice","homePage":"https://fishpi.cn/member/alice","userAvatarURL":"a.png"}]}`,
			kind: ChatRoomEventOnline,
		},
		{
			name: "话题变更",
			raw:  `{"type":"discussChanged","newDiscuss":"今天聊什么"}`,
			kind: ChatRoomEventDiscussChanged,
		},
		{
			name: "消息撤回",
			raw:  `{"type":"revoke","oId":"1700000000000"}`,
			kind: ChatRoomEventRevoke,
		},
		{
			name: "普通聊天消息",
			raw:  `{"type":"msg","oId":"1","userName":"bob","content":"你好","client":"Golang/1.0.0"}`,
			kind: ChatRoomEventMsg,
		},
		{
			name: "音乐分享按内嵌类型二次分派",
			raw:  `{"type":"msg","oId":"2","userName":"bob","content":"{\"msgType\":\"music\",\"title\":\"海阔天空\",\"source\":\"s.mp3\"}"}`,
			kind: ChatRoomEventMusic,
		},
		{
			name: "天气分享按内嵌类型二次分派",
			raw:  `{"type":"msg","oId":"3","userName":"bob","content":"{\"msgType\":\"weather\",\"t\":\"上海\",\"st\":\"多云\"}"}`,
			kind: ChatRoomEventWeather,
		},
		{
			name: "消息内嵌红包仍按普通消息处理",
			raw:  `{"type":"msg","oId":"4","userName":"bob","content":"{\"msgType\":\"redPacket\",\"type\":\"random\",\"money\":32,\"count\":1}"}`,
			kind: ChatRoomEventMsg,
		},
		{
			name: "内嵌类型未知按普通消息处理",
			raw:  `{"type":"msg","oId":"5","userName":"bob","content":"{\"msgType\":\"mystery\"}"}`,
			kind: ChatRoomEventMsg,
		},
		{
			name: "红包帧归类为红包事件",
			raw:  `{"type":"redPacket","oId":"6","userName":"bob","content":"{\"msgType\":\"redPacket\",\"type\":\"random\",\"money\":32,\"count\":1}"}`,
			kind: ChatRoomEventRedPacket,
		},
		{
			name: "红包帧内容非JSON同样归类为红包事件",
			raw:  `{"type":"redPacket","oId":"7","userName":"bob","content":"快来抢红包"}`,
			kind: ChatRoomEventRedPacket,
		},
		{
			name: "红包领取状态",
			raw:  `{"type":"redPacketStatus","oId":"5","count":2,"got":1,"whoGive":"bob","whoGot":"alice"}`,
			kind: ChatRoomEventRedPacketStatus,
		},
		{
			name: "弹幕消息",
			raw:  `{"type":"barrager","userName":"bob","barragerContent":"冲鸭","barragerColor":"#ffffff"}`,
			kind: ChatRoomEventBarrager,
		},
		{
			name: "自定义消息",
			raw:  `{"type":"customMessage","message":"欢迎新鱼油"}`,
			kind: ChatRoomEventCustom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, event, err := classifyChatRoomFrame([]byte(tt.raw))
			assert.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.kind, event.Type)
		})
	}
}

func TestClassifyChatRoomFrameUnknown(t *testing.T) {
	// 未知类别与坏帧都应返回解析类错误
	_, _, err := classifyChatRoomFrame([]byte(`{"type":"mystery"}`))
	assert.Error(t, err)
	assert.True(t, IsParseError(err))

	_, _, err = classifyChatRoomFrame([]byte(`not-json`))
	assert.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestClassifyChatRoomFrameMusicPayload(t *testing.T) {
	raw := `{"type":"msg","oId":"2","userName":"bob","content":"{\"msgType\":\"music\",\"title\":\"海阔天空\",\"source\":\"s.mp3\",\"from\":\"bob\"}"}`
	_, event, err := classifyChatRoomFrame([]byte(raw))
	assert.NoError(t, err)

	music, err := event.Msg.Music()
	assert.NoError(t, err)
	assert.Equal(t, "海阔天空", music.Title)
	assert.Equal(t, "s.mp3", music.Source)
}

func TestChatRoomCacheUpdates(t *testing.T) {
	f := New("k", NewDefaultConfig())
	room := f.ChatRoom

	room.handleFrame(`{"type":"online","users":[{"userName":"alice"},{"userName":"bob"}]}`)
	room.handleFrame(`{"type":"discussChanged","newDiscuss":"摸鱼"}`)

	assert.Equal(t, 2, room.OnlineCount())
	assert.Equal(t, "摸鱼", room.Discuss())
	assert.Equal(t, "alice", room.Onlines()[0].Name)
}

// newChatRoomServer 同时提供节点发现与聊天室通道
// pushFrame 非空时连接建立后立即推送一帧
func newChatRoomServer(t *testing.T, pushFrame string, upgrades *atomic.Int32) (*FishPi, *ChatRoomService) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/chat-room/node/get", func(w http.ResponseWriter, r *http.Request) {
		node := fmt.Sprintf(`{"code":0,"msg":"","data":"ws://%s/chat-room-channel"}`, r.Host)
		_, _ = w.Write([]byte(node))
	})
	mux.HandleFunc("/chat-room-channel", func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		if upgrades != nil {
			upgrades.Add(1)
		}
		defer conn.Close()
		if pushFrame != "" {
			_ = conn.WriteMessage(1, []byte(pushFrame))
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	f, _ := newTestClient(t, mux)
	return f, f.ChatRoom
}

func TestChatRoomConnectIdempotent(t *testing.T) {
	var upgrades atomic.Int32
	_, room := newChatRoomServer(t, "", &upgrades)
	defer room.Disconnect()

	assert.NoError(t, room.Connect(context.Background(), false))
	assert.True(t, room.IsConnected())

	// 已连接且未要求重载时应为空操作
	assert.NoError(t, room.Connect(context.Background(), false))
	assert.Equal(t, int32(1), upgrades.Load())

	// 要求重载时重新建立连接
	assert.NoError(t, room.Connect(context.Background(), true))
	assert.Eventually(t, func() bool { return upgrades.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestChatRoomReconnectPreservesListeners(t *testing.T) {
	push := `{"type":"msg","oId":"1","userName":"alice","content":"hi","client":"Web/1.0"}`
	_, room := newChatRoomServer(t, push, nil)
	defer room.Disconnect()

	received := make(chan ChatRoomEvent, 4)
	room.On(ChatRoomEventMsg, func(ev ChatRoomEvent) { received <- ev })

	assert.NoError(t, room.Connect(context.Background(), false))
	select {
	case ev := <-received:
		assert.Equal(t, "alice", ev.Msg.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("等待消息超时")
	}

	// 重连后监听器无需重新注册
	assert.NoError(t, room.Reconnect(context.Background()))
	select {
	case ev := <-received:
		assert.Equal(t, "alice", ev.Msg.Name)
		assert.Equal(t, models.ClientWeb, ev.Msg.Via)
	case <-time.After(2 * time.Second):
		t.Fatal("重连后等待消息超时")
	}
}

func TestChatRoomConnectHandshakeTimeout(t *testing.T) {
	_, room := newChatRoomServer(t, "", nil)
	defer room.Disconnect()

	assert.NoError(t, room.Connect(context.Background(), false))
	// 拨号器的握手超时取自配置
	assert.Equal(t, 10*time.Second, room.ws.Dialer.HandshakeTimeout)
}

func TestChatRoomSendWithoutKey(t *testing.T) {
	f := New("", NewDefaultConfig())

	err := f.ChatRoom.Send(context.Background(), "你好")
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}

func TestChatRoomSend(t *testing.T) {
	var gotBody map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("/chat-room/send", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"code":0}`))
	})
	f, _ := newTestClient(t, mux)

	assert.NoError(t, f.ChatRoom.Send(context.Background(), "你好"))
	assert.Equal(t, "你好", gotBody["content"])
	assert.Equal(t, "test-key", gotBody["apiKey"])
	assert.Equal(t, "Golang/1.0.0", gotBody["client"])
}

func TestChatRoomSendFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat-room/send", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":1,"msg":"禁言中"}`))
	})
	f, _ := newTestClient(t, mux)

	err := f.ChatRoom.Send(context.Background(), "你好")
	assert.Error(t, err)
	assert.True(t, IsAPIError(err), "业务失败应为接口类错误")
}

func TestChatRoomBarrageCost(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat-room/barrager/get", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":0,"data":"5积分"}`))
	})
	f, _ := newTestClient(t, mux)

	cost, err := f.ChatRoom.BarrageCost(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, cost.Cost)
	assert.Equal(t, "积分", cost.Unit)
}

func TestChatRoomHistory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat-room/more", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "md", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte(`{"code":0,"data":[{"oId":"1","userName":"alice","content":"hi","client":"VSCode/0.1"}]}`))
	})
	f, _ := newTestClient(t, mux)

	msgs, err := f.ChatRoom.History(context.Background(), 1, models.ContentTypeMarkdown)
	assert.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.Equal(t, "alice", msgs[0].Name)
	assert.Equal(t, models.ClientVSCode, msgs[0].Via)
}

func TestChatRoomRawMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cr/raw/123", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("**hello**\n<!-- 渲染信息 -->"))
	})
	f, _ := newTestClient(t, mux)

	raw, err := f.ChatRoom.RawMessage(context.Background(), "123")
	assert.NoError(t, err)
	assert.Equal(t, "**hello**", raw, "应截断注释块并去除空白")
}

func TestChatRoomGetMessageSizeClamp(t *testing.T) {
	var gotSize string
	mux := http.NewServeMux()
	mux.HandleFunc("/chat-room/getMessage", func(w http.ResponseWriter, r *http.Request) {
		gotSize = r.URL.Query().Get("size")
		_, _ = w.Write([]byte(`{"code":0,"data":[]}`))
	})
	f, _ := newTestClient(t, mux)

	_, err := f.ChatRoom.GetMessage(context.Background(), "1", models.MessageModeContext, 500, models.ContentTypeMarkdown)
	assert.NoError(t, err)
	assert.Equal(t, "100", gotSize, "size应被收敛到上限")
}
