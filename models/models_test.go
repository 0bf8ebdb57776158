/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-12-07 09:48:13
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-28 18:12:50
 * @FilePath: \go-fishpi\models\models_test.go
 * @Description:
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestIntBool(t *testing.T) {
	var v struct {
		Flag IntBool `json:"flag"`
	}
	// 数字形式
	assert.NoError(t, json.Unmarshal([]byte(`{"flag":1}`), &v))
	assert.True(t, bool(v.Flag))
	assert.NoError(t, json.Unmarshal([]byte(`{"flag":0}`), &v))
	assert.False(t, bool(v.Flag))
	// 布尔字面量
	assert.NoError(t, json.Unmarshal([]byte(`{"flag":true}`), &v))
	assert.True(t, bool(v.Flag))

	out, err := json.Marshal(IntBool(true))
	assert.NoError(t, err)
	assert.Equal(t, "1", string(out))
}

func TestZeroBool(t *testing.T) {
	var v struct {
		Open ZeroBool `json:"open"`
	}
	// 站点用 0 表示开启
	assert.NoError(t, json.Unmarshal([]byte(`{"open":0}`), &v))
	assert.True(t, bool(v.Open))
	assert.NoError(t, json.Unmarshal([]byte(`{"open":1}`), &v))
	assert.False(t, bool(v.Open))

	out, err := json.Marshal(ZeroBool(true))
	assert.NoError(t, err)
	assert.Equal(t, "0", string(out))
}

func TestStringList(t *testing.T) {
	var single StringList
	assert.NoError(t, json.Unmarshal([]byte(`"alice"`), &single))
	assert.Equal(t, StringList{"alice"}, single)

	var multi StringList
	assert.NoError(t, json.Unmarshal([]byte(`["alice","bob"]`), &multi))
	assert.Equal(t, StringList{"alice", "bob"}, multi)
}

func TestFlexString(t *testing.T) {
	var fromNumber FlexString
	assert.NoError(t, json.Unmarshal([]byte(`1696900000000`), &fromNumber))
	assert.Equal(t, "1696900000000", fromNumber.String())

	var fromString FlexString
	assert.NoError(t, json.Unmarshal([]byte(`"abc"`), &fromString))
	assert.Equal(t, "abc", fromString.String())
}

func TestParseClient(t *testing.T) {
	tests := []struct {
		raw     string
		client  ClientType
		version string
	}{
		{"Web/1.0", ClientWeb, "1.0"},
		{"Golang/1.0.0", ClientGolang, "1.0.0"},
		{"VSCode/0.1", ClientVSCode, "0.1"},
		{"MysteryBox/9.9", ClientOther, "9.9"},
		{"NoSlash", ClientOther, ""},
		{"", ClientOther, ""},
	}
	for _, tt := range tests {
		client, version := ParseClient(tt.raw)
		assert.Equal(t, tt.client, client, tt.raw)
		assert.Equal(t, tt.version, version, tt.raw)
	}
}

func TestParseBarrageCost(t *testing.T) {
	cost := ParseBarrageCost("5积分")
	assert.Equal(t, 5, cost.Cost)
	assert.Equal(t, "积分", cost.Unit)

	cost = ParseBarrageCost("20 积分")
	assert.Equal(t, 20, cost.Cost)
	assert.Equal(t, "积分", cost.Unit)

	// 无数字时保留原文
	cost = ParseBarrageCost("免费")
	assert.Equal(t, 0, cost.Cost)
	assert.Equal(t, "免费", cost.Unit)
}

func TestParseMetalAttr(t *testing.T) {
	attr := ParseMetalAttr("url=https://a.png&backcolor=e598a1&fontcolor=ffffff&ver=1.0&scale=0.79")
	assert.Equal(t, "https://a.png", attr.URL)
	assert.Equal(t, "e598a1", attr.Backcolor)
	assert.Equal(t, "ffffff", attr.Fontcolor)
	assert.Equal(t, "1.0", attr.Ver)
	assert.Equal(t, "0.79", attr.Scale)

	// 往返后保持一致
	assert.Equal(t, "url=https://a.png&backcolor=e598a1&fontcolor=ffffff&ver=1.0&scale=0.79", attr.String())
}

func TestParseMetals(t *testing.T) {
	raw := `{"list":[{"attr":"url=https://a.png&backcolor=e598a1","name":"重度摸鱼","description":"摸鱼时长1024小时","enabled":true}]}`
	metals, err := ParseMetals(raw)
	assert.NoError(t, err)
	assert.Len(t, metals, 1)
	assert.Equal(t, "重度摸鱼", metals[0].Name)
	assert.True(t, metals[0].Enabled)
	assert.Contains(t, metals[0].URL, "gen?txt=")
	assert.Contains(t, metals[0].Icon, "gen?txt=&")

	// 空串表示无勋章
	metals, err = ParseMetals("   ")
	assert.NoError(t, err)
	assert.Nil(t, metals)
}

func TestMetalListEmbeddedString(t *testing.T) {
	// sysMetal 线上整体编码为字符串
	var wrap struct {
		SysMetal MetalList `json:"sysMetal"`
	}
	raw := `{"sysMetal":"{\"list\":[{\"attr\":\"backcolor=e598a1\",\"name\":\"摸鱼达人\"}]}"}`
	assert.NoError(t, json.Unmarshal([]byte(raw), &wrap))
	assert.Len(t, wrap.SysMetal, 1)
	assert.Equal(t, "摸鱼达人", wrap.SysMetal[0].Name)
}

func TestChatRoomMsgUnmarshal(t *testing.T) {
	raw := `{
		"oId":"1696900000000",
		"time":"2026-02-28 10:00:00",
		"userOId":1630000000000,
		"userName":"alice",
		"userNickname":"小A",
		"content":"<p>hello</p>",
		"md":"hello",
		"client":"VSCode/0.1.2"
	}`
	var msg ChatRoomMsg
	assert.NoError(t, json.Unmarshal([]byte(raw), &msg))

	// userOId 线上可能为数字
	assert.Equal(t, "1630000000000", msg.UserOId)
	assert.Equal(t, "alice", msg.Name)
	assert.Equal(t, ClientVSCode, msg.Via)
	assert.Equal(t, "0.1.2", msg.Version)
	assert.Empty(t, msg.EmbeddedType)
	assert.Equal(t, "小A", msg.DisplayName())
}

func TestChatRoomMsgEmbeddedType(t *testing.T) {
	raw := `{"oId":"1","userName":"bob","content":"{\"msgType\":\"redPacket\",\"money\":32,\"count\":1,\"got\":0,\"type\":\"random\"}"}`
	var msg ChatRoomMsg
	assert.NoError(t, json.Unmarshal([]byte(raw), &msg))
	assert.True(t, msg.IsRedPacket())

	rp, err := msg.RedPacket()
	assert.NoError(t, err)
	assert.Equal(t, 32, rp.Money)
	assert.Equal(t, RedPacketRandom, rp.Type)
	assert.Equal(t, "bob", msg.DisplayName())
}

func TestWeatherMsgDecode(t *testing.T) {
	raw := `{"msgType":"weather","t":"上海","st":"多云转晴","date":"2-28,3-1","weatherCode":"CLOUDY,CLEAR_DAY","max":"12,15","min":"5,7"}`
	var weather WeatherMsg
	assert.NoError(t, json.Unmarshal([]byte(raw), &weather))
	assert.Equal(t, "上海", weather.City)
	assert.Equal(t, "多云转晴", weather.Description)
	assert.Equal(t, "CLOUDY,CLEAR_DAY", weather.WeatherCode)
}

func TestDecodeNoticeItems(t *testing.T) {
	raw := []byte(`[{"oId":"1","description":"签到获得积分","hasRead":true}]`)
	items, err := DecodeNoticeItems(NoticeTypePoint, raw)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, NoticeTypePoint, items[0].Type)
	assert.NotNil(t, items[0].Point)
	assert.True(t, items[0].Point.HasRead)

	// 未知类别应报错
	_, err = DecodeNoticeItems(NoticeType("mystery"), raw)
	assert.Error(t, err)
}

func TestRedPacketWire(t *testing.T) {
	// 专属红包，recivers 字段须在编码后保留
	specify := RedPacket{
		Type:     RedPacketSpecify,
		Money:    64,
		Count:    2,
		Msg:      "摸鱼快乐",
		Recivers: []string{"alice", "bob"},
	}
	out, err := json.Marshal(specify)
	assert.NoError(t, err)

	var gotSpecify RedPacket
	assert.NoError(t, json.Unmarshal(out, &gotSpecify))
	assert.Equal(t, specify, gotSpecify)

	// 猜拳红包，手势 0(石头) 不能因 omitempty 丢失
	gesture := GestureRock
	rps := RedPacket{
		Type:    RedPacketRockPaperScissors,
		Money:   32,
		Count:   1,
		Msg:     "猜拳",
		Gesture: &gesture,
	}
	out, err = json.Marshal(rps)
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"gesture":0`)

	var gotRps RedPacket
	assert.NoError(t, json.Unmarshal(out, &gotRps))
	assert.Equal(t, rps, gotRps)
	assert.Equal(t, GestureRock, *gotRps.Gesture)
}

func TestVipName(t *testing.T) {
	year := UserVipInfo{LvCode: "VIP_YEAR"}
	assert.Equal(t, "VIP(包年)", year.VipName())

	month := UserVipInfo{LvCode: "SVIP_MONTH"}
	assert.Equal(t, "SVIP(包月)", month.VipName())
}
