/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-20 14:05:46
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-25 09:44:19
 * @FilePath: \go-fishpi\models\chatroom.go
 * @Description: 聊天室数据模型
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package models

import (
	"strings"
	"unicode"

	json "github.com/goccy/go-json"
)

// ClientType 客户端类型，来自消息 client 字段 "/" 前的部分
type ClientType string

const (
	ClientWeb         ClientType = "Web"
	ClientPC          ClientType = "PC"
	ClientMobile      ClientType = "Mobile"
	ClientWindows     ClientType = "Windows"
	ClientMacOS       ClientType = "macOS"
	ClientLinux       ClientType = "Linux"
	ClientIOS         ClientType = "iOS"
	ClientAndroid     ClientType = "Android"
	ClientIDEA        ClientType = "IDEA"
	ClientChrome      ClientType = "Chrome"
	ClientEdge        ClientType = "Edge"
	ClientVSCode      ClientType = "VSCode"
	ClientPython      ClientType = "Python"
	ClientGolang      ClientType = "Golang"
	ClientRust        ClientType = "Rust"
	ClientHarmony     ClientType = "Harmony"
	ClientCLI         ClientType = "CLI"
	ClientBird        ClientType = "Bird"
	ClientIceNet      ClientType = "IceNet"
	ClientElvesOnline ClientType = "ElvesOnline"
	ClientOther       ClientType = "Other"
)

// String 实现Stringer接口
func (t ClientType) String() string {
	return string(t)
}

// knownClients 已知客户端类型集合
var knownClients = map[ClientType]struct{}{
	ClientWeb: {}, ClientPC: {}, ClientMobile: {}, ClientWindows: {},
	ClientMacOS: {}, ClientLinux: {}, ClientIOS: {}, ClientAndroid: {},
	ClientIDEA: {}, ClientChrome: {}, ClientEdge: {}, ClientVSCode: {},
	ClientPython: {}, ClientGolang: {}, ClientRust: {}, ClientHarmony: {},
	ClientCLI: {}, ClientBird: {}, ClientIceNet: {}, ClientElvesOnline: {},
}

// ParseClient 解析消息 client 字段，返回客户端类型与版本号
func ParseClient(client string) (ClientType, string) {
	name, version, _ := strings.Cut(client, "/")
	t := ClientType(name)
	if _, ok := knownClients[t]; !ok {
		t = ClientOther
	}
	return t, version
}

// ChatContentType 聊天内容格式
type ChatContentType string

const (
	ContentTypeMarkdown ChatContentType = "md"   // Markdown 原文
	ContentTypeHTML     ChatContentType = "html" // 渲染后的 HTML
)

// ChatRoomMessageMode 历史消息获取模式
type ChatRoomMessageMode int

const (
	MessageModeContext ChatRoomMessageMode = 0 // 指定消息前后
	MessageModeBefore  ChatRoomMessageMode = 1 // 指定消息之前
	MessageModeAfter   ChatRoomMessageMode = 2 // 指定消息之后
)

// ChatRoomMsgType 聊天室消息类别，来自帧 type 字段
type ChatRoomMsgType string

const (
	ChatRoomMsgTypeOnline          ChatRoomMsgType = "online"          // 在线用户变更
	ChatRoomMsgTypeDiscussChanged  ChatRoomMsgType = "discussChanged"  // 话题变更
	ChatRoomMsgTypeRevoke          ChatRoomMsgType = "revoke"          // 消息撤回
	ChatRoomMsgTypeMsg             ChatRoomMsgType = "msg"             // 聊天消息
	ChatRoomMsgTypeRedPacket       ChatRoomMsgType = "redPacket"       // 红包消息
	ChatRoomMsgTypeRedPacketStatus ChatRoomMsgType = "redPacketStatus" // 红包领取状态
	ChatRoomMsgTypeBarrager        ChatRoomMsgType = "barrager"        // 弹幕消息
	ChatRoomMsgTypeCustom          ChatRoomMsgType = "customMessage"   // 自定义消息
)

// OnlineInfo 在线用户信息
type OnlineInfo struct {
	HomePage string `json:"homePage"`      // 主页地址
	Avatar   string `json:"userAvatarURL"` // 头像地址
	Name     string `json:"userName"`      // 用户名
}

// MuteItem 禁言用户信息
type MuteItem struct {
	Time     int64  `json:"time"`          // 解除禁言时间戳(毫秒)
	Avatar   string `json:"userAvatarURL"` // 头像地址
	Name     string `json:"userName"`      // 用户名
	Nickname string `json:"userNickname"`  // 昵称
}

// BarragerMsg 弹幕消息
type BarragerMsg struct {
	Name         string `json:"userName"`          // 用户名
	Nickname     string `json:"userNickname"`      // 昵称
	Content      string `json:"barragerContent"`   // 弹幕内容
	Color        string `json:"barragerColor"`     // 弹幕颜色
	Avatar       string `json:"userAvatarURL"`     // 头像地址
	Avatar200    string `json:"userAvatarURL200"`  // 头像 200px
	Avatar48     string `json:"userAvatarURL48"`   // 头像 48px
	Avatar210    string `json:"userAvatarURL210"`  // 头像 210px
}

// BarrageCost 弹幕发送成本
type BarrageCost struct {
	Cost int    // 数值
	Unit string // 单位，如 "积分"
}

// ParseBarrageCost 解析 "5积分" 形式的成本描述
func ParseBarrageCost(raw string) BarrageCost {
	cost := BarrageCost{Unit: raw}
	digits := strings.TrimLeftFunc(raw, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	end := 0
	for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
		end++
	}
	if end > 0 {
		n := 0
		for _, ch := range digits[:end] {
			n = n*10 + int(ch-'0')
		}
		cost.Cost = n
		cost.Unit = strings.TrimSpace(digits[end:])
	}
	return cost
}

// ChatRoomNodeItem 聊天室可用节点
type ChatRoomNodeItem struct {
	Node   string `json:"node"`   // 节点地址
	Name   string `json:"name"`   // 节点名称
	Weight int    `json:"weight"` // 权重
	Online int    `json:"online"` // 在线数
}

// ChatRoomNode 节点查询响应
type ChatRoomNode struct {
	Code      int                `json:"code"`      // 状态码
	Msg       string             `json:"msg"`       // 提示信息
	Data      string             `json:"data"`      // 推荐节点地址
	APIKey    string             `json:"apiKey"`    // 回传凭据
	Available []ChatRoomNodeItem `json:"avaliable"` // 可用节点列表(字段名与线上一致)
}

// MusicMsg 音乐分享消息，内嵌于聊天内容
type MusicMsg struct {
	MsgType  string `json:"msgType"`  // 固定为 music
	CoverURL string `json:"coverURL"` // 封面地址
	From     string `json:"from"`     // 分享来源
	Source   string `json:"source"`   // 音频地址
	Title    string `json:"title"`    // 标题
}

// WeatherMsg 天气分享消息，内嵌于聊天内容
type WeatherMsg struct {
	MsgType     string `json:"msgType"`     // 固定为 weather
	City        string `json:"t"`           // 城市
	Description string `json:"st"`          // 天气描述
	Date        string `json:"date"`        // 日期串
	WeatherCode string `json:"weatherCode"` // 逐日天气代码，逗号分隔
	Max         string `json:"max"`         // 逐日最高温，逗号分隔
	Min         string `json:"min"`         // 逐日最低温，逗号分隔
}

// ChatRoomMsg 聊天室聊天消息
type ChatRoomMsg struct {
	OId          string     // 消息 ID
	Time         string     // 发送时间
	UserOId      string     // 用户 ID
	Name         string     // 用户名
	Nickname     string     // 昵称
	Avatar       string     // 头像地址
	SysMetal     []Metal    // 勋章列表
	Content      string     // 消息内容(markdown 或内嵌 JSON)
	MD           string     // Markdown 原文
	Client       string     // 原始 client 字段
	Via          ClientType // 客户端类型
	Version      string     // 客户端版本
	EmbeddedType string     // 内嵌 JSON 的 msgType，空表示普通文本
}

// chatRoomMsgWire 线上消息帧结构
type chatRoomMsgWire struct {
	OId      string     `json:"oId"`
	Time     string     `json:"time"`
	UserOId  FlexString `json:"userOId"`
	Name     string     `json:"userName"`
	Nickname string     `json:"userNickname"`
	Avatar   string     `json:"userAvatarURL"`
	SysMetal MetalList  `json:"sysMetal"`
	Content  string     `json:"content"`
	MD       string     `json:"md"`
	Client   string     `json:"client"`
}

// UnmarshalJSON 实现 json.Unmarshaler
// 解析 client 字段并探测内容里内嵌的 msgType(红包/音乐/天气等)
func (m *ChatRoomMsg) UnmarshalJSON(data []byte) error {
	var wire chatRoomMsgWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	m.OId = wire.OId
	m.Time = wire.Time
	m.UserOId = wire.UserOId.String()
	m.Name = wire.Name
	m.Nickname = wire.Nickname
	m.Avatar = wire.Avatar
	m.SysMetal = wire.SysMetal
	m.Content = wire.Content
	m.MD = wire.MD
	m.Client = wire.Client
	m.Via, m.Version = ParseClient(wire.Client)

	m.EmbeddedType = ""
	trimmed := strings.TrimSpace(wire.Content)
	if strings.HasPrefix(trimmed, "{") {
		var probe struct {
			MsgType string `json:"msgType"`
		}
		if err := json.Unmarshal([]byte(trimmed), &probe); err == nil {
			m.EmbeddedType = probe.MsgType
		}
	}
	return nil
}

// IsRedPacket 判断是否为红包消息
func (m *ChatRoomMsg) IsRedPacket() bool {
	return m.EmbeddedType == "redPacket"
}

// RedPacket 解析内嵌的红包消息
func (m *ChatRoomMsg) RedPacket() (*RedPacketMessage, error) {
	var rp RedPacketMessage
	if err := json.Unmarshal([]byte(m.Content), &rp); err != nil {
		return nil, err
	}
	return &rp, nil
}

// Music 解析内嵌的音乐分享消息
func (m *ChatRoomMsg) Music() (*MusicMsg, error) {
	var music MusicMsg
	if err := json.Unmarshal([]byte(m.Content), &music); err != nil {
		return nil, err
	}
	return &music, nil
}

// Weather 解析内嵌的天气分享消息
func (m *ChatRoomMsg) Weather() (*WeatherMsg, error) {
	var weather WeatherMsg
	if err := json.Unmarshal([]byte(m.Content), &weather); err != nil {
		return nil, err
	}
	return &weather, nil
}

// DisplayName 优先返回昵称
func (m *ChatRoomMsg) DisplayName() string {
	if m.Nickname != "" {
		return m.Nickname
	}
	return m.Name
}
