/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-21 14:26:50
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-25 11:15:02
 * @FilePath: \go-fishpi\models\redpacket.go
 * @Description: 红包数据模型
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package models

// RedPacketType 红包类别
type RedPacketType string

const (
	RedPacketRandom            RedPacketType = "random"            // 拼手气
	RedPacketAverage           RedPacketType = "average"           // 平分
	RedPacketSpecify           RedPacketType = "specify"           // 专属
	RedPacketHeartbeat         RedPacketType = "heartbeat"         // 心跳
	RedPacketRockPaperScissors RedPacketType = "rockPaperScissors" // 猜拳
)

// GestureType 猜拳手势
type GestureType int

const (
	GestureRock     GestureType = 0 // 石头
	GestureScissors GestureType = 1 // 剪刀
	GesturePaper    GestureType = 2 // 布
)

// String 实现Stringer接口
func (g GestureType) String() string {
	switch g {
	case GestureRock:
		return "石头"
	case GestureScissors:
		return "剪刀"
	case GesturePaper:
		return "布"
	}
	return "未知"
}

// RedPacket 待发送的红包
type RedPacket struct {
	Type     RedPacketType `json:"type"`               // 红包类别
	Money    int           `json:"money"`              // 总积分
	Count    int           `json:"count"`              // 份数
	Msg      string        `json:"msg"`                // 祝福语
	Recivers []string      `json:"recivers,omitempty"` // 专属红包接收者(字段名与线上一致)
	Gesture  *GestureType  `json:"gesture,omitempty"`  // 猜拳红包手势
}

// NewRedPacket 创建默认红包
func NewRedPacket() *RedPacket {
	return &RedPacket{
		Type:  RedPacketRandom,
		Money: 32,
		Count: 1,
		Msg:   "摸鱼者, 事竟成!",
	}
}

// RedPacketGot 红包领取记录
type RedPacketGot struct {
	UserId   string `json:"userId"`    // 用户 ID
	UserName string `json:"userName"`  // 用户名
	Avatar   string `json:"avatar"`    // 头像地址
	Money    int    `json:"userMoney"` // 领取积分
	Time     string `json:"time"`      // 领取时间
}

// RedPacketBase 红包基础信息
type RedPacketBase struct {
	Count    int    `json:"count"`         // 份数
	Gesture  *int   `json:"gesture"`       // 猜拳手势
	Got      int    `json:"got"`           // 已领取份数
	Msg      string `json:"msg"`           // 祝福语
	UserName string `json:"userName"`      // 发送者用户名
	Avatar   string `json:"userAvatarURL"` // 发送者头像
}

// RedPacketInfo 红包开启结果
type RedPacketInfo struct {
	Info     RedPacketBase  `json:"info"`     // 红包信息
	Recivers StringList     `json:"recivers"` // 专属接收者
	Who      []RedPacketGot `json:"who"`      // 领取记录
}

// RedPacketMessage 聊天内容中内嵌的红包消息
type RedPacketMessage struct {
	MsgType  string         `json:"msgType"`  // 固定为 redPacket
	Type     RedPacketType  `json:"type"`     // 红包类别
	Count    int            `json:"count"`    // 份数
	Got      int            `json:"got"`      // 已领取份数
	Money    int            `json:"money"`    // 总积分
	Msg      string         `json:"msg"`      // 祝福语
	SenderId string         `json:"senderId"` // 发送者 ID
	Gesture  *GestureType   `json:"gesture"`  // 猜拳手势
	Recivers StringList     `json:"recivers"` // 专属接收者
	Who      []RedPacketGot `json:"who"`      // 领取记录
}

// RedPacketStatusMsg 红包领取状态消息
type RedPacketStatusMsg struct {
	OId         string     `json:"oId"`              // 红包消息 ID
	Count       int        `json:"count"`            // 份数
	Got         int        `json:"got"`              // 已领取份数
	WhoGive     string     `json:"whoGive"`          // 发送者
	WhoGot      StringList `json:"whoGot"`           // 领取者(单个或列表)
	AvatarURL20 string     `json:"userAvatarURL20"`  // 头像 20px
	Avatar48    string     `json:"userAvatarURL48"`  // 头像 48px
	Avatar210   string     `json:"userAvatarURL210"` // 头像 210px
}
