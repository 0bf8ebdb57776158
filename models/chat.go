/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-21 09:18:27
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-25 10:06:58
 * @FilePath: \go-fishpi\models\chat.go
 * @Description: 私聊数据模型
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package models

// ChatMsgType 私聊消息帧类别，来自帧 type 字段
type ChatMsgType string

const (
	ChatMsgTypeNotice ChatMsgType = "notice" // 新消息通知
	ChatMsgTypeData   ChatMsgType = "data"   // 聊天数据
	ChatMsgTypeRevoke ChatMsgType = "revoke" // 消息撤回
)

// ChatData 私聊消息
type ChatData struct {
	OId              string `json:"oId"`              // 消息 ID
	ToId             string `json:"toId"`             // 接收会话 ID
	FromId           string `json:"fromId"`           // 发送会话 ID
	Time             string `json:"time"`             // 发送时间
	Preview          string `json:"preview"`          // 预览内容
	UserSession      string `json:"user_session"`     // 会话标识
	SenderName       string `json:"senderUserName"`   // 发送者用户名
	SenderAvatar     string `json:"senderAvatar"`     // 发送者头像
	ReceiverName     string `json:"receiverUserName"` // 接收者用户名
	ReceiverAvatar   string `json:"receiverAvatar"`   // 接收者头像
	Content          string `json:"content"`          // 渲染后内容
	Markdown         string `json:"markdown"`         // Markdown 原文
}

// ChatNotice 私聊新消息通知
type ChatNotice struct {
	Command      string `json:"command"`        // 通知指令
	UserId       string `json:"userId"`         // 发送者用户 ID
	Preview      string `json:"preview"`        // 预览内容
	SenderAvatar string `json:"senderAvatar"`   // 发送者头像
	SenderName   string `json:"senderUserName"` // 发送者用户名
}

// ChatRevoke 私聊消息撤回
type ChatRevoke struct {
	Data string `json:"data"` // 被撤回的消息 ID
}
