/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-12-01 10:30:55
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-27 16:48:02
 * @FilePath: \go-fishpi\exports_models.go
 * @Description: Models模块类型导出 - 保持向后兼容
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"github.com/kamalyes/go-fishpi/models"
)

// ==================== 枚举类型 ====================
type (
	ClientType          = models.ClientType
	ChatContentType     = models.ChatContentType
	ChatRoomMessageMode = models.ChatRoomMessageMode
	ChatRoomMsgType     = models.ChatRoomMsgType
	ChatMsgType         = models.ChatMsgType
	NoticeType          = models.NoticeType
	NoticeMsgCommand    = models.NoticeMsgCommand
	RedPacketType       = models.RedPacketType
	GestureType         = models.GestureType
	ArticleType         = models.ArticleType
	ArticleListType     = models.ArticleListType
	VoteStatus          = models.VoteStatus
	ReportType          = models.ReportType
	ReportDataType      = models.ReportDataType
	UserBagItem         = models.UserBagItem
	AppRole             = models.AppRole
)

// ==================== 枚举常量 - 内容格式 ====================
const (
	ContentTypeMarkdown = models.ContentTypeMarkdown
	ContentTypeHTML     = models.ContentTypeHTML
)

// ==================== 枚举常量 - 历史消息模式 ====================
const (
	MessageModeContext = models.MessageModeContext
	MessageModeBefore  = models.MessageModeBefore
	MessageModeAfter   = models.MessageModeAfter
)

// ==================== 枚举常量 - 红包 ====================
const (
	RedPacketRandom            = models.RedPacketRandom
	RedPacketAverage           = models.RedPacketAverage
	RedPacketSpecify           = models.RedPacketSpecify
	RedPacketHeartbeat         = models.RedPacketHeartbeat
	RedPacketRockPaperScissors = models.RedPacketRockPaperScissors

	GestureRock     = models.GestureRock
	GestureScissors = models.GestureScissors
	GesturePaper    = models.GesturePaper
)

// ==================== 枚举常量 - 通知类别 ====================
const (
	NoticeTypePoint       = models.NoticeTypePoint
	NoticeTypeCommented   = models.NoticeTypeCommented
	NoticeTypeReply       = models.NoticeTypeReply
	NoticeTypeAt          = models.NoticeTypeAt
	NoticeTypeFollowing   = models.NoticeTypeFollowing
	NoticeTypeBroadcast   = models.NoticeTypeBroadcast
	NoticeTypeSysAnnounce = models.NoticeTypeSysAnnounce
)

// ==================== 消息与会话模型 ====================
type (
	ChatRoomMsg        = models.ChatRoomMsg
	BarragerMsg        = models.BarragerMsg
	BarrageCost        = models.BarrageCost
	OnlineInfo         = models.OnlineInfo
	MuteItem           = models.MuteItem
	MusicMsg           = models.MusicMsg
	WeatherMsg         = models.WeatherMsg
	ChatRoomNode       = models.ChatRoomNode
	ChatData           = models.ChatData
	ChatNotice         = models.ChatNotice
	ChatRevoke         = models.ChatRevoke
	NoticeMsg          = models.NoticeMsg
	NoticeCount        = models.NoticeCount
	NoticeItem         = models.NoticeItem
	RedPacket          = models.RedPacket
	RedPacketInfo      = models.RedPacketInfo
	RedPacketMessage   = models.RedPacketMessage
	RedPacketStatusMsg = models.RedPacketStatusMsg
)

// ==================== 用户与内容模型 ====================
type (
	UserInfo          = models.UserInfo
	UserPoint         = models.UserPoint
	UserProfiles      = models.UserProfiles
	UserLite          = models.UserLite
	UserVipInfo       = models.UserVipInfo
	Metal             = models.Metal
	MetalBase         = models.MetalBase
	MetalAttr         = models.MetalAttr
	AtUser            = models.AtUser
	ArticlePost       = models.ArticlePost
	ArticleDetail     = models.ArticleDetail
	ArticleList       = models.ArticleList
	ArticleComment    = models.ArticleComment
	ArticleTag        = models.ArticleTag
	CommentPost       = models.CommentPost
	BreezemoonContent = models.BreezemoonContent
	UploadResult      = models.UploadResult
	Report            = models.Report
	Log                = models.Log
	UserBag           = models.UserBag
	UserIP            = models.UserIP
)

// ==================== 模型构造函数 ====================
var (
	NewRedPacket     = models.NewRedPacket
	ParseBarrageCost = models.ParseBarrageCost
	ParseMetals      = models.ParseMetals
	ParseClient      = models.ParseClient
)
