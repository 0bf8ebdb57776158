/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-21 10:42:13
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-25 10:38:41
 * @FilePath: \go-fishpi\models\notice.go
 * @Description: 通知数据模型
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// NoticeType 通知类别
type NoticeType string

const (
	NoticeTypePoint       NoticeType = "point"        // 积分
	NoticeTypeCommented   NoticeType = "commented"    // 收到的回帖
	NoticeTypeReply       NoticeType = "reply"        // 收到的回复
	NoticeTypeAt          NoticeType = "at"           // 提及我的
	NoticeTypeFollowing   NoticeType = "following"    // 我关注的
	NoticeTypeBroadcast   NoticeType = "broadcast"    // 同城
	NoticeTypeSysAnnounce NoticeType = "sys-announce" // 系统公告
)

// String 实现Stringer接口
func (t NoticeType) String() string {
	return string(t)
}

// NoticeMsgCommand 通知推送指令
type NoticeMsgCommand string

const (
	NoticeCmdRefresh       NoticeMsgCommand = "refreshNotification" // 刷新通知数
	NoticeCmdWarnBroadcast NoticeMsgCommand = "warnBroadcast"       // 全局警报广播
)

// NoticeMsg 通知推送消息
type NoticeMsg struct {
	Command NoticeMsgCommand `json:"command"`           // 推送指令
	UserId  string           `json:"userId"`            // 用户 ID
	Content string           `json:"warnBroadcastText"` // 警报内容
	Who     string           `json:"who"`               // 发布者
}

// NoticeCount 未读通知数
type NoticeCount struct {
	NotifyStatus IntBool `json:"userNotifyStatus"`                 // 是否开启通知
	Count        int     `json:"unreadNotificationCnt"`            // 未读总数
	Reply        int     `json:"unreadReplyNotificationCnt"`       // 未读回复
	Point        int     `json:"unreadPointNotificationCnt"`       // 未读积分
	At           int     `json:"unreadAtNotificationCnt"`          // 未读提及
	Broadcast    int     `json:"unreadBroadcastNotificationCnt"`   // 未读同城
	SysAnnounce  int     `json:"unreadSysAnnounceNotificationCnt"` // 未读公告
	NewFollower  int     `json:"unreadNewFollowerNotificationCnt"` // 未读新粉丝
	Following    int     `json:"unreadFollowingNotificationCnt"`   // 未读关注动态
	Commented    int     `json:"unreadCommentedNotificationCnt"`   // 未读回帖
}

// NoticePoint 积分通知
type NoticePoint struct {
	OId         string `json:"oId"`         // 通知 ID
	DataId      string `json:"dataId"`      // 关联数据 ID
	UserName    string `json:"userName"`    // 用户名
	Description string `json:"description"` // 通知描述
	HasRead     bool   `json:"hasRead"`     // 是否已读
	CreateTime  string `json:"createTime"`  // 创建时间
}

// NoticeComment 回帖通知
type NoticeComment struct {
	OId          string  `json:"oId"`                        // 通知 ID
	Title        string  `json:"commentArticleTitle"`        // 帖子标题
	Author       string  `json:"commentAuthorName"`          // 回帖人
	ThumbnailURL string  `json:"commentAuthorThumbnailURL"`  // 回帖人头像
	Content      string  `json:"commentContent"`             // 回帖内容
	SharpURL     string  `json:"commentSharpURL"`            // 回帖地址
	CreateTime   string  `json:"commentCreateTime"`          // 回帖时间
	HasRead      bool    `json:"hasRead"`                    // 是否已读
	Perfect      IntBool `json:"commentArticlePerfect"`      // 是否精选帖
	ArticleType  int     `json:"commentArticleType"`         // 帖子类型
}

// NoticeAt 提及通知
type NoticeAt struct {
	OId        string `json:"oId"`           // 通知 ID
	DataType   int    `json:"dataType"`      // 数据类型
	UserName   string `json:"userName"`      // 提及人
	Avatar     string `json:"userAvatarURL"` // 提及人头像
	Content    string `json:"content"`       // 内容
	DeleteFlag bool   `json:"deleted"`       // 是否已删除
	HasRead    bool   `json:"hasRead"`       // 是否已读
	CreateTime string `json:"createTime"`    // 创建时间
}

// NoticeFollow 关注动态通知
type NoticeFollow struct {
	OId          string       `json:"oId"`                 // 通知 ID
	URL          string       `json:"url"`                 // 动态地址
	Title        string       `json:"articleTitle"`        // 帖子标题
	TagObjs      []ArticleTag `json:"articleTagObjs"`      // 标签列表
	AuthorName   string       `json:"authorName"`          // 作者
	ThumbnailURL string       `json:"thumbnailURL"`        // 作者头像
	IsComment    bool         `json:"isComment"`           // 是否为回帖动态
	ArticleType  int          `json:"articleType"`         // 帖子类型
	CreateTime   string       `json:"createTime"`          // 创建时间
	HasRead      bool         `json:"hasRead"`             // 是否已读
	CommentCount int          `json:"articleCommentCount"` // 回帖数
}

// NoticeSystem 系统公告通知
type NoticeSystem struct {
	OId         string `json:"oId"`         // 通知 ID
	DataId      string `json:"dataId"`      // 关联数据 ID
	Description string `json:"description"` // 公告内容
	HasRead     bool   `json:"hasRead"`     // 是否已读
	CreateTime  string `json:"createTime"`  // 创建时间
}

// NoticeItem 通知列表项，按类别填充对应字段
type NoticeItem struct {
	Type    NoticeType     // 通知类别
	Point   *NoticePoint   // 积分通知
	Comment *NoticeComment // 回帖/回复通知
	At      *NoticeAt      // 提及/同城通知
	Follow  *NoticeFollow  // 关注动态通知
	System  *NoticeSystem  // 系统公告通知
}

// DecodeNoticeItems 按类别解码通知列表
func DecodeNoticeItems(noticeType NoticeType, raw []byte) ([]NoticeItem, error) {
	switch noticeType {
	case NoticeTypePoint:
		var items []NoticePoint
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		out := make([]NoticeItem, len(items))
		for i := range items {
			out[i] = NoticeItem{Type: noticeType, Point: &items[i]}
		}
		return out, nil
	case NoticeTypeCommented, NoticeTypeReply:
		var items []NoticeComment
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		out := make([]NoticeItem, len(items))
		for i := range items {
			out[i] = NoticeItem{Type: noticeType, Comment: &items[i]}
		}
		return out, nil
	case NoticeTypeAt, NoticeTypeBroadcast:
		var items []NoticeAt
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		out := make([]NoticeItem, len(items))
		for i := range items {
			out[i] = NoticeItem{Type: noticeType, At: &items[i]}
		}
		return out, nil
	case NoticeTypeFollowing:
		var items []NoticeFollow
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		out := make([]NoticeItem, len(items))
		for i := range items {
			out[i] = NoticeItem{Type: noticeType, Follow: &items[i]}
		}
		return out, nil
	case NoticeTypeSysAnnounce:
		var items []NoticeSystem
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		out := make([]NoticeItem, len(items))
		for i := range items {
			out[i] = NoticeItem{Type: noticeType, System: &items[i]}
		}
		return out, nil
	}
	return nil, fmt.Errorf("未知通知类别: %s", noticeType)
}
