/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-25 14:03:56
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-26 17:12:48
 * @FilePath: \go-fishpi\notice.go
 * @Description: 通知客户端，推送分类与未读管理
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/kamalyes/go-fishpi/models"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
)

// NoticeEventType 通知事件类别
type NoticeEventType string

const (
	NoticeEventOpen          NoticeEventType = "open"                // 连接建立
	NoticeEventClose         NoticeEventType = "close"               // 连接关闭
	NoticeEventError         NoticeEventType = "error"               // 连接错误
	NoticeEventRefresh       NoticeEventType = "refreshNotification" // 刷新通知数
	NoticeEventWarnBroadcast NoticeEventType = "warnBroadcast"       // 全局警报广播
	NoticeEventAll           NoticeEventType = "all"                 // 通配类别
)

// NoticeEvent 通知事件
type NoticeEvent struct {
	Type   NoticeEventType   // 事件类别
	Msg    *models.NoticeMsg // 推送消息
	Reason string            // 关闭原因
	Err    error             // 错误事件附带的错误
}

// NoticeService 通知客户端
type NoticeService struct {
	core    *core
	emitter *Emitter[NoticeEventType, NoticeEvent]

	wsMu sync.Mutex // 连接生命周期锁
	ws   *WebSocket
}

// newNoticeService 创建通知客户端
func newNoticeService(c *core) *NoticeService {
	return &NoticeService{
		core:    c,
		emitter: NewEmitter[NoticeEventType, NoticeEvent]().WithAllKind(NoticeEventAll).WithLogger(c.logger),
	}
}

// On 注册事件监听器
func (s *NoticeService) On(kind NoticeEventType, fn Listener[NoticeEvent]) Handle[NoticeEventType] {
	return s.emitter.On(kind, fn)
}

// Off 移除指定类别的全部监听器
func (s *NoticeService) Off(kind NoticeEventType) {
	s.emitter.Off(kind)
}

// RemoveListener 按句柄移除单个监听器
func (s *NoticeService) RemoveListener(h Handle[NoticeEventType]) {
	s.emitter.Remove(h)
}

// IsConnected 返回连接状态
func (s *NoticeService) IsConnected() bool {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()
	return s.ws != nil && s.ws.IsConnected()
}

// Connect 建立通知推送通道，已连接且 reload 为 false 时直接返回
func (s *NoticeService) Connect(ctx context.Context, reload bool) error {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	if s.ws != nil && s.ws.IsConnected() && !reload {
		return nil
	}
	if s.ws != nil {
		s.ws.Disconnect()
		s.ws = nil
	}

	ws := NewWebSocket(s.core.withKey(s.core.wsURL("user-channel"))).WithDialer(s.core.dialer()).WithLogger(s.core.logger)
	ws.On(WsEventOpen, func(ev WsEvent) {
		s.emitter.Emit(NoticeEventOpen, NoticeEvent{Type: NoticeEventOpen})
	})
	ws.On(WsEventClose, func(ev WsEvent) {
		s.emitter.Emit(NoticeEventClose, NoticeEvent{Type: NoticeEventClose, Reason: ev.Reason})
	})
	ws.On(WsEventError, func(ev WsEvent) {
		s.emitter.Emit(NoticeEventError, NoticeEvent{Type: NoticeEventError, Err: ev.Err})
	})

	if err := ws.Dial(ctx, MessageHandlerFunc(s.handleFrame)); err != nil {
		return err
	}
	s.ws = ws
	return nil
}

// Reconnect 重新建立连接，监听器保留
func (s *NoticeService) Reconnect(ctx context.Context) error {
	return s.Connect(ctx, true)
}

// Disconnect 断开连接，监听器保留
func (s *NoticeService) Disconnect() {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()
	if s.ws != nil {
		s.ws.Disconnect()
		s.ws = nil
	}
}

// handleFrame 读取协程回调，分类失败仅记日志并丢弃该帧
func (s *NoticeService) handleFrame(msg string) {
	kind, event, err := classifyNoticeFrame([]byte(msg))
	if err != nil {
		s.core.logger.WarnKV("通知消息解析失败", "error", err)
		return
	}
	s.emitter.Emit(kind, *event)
}

// classifyNoticeFrame 通知推送分类，按帧 command 字段分派
func classifyNoticeFrame(raw []byte) (NoticeEventType, *NoticeEvent, error) {
	var msg models.NoticeMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return "", nil, errorx.NewError(ErrTypeBadPayload, err)
	}

	switch msg.Command {
	case models.NoticeCmdRefresh:
		return NoticeEventRefresh, &NoticeEvent{Type: NoticeEventRefresh, Msg: &msg}, nil
	case models.NoticeCmdWarnBroadcast:
		return NoticeEventWarnBroadcast, &NoticeEvent{Type: NoticeEventWarnBroadcast, Msg: &msg}, nil
	}
	return "", nil, errorx.NewError(ErrTypeUnknownKind, string(msg.Command))
}

// Count 获取未读通知数明细
func (s *NoticeService) Count(ctx context.Context) (*models.NoticeCount, error) {
	raw, err := s.core.get(ctx, s.core.withKey("notifications/unread/count"))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var count models.NoticeCount
	if err := decode(raw, &count); err != nil {
		return nil, err
	}
	return &count, nil
}

// List 按类别获取通知列表
func (s *NoticeService) List(ctx context.Context, noticeType models.NoticeType) ([]models.NoticeItem, error) {
	raw, err := s.core.get(ctx, s.core.withKey("api/getNotifications?type="+string(noticeType)))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	items, err := models.DecodeNoticeItems(noticeType, rsp.Data)
	if err != nil {
		return nil, errorx.NewError(ErrTypeParseFailed, err)
	}
	return items, nil
}

// MakeRead 把指定类别的通知标记为已读
func (s *NoticeService) MakeRead(ctx context.Context, noticeType models.NoticeType) error {
	raw, err := s.core.get(ctx, s.core.withKey("notifications/make-read/"+string(noticeType)))
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// ReadAll 把全部通知标记为已读
func (s *NoticeService) ReadAll(ctx context.Context) error {
	raw, err := s.core.get(ctx, s.core.withKey("notifications/all-read"))
	if err != nil {
		return err
	}
	return checkCode(raw)
}
