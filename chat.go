/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-25 09:22:41
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-26 16:31:20
 * @FilePath: \go-fishpi\chat.go
 * @Description: 私聊客户端，消息分类与会话管理
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/kamalyes/go-fishpi/models"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
	"github.com/kamalyes/go-toolbox/pkg/mathx"
)

// ChatEventType 私聊事件类别
type ChatEventType string

const (
	ChatEventOpen   ChatEventType = "open"   // 连接建立
	ChatEventClose  ChatEventType = "close"  // 连接关闭
	ChatEventError  ChatEventType = "error"  // 连接错误
	ChatEventNotice ChatEventType = "notice" // 新消息通知
	ChatEventData   ChatEventType = "data"   // 聊天数据
	ChatEventRevoke ChatEventType = "revoke" // 消息撤回
	ChatEventAll    ChatEventType = "all"    // 通配类别
)

// ChatEvent 私聊事件，按类别填充对应字段
type ChatEvent struct {
	Type   ChatEventType      // 事件类别
	Notice *models.ChatNotice // 新消息通知
	Data   *models.ChatData   // 聊天数据
	Revoke *models.ChatRevoke // 消息撤回
	Reason string             // 关闭原因
	Err    error              // 错误事件附带的错误
}

// ChatService 私聊客户端
type ChatService struct {
	core    *core
	emitter *Emitter[ChatEventType, ChatEvent]

	wsMu sync.Mutex // 连接生命周期锁
	ws   *WebSocket
}

// newChatService 创建私聊客户端
func newChatService(c *core) *ChatService {
	return &ChatService{
		core:    c,
		emitter: NewEmitter[ChatEventType, ChatEvent]().WithAllKind(ChatEventAll).WithLogger(c.logger),
	}
}

// On 注册事件监听器
func (s *ChatService) On(kind ChatEventType, fn Listener[ChatEvent]) Handle[ChatEventType] {
	return s.emitter.On(kind, fn)
}

// Off 移除指定类别的全部监听器
func (s *ChatService) Off(kind ChatEventType) {
	s.emitter.Off(kind)
}

// RemoveListener 按句柄移除单个监听器
func (s *ChatService) RemoveListener(h Handle[ChatEventType]) {
	s.emitter.Remove(h)
}

// IsConnected 返回连接状态
func (s *ChatService) IsConnected() bool {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()
	return s.ws != nil && s.ws.IsConnected()
}

// Connect 建立私聊通道
// toUser 非空时连接与指定用户的会话通道，为空时连接用户全局通道；
// 已连接且 reload 为 false 时直接返回
func (s *ChatService) Connect(ctx context.Context, reload bool, toUser string) error {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	if s.ws != nil && s.ws.IsConnected() && !reload {
		return nil
	}
	if s.ws != nil {
		s.ws.Disconnect()
		s.ws = nil
	}

	channel := s.core.withKey(s.core.wsURL("user-channel"))
	if toUser != "" {
		channel = fmt.Sprintf("%s&toUser=%s", s.core.withKey(s.core.wsURL("chat-channel")), url.QueryEscape(toUser))
	}

	ws := NewWebSocket(channel).WithDialer(s.core.dialer()).WithLogger(s.core.logger)
	ws.On(WsEventOpen, func(ev WsEvent) {
		s.emitter.Emit(ChatEventOpen, ChatEvent{Type: ChatEventOpen})
	})
	ws.On(WsEventClose, func(ev WsEvent) {
		s.emitter.Emit(ChatEventClose, ChatEvent{Type: ChatEventClose, Reason: ev.Reason})
	})
	ws.On(WsEventError, func(ev WsEvent) {
		s.emitter.Emit(ChatEventError, ChatEvent{Type: ChatEventError, Err: ev.Err})
	})

	if err := ws.Dial(ctx, MessageHandlerFunc(s.handleFrame)); err != nil {
		return err
	}
	s.ws = ws
	return nil
}

// Reconnect 重新建立连接，监听器保留
func (s *ChatService) Reconnect(ctx context.Context, toUser string) error {
	return s.Connect(ctx, true, toUser)
}

// Disconnect 断开连接，监听器保留
func (s *ChatService) Disconnect() {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()
	if s.ws != nil {
		s.ws.Disconnect()
		s.ws = nil
	}
}

// handleFrame 读取协程回调，分类失败仅记日志并丢弃该帧
func (s *ChatService) handleFrame(msg string) {
	kind, event, err := classifyChatFrame([]byte(msg))
	if err != nil {
		s.core.logger.WarnKV("私聊消息解析失败", "error", err)
		return
	}
	s.emitter.Emit(kind, *event)
}

// classifyChatFrame 私聊消息分类，负载位于帧的 data 字段
func classifyChatFrame(raw []byte) (ChatEventType, *ChatEvent, error) {
	var frame struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &frame); err != nil {
		return "", nil, errorx.NewError(ErrTypeBadPayload, err)
	}

	switch models.ChatMsgType(frame.Type) {
	case models.ChatMsgTypeNotice:
		var notice models.ChatNotice
		if err := json.Unmarshal(frame.Data, &notice); err != nil {
			return "", nil, errorx.NewError(ErrTypeBadPayload, err)
		}
		return ChatEventNotice, &ChatEvent{Type: ChatEventNotice, Notice: &notice}, nil

	case models.ChatMsgTypeData:
		var data models.ChatData
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			return "", nil, errorx.NewError(ErrTypeBadPayload, err)
		}
		return ChatEventData, &ChatEvent{Type: ChatEventData, Data: &data}, nil

	case models.ChatMsgTypeRevoke:
		var revoke models.ChatRevoke
		if err := json.Unmarshal(frame.Data, &revoke); err != nil {
			return "", nil, errorx.NewError(ErrTypeBadPayload, err)
		}
		return ChatEventRevoke, &ChatEvent{Type: ChatEventRevoke, Revoke: &revoke}, nil
	}

	return "", nil, errorx.NewError(ErrTypeUnknownKind, frame.Type)
}

// List 获取最近联系人会话列表
func (s *ChatService) List(ctx context.Context) ([]models.ChatData, error) {
	raw, err := s.core.get(ctx, s.core.withKey("chat/get-list"))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data []models.ChatData `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return rsp.Data, nil
}

// History 分页获取与指定用户的历史消息
// autoread 为 true 时成功后自动调用一次 MarkAsRead
func (s *ChatService) History(ctx context.Context, toUser string, page, pageSize int, autoread bool) ([]models.ChatData, error) {
	path := fmt.Sprintf("chat/get-message?toUser=%s&page=%d&pageSize=%d",
		url.QueryEscape(toUser), mathx.IF(page < 1, 1, page), mathx.IF(pageSize < 1, 20, pageSize))
	raw, err := s.core.get(ctx, s.core.withKey(path))
	if err != nil {
		return nil, err
	}
	if err := checkResult(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data []models.ChatData `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	if autoread {
		if err := s.MarkAsRead(ctx, toUser); err != nil {
			s.core.logger.WarnKV("标记已读失败", "toUser", toUser, "error", err)
		}
	}
	return rsp.Data, nil
}

// MarkAsRead 把与指定用户的会话标记为已读
func (s *ChatService) MarkAsRead(ctx context.Context, toUser string) error {
	path := fmt.Sprintf("chat/mark-as-read?toUser=%s", url.QueryEscape(toUser))
	raw, err := s.core.get(ctx, s.core.withKey(path))
	if err != nil {
		return err
	}
	return checkResult(raw)
}

// Unread 获取未读私聊消息，无未读返回空列表
func (s *ChatService) Unread(ctx context.Context) ([]models.ChatData, error) {
	raw, err := s.core.get(ctx, s.core.withKey("chat/has-unread"))
	if err != nil {
		return nil, err
	}
	if err := checkResult(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data []models.ChatData `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return rsp.Data, nil
}

// Revoke 撤回私聊消息
func (s *ChatService) Revoke(ctx context.Context, oId string) error {
	raw, err := s.core.get(ctx, s.core.withKey("chat/revoke?oId="+url.QueryEscape(oId)))
	if err != nil {
		return err
	}
	return checkResult(raw)
}
