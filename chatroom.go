/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-24 09:40:18
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-26 14:55:03
 * @FilePath: \go-fishpi\chatroom.go
 * @Description: 聊天室客户端，消息分类与会话管理
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/kamalyes/go-fishpi/models"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
	"github.com/kamalyes/go-toolbox/pkg/mathx"
)

// ChatRoomEventType 聊天室事件类别
type ChatRoomEventType string

const (
	ChatRoomEventOpen            ChatRoomEventType = "open"            // 连接建立
	ChatRoomEventClose           ChatRoomEventType = "close"           // 连接关闭
	ChatRoomEventError           ChatRoomEventType = "error"           // 连接错误
	ChatRoomEventOnline          ChatRoomEventType = "online"          // 在线用户变更
	ChatRoomEventDiscussChanged  ChatRoomEventType = "discussChanged"  // 话题变更
	ChatRoomEventRevoke          ChatRoomEventType = "revoke"          // 消息撤回
	ChatRoomEventMsg             ChatRoomEventType = "msg"             // 聊天消息
	ChatRoomEventRedPacket       ChatRoomEventType = "redPacket"       // 红包消息
	ChatRoomEventRedPacketStatus ChatRoomEventType = "redPacketStatus" // 红包领取状态
	ChatRoomEventBarrager        ChatRoomEventType = "barrager"        // 弹幕消息
	ChatRoomEventMusic           ChatRoomEventType = "music"           // 音乐分享
	ChatRoomEventWeather         ChatRoomEventType = "weather"         // 天气分享
	ChatRoomEventCustom          ChatRoomEventType = "customMessage"   // 自定义消息
	ChatRoomEventAll             ChatRoomEventType = "all"             // 通配类别
)

// ChatRoomEvent 聊天室事件，按类别填充对应字段
type ChatRoomEvent struct {
	Type            ChatRoomEventType          // 事件类别
	Onlines         []models.OnlineInfo        // 在线用户列表
	Discuss         string                     // 新话题
	RevokedId       string                     // 被撤回的消息 ID
	Msg             *models.ChatRoomMsg        // 聊天消息(含音乐/天气/红包)
	Barrager        *models.BarragerMsg        // 弹幕消息
	RedPacketStatus *models.RedPacketStatusMsg // 红包领取状态
	Custom          string                     // 自定义消息内容
	Reason          string                     // 关闭原因
	Err             error                      // 错误事件附带的错误
}

// ChatRoomService 聊天室客户端
// 连接断开后监听器保留，重连无需重新注册；
// 话题与在线列表缓存用 TryLock 机会性更新，分发路径绝不阻塞
type ChatRoomService struct {
	core    *core
	emitter *Emitter[ChatRoomEventType, ChatRoomEvent]

	wsMu sync.Mutex // 连接生命周期锁
	ws   *WebSocket

	stateMu sync.Mutex // 缓存锁，写侧只 TryLock
	discuss string
	onlines []models.OnlineInfo
}

// newChatRoomService 创建聊天室客户端
func newChatRoomService(c *core) *ChatRoomService {
	return &ChatRoomService{
		core:    c,
		emitter: NewEmitter[ChatRoomEventType, ChatRoomEvent]().WithAllKind(ChatRoomEventAll).WithLogger(c.logger),
	}
}

// On 注册事件监听器
func (s *ChatRoomService) On(kind ChatRoomEventType, fn Listener[ChatRoomEvent]) Handle[ChatRoomEventType] {
	return s.emitter.On(kind, fn)
}

// Off 移除指定类别的全部监听器
func (s *ChatRoomService) Off(kind ChatRoomEventType) {
	s.emitter.Off(kind)
}

// RemoveListener 按句柄移除单个监听器
func (s *ChatRoomService) RemoveListener(h Handle[ChatRoomEventType]) {
	s.emitter.Remove(h)
}

// Discuss 返回缓存的当前话题
func (s *ChatRoomService) Discuss() string {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.discuss
}

// Onlines 返回缓存的在线用户列表
func (s *ChatRoomService) Onlines() []models.OnlineInfo {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	out := make([]models.OnlineInfo, len(s.onlines))
	copy(out, s.onlines)
	return out
}

// OnlineCount 返回缓存的在线人数
func (s *ChatRoomService) OnlineCount() int {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return len(s.onlines)
}

// IsConnected 返回连接状态
func (s *ChatRoomService) IsConnected() bool {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()
	return s.ws != nil && s.ws.IsConnected()
}

// Connect 建立聊天室连接
// 已连接且 reload 为 false 时直接返回；reload 为 true 时先断开旧连接
func (s *ChatRoomService) Connect(ctx context.Context, reload bool) error {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	if s.ws != nil && s.ws.IsConnected() && !reload {
		return nil
	}
	if s.ws != nil {
		s.ws.Disconnect()
		s.ws = nil
	}

	ws := NewWebSocket(s.resolveWsURL(ctx)).WithDialer(s.core.dialer()).WithLogger(s.core.logger)
	s.bridgeLifecycle(ws)
	if err := ws.Dial(ctx, MessageHandlerFunc(s.handleFrame)); err != nil {
		return err
	}
	s.ws = ws
	return nil
}

// Reconnect 重新建立连接，监听器保留
func (s *ChatRoomService) Reconnect(ctx context.Context) error {
	return s.Connect(ctx, true)
}

// Disconnect 断开连接，监听器保留
func (s *ChatRoomService) Disconnect() {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()
	if s.ws != nil {
		s.ws.Disconnect()
		s.ws = nil
	}
}

// resolveWsURL 解析聊天室通道地址
// 优先使用节点发现结果，失败时回退到主站通道
func (s *ChatRoomService) resolveWsURL(ctx context.Context) string {
	key := s.core.APIKey()
	node, err := s.GetNode(ctx)
	if err == nil && node.Data != "" {
		return fmt.Sprintf("%s?apiKey=%s", node.Data, key)
	}
	s.core.logger.WarnKV("聊天室节点发现失败，回退主站通道", "error", err)
	return s.core.withKey(s.core.wsURL("chat-room-channel"))
}

// bridgeLifecycle 把底层连接生命周期事件桥接为聊天室事件
func (s *ChatRoomService) bridgeLifecycle(ws *WebSocket) {
	ws.On(WsEventOpen, func(ev WsEvent) {
		s.emitter.Emit(ChatRoomEventOpen, ChatRoomEvent{Type: ChatRoomEventOpen})
	})
	ws.On(WsEventClose, func(ev WsEvent) {
		s.emitter.Emit(ChatRoomEventClose, ChatRoomEvent{Type: ChatRoomEventClose, Reason: ev.Reason})
	})
	ws.On(WsEventError, func(ev WsEvent) {
		s.emitter.Emit(ChatRoomEventError, ChatRoomEvent{Type: ChatRoomEventError, Err: ev.Err})
	})
}

// handleFrame 读取协程回调，分类失败仅记日志并丢弃该帧
func (s *ChatRoomService) handleFrame(msg string) {
	kind, event, err := classifyChatRoomFrame([]byte(msg))
	if err != nil {
		s.core.logger.WarnKV("聊天室消息解析失败", "error", err)
		return
	}
	s.updateCache(event)
	s.emitter.Emit(kind, *event)
}

// updateCache 机会性更新话题与在线列表缓存
// 抢不到锁直接放弃本次更新，宁可缓存略旧也不阻塞分发
func (s *ChatRoomService) updateCache(event *ChatRoomEvent) {
	switch event.Type {
	case ChatRoomEventOnline:
		if s.stateMu.TryLock() {
			s.onlines = event.Onlines
			s.stateMu.Unlock()
		}
	case ChatRoomEventDiscussChanged:
		if s.stateMu.TryLock() {
			s.discuss = event.Discuss
			s.stateMu.Unlock()
		}
	}
}

// classifyChatRoomFrame 聊天室消息分类
// 按帧 type 字段分派，聊天消息再按内容内嵌的 msgType 二次分派
func classifyChatRoomFrame(raw []byte) (ChatRoomEventType, *ChatRoomEvent, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", nil, errorx.NewError(ErrTypeBadPayload, err)
	}

	switch models.ChatRoomMsgType(head.Type) {
	case models.ChatRoomMsgTypeOnline:
		var frame struct {
			Users []models.OnlineInfo `json:"users"`
		}
		if err := json.Unmarshal(raw, &frame); err != nil {
			return "", nil, errorx.NewError(ErrTypeBadPayload, err)
		}
		return ChatRoomEventOnline, &ChatRoomEvent{Type: ChatRoomEventOnline, Onlines: frame.Users}, nil

	case models.ChatRoomMsgTypeDiscussChanged:
		var frame struct {
			NewDiscuss string `json:"newDiscuss"`
		}
		if err := json.Unmarshal(raw, &frame); err != nil {
			return "", nil, errorx.NewError(ErrTypeBadPayload, err)
		}
		return ChatRoomEventDiscussChanged, &ChatRoomEvent{Type: ChatRoomEventDiscussChanged, Discuss: frame.NewDiscuss}, nil

	case models.ChatRoomMsgTypeRevoke:
		var frame struct {
			OId string `json:"oId"`
		}
		if err := json.Unmarshal(raw, &frame); err != nil {
			return "", nil, errorx.NewError(ErrTypeBadPayload, err)
		}
		return ChatRoomEventRevoke, &ChatRoomEvent{Type: ChatRoomEventRevoke, RevokedId: frame.OId}, nil

	case models.ChatRoomMsgTypeMsg:
		var msg models.ChatRoomMsg
		if err := json.Unmarshal(raw, &msg); err != nil {
			return "", nil, errorx.NewError(ErrTypeBadPayload, err)
		}
		// 内嵌 msgType 只识别音乐与天气，缺失或未知值一律按普通消息处理
		kind := ChatRoomEventMsg
		switch msg.EmbeddedType {
		case "music":
			kind = ChatRoomEventMusic
		case "weather":
			kind = ChatRoomEventWeather
		}
		return kind, &ChatRoomEvent{Type: kind, Msg: &msg}, nil

	case models.ChatRoomMsgTypeRedPacket:
		var msg models.ChatRoomMsg
		if err := json.Unmarshal(raw, &msg); err != nil {
			return "", nil, errorx.NewError(ErrTypeBadPayload, err)
		}
		return ChatRoomEventRedPacket, &ChatRoomEvent{Type: ChatRoomEventRedPacket, Msg: &msg}, nil

	case models.ChatRoomMsgTypeRedPacketStatus:
		var status models.RedPacketStatusMsg
		if err := json.Unmarshal(raw, &status); err != nil {
			return "", nil, errorx.NewError(ErrTypeBadPayload, err)
		}
		return ChatRoomEventRedPacketStatus, &ChatRoomEvent{Type: ChatRoomEventRedPacketStatus, RedPacketStatus: &status}, nil

	case models.ChatRoomMsgTypeBarrager:
		var barrager models.BarragerMsg
		if err := json.Unmarshal(raw, &barrager); err != nil {
			return "", nil, errorx.NewError(ErrTypeBadPayload, err)
		}
		return ChatRoomEventBarrager, &ChatRoomEvent{Type: ChatRoomEventBarrager, Barrager: &barrager}, nil

	case models.ChatRoomMsgTypeCustom:
		var frame struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &frame); err != nil {
			return "", nil, errorx.NewError(ErrTypeBadPayload, err)
		}
		return ChatRoomEventCustom, &ChatRoomEvent{Type: ChatRoomEventCustom, Custom: frame.Message}, nil
	}

	return "", nil, errorx.NewError(ErrTypeUnknownKind, head.Type)
}

// GetNode 查询推荐的聊天室节点
func (s *ChatRoomService) GetNode(ctx context.Context) (*models.ChatRoomNode, error) {
	raw, err := s.core.get(ctx, s.core.withKey("chat-room/node/get"))
	if err != nil {
		return nil, err
	}
	var node models.ChatRoomNode
	if err := decode(raw, &node); err != nil {
		return nil, err
	}
	if node.Code != 0 {
		return nil, errorx.NewError(ErrTypeNodeUnavailable, node.Msg)
	}
	return &node, nil
}

// Send 发送聊天消息
func (s *ChatRoomService) Send(ctx context.Context, content string) error {
	if err := s.core.requireKey(); err != nil {
		return err
	}
	body := struct {
		Content string `json:"content"`
		Client  string `json:"client"`
		APIKey  string `json:"apiKey"`
	}{
		Content: content,
		Client:  s.core.config.clientTag(),
		APIKey:  s.core.APIKey(),
	}
	raw, err := s.core.post(ctx, "chat-room/send", body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// SetDiscuss 修改聊天室话题，基于 Send 的 setdiscuss 标记
func (s *ChatRoomService) SetDiscuss(ctx context.Context, topic string) error {
	return s.Send(ctx, fmt.Sprintf("[setdiscuss]%s[/setdiscuss]", topic))
}

// Barrager 发送弹幕，color 为空时使用白色
func (s *ChatRoomService) Barrager(ctx context.Context, content, color string) error {
	payload := struct {
		Color   string `json:"color"`
		Content string `json:"content"`
	}{
		Color:   mathx.IF(color == "", "#ffffff", color),
		Content: content,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return errorx.NewError(ErrTypeSerializeFailed, err)
	}
	return s.Send(ctx, fmt.Sprintf("[barrager]%s[/barrager]", string(data)))
}

// BarrageCost 查询弹幕发送成本
func (s *ChatRoomService) BarrageCost(ctx context.Context) (*models.BarrageCost, error) {
	raw, err := s.core.get(ctx, s.core.withKey("chat-room/barrager/get"))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data string `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	cost := models.ParseBarrageCost(rsp.Data)
	return &cost, nil
}

// History 分页获取历史消息，页码从 1 开始
func (s *ChatRoomService) History(ctx context.Context, page int, contentType models.ChatContentType) ([]models.ChatRoomMsg, error) {
	path := fmt.Sprintf("chat-room/more?page=%d&type=%s", mathx.IF(page < 1, 1, page), contentType)
	raw, err := s.core.get(ctx, s.core.withKey(path))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data []models.ChatRoomMsg `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return rsp.Data, nil
}

// GetMessage 按消息 ID 获取上下文消息，size 范围 1..100
func (s *ChatRoomService) GetMessage(ctx context.Context, oId string, mode models.ChatRoomMessageMode, size int, contentType models.ChatContentType) ([]models.ChatRoomMsg, error) {
	size = mathx.IF(size < 1, 25, size)
	size = mathx.IF(size > 100, 100, size)
	path := fmt.Sprintf("chat-room/getMessage?oId=%s&mode=%d&size=%d&type=%s", oId, mode, size, contentType)
	raw, err := s.core.get(ctx, s.core.withKey(path))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data []models.ChatRoomMsg `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return rsp.Data, nil
}

// Revoke 撤回消息，普通用户仅能撤回自己 24 小时内的消息
func (s *ChatRoomService) Revoke(ctx context.Context, oId string) error {
	body := struct {
		APIKey string `json:"apiKey"`
	}{APIKey: s.core.APIKey()}
	raw, err := s.core.delete(ctx, "chat-room/revoke/"+oId, body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// Mutes 查询当前禁言中的用户
func (s *ChatRoomService) Mutes(ctx context.Context) ([]models.MuteItem, error) {
	raw, err := s.core.get(ctx, "chat-room/si-guo-list")
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data []models.MuteItem `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return rsp.Data, nil
}

// RawMessage 获取消息的 Markdown 原文
func (s *ChatRoomService) RawMessage(ctx context.Context, oId string) (string, error) {
	return s.core.getText(ctx, "cr/raw/"+oId)
}
