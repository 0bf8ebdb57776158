/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-28 10:55:19
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-02 09:48:33
 * @FilePath: \go-fishpi\redpacket.go
 * @Description: 红包客户端，发送基于聊天室消息标记
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/kamalyes/go-fishpi/models"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
)

// RedPacketService 红包客户端
type RedPacketService struct {
	core     *core
	chatroom *ChatRoomService
}

// newRedPacketService 创建红包客户端
func newRedPacketService(c *core, chatroom *ChatRoomService) *RedPacketService {
	return &RedPacketService{core: c, chatroom: chatroom}
}

// Open 打开红包，gesture 仅猜拳红包需要
func (s *RedPacketService) Open(ctx context.Context, oId string, gesture *models.GestureType) (*models.RedPacketInfo, error) {
	body := struct {
		OId     string              `json:"oId"`
		Gesture *models.GestureType `json:"gesture,omitempty"`
		APIKey  string              `json:"apiKey"`
	}{oId, gesture, s.core.APIKey()}
	raw, err := s.core.post(ctx, "chat-room/red-packet/open", body)
	if err != nil {
		return nil, err
	}
	var info models.RedPacketInfo
	if err := decode(raw, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Send 发送红包，基于聊天室消息的 redpacket 标记
func (s *RedPacketService) Send(ctx context.Context, redPacket *models.RedPacket) error {
	body := struct {
		models.RedPacket
		APIKey string `json:"apiKey"`
	}{*redPacket, s.core.APIKey()}
	data, err := json.Marshal(body)
	if err != nil {
		return errorx.NewError(ErrTypeSerializeFailed, err)
	}
	return s.chatroom.Send(ctx, fmt.Sprintf("[redpacket]%s[/redpacket]", string(data)))
}
