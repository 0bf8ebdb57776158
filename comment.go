/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-27 14:37:40
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-01-30 16:02:11
 * @FilePath: \go-fishpi\comment.go
 * @Description: 回帖客户端
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"fmt"

	"github.com/kamalyes/go-fishpi/models"
)

// CommentService 回帖客户端
type CommentService struct {
	core *core
}

// newCommentService 创建回帖客户端
func newCommentService(c *core) *CommentService {
	return &CommentService{core: c}
}

// Send 发布回帖
func (s *CommentService) Send(ctx context.Context, comment *models.CommentPost) error {
	body := struct {
		models.CommentPost
		APIKey string `json:"apiKey"`
	}{*comment, s.core.APIKey()}
	raw, err := s.core.post(ctx, "comment", body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// Update 更新回帖，返回渲染后的回帖内容
func (s *CommentService) Update(ctx context.Context, oId string, comment *models.CommentPost) (string, error) {
	body := struct {
		models.CommentPost
		APIKey string `json:"apiKey"`
	}{*comment, s.core.APIKey()}
	raw, err := s.core.put(ctx, "comment/"+oId, body)
	if err != nil {
		return "", err
	}
	if err := checkCode(raw); err != nil {
		return "", err
	}
	var rsp struct {
		Content string `json:"commentContent"`
	}
	if err := decode(raw, &rsp); err != nil {
		return "", err
	}
	return rsp.Content, nil
}

// Vote 给回帖投票，返回投票后是否处于点赞状态
func (s *CommentService) Vote(ctx context.Context, oId string, direction VoteDirection) (bool, error) {
	body := struct {
		DataId string `json:"dataId"`
		APIKey string `json:"apiKey"`
	}{oId, s.core.APIKey()}
	raw, err := s.core.post(ctx, fmt.Sprintf("vote/%s/comment", direction), body)
	if err != nil {
		return false, err
	}
	if err := checkCode(raw); err != nil {
		return false, err
	}
	var rsp struct {
		Type int `json:"type"`
	}
	if err := decode(raw, &rsp); err != nil {
		return false, err
	}
	return rsp.Type == 0, nil
}

// Thank 感谢回帖
func (s *CommentService) Thank(ctx context.Context, oId string) error {
	body := struct {
		CommentId string `json:"commentId"`
		APIKey    string `json:"apiKey"`
	}{oId, s.core.APIKey()}
	raw, err := s.core.post(ctx, "comment/thank", body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// Remove 删除回帖，返回被删除的回帖 ID
func (s *CommentService) Remove(ctx context.Context, oId string) (string, error) {
	body := struct {
		APIKey string `json:"apiKey"`
	}{s.core.APIKey()}
	raw, err := s.core.post(ctx, "comment/"+oId+"/remove", body)
	if err != nil {
		return "", err
	}
	if err := checkCode(raw); err != nil {
		return "", err
	}
	var rsp struct {
		CommentId string `json:"commentId"`
	}
	if err := decode(raw, &rsp); err != nil {
		return "", err
	}
	return rsp.CommentId, nil
}
