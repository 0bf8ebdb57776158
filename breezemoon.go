/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-28 09:26:54
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-01-30 16:40:28
 * @FilePath: \go-fishpi\breezemoon.go
 * @Description: 清风明月客户端
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kamalyes/go-fishpi/models"
	"github.com/kamalyes/go-toolbox/pkg/mathx"
)

// BreezemoonService 清风明月客户端
type BreezemoonService struct {
	core *core
}

// newBreezemoonService 创建清风明月客户端
func newBreezemoonService(c *core) *BreezemoonService {
	return &BreezemoonService{core: c}
}

// List 分页获取清风明月，user 非空时仅查询该用户
func (s *BreezemoonService) List(ctx context.Context, user string, page, size int) ([]models.BreezemoonContent, error) {
	base := "api/breezemoons"
	if user != "" {
		base = fmt.Sprintf("api/user/%s/breezemoons", url.PathEscape(user))
	}
	path := fmt.Sprintf("%s?p=%d&size=%d", base, mathx.IF(page < 1, 1, page), mathx.IF(size < 1, 20, size))
	raw, err := s.core.get(ctx, s.core.withKey(path))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data struct {
			Breezemoons []models.BreezemoonContent `json:"breezemoons"`
		} `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return rsp.Data.Breezemoons, nil
}

// Send 发布清风明月
func (s *BreezemoonService) Send(ctx context.Context, content string) error {
	body := struct {
		APIKey  string `json:"apiKey"`
		Content string `json:"breezemoonContent"`
	}{s.core.APIKey(), content}
	raw, err := s.core.post(ctx, "breezemoon", body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}
