/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-28 15:12:08
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-02 11:27:45
 * @FilePath: \go-fishpi\finger.go
 * @Description: 金手指客户端，管理员/机器人专用接口
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"time"

	"github.com/kamalyes/go-fishpi/models"
	"github.com/kamalyes/go-toolbox/pkg/mathx"
)

// FingerService 金手指客户端
// 使用独立的 goldFingerKey 鉴权，与普通 apiKey 无关
type FingerService struct {
	core *core
	key  string
}

// newFingerService 创建金手指客户端
func newFingerService(c *core, goldFingerKey string) *FingerService {
	return &FingerService{core: c, key: goldFingerKey}
}

// fingerBody 通用请求体，附带 goldFingerKey
type fingerBody map[string]any

// post 金手指接口统一走 POST + code 外层
func (s *FingerService) post(ctx context.Context, path string, body fingerBody) ([]byte, error) {
	body["goldFingerKey"] = s.key
	raw, err := s.core.post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// UploadMofishScore 上传摸鱼大闯关成绩，time 为零值时取当前时间
func (s *FingerService) UploadMofishScore(ctx context.Context, userName string, stage int, t time.Time) error {
	ms := mathx.IF(t.IsZero(), time.Now().UnixMilli(), t.UnixMilli())
	_, err := s.post(ctx, "api/games/mofish/score", fingerBody{
		"userName": userName,
		"stage":    stage,
		"time":     ms,
	})
	return err
}

// LatestLoginIP 查询用户最近登录 IP
func (s *FingerService) LatestLoginIP(ctx context.Context, userName string) (*models.UserIP, error) {
	raw, err := s.post(ctx, "user/query/latest-login-iP", fingerBody{"userName": userName})
	if err != nil {
		return nil, err
	}
	var ip models.UserIP
	if err := decode(raw, &ip); err != nil {
		return nil, err
	}
	return &ip, nil
}

// GiveMetal 颁发勋章
func (s *FingerService) GiveMetal(ctx context.Context, userName string, metal *models.MetalBase) error {
	_, err := s.post(ctx, "user/edit/give-metal", fingerBody{
		"userName":    userName,
		"name":        metal.Name,
		"description": metal.Description,
		"attr":        metal.Attr.String(),
		"data":        metal.Data,
	})
	return err
}

// RemoveMetal 按用户名移除勋章
func (s *FingerService) RemoveMetal(ctx context.Context, userName, metalName string) error {
	_, err := s.post(ctx, "user/edit/remove-metal", fingerBody{
		"userName": userName,
		"name":     metalName,
	})
	return err
}

// RemoveMetalByUserId 按用户 ID 移除勋章
func (s *FingerService) RemoveMetalByUserId(ctx context.Context, userId, metalName string) error {
	_, err := s.post(ctx, "user/edit/remove-metal-by-user-id", fingerBody{
		"userId": userId,
		"name":   metalName,
	})
	return err
}

// QueryItems 查询用户背包
func (s *FingerService) QueryItems(ctx context.Context, userName string) (*models.UserBag, error) {
	raw, err := s.post(ctx, "user/query/items", fingerBody{"userName": userName})
	if err != nil {
		return nil, err
	}
	var rsp struct {
		Data models.UserBag `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return &rsp.Data, nil
}

// EditItems 调整用户背包物品数量，sum 可为负
func (s *FingerService) EditItems(ctx context.Context, userName string, item models.UserBagItem, sum int) error {
	_, err := s.post(ctx, "user/edit/items", fingerBody{
		"userName": userName,
		"item":     item,
		"sum":      sum,
	})
	return err
}

// EditPoints 调整用户积分，point 可为负
func (s *FingerService) EditPoints(ctx context.Context, userName string, point int, memo string) error {
	_, err := s.post(ctx, "user/edit/points", fingerBody{
		"userName": userName,
		"point":    point,
		"memo":     memo,
	})
	return err
}

// Liveness 查询用户活跃度
func (s *FingerService) Liveness(ctx context.Context, userName string) (float64, error) {
	raw, err := s.post(ctx, "user/liveness", fingerBody{"userName": userName})
	if err != nil {
		return 0, err
	}
	var rsp struct {
		Liveness float64 `json:"liveness"`
	}
	if err := decode(raw, &rsp); err != nil {
		return 0, err
	}
	return rsp.Liveness, nil
}

// RewardLiveness 代领昨日活跃奖励，返回获得的积分
func (s *FingerService) RewardLiveness(ctx context.Context, userName string) (float64, error) {
	raw, err := s.post(ctx, "activity/yesterday-liveness-reward-api", fingerBody{"userName": userName})
	if err != nil {
		return 0, err
	}
	var rsp struct {
		Sum float64 `json:"sum"`
	}
	if err := decode(raw, &rsp); err != nil {
		return 0, err
	}
	return rsp.Sum, nil
}
