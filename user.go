/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-26 09:15:27
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-27 10:09:35
 * @FilePath: \go-fishpi\user.go
 * @Description: 用户客户端，个人信息、活跃度、积分与关注操作
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/kamalyes/go-fishpi/models"
)

// UserService 用户客户端
type UserService struct {
	core *core
}

// newUserService 创建用户客户端
func newUserService(c *core) *UserService {
	return &UserService{core: c}
}

// Info 获取当前登录用户信息
// 站点偶尔把 data 整体编码为字符串，需二次解析
func (s *UserService) Info(ctx context.Context) (*models.UserInfo, error) {
	raw, err := s.core.get(ctx, s.core.withKey("api/user"))
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

	payload := rsp.Data
	if strings.HasPrefix(strings.TrimSpace(string(payload)), "\"") {
		var embedded string
		if err := decode(payload, &embedded); err != nil {
			return nil, err
		}
		payload = []byte(embedded)
	}
	var info models.UserInfo
	if err := decode(payload, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Emotions 获取常用表情列表
// 线上 data 为单键对象数组，取每项的首个值
func (s *UserService) Emotions(ctx context.Context) ([]string, error) {
	raw, err := s.core.get(ctx, s.core.withKey("users/emotions"))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data []map[string]string `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rsp.Data))
	for _, item := range rsp.Data {
		for _, v := range item {
			out = append(out, v)
			break
		}
	}
	return out, nil
}

// Liveness 获取当前活跃度
func (s *UserService) Liveness(ctx context.Context) (float64, error) {
	raw, err := s.core.get(ctx, s.core.withKey("user/liveness"))
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

// IsCheckin 查询今日是否已签到
func (s *UserService) IsCheckin(ctx context.Context) (bool, error) {
	raw, err := s.core.get(ctx, s.core.withKey("user/isCheckin"))
	if err != nil {
		return false, err
	}
	var rsp struct {
		Checkedin bool `json:"isCheckin"`
	}
	if err := decode(raw, &rsp); err != nil {
		return false, err
	}
	return rsp.Checkedin, nil
}

// IsCollectedLiveness 查询昨日活跃奖励是否已领取
func (s *UserService) IsCollectedLiveness(ctx context.Context) (bool, error) {
	raw, err := s.core.get(ctx, s.core.withKey("api/activity/is-collected-liveness"))
	if err != nil {
		return false, err
	}
	var rsp struct {
		Rewarded bool `json:"isCollectedLiveness"`
	}
	if err := decode(raw, &rsp); err != nil {
		return false, err
	}
	return rsp.Rewarded, nil
}

// RewardLiveness 领取昨日活跃奖励，返回获得的积分
func (s *UserService) RewardLiveness(ctx context.Context) (int, error) {
	raw, err := s.core.get(ctx, s.core.withKey("activity/yesterday-liveness-reward-api"))
	if err != nil {
		return 0, err
	}
	var rsp struct {
		Sum int `json:"sum"`
	}
	if err := decode(raw, &rsp); err != nil {
		return 0, err
	}
	return rsp.Sum, nil
}

// Transfer 向指定用户转账积分
func (s *UserService) Transfer(ctx context.Context, userName string, amount int, memo string) error {
	body := struct {
		UserName string `json:"userName"`
		Amount   int    `json:"amount"`
		Memo     string `json:"memo"`
		APIKey   string `json:"apiKey"`
	}{userName, amount, memo, s.core.APIKey()}
	raw, err := s.core.post(ctx, "point/transfer", body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// Follow 关注用户
func (s *UserService) Follow(ctx context.Context, userOId string) error {
	return s.followAction(ctx, "follow/user", userOId)
}

// Unfollow 取消关注用户
func (s *UserService) Unfollow(ctx context.Context, userOId string) error {
	return s.followAction(ctx, "unfollow/user", userOId)
}

// followAction 关注/取关公共实现
func (s *UserService) followAction(ctx context.Context, path, followingId string) error {
	body := struct {
		FollowingId string `json:"followingId"`
		APIKey      string `json:"apiKey"`
	}{followingId, s.core.APIKey()}
	raw, err := s.core.post(ctx, path, body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// UpdateAvatar 更新头像地址
func (s *UserService) UpdateAvatar(ctx context.Context, avatarURL string) error {
	body := struct {
		AvatarURL string `json:"userAvatarURL"`
		APIKey    string `json:"apiKey"`
	}{avatarURL, s.core.APIKey()}
	raw, err := s.core.post(ctx, "api/settings/avatar", body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// UpdateProfiles 更新用户资料
func (s *UserService) UpdateProfiles(ctx context.Context, profiles *models.UserProfiles) error {
	body := struct {
		models.UserProfiles
		APIKey string `json:"apiKey"`
	}{*profiles, s.core.APIKey()}
	raw, err := s.core.post(ctx, "api/settings/profiles", body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// GetPoints 查询指定用户的积分
func (s *UserService) GetPoints(ctx context.Context, userName string) (*models.UserPoint, error) {
	raw, err := s.core.get(ctx, "user/"+userName+"/point")
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data models.UserPoint `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return &rsp.Data, nil
}
