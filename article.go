/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-27 09:08:12
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-27 11:46:29
 * @FilePath: \go-fishpi\article.go
 * @Description: 帖子客户端，发布、列表、投票与帖子推送通道
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

// VoteDirection 投票方向
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"   // 点赞
	VoteDown VoteDirection = "down" // 点踩
)

// ArticleService 帖子客户端
type ArticleService struct {
	core *core
}

// newArticleService 创建帖子客户端
func newArticleService(c *core) *ArticleService {
	return &ArticleService{core: c}
}

// Post 发布帖子，返回帖子 ID
func (s *ArticleService) Post(ctx context.Context, article *models.ArticlePost) (string, error) {
	body := struct {
		models.ArticlePost
		APIKey string `json:"apiKey"`
	}{*article, s.core.APIKey()}
	raw, err := s.core.post(ctx, "article", body)
	if err != nil {
		return "", err
	}
	if err := checkCode(raw); err != nil {
		return "", err
	}
	var rsp struct {
		ArticleId string `json:"articleId"`
	}
	if err := decode(raw, &rsp); err != nil {
		return "", err
	}
	return rsp.ArticleId, nil
}

// Update 更新帖子，返回帖子 ID
func (s *ArticleService) Update(ctx context.Context, oId string, article *models.ArticlePost) (string, error) {
	body := struct {
		models.ArticlePost
		APIKey string `json:"apiKey"`
	}{*article, s.core.APIKey()}
	raw, err := s.core.post(ctx, "article/"+oId, body)
	if err != nil {
		return "", err
	}
	if err := checkCode(raw); err != nil {
		return "", err
	}
	var rsp struct {
		ArticleId string `json:"articleId"`
	}
	if err := decode(raw, &rsp); err != nil {
		return "", err
	}
	return rsp.ArticleId, nil
}

// List 获取帖子列表，tag 为空时按站点维度查询
func (s *ArticleService) List(ctx context.Context, listType models.ArticleListType, tag string, page, size int) (*models.ArticleList, error) {
	base := "api/articles/recent" + string(listType)
	if tag != "" {
		base = fmt.Sprintf("api/articles/tag/%s%s", url.PathEscape(tag), listType)
	}
	return s.fetchList(ctx, base, page, size)
}

// ListByUser 获取指定用户的帖子列表
func (s *ArticleService) ListByUser(ctx context.Context, userName string, page, size int) (*models.ArticleList, error) {
	return s.fetchList(ctx, "api/articles/user/"+url.PathEscape(userName), page, size)
}

// fetchList 帖子列表公共实现
func (s *ArticleService) fetchList(ctx context.Context, base string, page, size int) (*models.ArticleList, error) {
	path := fmt.Sprintf("%s?p=%d&size=%d", base, mathx.IF(page < 1, 1, page), mathx.IF(size < 1, 20, size))
	raw, err := s.core.get(ctx, s.core.withKey(path))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data models.ArticleList `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return &rsp.Data, nil
}

// Detail 获取帖子详情，p 为回帖页码
func (s *ArticleService) Detail(ctx context.Context, oId string, p int) (*models.ArticleDetail, error) {
	path := fmt.Sprintf("api/article/%s?p=%d", oId, mathx.IF(p < 1, 1, p))
	raw, err := s.core.get(ctx, s.core.withKey(path))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data struct {
			Article    models.ArticleDetail `json:"article"`
			Pagination models.Pagination    `json:"pagination"`
		} `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return &rsp.Data.Article, nil
}

// Vote 给帖子投票，返回投票后是否处于点赞状态
func (s *ArticleService) Vote(ctx context.Context, oId string, direction VoteDirection) (bool, error) {
	body := struct {
		DataId string `json:"dataId"`
		APIKey string `json:"apiKey"`
	}{oId, s.core.APIKey()}
	raw, err := s.core.post(ctx, fmt.Sprintf("vote/%s/article", direction), body)
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

// Thank 感谢帖子
func (s *ArticleService) Thank(ctx context.Context, oId string) error {
	body := struct {
		ArticleId string `json:"articleId"`
		APIKey    string `json:"apiKey"`
	}{oId, s.core.APIKey()}
	raw, err := s.core.post(ctx, "article/thank?articleId="+oId, body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// Follow 收藏帖子
func (s *ArticleService) Follow(ctx context.Context, oId string) error {
	return s.followAction(ctx, "follow/article", oId)
}

// Watch 关注帖子
func (s *ArticleService) Watch(ctx context.Context, oId string) error {
	return s.followAction(ctx, "follow/article-watch", oId)
}

// followAction 收藏/关注公共实现
func (s *ArticleService) followAction(ctx context.Context, path, followingId string) error {
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

// Reward 打赏帖子
func (s *ArticleService) Reward(ctx context.Context, oId string) error {
	body := struct {
		APIKey string `json:"apiKey"`
	}{s.core.APIKey()}
	raw, err := s.core.post(ctx, "article/reward?articleId="+oId, body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// Heat 查询帖子当前热度
func (s *ArticleService) Heat(ctx context.Context, oId string) (int, error) {
	raw, err := s.core.get(ctx, s.core.withKey("api/article/heat/"+oId))
	if err != nil {
		return 0, err
	}
	var rsp struct {
		Heat int `json:"articleHeat"`
	}
	if err := decode(raw, &rsp); err != nil {
		return 0, err
	}
	return rsp.Heat, nil
}

// AddListener 连接帖子推送通道，返回底层连接由调用方管理
func (s *ArticleService) AddListener(ctx context.Context, oId string, articleType models.ArticleType, handler MessageHandler) (*WebSocket, error) {
	channel := fmt.Sprintf("%s&articleId=%s&articleType=%d",
		s.core.withKey(s.core.wsURL("article-channel")), oId, articleType)
	ws := NewWebSocket(channel).WithDialer(s.core.dialer()).WithLogger(s.core.logger)
	if err := ws.Dial(ctx, handler); err != nil {
		return nil, err
	}
	return ws, nil
}
