/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-29 09:10:02
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-27 15:36:50
 * @FilePath: \go-fishpi\fishpi.go
 * @Description: FishPi 客户端门面，聚合全部子客户端并共享凭据
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/kamalyes/go-fishpi/models"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
	"github.com/kamalyes/go-toolbox/pkg/mathx"
)

// FishPi 客户端门面
// 全部子客户端共享同一个请求核心，SetAPIKey 对所有子客户端同时生效
type FishPi struct {
	core *core

	User       *UserService       // 用户
	ChatRoom   *ChatRoomService   // 聊天室
	Chat       *ChatService       // 私聊
	Notice     *NoticeService     // 通知
	Article    *ArticleService    // 帖子
	Comment    *CommentService    // 回帖
	Breezemoon *BreezemoonService // 清风明月
	RedPacket  *RedPacketService  // 红包
}

// New 创建客户端，config 为 nil 时使用默认配置
func New(apiKey string, config *Config) *FishPi {
	c := newCore(apiKey, config)
	chatroom := newChatRoomService(c)
	return &FishPi{
		core:       c,
		User:       newUserService(c),
		ChatRoom:   chatroom,
		Chat:       newChatService(c),
		Notice:     newNoticeService(c),
		Article:    newArticleService(c),
		Comment:    newCommentService(c),
		Breezemoon: newBreezemoonService(c),
		RedPacket:  newRedPacketService(c, chatroom),
	}
}

// APIKey 返回当前凭据
func (f *FishPi) APIKey() string {
	return f.core.APIKey()
}

// SetAPIKey 更新凭据，对全部子客户端同时生效
func (f *FishPi) SetAPIKey(key string) {
	f.core.SetAPIKey(key)
}

// IsLoggedIn 是否已持有凭据
func (f *FishPi) IsLoggedIn() bool {
	return f.core.APIKey() != ""
}

// Finger 创建金手指客户端，goldFingerKey 独立于普通凭据
func (f *FishPi) Finger(goldFingerKey string) *FingerService {
	return newFingerService(f.core, goldFingerKey)
}

// HashPassword 计算密码的 md5 散列，登录与注册接口要求散列后传输
func HashPassword(passwd string) string {
	sum := md5.Sum([]byte(passwd))
	return hex.EncodeToString(sum[:])
}

// Login 登录并把返回的凭据写入全部子客户端
// passwd 为明文密码，mfaCode 未开启两步验证时传空
func (f *FishPi) Login(ctx context.Context, nameOrEmail, passwd, mfaCode string) (string, error) {
	body := models.LoginData{
		NameOrEmail: nameOrEmail,
		Passwd:      HashPassword(passwd),
		MfaCode:     mfaCode,
	}
	raw, err := f.core.post(ctx, "api/getKey", body)
	if err != nil {
		return "", err
	}
	var rsp struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
		Key  string `json:"Key"`
	}
	if err := decode(raw, &rsp); err != nil {
		return "", err
	}
	if rsp.Code != 0 {
		return "", errorx.NewError(ErrTypeLoginFailed, rsp.Msg)
	}
	key := strings.TrimSpace(rsp.Key)
	f.SetAPIKey(key)
	return key, nil
}

// PreRegister 预注册，触发短信验证码
func (f *FishPi) PreRegister(ctx context.Context, info *models.PreRegisterInfo) error {
	raw, err := f.core.post(ctx, "register", info)
	if err != nil {
		return err
	}
	if err := checkCode(raw); err != nil {
		return errorx.NewError(ErrTypeRegisterFailed, err.Error())
	}
	return nil
}

// Verify 校验短信验证码，返回预注册的用户 ID
func (f *FishPi) Verify(ctx context.Context, code string) (string, error) {
	raw, err := f.core.get(ctx, "verify?code="+url.QueryEscape(code))
	if err != nil {
		return "", err
	}
	if err := checkCode(raw); err != nil {
		return "", errorx.NewError(ErrTypeRegisterFailed, err.Error())
	}
	var rsp struct {
		UserId string `json:"userId"`
	}
	if err := decode(raw, &rsp); err != nil {
		return "", err
	}
	return rsp.UserId, nil
}

// Register 完成注册，密码在此处散列
func (f *FishPi) Register(ctx context.Context, info *models.RegisterInfo, passwd string) error {
	info.Password = HashPassword(passwd)
	path := mathx.IF(info.Referral == "", "register2", "register2?r="+url.QueryEscape(info.Referral))
	raw, err := f.core.post(ctx, path, info)
	if err != nil {
		return err
	}
	if err := checkCode(raw); err != nil {
		return errorx.NewError(ErrTypeRegisterFailed, err.Error())
	}
	return nil
}

// GetUser 获取指定用户的公开信息
func (f *FishPi) GetUser(ctx context.Context, userName string) (*models.UserInfo, error) {
	raw, err := f.core.get(ctx, f.core.withKey("user/"+url.PathEscape(userName)))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var info models.UserInfo
	if err := decode(raw, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Names 用户名自动完成
func (f *FishPi) Names(ctx context.Context, name string) ([]models.UserLite, error) {
	body := struct {
		Name string `json:"name"`
	}{name}
	raw, err := f.core.post(ctx, "users/names", body)
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data []models.UserLite `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return rsp.Data, nil
}

// RecentRegister 获取最近注册的用户
func (f *FishPi) RecentRegister(ctx context.Context) ([]models.UserLite, error) {
	raw, err := f.core.get(ctx, "api/user/recentReg")
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data []models.UserLite `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return rsp.Data, nil
}

// VipInfo 获取会员信息
// 线上把外观配置折叠在 configJson 字符串里，解码时合并展开
func (f *FishPi) VipInfo(ctx context.Context, userId string) (*models.UserVipInfo, error) {
	raw, err := f.core.get(ctx, "api/membership/"+url.PathEscape(userId))
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data struct {
			models.UserVipInfo
			ConfigJson string `json:"configJson"`
		} `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	info := rsp.Data.UserVipInfo
	if rsp.Data.ConfigJson != "" {
		if err := decode([]byte(rsp.Data.ConfigJson), &info); err != nil {
			return nil, err
		}
	}
	return &info, nil
}

// Report 举报内容
func (f *FishPi) Report(ctx context.Context, report *models.Report) error {
	body := struct {
		models.Report
		APIKey string `json:"apiKey"`
	}{*report, f.core.APIKey()}
	raw, err := f.core.post(ctx, "report", body)
	if err != nil {
		return err
	}
	return checkCode(raw)
}

// Logs 分页获取公开操作日志
func (f *FishPi) Logs(ctx context.Context, page, pageSize int) ([]models.Log, error) {
	path := fmt.Sprintf("logs/more?page=%d&pageSize=%d",
		mathx.IF(page < 1, 1, page), mathx.IF(pageSize < 1, 30, pageSize))
	raw, err := f.core.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data []models.Log `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return rsp.Data, nil
}

// Upload 上传文件，返回成功与失败明细
func (f *FishPi) Upload(ctx context.Context, files []string) (*models.UploadResult, error) {
	if err := f.core.requireKey(); err != nil {
		return nil, err
	}
	raw, err := f.core.uploadFiles(ctx, "upload", files)
	if err != nil {
		return nil, err
	}
	if err := checkCode(raw); err != nil {
		return nil, err
	}
	var rsp struct {
		Data models.UploadResult `json:"data"`
	}
	if err := decode(raw, &rsp); err != nil {
		return nil, err
	}
	return &rsp.Data, nil
}
