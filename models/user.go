/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-20 10:14:52
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-24 11:20:33
 * @FilePath: \go-fishpi\models\user.go
 * @Description: 用户与勋章数据模型
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package models

import (
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
)

// AppRole 用户应用角色
type AppRole string

const (
	AppRoleHacker AppRole = "0" // 黑客
	AppRolePainter AppRole = "1" // 画家
)

// MetalAttr 勋章属性，线上以查询串形式编码
type MetalAttr struct {
	URL       string // 图标地址
	Backcolor string // 背景色
	Fontcolor string // 字体色
	Ver       string // 版本
	Scale     string // 缩放
}

// ParseMetalAttr 解析 "url=...&backcolor=..." 形式的勋章属性
func ParseMetalAttr(raw string) MetalAttr {
	attr := MetalAttr{}
	for _, pair := range strings.Split(raw, "&") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "url":
			attr.URL = kv[1]
		case "backcolor":
			attr.Backcolor = kv[1]
		case "fontcolor":
			attr.Fontcolor = kv[1]
		case "ver":
			attr.Ver = kv[1]
		case "scale":
			attr.Scale = kv[1]
		}
	}
	return attr
}

// String 还原为查询串形式
func (a MetalAttr) String() string {
	parts := make([]string, 0, 5)
	appendPart := func(key, value string) {
		if value != "" {
			parts = append(parts, key+"="+value)
		}
	}
	appendPart("url", a.URL)
	appendPart("backcolor", a.Backcolor)
	appendPart("fontcolor", a.Fontcolor)
	appendPart("ver", a.Ver)
	appendPart("scale", a.Scale)
	return strings.Join(parts, "&")
}

// UnmarshalJSON 实现 json.Unmarshaler，线上为字符串字段
func (a *MetalAttr) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = ParseMetalAttr(raw)
	return nil
}

// MarshalJSON 实现 json.Marshaler
func (a MetalAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// MetalBase 勋章基础信息
type MetalBase struct {
	Attr        MetalAttr `json:"attr"`        // 勋章属性
	Name        string    `json:"name"`        // 勋章名称
	Description string    `json:"description"` // 勋章描述
	Data        string    `json:"data"`        // 附加数据
}

// Metal 勋章
type Metal struct {
	MetalBase
	Enabled bool   `json:"enabled"` // 是否佩戴
	URL     string `json:"-"`       // 渲染地址(含名称)
	Icon    string `json:"-"`       // 图标渲染地址
}

// render 填充勋章渲染地址
func (m *Metal) render() {
	query := m.Attr.String()
	m.URL = "https://fishpi.cn/gen?txt=" + url.QueryEscape(m.Name) + "&" + query
	m.Icon = "https://fishpi.cn/gen?txt=&" + query
}

// ParseMetals 解析 sysMetal 字段
// 线上把勋章列表整体编码为字符串 {"list":[...]}，空串视为无勋章
func ParseMetals(raw string) ([]Metal, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var wrapper struct {
		List []Metal `json:"list"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		return nil, err
	}
	for i := range wrapper.List {
		wrapper.List[i].render()
	}
	return wrapper.List, nil
}

// MetalList 勋章列表字段
// 兼容字符串内嵌 JSON 与直接数组两种形式
type MetalList []Metal

// UnmarshalJSON 实现 json.Unmarshaler
func (l *MetalList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var embedded string
		if err := json.Unmarshal(data, &embedded); err != nil {
			return err
		}
		metals, err := ParseMetals(embedded)
		if err != nil {
			return err
		}
		*l = metals
		return nil
	}
	var metals []Metal
	if err := json.Unmarshal(data, &metals); err != nil {
		return err
	}
	for i := range metals {
		metals[i].render()
	}
	*l = metals
	return nil
}

// UserInfo 用户信息
type UserInfo struct {
	OId           string    `json:"oId"`                // 用户 ID
	UserNo        string    `json:"userNo"`             // 注册序号
	Name          string    `json:"userName"`           // 用户名
	Nickname      string    `json:"userNickname"`       // 昵称
	URL           string    `json:"userURL"`            // 主页地址
	City          string    `json:"userCity"`           // 所在城市
	Intro         string    `json:"userIntro"`          // 简介
	Online        bool      `json:"userOnlineFlag"`     // 是否在线
	Points        int       `json:"userPoint"`          // 积分
	Role          string    `json:"userRole"`           // 角色组
	AppRole       AppRole   `json:"userAppRole"`        // 应用角色
	Avatar        string    `json:"userAvatarURL"`      // 头像地址
	CardBg        string    `json:"cardBg"`             // 卡片背景
	Following     int       `json:"followingUserCount"` // 关注数
	Follower      int       `json:"followerCount"`      // 粉丝数
	OnlineMinutes int       `json:"onlineMinute"`       // 在线分钟数
	CanFollow     string    `json:"canFollow"`          // 是否可关注 hide/no/yes
	SysMetal      MetalList `json:"sysMetal"`           // 勋章列表
}

// AtUser @用户自动完成项
type AtUser struct {
	Name          string `json:"userName"`          // 用户名
	Avatar        string `json:"userAvatarURL"`     // 头像地址
	NameLowerCase string `json:"userNameLowerCase"` // 用户名小写
}

// UserPoint 用户积分
type UserPoint struct {
	Name  string `json:"userName"`  // 用户名
	Point int    `json:"userPoint"` // 积分
}

// UserProfiles 用户资料更新参数
type UserProfiles struct {
	Nickname string `json:"userNickname"` // 昵称
	URL      string `json:"userURL"`      // 主页地址
	Intro    string `json:"userIntro"`    // 简介
	Tag      string `json:"userTag"`      // 自定义标签
}
