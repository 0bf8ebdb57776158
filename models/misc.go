/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-22 11:30:44
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-26 09:21:17
 * @FilePath: \go-fishpi\models\misc.go
 * @Description: 登录、注册、上传、举报等杂项数据模型
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package models

import (
	"strings"
)

// LoginData 登录参数，密码为 md5 散列
type LoginData struct {
	NameOrEmail string `json:"nameOrEmail"` // 用户名或邮箱
	Passwd      string `json:"userPassword"` // 密码 md5 散列
	MfaCode     string `json:"mfaCode"`     // 两步验证码，未开启传空
}

// PreRegisterInfo 预注册参数
type PreRegisterInfo struct {
	Name       string `json:"userName"`   // 用户名
	Phone      string `json:"userPhone"`  // 手机号
	InviteCode string `json:"invitecode"` // 邀请码，可为空
	Captcha    string `json:"captcha"`    // 图形验证码
}

// RegisterInfo 注册参数
type RegisterInfo struct {
	AppRole  AppRole `json:"userAppRole"`  // 应用角色
	Password string  `json:"userPassword"` // 密码 md5 散列
	UserId   string  `json:"userId"`       // 预注册返回的用户 ID
	Referral string  `json:"r,omitempty"`  // 邀请人用户名
}

// FileInfo 上传成功的文件
type FileInfo struct {
	Filename string // 原始文件名
	URL      string // 访问地址
}

// UploadResult 上传结果
type UploadResult struct {
	ErrFiles []string          `json:"errFiles"` // 上传失败的文件名
	SuccMap  map[string]string `json:"succMap"`  // 文件名到访问地址
}

// Files 把 succMap 展开为文件列表
func (r *UploadResult) Files() []FileInfo {
	files := make([]FileInfo, 0, len(r.SuccMap))
	for name, url := range r.SuccMap {
		files = append(files, FileInfo{Filename: name, URL: url})
	}
	return files
}

// UserLite 用户名自动完成项
type UserLite struct {
	Name     string `json:"userName"`     // 用户名
	Nickname string `json:"userNickname"` // 昵称
}

// UserVipInfo 会员信息
type UserVipInfo struct {
	OId         string `json:"oId"`         // 记录 ID
	UserId      string `json:"userId"`      // 用户 ID
	State       int    `json:"state"`       // 状态，1 为生效
	LvCode      string `json:"lvCode"`      // 会员等级代码
	JointVip    bool   `json:"jointVip"`    // 联合会员
	Color       string `json:"color"`       // 昵称颜色
	Underline   bool   `json:"underline"`   // 昵称下划线
	Metal       bool   `json:"metal"`       // 专属勋章
	AutoCheckin bool   `json:"autoCheckin"` // 自动签到
	Bold        bool   `json:"bold"`        // 昵称加粗
	ExpiresAt   int64  `json:"expiresAt"`   // 到期时间戳(毫秒)
	CreatedAt   int64  `json:"createdAt"`   // 开通时间戳(毫秒)
	UpdatedAt   int64  `json:"updatedAt"`   // 更新时间戳(毫秒)
}

// VipName 把等级代码转成展示名称
func (v *UserVipInfo) VipName() string {
	name := v.LvCode
	name = strings.ReplaceAll(name, "_YEAR", "(包年)")
	name = strings.ReplaceAll(name, "_MONTH", "(包月)")
	return name
}

// ReportDataType 举报对象类别
type ReportDataType int

const (
	ReportDataArticle  ReportDataType = 0 // 帖子
	ReportDataComment  ReportDataType = 1 // 回帖
	ReportDataUser     ReportDataType = 2 // 用户
	ReportDataChatroom ReportDataType = 3 // 聊天室消息
)

// ReportType 举报原因类别
type ReportType int

const (
	ReportAdvertise       ReportType = 0 // 垃圾广告
	ReportPornographic    ReportType = 1 // 色情内容
	ReportViolation       ReportType = 2 // 违规内容
	ReportInfringement    ReportType = 3 // 侵犯版权
	ReportPersonalAttack  ReportType = 4 // 人身攻击
	ReportPosingAccount   ReportType = 5 // 冒充他人
	ReportSpam            ReportType = 6 // 垃圾信息
	ReportLeakPrivacy     ReportType = 7 // 泄露隐私
	ReportOther           ReportType = 8 // 其他
)

// Report 举报参数
type Report struct {
	DataId   string         `json:"reportDataId"`   // 举报对象 ID
	DataType ReportDataType `json:"reportDataType"` // 对象类别
	Type     ReportType     `json:"reportType"`     // 原因类别
	Memo     string         `json:"reportMemo"`     // 补充说明
}

// Log 操作日志条目
type Log struct {
	OId      string `json:"oId"`    // 日志 ID
	Time     string `json:"key1"`   // 操作时间
	IP       string `json:"key2"`   // 操作 IP
	Key3     string `json:"key3"`   // 附加键
	Data     string `json:"data"`   // 操作内容
	IsPublic bool   `json:"public"` // 是否公开
	Type     string `json:"type"`   // 日志类别
}

// ResponseResult 通用操作结果
type ResponseResult struct {
	Success bool   // code 为 0 即成功
	Msg     string // 提示信息
}
