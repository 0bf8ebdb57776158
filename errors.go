/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-18 09:12:36
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-20 10:08:41
 * @FilePath: \go-fishpi\errors.go
 * @Description: FishPi 客户端错误定义 - 基于errorx.BaseError模式
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"github.com/kamalyes/go-toolbox/pkg/errorx"
)

// 错误类型定义，基于errorx.ErrorType
type ErrorType = errorx.ErrorType

// FishPi 客户端错误码常量定义
// 使用 82xxx 区间，避免与其他包冲突
const (
	// 连接相关错误 (82000-82099)
	ErrTypeDialFailed       ErrorType = 82001 // WebSocket 握手失败
	ErrTypeNotConnected     ErrorType = 82002 // 尚未建立连接
	ErrTypeAlreadyConnected ErrorType = 82003 // 连接已存在
	ErrTypeWriteFailed      ErrorType = 82004 // 写入消息失败
	ErrTypeNodeUnavailable  ErrorType = 82005 // 聊天室节点不可用

	// HTTP 请求错误 (82100-82199)
	ErrTypeRequestFailed  ErrorType = 82101 // HTTP 请求失败
	ErrTypeBadStatus      ErrorType = 82102 // HTTP 状态码异常
	ErrTypeFileNotFound   ErrorType = 82103 // 上传文件不存在
	ErrTypeUploadTooLarge ErrorType = 82104 // 上传文件过大

	// 接口响应错误 (82200-82299)
	ErrTypeAPIFailure     ErrorType = 82201 // 接口返回业务失败
	ErrTypeAPIKeyMissing  ErrorType = 82202 // apiKey 缺失
	ErrTypeLoginFailed    ErrorType = 82203 // 登录失败
	ErrTypeRegisterFailed ErrorType = 82204 // 注册失败

	// 解析与序列化错误 (82300-82399)
	ErrTypeParseFailed     ErrorType = 82301 // 响应解析失败
	ErrTypeSerializeFailed ErrorType = 82302 // 请求序列化失败
	ErrTypeUnknownKind     ErrorType = 82303 // 未知的消息类别
	ErrTypeBadPayload      ErrorType = 82304 // 消息负载格式异常
)

// init 初始化所有错误类型注册
// 注意：在运行多个测试包时，可能会看到 "ErrorType XXX is already registered" 的警告信息
// 这是正常现象，errorx包内部会忽略重复注册
func init() {
	// 注册连接相关错误
	errorx.RegisterError(ErrTypeDialFailed, "websocket dial failed: %v")
	errorx.RegisterError(ErrTypeNotConnected, "not connected")
	errorx.RegisterError(ErrTypeAlreadyConnected, "already connected")
	errorx.RegisterError(ErrTypeWriteFailed, "write message failed: %v")
	errorx.RegisterError(ErrTypeNodeUnavailable, "chatroom node unavailable: %v")

	// 注册 HTTP 请求错误
	errorx.RegisterError(ErrTypeRequestFailed, "request failed: %v")
	errorx.RegisterError(ErrTypeBadStatus, "unexpected http status: %d")
	errorx.RegisterError(ErrTypeFileNotFound, "file not found: %s")
	errorx.RegisterError(ErrTypeUploadTooLarge, "upload file too large: %s")

	// 注册接口响应错误
	errorx.RegisterError(ErrTypeAPIFailure, "api failure: %s")
	errorx.RegisterError(ErrTypeAPIKeyMissing, "api key missing")
	errorx.RegisterError(ErrTypeLoginFailed, "login failed: %s")
	errorx.RegisterError(ErrTypeRegisterFailed, "register failed: %s")

	// 注册解析与序列化错误
	errorx.RegisterError(ErrTypeParseFailed, "parse failed: %v")
	errorx.RegisterError(ErrTypeSerializeFailed, "serialize failed: %v")
	errorx.RegisterError(ErrTypeUnknownKind, "unknown message kind: %s")
	errorx.RegisterError(ErrTypeBadPayload, "bad message payload: %v")
}

// 常用错误变量
var (
	ErrNotConnected     = errorx.NewError(ErrTypeNotConnected)
	ErrAlreadyConnected = errorx.NewError(ErrTypeAlreadyConnected)
	ErrAPIKeyMissing    = errorx.NewError(ErrTypeAPIKeyMissing)
)

// errType 提取 errorx 错误类型，非 errorx 错误返回 0
func errType(err error) ErrorType {
	if err == nil {
		return 0
	}
	if errxErr, ok := err.(interface{ Type() ErrorType }); ok {
		return errxErr.Type()
	}
	return 0
}

// IsConnectionError 判断是否为连接相关错误
func IsConnectionError(err error) bool {
	t := errType(err)
	return t >= 82000 && t < 82100
}

// IsRequestError 判断是否为 HTTP 请求错误
func IsRequestError(err error) bool {
	t := errType(err)
	return t >= 82100 && t < 82200
}

// IsAPIError 判断是否为接口业务失败错误
func IsAPIError(err error) bool {
	t := errType(err)
	return t >= 82200 && t < 82300
}

// IsParseError 判断是否为解析或序列化错误
func IsParseError(err error) bool {
	t := errType(err)
	return t >= 82300 && t < 82400
}
