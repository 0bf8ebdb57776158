/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-18 09:12:36
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-01-09 21:40:12
 * @FilePath: \go-fishpi\logger.go
 * @Description: go-fishpi 日志接口，直接复用 go-logger
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"github.com/kamalyes/go-logger"
)

// FishPiLogger 直接使用 go-logger.ILogger
type FishPiLogger = logger.ILogger

// NewFishPiLogger 创建新的日志器，基于 go-logger
func NewFishPiLogger(config *logger.Logger) FishPiLogger {
	return config
}

// NewDefaultFishPiLogger 创建默认配置的日志器
func NewDefaultFishPiLogger() FishPiLogger {
	config := logger.NewLogger().
		WithLevel(logger.INFO).
		WithPrefix("[FISHPI] ").
		WithShowCaller(false).
		WithColorful(true).
		WithTimeFormat("2006-01-02 15:04:05")

	return config
}

// NewNoOpLogger 创建空日志实例
func NewNoOpLogger() FishPiLogger {
	return logger.NewEmptyLogger()
}

// 全局日志器
var (
	// DefaultLogger 默认日志器实例
	DefaultLogger FishPiLogger = NewDefaultFishPiLogger()

	// NoOpLoggerInstance 空日志器实例
	NoOpLoggerInstance FishPiLogger = NewNoOpLogger()
)

// SetDefaultLogger 设置默认日志器
func SetDefaultLogger(l FishPiLogger) {
	DefaultLogger = l
}
