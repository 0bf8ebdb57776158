/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-22 00:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-01-09 22:03:28
 * @FilePath: \go-fishpi\logger_test.go
 * @Description: go-fishpi 日志测试
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"testing"

	"github.com/kamalyes/go-logger"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultFishPiLogger(t *testing.T) {
	l := NewDefaultFishPiLogger()
	assert.NotNil(t, l)

	// 测试基本日志方法
	l.Info("测试信息日志")
	l.Debug("测试调试日志")
	l.Warn("测试警告日志")

	// 测试键值对日志
	l.InfoKV("测试键值对日志", "key1", "value1", "key2", 123)
}

func TestNoOpLogger(t *testing.T) {
	l := NewNoOpLogger()
	assert.NotNil(t, l)

	// 所有方法都应该正常调用但不产生输出
	l.Info("这条消息不应该输出")
	l.WarnKV("这条消息不应该输出", "key", "value")
}

func TestNewFishPiLoggerWithConfig(t *testing.T) {
	config := logger.NewLogger().
		WithLevel(logger.DEBUG).
		WithPrefix("[TEST] ").
		WithColorful(false)

	l := NewFishPiLogger(config)
	assert.NotNil(t, l)
	l.Debug("自定义配置的调试日志")
}

func TestSetDefaultLogger(t *testing.T) {
	originalLogger := DefaultLogger
	defer SetDefaultLogger(originalLogger)

	SetDefaultLogger(NoOpLoggerInstance)
	assert.Equal(t, NoOpLoggerInstance, DefaultLogger)
}
