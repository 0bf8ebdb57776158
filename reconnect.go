/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-12-01 09:42:36
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-27 16:20:14
 * @FilePath: \go-fishpi\reconnect.go
 * @Description: 指数退避重连辅助器，叠加在会话客户端的 Connect 之上
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"time"

	"github.com/jpillora/backoff"
)

// ConnectFunc 单次连接尝试
type ConnectFunc func(ctx context.Context) error

// Reconnector 指数退避重连辅助器
// 会话客户端本身不做自动重连，由调用方按需叠加本辅助器
type Reconnector struct {
	b      *backoff.Backoff
	logger FishPiLogger
}

// NewReconnector 按配置创建重连辅助器
func NewReconnector(config *Config) *Reconnector {
	if config == nil {
		config = NewDefaultConfig()
	}
	return &Reconnector{
		b: &backoff.Backoff{
			Min:    config.MinRecTime,
			Max:    config.MaxRecTime,
			Factor: config.RecFactor,
			Jitter: true,
		},
		logger: DefaultLogger,
	}
}

// WithLogger 设置日志器
func (r *Reconnector) WithLogger(l FishPiLogger) *Reconnector {
	r.logger = l
	return r
}

// Dial 反复尝试连接直到成功或上下文取消
func (r *Reconnector) Dial(ctx context.Context, connect ConnectFunc) error {
	r.b.Reset()
	for {
		err := connect(ctx)
		if err == nil {
			return nil
		}

		wait := r.b.Duration()
		r.logger.WarnKV("连接失败，等待重试", "wait", wait, "attempt", r.b.Attempt(), "error", err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
