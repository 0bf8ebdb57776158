/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-18 09:12:36
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-11 15:27:55
 * @FilePath: \go-fishpi\config.go
 * @Description: Config 结构体
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import "time"

// Config 结构体表示 FishPi 客户端的配置
type Config struct {
	Domain           string        // 站点域名
	Secure           bool          // 是否使用 https/wss
	UserAgent        string        // HTTP User-Agent 请求头
	Client           string        // 客户端类型标识(聊天室消息 client 字段前缀)
	Version          string        // 客户端版本号
	RequestTimeout   time.Duration // HTTP 请求超时
	HandshakeTimeout time.Duration // WebSocket 握手超时
	MinRecTime       time.Duration // 最小重连时间
	MaxRecTime       time.Duration // 最大重连时间
	RecFactor        float64       // 重连因子
}

// NewDefaultConfig 创建默认配置
func NewDefaultConfig() *Config {
	return &Config{
		Domain:           "fishpi.cn",
		Secure:           true,
		UserAgent:        "Mozilla/5.0 (Windows NT 10.0; WOW64) AppleWebKit/537.36",
		Client:           "Golang",
		Version:          "1.0.0",
		RequestTimeout:   30 * time.Second,
		HandshakeTimeout: 10 * time.Second,
		MinRecTime:       2 * time.Second,
		MaxRecTime:       60 * time.Second,
		RecFactor:        1.5,
	}
}

// WithDomain 设置站点域名并返回当前配置对象
func (c *Config) WithDomain(domain string) *Config {
	c.Domain = domain
	return c
}

// WithSecure 设置是否使用 https/wss 并返回当前配置对象
func (c *Config) WithSecure(secure bool) *Config {
	c.Secure = secure
	return c
}

// WithUserAgent 设置 User-Agent 并返回当前配置对象
func (c *Config) WithUserAgent(ua string) *Config {
	c.UserAgent = ua
	return c
}

// WithClient 设置客户端类型标识并返回当前配置对象
func (c *Config) WithClient(client string) *Config {
	c.Client = client
	return c
}

// WithVersion 设置客户端版本号并返回当前配置对象
func (c *Config) WithVersion(version string) *Config {
	c.Version = version
	return c
}

// WithRequestTimeout 设置 HTTP 请求超时并返回当前配置对象
func (c *Config) WithRequestTimeout(d time.Duration) *Config {
	c.RequestTimeout = d
	return c
}

// WithHandshakeTimeout 设置 WebSocket 握手超时并返回当前配置对象
func (c *Config) WithHandshakeTimeout(d time.Duration) *Config {
	c.HandshakeTimeout = d
	return c
}

// WithMinRecTime 设置最小重连时间并返回当前配置对象
func (c *Config) WithMinRecTime(d time.Duration) *Config {
	c.MinRecTime = d
	return c
}

// WithMaxRecTime 设置最大重连时间并返回当前配置对象
func (c *Config) WithMaxRecTime(d time.Duration) *Config {
	c.MaxRecTime = d
	return c
}

// WithRecFactor 设置重连因子并返回当前配置对象
func (c *Config) WithRecFactor(factor float64) *Config {
	c.RecFactor = factor
	return c
}

// scheme 返回 HTTP 协议前缀
func (c *Config) scheme() string {
	if c.Secure {
		return "https"
	}
	return "http"
}

// wsScheme 返回 WebSocket 协议前缀
func (c *Config) wsScheme() string {
	if c.Secure {
		return "wss"
	}
	return "ws"
}

// clientTag 返回聊天室消息 client 字段值, 形如 "Golang/1.0.0"
func (c *Config) clientTag() string {
	return c.Client + "/" + c.Version
}
