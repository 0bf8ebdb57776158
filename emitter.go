/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-19 10:02:17
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-23 14:51:30
 * @FilePath: \go-fishpi\emitter.go
 * @Description: 泛型事件监听器注册表
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"sync"

	"github.com/kamalyes/go-toolbox/pkg/syncx"
)

// Listener 事件监听器函数
type Listener[E any] func(event E)

// Handle 监听器句柄，On 返回，可用于移除单个监听器
type Handle[K comparable] struct {
	kind K
	id   uint64
}

// listenerEntry 注册表内部条目，按注册顺序保存
type listenerEntry[E any] struct {
	id uint64
	fn Listener[E]
}

// Emitter 泛型事件注册表
// 按事件类别维护有序监听器列表，派发时先拷贝快照再逐个异步调用，
// 监听器内部的 panic 不会影响其他监听器和派发方
type Emitter[K comparable, E any] struct {
	mu        sync.RWMutex
	listeners map[K][]listenerEntry[E]
	nextID    uint64
	allKind   *K // 通配类别，nil 表示未启用
	logger    FishPiLogger
}

// NewEmitter 创建事件注册表
func NewEmitter[K comparable, E any]() *Emitter[K, E] {
	return &Emitter[K, E]{
		listeners: make(map[K][]listenerEntry[E]),
		logger:    DefaultLogger,
	}
}

// WithAllKind 启用通配类别
// 任何非通配类别的事件派发时会同时通知通配类别的监听器
func (e *Emitter[K, E]) WithAllKind(kind K) *Emitter[K, E] {
	e.allKind = &kind
	return e
}

// WithLogger 设置日志器
func (e *Emitter[K, E]) WithLogger(l FishPiLogger) *Emitter[K, E] {
	e.logger = l
	return e
}

// On 注册监听器并返回句柄，同一类别按注册顺序保存
func (e *Emitter[K, E]) On(kind K, fn Listener[E]) Handle[K] {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	e.listeners[kind] = append(e.listeners[kind], listenerEntry[E]{id: e.nextID, fn: fn})
	return Handle[K]{kind: kind, id: e.nextID}
}

// Off 移除指定类别下的全部监听器
func (e *Emitter[K, E]) Off(kind K) {
	syncx.WithLock(&e.mu, func() {
		delete(e.listeners, kind)
	})
}

// Remove 按句柄移除单个监听器
func (e *Emitter[K, E]) Remove(h Handle[K]) {
	syncx.WithLock(&e.mu, func() {
		entries := e.listeners[h.kind]
		for i, entry := range entries {
			if entry.id == h.id {
				e.listeners[h.kind] = append(entries[:i:i], entries[i+1:]...)
				break
			}
		}
	})
}

// Clear 移除全部监听器
func (e *Emitter[K, E]) Clear() {
	syncx.WithLock(&e.mu, func() {
		e.listeners = make(map[K][]listenerEntry[E])
	})
}

// Count 返回指定类别下的监听器数量
func (e *Emitter[K, E]) Count(kind K) int {
	return syncx.WithRLockReturnValue(&e.mu, func() int {
		return len(e.listeners[kind])
	})
}

// Emit 派发事件
// 持锁期间仅拷贝监听器快照，实际调用在独立协程中进行，
// 协程派发顺序与注册顺序一致，完成顺序不做保证
func (e *Emitter[K, E]) Emit(kind K, event E) {
	entries := syncx.WithRLockReturnValue(&e.mu, func() []listenerEntry[E] {
		out := append([]listenerEntry[E]{}, e.listeners[kind]...)
		if e.allKind != nil && kind != *e.allKind {
			out = append(out, e.listeners[*e.allKind]...)
		}
		return out
	})

	for _, entry := range entries {
		fn := entry.fn
		syncx.Go().OnPanic(func(r any) {
			e.logger.ErrorKV("事件监听器发生panic", "recover", r)
		}).Exec(func() {
			fn(event)
		})
	}
}
