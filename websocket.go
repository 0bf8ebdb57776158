/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-19 10:02:17
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-23 15:10:42
 * @FilePath: \go-fishpi\websocket.go
 * @Description: WebSocket 结构体及其方法
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
	"github.com/kamalyes/go-toolbox/pkg/syncx"
)

// WsEventType WebSocket 生命周期事件类别
type WsEventType string

const (
	WsEventOpen  WsEventType = "open"  // 连接建立
	WsEventClose WsEventType = "close" // 连接关闭
	WsEventError WsEventType = "error" // 读取错误
	WsEventAll   WsEventType = "all"   // 通配类别，接收全部生命周期事件
)

// WsEvent WebSocket 生命周期事件
type WsEvent struct {
	Type   WsEventType // 事件类别
	Reason string      // 关闭原因
	Err    error       // 错误事件附带的错误
}

// MessageHandler 文本帧处理器，读取协程内同步调用
type MessageHandler interface {
	HandleMessage(msg string)
}

// MessageHandlerFunc 函数式 MessageHandler 适配器
type MessageHandlerFunc func(msg string)

// HandleMessage 实现 MessageHandler
func (f MessageHandlerFunc) HandleMessage(msg string) {
	f(msg)
}

// WebSocket 结构体表示底层 WebSocket 连接
type WebSocket struct {
	Url           string            // 连接 URL
	Conn          *websocket.Conn   // WebSocket 连接
	Dialer        *websocket.Dialer // WebSocket 拨号器
	RequestHeader http.Header       // 请求头
	HttpResponse  *http.Response    // 握手响应体

	handler   MessageHandler                 // 文本帧处理器
	listeners *Emitter[WsEventType, WsEvent] // 生命周期监听器
	logger    FishPiLogger                   // 日志器

	isConnected bool          // 是否已连接
	connMu      *sync.RWMutex // 连接状态锁
	sendMu      *sync.Mutex   // 发送消息锁

	ctx       context.Context    // 读取协程上下文
	cancel    context.CancelFunc // 读取协程取消函数
	closeOnce sync.Once          // Disconnect 幂等保护
}

// NewWebSocket 创建一个新的 WebSocket 连接
func NewWebSocket(url string) *WebSocket {
	return &WebSocket{
		Url:           url,
		Dialer:        websocket.DefaultDialer,
		RequestHeader: http.Header{},
		listeners:     NewEmitter[WsEventType, WsEvent]().WithAllKind(WsEventAll),
		logger:        DefaultLogger,
		isConnected:   false,
		connMu:        &sync.RWMutex{},
		sendMu:        &sync.Mutex{},
	}
}

// WithDialer 设置自定义的 WebSocket 拨号器
func (ws *WebSocket) WithDialer(dialer *websocket.Dialer) *WebSocket {
	ws.Dialer = dialer
	return ws
}

// WithRequestHeader 设置请求头
func (ws *WebSocket) WithRequestHeader(header http.Header) *WebSocket {
	ws.RequestHeader = header
	return ws
}

// WithLogger 设置日志器
func (ws *WebSocket) WithLogger(l FishPiLogger) *WebSocket {
	ws.logger = l
	ws.listeners.WithLogger(l)
	return ws
}

// WithCustomURL 设置自定义 URL
func (ws *WebSocket) WithCustomURL(url string) *WebSocket {
	ws.Url = url
	return ws
}

// DialWebSocket 拨号并启动读取协程的便捷入口
func DialWebSocket(ctx context.Context, url string, handler MessageHandler) (*WebSocket, error) {
	ws := NewWebSocket(url)
	if err := ws.Dial(ctx, handler); err != nil {
		return nil, err
	}
	return ws, nil
}

// Dial 建立连接并启动读取协程
// 握手失败立即返回连接错误，不做自动重连
func (ws *WebSocket) Dial(ctx context.Context, handler MessageHandler) error {
	if ws.IsConnected() {
		return ErrAlreadyConnected
	}
	conn, resp, err := ws.Dialer.DialContext(ctx, ws.Url, ws.RequestHeader)
	if err != nil {
		ws.logger.ErrorKV("WebSocket握手失败", "url", ws.Url, "error", err)
		return errorx.NewError(ErrTypeDialFailed, err)
	}

	ws.Conn = conn
	ws.HttpResponse = resp
	ws.ctx, ws.cancel = context.WithCancel(context.Background())
	ws.handler = handler
	ws.setConnected(true)

	syncx.Go().OnPanic(func(r any) {
		ws.logger.ErrorKV("读取协程发生panic", "url", ws.Url, "recover", r)
	}).Exec(ws.readLoop)

	return nil
}

// On 注册生命周期监听器
func (ws *WebSocket) On(kind WsEventType, fn Listener[WsEvent]) Handle[WsEventType] {
	return ws.listeners.On(kind, fn)
}

// RemoveListener 移除指定类别的全部生命周期监听器
func (ws *WebSocket) RemoveListener(kind WsEventType) {
	ws.listeners.Off(kind)
}

// RemoveAllListeners 移除全部生命周期监听器
func (ws *WebSocket) RemoveAllListeners() {
	ws.listeners.Clear()
}

// IsConnected 返回连接状态
func (ws *WebSocket) IsConnected() bool {
	return syncx.WithRLockReturnValue(ws.connMu, func() bool {
		return ws.isConnected
	})
}

// SendText 发送文本帧
func (ws *WebSocket) SendText(msg string) error {
	if !ws.IsConnected() {
		return ErrNotConnected
	}
	ws.sendMu.Lock()
	defer ws.sendMu.Unlock()
	if err := ws.Conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		return errorx.NewError(ErrTypeWriteFailed, err)
	}
	return nil
}

// Disconnect 主动断开连接，幂等，任意协程可调用
func (ws *WebSocket) Disconnect() {
	ws.closeOnce.Do(func() {
		if ws.cancel != nil {
			ws.cancel()
		}
		if ws.Conn != nil {
			deadline := time.Now().Add(time.Second)
			_ = ws.Conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			_ = ws.Conn.Close()
		}
		ws.setConnected(false)
	})
}

// setConnected 更新连接状态
func (ws *WebSocket) setConnected(connected bool) {
	syncx.WithLock(ws.connMu, func() {
		ws.isConnected = connected
	})
}

// readLoop 读取协程
// 文本帧同步交给 handler，非文本帧忽略；
// 收到关闭帧或主动断开时派发 close 事件，其余读取错误派发 error 事件
func (ws *WebSocket) readLoop() {
	ws.listeners.Emit(WsEventOpen, WsEvent{Type: WsEventOpen})

	for {
		messageType, data, err := ws.Conn.ReadMessage()
		if err != nil {
			ws.setConnected(false)
			if ws.ctx.Err() != nil {
				// 主动断开
				ws.listeners.Emit(WsEventClose, WsEvent{Type: WsEventClose, Reason: "client disconnect"})
				return
			}
			if closeErr, ok := err.(*websocket.CloseError); ok {
				ws.listeners.Emit(WsEventClose, WsEvent{Type: WsEventClose, Reason: closeErr.Text})
			} else {
				ws.logger.WarnKV("WebSocket读取错误", "url", ws.Url, "error", err)
				ws.listeners.Emit(WsEventError, WsEvent{Type: WsEventError, Err: err})
			}
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}
		if ws.handler != nil {
			ws.handler.HandleMessage(string(data))
		}
	}
}
