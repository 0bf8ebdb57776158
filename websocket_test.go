/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-12-02 11:21:47
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-27 18:26:10
 * @FilePath: \go-fishpi\websocket_test.go
 * @Description:
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

const testURL = "ws://localhost:8080/ws"

func TestNewWebSocket(t *testing.T) {
	ws := NewWebSocket(testURL)

	assert.Equal(t, testURL, ws.Url, "Expected URL should match")
	assert.Equal(t, websocket.DefaultDialer, ws.Dialer, "Expected default dialer should match")
	assert.False(t, ws.IsConnected(), "Expected isConnected to be false")
}

func TestWithRequestHeader(t *testing.T) {
	ws := NewWebSocket(testURL)
	header := http.Header{}
	header.Set("Authorization", "Bearer token")
	ws.WithRequestHeader(header)

	assert.Equal(t, "Bearer token", ws.RequestHeader.Get("Authorization"))
}

func TestWithCustomURL(t *testing.T) {
	ws := NewWebSocket(testURL)
	newURL := "ws://new-url.com/ws"
	ws.WithCustomURL(newURL)

	assert.Equal(t, newURL, ws.Url)
}

func TestDialWebSocketEcho(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer server.Close()

	url := fmt.Sprintf("ws://%s/ws", server.Listener.Addr().String())
	received := make(chan string, 1)

	ws, err := DialWebSocket(context.Background(), url, MessageHandlerFunc(func(msg string) {
		received <- msg
	}))
	assert.NoError(t, err)
	defer ws.Disconnect()

	assert.True(t, ws.IsConnected())
	assert.NoError(t, ws.SendText("hello"))

	select {
	case msg := <-received:
		assert.Equal(t, "hello", msg, "应收到回显的消息")
	case <-time.After(2 * time.Second):
		t.Fatal("等待消息超时")
	}
}

func TestDialWebSocketError(t *testing.T) {
	// 连接不存在的服务器应立即失败
	_, err := DialWebSocket(context.Background(), "ws://127.0.0.1:1/ws", nil)
	assert.Error(t, err)
	assert.True(t, IsConnectionError(err), "应为连接类错误")
}

func TestWebSocketOpenEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer server.Close()

	url := fmt.Sprintf("ws://%s/ws", server.Listener.Addr().String())
	ws := NewWebSocket(url)
	opened := make(chan WsEvent, 1)
	ws.On(WsEventOpen, func(ev WsEvent) { opened <- ev })

	assert.NoError(t, ws.Dial(context.Background(), nil))
	defer ws.Disconnect()

	select {
	case ev := <-opened:
		assert.Equal(t, WsEventOpen, ev.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("等待open事件超时")
	}
}

func TestWebSocketCloseEvent(t *testing.T) {
	// 服务端主动发送关闭帧
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		deadline := time.Now().Add(time.Second)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), deadline)
	}))
	defer server.Close()

	url := fmt.Sprintf("ws://%s/ws", server.Listener.Addr().String())
	ws := NewWebSocket(url)
	closed := make(chan WsEvent, 1)
	ws.On(WsEventClose, func(ev WsEvent) { closed <- ev })

	assert.NoError(t, ws.Dial(context.Background(), nil))

	select {
	case ev := <-closed:
		assert.Equal(t, WsEventClose, ev.Type)
		assert.Equal(t, "bye", ev.Reason)
	case <-time.After(2 * time.Second):
		t.Fatal("等待close事件超时")
	}
}

func TestWebSocketAllListener(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer server.Close()

	url := fmt.Sprintf("ws://%s/ws", server.Listener.Addr().String())
	ws := NewWebSocket(url)
	events := make(chan WsEvent, 4)
	ws.On(WsEventAll, func(ev WsEvent) { events <- ev })

	assert.NoError(t, ws.Dial(context.Background(), nil))

	// 通配监听器应收到open事件
	select {
	case ev := <-events:
		assert.Equal(t, WsEventOpen, ev.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("等待事件超时")
	}

	ws.Disconnect()

	// 主动断开后应收到close事件
	select {
	case ev := <-events:
		assert.Equal(t, WsEventClose, ev.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("等待事件超时")
	}
}

func TestWebSocketDialAlreadyConnected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer server.Close()

	url := fmt.Sprintf("ws://%s/ws", server.Listener.Addr().String())
	ws, err := DialWebSocket(context.Background(), url, nil)
	assert.NoError(t, err)
	defer ws.Disconnect()

	// 已连接时重复拨号应直接拒绝
	err = ws.Dial(context.Background(), nil)
	assert.ErrorIs(t, err, ErrAlreadyConnected)
}

func TestWebSocketDisconnectIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer server.Close()

	url := fmt.Sprintf("ws://%s/ws", server.Listener.Addr().String())
	ws, err := DialWebSocket(context.Background(), url, nil)
	assert.NoError(t, err)

	// 重复断开应安全无副作用
	ws.Disconnect()
	ws.Disconnect()
	ws.Disconnect()
	assert.False(t, ws.IsConnected())
}

func TestWebSocketSendAfterDisconnect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer server.Close()

	url := fmt.Sprintf("ws://%s/ws", server.Listener.Addr().String())
	ws, err := DialWebSocket(context.Background(), url, nil)
	assert.NoError(t, err)

	ws.Disconnect()
	err = ws.SendText("late")
	assert.ErrorIs(t, err, ErrNotConnected)
}
