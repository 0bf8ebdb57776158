/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-12-02 09:15:41
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-27 17:30:08
 * @FilePath: \go-fishpi\helpers_test.go
 * @Description: 测试公共辅助
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/websocket"
)

// testUpgrader 测试服务端升级器
var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// echoHandler 回显收到的每一帧
func echoHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := testUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if err := conn.WriteMessage(mt, msg); err != nil {
			return
		}
	}
}

// newTestClient 创建指向测试服务器的客户端
func newTestClient(t *testing.T, handler http.Handler) (*FishPi, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := NewDefaultConfig().
		WithDomain(server.Listener.Addr().String()).
		WithSecure(false)
	return New("test-key", config), server
}
