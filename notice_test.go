/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-12-04 09:19:36
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-28 11:42:15
 * @FilePath: \go-fishpi\notice_test.go
 * @Description:
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"context"
	"net/http"
	"testing"

	"github.com/kamalyes/go-fishpi/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyNoticeFrame(t *testing.T) {
	kind, event, err := classifyNoticeFrame([]byte(`{"command":"refreshNotification","userId":"1"}`))
	assert.NoError(t, err)
	assert.Equal(t, NoticeEventRefresh, kind)
	assert.Equal(t, "1", event.Msg.UserId)

	kind, event, err = classifyNoticeFrame([]byte(`{"command":"warnBroadcast","warnBroadcastText":"服务器维护","who":"admin"}`))
	assert.NoError(t, err)
	assert.Equal(t, NoticeEventWarnBroadcast, kind)
	assert.Equal(t, "服务器维护", event.Msg.Content)
	assert.Equal(t, "admin", event.Msg.Who)
}

func TestClassifyNoticeFrameUnknown(t *testing.T) {
	// 未知指令应返回解析类错误并丢帧
	_, _, err := classifyNoticeFrame([]byte(`{"command":"mystery"}`))
	assert.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestNoticeCount(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/notifications/unread/count", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"userNotifyStatus":1,
			"unreadNotificationCnt":5,
			"unreadReplyNotificationCnt":1,
			"unreadPointNotificationCnt":2,
			"unreadAtNotificationCnt":1,
			"unreadCommentedNotificationCnt":1
		}`))
	})
	f, _ := newTestClient(t, mux)

	count, err := f.Notice.Count(context.Background())
	assert.NoError(t, err)
	assert.True(t, bool(count.NotifyStatus))
	assert.Equal(t, 5, count.Count)
	assert.Equal(t, 2, count.Point)
	assert.Equal(t, 1, count.Commented)
}

func TestNoticeList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/getNotifications", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "point", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte(`{"code":0,"data":[{"oId":"1","description":"签到获得积分","hasRead":false}]}`))
	})
	f, _ := newTestClient(t, mux)

	items, err := f.Notice.List(context.Background(), models.NoticeTypePoint)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, models.NoticeTypePoint, items[0].Type)
	assert.NotNil(t, items[0].Point)
	assert.Equal(t, "签到获得积分", items[0].Point.Description)
	assert.False(t, items[0].Point.HasRead)
}

func TestNoticeListCommented(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/getNotifications", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":0,"data":[{"oId":"2","commentArticleTitle":"摸鱼指南","commentAuthorName":"alice","commentArticlePerfect":1}]}`))
	})
	f, _ := newTestClient(t, mux)

	items, err := f.Notice.List(context.Background(), models.NoticeTypeCommented)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NotNil(t, items[0].Comment)
	assert.Equal(t, "摸鱼指南", items[0].Comment.Title)
	assert.True(t, bool(items[0].Comment.Perfect))
}

func TestNoticeCountFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/notifications/unread/count", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":1,"msg":"invalid apiKey"}`))
	})
	f, _ := newTestClient(t, mux)

	_, err := f.Notice.Count(context.Background())
	assert.Error(t, err)
	assert.True(t, IsAPIError(err), "业务失败应为接口类错误")
}

func TestNoticeMakeRead(t *testing.T) {
	var path string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	})
	f, _ := newTestClient(t, mux)

	assert.NoError(t, f.Notice.MakeRead(context.Background(), models.NoticeTypeReply))
	assert.Equal(t, "/notifications/make-read/reply", path)

	assert.NoError(t, f.Notice.ReadAll(context.Background()))
	assert.Equal(t, "/notifications/all-read", path)
}

func TestNoticeMakeReadFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":1,"msg":"标记失败"}`))
	})
	f, _ := newTestClient(t, mux)

	err := f.Notice.MakeRead(context.Background(), models.NoticeTypeReply)
	assert.Error(t, err)
	assert.True(t, IsAPIError(err))

	err = f.Notice.ReadAll(context.Background())
	assert.Error(t, err)
	assert.True(t, IsAPIError(err))
}
