/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-22 10:47:21
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-01-16 09:33:08
 * @FilePath: \go-fishpi\models\breezemoon.go
 * @Description: 清风明月数据模型
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package models

// BreezemoonContent 清风明月条目
type BreezemoonContent struct {
	OId            string `json:"oId"`                              // 条目 ID
	AuthorName     string `json:"breezemoonAuthorName"`             // 作者用户名
	ThumbnailURL48 string `json:"breezemoonAuthorThumbnailURL48"`   // 作者头像 48px
	Content        string `json:"breezemoonContent"`                // 内容
	Created        int64  `json:"breezemoonCreated"`                // 创建时间戳(毫秒)
	Updated        int64  `json:"breezemoonUpdated"`                // 更新时间戳(毫秒)
	CreateTime     string `json:"breezemoonCreateTime"`             // 创建时间
	City           string `json:"breezemoonCity"`                   // 发布城市
	TimeAgo        string `json:"timeAgo"`                          // 相对时间文本
}
