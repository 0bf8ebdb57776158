/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-22 15:09:32
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-01-28 10:52:46
 * @FilePath: \go-fishpi\models\finger.go
 * @Description: 金手指接口数据模型
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package models

// UserIP 用户最近登录 IP
type UserIP struct {
	UserId        string `json:"userId"`        // 用户 ID
	LatestLoginIP string `json:"latestLoginIP"` // 最近登录 IP
}

// UserBagItem 背包物品类别
type UserBagItem string

const (
	BagItemCheckin1Day      UserBagItem = "checkin1day"      // 免签卡(1 天)
	BagItemCheckin2Days     UserBagItem = "checkin2days"     // 免签卡(2 天)
	BagItemPatchCheckinCard UserBagItem = "patchCheckinCard" // 补签卡
	BagItemMetalTicket      UserBagItem = "metalTicket"      // 勋章附属卡
)

// UserBag 用户背包
type UserBag struct {
	Checkin1Day      int `json:"checkin1day"`      // 免签卡(1 天)数量
	Checkin2Days     int `json:"checkin2days"`     // 免签卡(2 天)数量
	PatchCheckinCard int `json:"patchCheckinCard"` // 补签卡数量
	MetalTicket      int `json:"metalTicket"`      // 勋章附属卡数量
}
