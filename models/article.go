/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-22 09:05:33
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-25 14:28:56
 * @FilePath: \go-fishpi\models\article.go
 * @Description: 帖子与回帖数据模型
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package models

// ArticleType 帖子类型
type ArticleType int

const (
	ArticleTypeNormal   ArticleType = 0 // 普通帖
	ArticleTypePrivate  ArticleType = 1 // 机要帖
	ArticleTypeBroadcast ArticleType = 2 // 同城广播
	ArticleTypeThought  ArticleType = 3 // 思绪
	ArticleTypeQnA      ArticleType = 5 // 问答帖
)

// VoteStatus 投票状态
type VoteStatus int

const (
	VoteStatusNone VoteStatus = 0 // 未投票
	VoteStatusUp   VoteStatus = 1 // 点赞
	VoteStatusDown VoteStatus = 2 // 点踩
)

// ArticleListType 帖子列表类别
type ArticleListType string

const (
	ArticleListRecent  ArticleListType = ""         // 最近
	ArticleListHot     ArticleListType = "/hot"     // 热议
	ArticleListGood    ArticleListType = "/good"    // 点赞
	ArticleListReply   ArticleListType = "/reply"   // 最近回复
	ArticleListPerfect ArticleListType = "/perfect" // 优选
)

// ArticlePost 发帖/改帖参数
type ArticlePost struct {
	Title           string  `json:"articleTitle"`                // 标题
	Content         string  `json:"articleContent"`              // 内容
	Tags            string  `json:"articleTags"`                 // 标签，逗号分隔
	Commentable     bool    `json:"articleCommentable"`          // 是否允许回帖
	NotifyFollowers bool    `json:"articleNotifyFollowers"`      // 是否通知关注者
	Type            ArticleType `json:"articleType"`             // 帖子类型
	ShowInList      int     `json:"articleShowInList"`           // 是否在列表展示
	RewardContent   *string `json:"articleRewardContent,omitempty"` // 打赏区内容
	RewardPoint     *string `json:"articleRewardPoint,omitempty"`   // 打赏积分
	Anonymous       *bool   `json:"articleAnonymous,omitempty"`     // 是否匿名
	QnAOfferPoint   *int    `json:"articleQnAOfferPoint,omitempty"` // 问答悬赏积分
}

// ArticleTag 帖子标签
type ArticleTag struct {
	OId          string `json:"oId"`             // 标签 ID
	Title        string `json:"tagTitle"`        // 标签名
	Description  string `json:"tagDescription"`  // 描述
	IconPath     string `json:"tagIconPath"`     // 图标地址
	URI          string `json:"tagURI"`          // 标签地址
	Comments     int    `json:"tagCommentCount"` // 回帖数
	References   int    `json:"tagReferenceCount"` // 引用数
	Followers    int    `json:"tagFollowerCount"`  // 关注者数
	SeoTitle     string `json:"tagSeoTitle"`       // SEO 标题
	SeoDesc      string `json:"tagSeoDesc"`        // SEO 描述
	SeoKeywords  string `json:"tagSeoKeywords"`    // SEO 关键字
}

// Pagination 分页信息
type Pagination struct {
	Count    int         `json:"paginationPageCount"` // 总页数
	PageNums []FlexString `json:"paginationPageNums"` // 建议展示的页码
}

// ArticleComment 回帖
type ArticleComment struct {
	OId            string    `json:"oId"`                      // 回帖 ID
	ArticleId      string    `json:"commentArticleId"`         // 帖子 ID
	Content        string    `json:"commentContent"`           // 内容
	AuthorName     string    `json:"commentAuthorName"`        // 作者用户名
	AuthorURL      string    `json:"commentAuthorURL"`         // 作者主页
	ThumbnailURL   string    `json:"commentAuthorThumbnailURL"` // 作者头像
	CreateTime     string    `json:"commentCreateTime"`        // 回帖时间
	CreateTimeStr  string    `json:"commentCreateTimeStr"`     // 回帖时间文本
	Anonymous      IntBool   `json:"commentAnonymous"`         // 是否匿名
	GoodCnt        int       `json:"commentGoodCnt"`           // 点赞数
	BadCnt         int       `json:"commentBadCnt"`            // 点踩数
	Visible        ZeroBool  `json:"commentVisible"`           // 是否公开可见
	OriginalId     string    `json:"commentOriginalCommentId"` // 被回复的回帖 ID
	SharpURL       string    `json:"commentSharpURL"`          // 回帖地址
	ThankCnt       int       `json:"commentThankCnt"`          // 感谢数
	ThankedByMe    bool      `json:"commentThanked"`           // 是否已感谢
	NiceStatus     bool      `json:"commentNice"`              // 是否精选
	ReplyCnt       int       `json:"commentReplyCnt"`          // 回复数
	Commenter      *UserInfo `json:"commenter"`                // 作者信息
	SysMetal       MetalList `json:"sysMetal"`                 // 作者勋章
}

// ArticleDetail 帖子详情
type ArticleDetail struct {
	OId               string           `json:"oId"`                       // 帖子 ID
	Title             string           `json:"articleTitle"`              // 标题
	TitleEmoj         string           `json:"articleTitleEmoj"`          // 标题(含表情渲染)
	Content           string           `json:"articleContent"`            // 渲染后内容
	OriginalContent   string           `json:"articleOriginalContent"`    // Markdown 原文
	Preview           string           `json:"articlePreviewContent"`     // 预览内容
	Tags              string           `json:"articleTags"`               // 标签，逗号分隔
	TagObjs           []ArticleTag     `json:"articleTagObjs"`            // 标签对象
	AuthorName        string           `json:"articleAuthorName"`         // 作者用户名
	AuthorId          string           `json:"articleAuthorId"`           // 作者 ID
	Author            *UserInfo        `json:"articleAuthor"`             // 作者信息
	CreateTime        string           `json:"articleCreateTime"`         // 创建时间
	CreateTimeStr     string           `json:"articleCreateTimeStr"`      // 创建时间文本
	UpdateTime        string           `json:"articleUpdateTime"`         // 更新时间
	LatestCmtTime     string           `json:"articleLatestCmtTime"`      // 最近回帖时间
	ViewCount         int              `json:"articleViewCount"`          // 浏览数
	CommentCount      int              `json:"articleCommentCount"`       // 回帖数
	ThankCount        int              `json:"articleThankCnt"`           // 感谢数
	GoodCount         int              `json:"articleGoodCnt"`            // 点赞数
	BadCount          int              `json:"articleBadCnt"`             // 点踩数
	CollectCount      int              `json:"articleCollectCnt"`         // 收藏数
	WatchCount        int              `json:"articleWatchCnt"`           // 关注数
	Permalink         string           `json:"articlePermalink"`          // 永久地址
	Type              ArticleType      `json:"articleType"`               // 帖子类型
	Perfect           IntBool          `json:"articlePerfect"`            // 是否优选
	Anonymous         IntBool          `json:"articleAnonymous"`          // 是否匿名
	ShowInList        IntBool          `json:"articleShowInList"`         // 是否在列表展示
	Commentable       bool             `json:"articleCommentable"`        // 是否允许回帖
	Thanked           bool             `json:"thanked"`                   // 是否已感谢
	RewardContent     string           `json:"articleRewardContent"`      // 打赏区内容
	RewardPoint       int              `json:"articleRewardPoint"`        // 打赏积分
	RewardedCnt       int              `json:"rewardedCnt"`               // 打赏人数
	Rewarded          bool             `json:"rewarded"`                  // 是否已打赏
	QnAOfferPoint     int              `json:"articleQnAOfferPoint"`      // 问答悬赏积分
	Vote              VoteStatus       `json:"articleVote"`               // 当前投票状态
	Stick             int64            `json:"articleStick"`              // 置顶权重
	Heat              int              `json:"articleHeat"`               // 帖子热度
	ThumbnailURL      string           `json:"articleThumbnailURL"`       // 缩略图
	AudioURL          string           `json:"articleAudioURL"`           // 音频地址
	City              string           `json:"articleCity"`               // 发布城市
	IP                string           `json:"articleIP"`                 // 发布 IP
	Comments          []ArticleComment `json:"articleComments"`           // 回帖列表
	NiceComments      []ArticleComment `json:"articleNiceComments"`       // 精选回帖
	Offered           bool             `json:"offered"`                   // 问答是否已采纳
	OfferedComment    *ArticleComment  `json:"articleOfferedComment"`     // 被采纳的回帖
}

// ArticleList 帖子列表
type ArticleList struct {
	Articles   []ArticleDetail `json:"articles"`   // 帖子列表
	Pagination Pagination      `json:"pagination"` // 分页信息
	Tag        *ArticleTag     `json:"tag"`        // 标签信息(按标签查询时)
}

// CommentPost 回帖参数
type CommentPost struct {
	ArticleId  string `json:"articleId"`                // 帖子 ID
	Anonymous  bool   `json:"commentAnonymous"`         // 是否匿名
	Visible    bool   `json:"commentVisible"`           // 是否公开可见
	Content    string `json:"commentContent"`           // 内容
	OriginalId string `json:"commentOriginalCommentId"` // 被回复的回帖 ID
}
