package types

import (
	"net/url"
	"strconv"
	"time"
)

// FilterMode 信息流的筛选模式, 封闭枚举
// Status/TopVoted/SpamIdeas/SpamComments 为互斥模式, 二次筛选维度
// (分类/搜索) 只能叠加在 None 或 MyIdeas 之上
type FilterMode int8

const (
	FilterNone FilterMode = iota
	FilterStatus
	FilterMyIdeas
	FilterTopVoted
	FilterSpamIdeas
	FilterSpamComments
)

// 过滤器的外部参数值
const (
	FilterLabelAll          = "All Ideas"
	FilterLabelMyIdeas      = "My Ideas"
	FilterLabelTopVoted     = "Top Voted"
	FilterLabelSpamIdeas    = "Spam Ideas"
	FilterLabelSpamComments = "Spam Comments"
)

// FeedQuery 信息流的原始请求参数
type FeedQuery struct {
	Filter   string `form:"filter"`
	Status   string `form:"status"`
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
}

// Caller 调用者身份, ID 为 0 表示匿名
type Caller struct {
	ID      int64
	IsAdmin bool
}

func (c Caller) Anonymous() bool { return c.ID == 0 }

// FeedFilter 校验后的筛选描述, 只有所属模式需要的字段才会被填充.
// RawSearch 保留原始输入用于回显, Search 只在长度达标时生效
type FeedFilter struct {
	Mode FilterMode

	StatusID   int64
	StatusName string

	CategoryID   int64
	CategoryName string

	Search    string
	RawSearch string

	Page int
}

// QueryString 规范化查询串, 同一 URL 重放必得同一窗口
func (f *FeedFilter) QueryString() string {
	v := url.Values{}
	switch f.Mode {
	case FilterStatus:
		v.Set("filter", f.StatusName)
	case FilterMyIdeas:
		v.Set("filter", FilterLabelMyIdeas)
	case FilterTopVoted:
		v.Set("filter", FilterLabelTopVoted)
	case FilterSpamIdeas:
		v.Set("filter", FilterLabelSpamIdeas)
	case FilterSpamComments:
		v.Set("filter", FilterLabelSpamComments)
	}
	if f.CategoryName != "" {
		v.Set("category", f.CategoryName)
	}
	if f.RawSearch != "" {
		v.Set("search", f.RawSearch)
	}
	v.Set("page", strconv.Itoa(f.Page))
	return v.Encode()
}

// FeedItem 信息流中的一条想法及其聚合数据
type FeedItem struct {
	ID           int64     `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	UserID       int64     `json:"user_id"`
	CategoryID   int64     `json:"category_id"`
	StatusID     int64     `json:"status_id"`
	VoteCount    int64     `json:"vote_count"`
	Voted        bool      `json:"voted"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`

	// 管理员可见
	SpamReports     int  `json:"spam_reports,omitempty"`
	HasSpamComments bool `json:"has_spam_comments,omitempty"`
}

// StatusCount 单个状态页签的计数
type StatusCount struct {
	StatusID int64  `json:"status_id"`
	Name     string `json:"name"`
	Classes  string `json:"classes"`
	Count    int64  `json:"count"`
}

// FeedPage 一页信息流
type FeedPage struct {
	Items      []*FeedItem `json:"items"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalCount int64       `json:"total_count"`
	TotalPages int         `json:"total_pages"`

	// AllCount = 各状态计数之和, 与状态页签同一口径
	StatusCounts []*StatusCount `json:"status_counts"`
	AllCount     int64          `json:"all_count"`

	// 回显
	Filter   string `json:"filter,omitempty"`
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`

	// 规范化 URL, 供返回导航
	CanonicalURL string `json:"canonical_url"`
}
