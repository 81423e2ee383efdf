package types

import "time"

type CreateIdeaRequest struct {
	Title       string `json:"title" binding:"required,min=4,max=100"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required,min=4"`
}

type CreateIdeaResponse struct {
	ID   int64  `json:"id,string"`
	Slug string `json:"slug"`
}

type UpdateIdeaRequest struct {
	Title       string `json:"title" binding:"required,min=4,max=100"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required,min=4"`
}

// IdeaDetail 详情页数据, BackURL 为会话内最近一次信息流地址
type IdeaDetail struct {
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
	SpamReports int `json:"spam_reports,omitempty"`

	BackURL string `json:"back_url"`
}
