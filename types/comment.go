package types

import "time"

type AddCommentRequest struct {
	Body string `json:"body" binding:"required,min=4,max=1000"`
}

type CommentItem struct {
	ID        int64     `json:"id"`
	IdeaID    int64     `json:"idea_id"`
	UserID    int64     `json:"user_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`

	// 管理员可见
	SpamReports int `json:"spam_reports,omitempty"`
}

type CommentPage struct {
	Items      []*CommentItem `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int64          `json:"total_count"`
	TotalPages int            `json:"total_pages"`
}
