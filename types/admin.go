package types

type SetStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	NotifyVoters bool   `json:"notify_voters"`
}

// SpamCounts 管理后台导航角标
type SpamCounts struct {
	Ideas    int64 `json:"ideas"`
	Comments int64 `json:"comments"`
}

// StatusChangedEvent 状态变更通知消息体
type StatusChangedEvent struct {
	IdeaID    int64   `json:"idea_id"`
	IdeaTitle string  `json:"idea_title"`
	Slug      string  `json:"slug"`
	Status    string  `json:"status"`
	VoterIDs  []int64 `json:"voter_ids"`
}
