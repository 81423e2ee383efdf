package service

import (
	"context"

	"voteboard/config"
	"voteboard/dao"
	"voteboard/types"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	GetFeed(ctx context.Context, q types.FeedQuery, caller types.Caller) (*types.FeedPage, error)
}

// FeedService 信息流检索引擎: 解析筛选参数, 组合查询,
// 批量聚合票数/评论数/举报数, 产出一页带状态角标的结果
type FeedService struct {
	IdeaDAO     *dao.IdeaDAO
	VoteDAO     *dao.VoteDAO
	CommentDAO  *dao.CommentDAO
	CategoryDAO *dao.CategoryDAO
	StatusDAO   *dao.StatusDAO
	Config      *config.Config
}

func (s *FeedService) GetFeed(ctx context.Context, q types.FeedQuery, caller types.Caller) (*types.FeedPage, error) {
	statuses, err := s.StatusDAO.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.CategoryDAO.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	f, err := ParseFeedFilter(q, caller, statuses, categories)
	if err != nil {
		return nil, err
	}

	pageSize := s.Config.Feed.PageSize
	offset := (f.Page - 1) * pageSize

	ideas, total, err := s.IdeaDAO.FeedPage(ctx, f, caller.ID, offset, pageSize)
	if err != nil {
		return nil, err
	}

	ideaIDs := make([]int64, 0, len(ideas))
	for _, idea := range ideas {
		ideaIDs = append(ideaIDs, idea.ID)
	}

	// 票数/已投/评论数各一次批量查询, 不逐条回表
	voteCounts, err := s.VoteDAO.CountByIdeaIDs(ctx, ideaIDs)
	if err != nil {
		return nil, err
	}
	votedSet, err := s.VoteDAO.VotedSet(ctx, caller.ID, ideaIDs)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.CommentDAO.CountByIdeaIDs(ctx, ideaIDs)
	if err != nil {
		return nil, err
	}

	// 举报数据只对管理员可见
	var spamCommentSet map[int64]struct{}
	if caller.IsAdmin {
		spamCommentSet, err = s.CommentDAO.SpamIdeaSet(ctx, ideaIDs)
		if err != nil {
			return nil, err
		}
	}

	items := make([]*types.FeedItem, 0, len(ideas))
	for _, idea := range ideas {
		item := &types.FeedItem{
			ID:           idea.ID,
			Slug:         idea.Slug,
			Title:        idea.Title,
			Description:  idea.Description,
			UserID:       idea.UserID,
			CategoryID:   idea.CategoryID,
			StatusID:     idea.StatusID,
			VoteCount:    voteCounts[idea.ID],
			CommentCount: commentCounts[idea.ID],
			CreatedAt:    idea.CreatedAt,
		}
		if _, ok := votedSet[idea.ID]; ok {
			item.Voted = true
		}
		if caller.IsAdmin {
			item.SpamReports = idea.SpamReports
			if _, ok := spamCommentSet[idea.ID]; ok {
				item.HasSpamComments = true
			}
		}
		items = append(items, item)
	}

	// 状态角标: 除状态维度外与当前筛选同一口径, 零计数也要展示
	byStatus, err := s.IdeaDAO.CountByStatus(ctx, f, caller.ID)
	if err != nil {
		return nil, err
	}
	statusCounts := make([]*types.StatusCount, 0, len(statuses))
	var allCount int64
	for _, st := range statuses {
		count := byStatus[st.ID]
		allCount += count
		statusCounts = append(statusCounts, &types.StatusCount{
			StatusID: st.ID,
			Name:     st.Name,
			Classes:  st.Classes,
			Count:    count,
		})
	}

	page := &types.FeedPage{
		Items:        items,
		Page:         f.Page,
		PageSize:     pageSize,
		TotalCount:   total,
		TotalPages:   totalPages(total, pageSize),
		StatusCounts: statusCounts,
		AllCount:     allCount,
		Category:     f.CategoryName,
		Search:       f.RawSearch,
		CanonicalURL: "/ideas?" + f.QueryString(),
	}
	switch f.Mode {
	case types.FilterStatus:
		page.Filter = f.StatusName
	case types.FilterMyIdeas:
		page.Filter = types.FilterLabelMyIdeas
	case types.FilterTopVoted:
		page.Filter = types.FilterLabelTopVoted
	case types.FilterSpamIdeas:
		page.Filter = types.FilterLabelSpamIdeas
	case types.FilterSpamComments:
		page.Filter = types.FilterLabelSpamComments
	}
	return page, nil
}

func totalPages(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
