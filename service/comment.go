package service

import (
	"context"

	"voteboard/config"
	"voteboard/dao"
	"voteboard/models"
	"voteboard/pkg/response"
	"voteboard/pkg/snowflake"
	"voteboard/types"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	AddComment(ctx context.Context, userID int64, slugStr string, req *types.AddCommentRequest) (int64, error)
	ListComments(ctx context.Context, caller types.Caller, slugStr string, page int) (*types.CommentPage, error)
	ReportSpam(ctx context.Context, commentID int64) error
}

type CommentService struct {
	CommentDAO *dao.CommentDAO
	IdeaDAO    *dao.IdeaDAO
	Config     *config.Config
}

func (s *CommentService) AddComment(ctx context.Context, userID int64, slugStr string, req *types.AddCommentRequest) (int64, error) {
	idea, err := s.IdeaDAO.GetBySlug(ctx, slugStr)
	if err != nil {
		return 0, err
	}
	if idea == nil {
		return 0, response.NewError(404, "想法不存在")
	}

	comment := &models.Comment{
		ID:     snowflake.GenID(),
		IdeaID: idea.ID,
		UserID: userID,
		Body:   req.Body,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return 0, err
	}
	return comment.ID, nil
}

// ReportSpam 任何登录用户都可以举报评论
func (s *CommentService) ReportSpam(ctx context.Context, commentID int64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewError(404, "评论不存在")
	}
	return s.CommentDAO.IncrSpamReports(ctx, commentID)
}

// ListComments 评论按时间正序分页, 超出末页返回空窗口
func (s *CommentService) ListComments(ctx context.Context, caller types.Caller, slugStr string, page int) (*types.CommentPage, error) {
	idea, err := s.IdeaDAO.GetBySlug(ctx, slugStr)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, response.NewError(404, "想法不存在")
	}

	if page < 1 {
		page = 1
	}
	pageSize := s.Config.Feed.CommentPageSize

	total, err := s.CommentDAO.CountByIdea(ctx, idea.ID)
	if err != nil {
		return nil, err
	}
	comments, err := s.CommentDAO.FindByIdea(ctx, idea.ID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*types.CommentItem, 0, len(comments))
	for _, c := range comments {
		item := &types.CommentItem{
			ID:        c.ID,
			IdeaID:    c.IdeaID,
			UserID:    c.UserID,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		}
		if caller.IsAdmin {
			item.SpamReports = c.SpamReports
		}
		items = append(items, item)
	}

	return &types.CommentPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages(total, pageSize),
	}, nil
}
