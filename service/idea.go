package service

import (
	"context"
	"time"

	"voteboard/dao"
	"voteboard/models"
	"voteboard/pkg/response"
	"voteboard/pkg/slug"
	"voteboard/pkg/snowflake"
	"voteboard/types"
)

var _ IIdeaService = (*IdeaService)(nil)

// 发布后可编辑的时间窗口
const editWindow = time.Hour

type IIdeaService interface {
	CreateIdea(ctx context.Context, userID int64, req *types.CreateIdeaRequest) (*types.CreateIdeaResponse, error)
	UpdateIdea(ctx context.Context, caller types.Caller, slugStr string, req *types.UpdateIdeaRequest) error
	DeleteIdea(ctx context.Context, caller types.Caller, slugStr string) error
	GetDetail(ctx context.Context, caller types.Caller, slugStr string) (*types.IdeaDetail, error)
	ReportSpam(ctx context.Context, slugStr string) error
}

type IdeaService struct {
	IdeaDAO     *dao.IdeaDAO
	VoteDAO     *dao.VoteDAO
	CommentDAO  *dao.CommentDAO
	CategoryDAO *dao.CategoryDAO
	StatusDAO   *dao.StatusDAO
}

func (s *IdeaService) CreateIdea(ctx context.Context, userID int64, req *types.CreateIdeaRequest) (*types.CreateIdeaResponse, error) {
	category, err := s.CategoryDAO.GetByName(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, response.NewError(400, "分类不存在")
	}

	// 新想法挂到第一个状态 (Open)
	statuses, err := s.StatusDAO.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var statusID int64
	if len(statuses) > 0 {
		statusID = statuses[0].ID
	}

	id := snowflake.GenID()
	idea := &models.Idea{
		ID:          id,
		UserID:      userID,
		CategoryID:  category.ID,
		StatusID:    statusID,
		Title:       req.Title,
		Slug:        slug.Make(req.Title, id),
		Description: req.Description,
	}
	if err := s.IdeaDAO.Create(ctx, idea); err != nil {
		return nil, err
	}
	return &types.CreateIdeaResponse{ID: idea.ID, Slug: idea.Slug}, nil
}

// UpdateIdea 仅作者本人在发布一小时内可编辑
func (s *IdeaService) UpdateIdea(ctx context.Context, caller types.Caller, slugStr string, req *types.UpdateIdeaRequest) error {
	idea, err := s.IdeaDAO.GetBySlug(ctx, slugStr)
	if err != nil {
		return err
	}
	if idea == nil {
		return response.NewError(404, "想法不存在")
	}
	if idea.UserID != caller.ID {
		return response.NewError(403, "只有作者可以编辑")
	}
	if time.Since(idea.CreatedAt) > editWindow {
		return response.NewError(403, "发布超过一小时后不可编辑")
	}

	category, err := s.CategoryDAO.GetByName(ctx, req.Category)
	if err != nil {
		return err
	}
	if category == nil {
		return response.NewError(400, "分类不存在")
	}

	return s.IdeaDAO.UpdateContent(ctx, idea.ID, map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"category_id": category.ID,
	})
}

// DeleteIdea 作者或管理员可删除
func (s *IdeaService) DeleteIdea(ctx context.Context, caller types.Caller, slugStr string) error {
	idea, err := s.IdeaDAO.GetBySlug(ctx, slugStr)
	if err != nil {
		return err
	}
	if idea == nil {
		return response.NewError(404, "想法不存在")
	}
	if idea.UserID != caller.ID && !caller.IsAdmin {
		return response.NewError(403, "无权删除")
	}
	return s.IdeaDAO.Delete(ctx, idea.ID)
}

// ReportSpam 任何登录用户都可以举报, 计数累加
func (s *IdeaService) ReportSpam(ctx context.Context, slugStr string) error {
	idea, err := s.IdeaDAO.GetBySlug(ctx, slugStr)
	if err != nil {
		return err
	}
	if idea == nil {
		return response.NewError(404, "想法不存在")
	}
	return s.IdeaDAO.IncrSpamReports(ctx, idea.ID)
}

// GetDetail 详情页数据, 票数/评论数实时聚合
func (s *IdeaService) GetDetail(ctx context.Context, caller types.Caller, slugStr string) (*types.IdeaDetail, error) {
	idea, err := s.IdeaDAO.GetBySlug(ctx, slugStr)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, response.NewError(404, "想法不存在")
	}

	voteCount, err := s.VoteDAO.CountByIdea(ctx, idea.ID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.CommentDAO.CountByIdea(ctx, idea.ID)
	if err != nil {
		return nil, err
	}

	detail := &types.IdeaDetail{
		ID:           idea.ID,
		Slug:         idea.Slug,
		Title:        idea.Title,
		Description:  idea.Description,
		UserID:       idea.UserID,
		CategoryID:   idea.CategoryID,
		StatusID:     idea.StatusID,
		VoteCount:    voteCount,
		CommentCount: commentCount,
		CreatedAt:    idea.CreatedAt,
	}
	if caller.ID != 0 {
		voted, err := s.VoteDAO.HasVoted(ctx, idea.ID, caller.ID)
		if err != nil {
			return nil, err
		}
		detail.Voted = voted
	}
	if caller.IsAdmin {
		detail.SpamReports = idea.SpamReports
	}
	return detail, nil
}
