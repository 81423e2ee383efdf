package service

import (
	"context"

	"voteboard/dao"
	"voteboard/pkg/response"
)

var _ IVoteService = (*VoteService)(nil)

type IVoteService interface {
	Vote(ctx context.Context, userID int64, slugStr string) (int64, error)
	Unvote(ctx context.Context, userID int64, slugStr string) (int64, error)
}

// VoteService 一人一票由 votes 表唯一键保证, 重复操作均为空操作
type VoteService struct {
	VoteDAO *dao.VoteDAO
	IdeaDAO *dao.IdeaDAO
}

// Vote 投票, 返回最新票数
func (s *VoteService) Vote(ctx context.Context, userID int64, slugStr string) (int64, error) {
	idea, err := s.IdeaDAO.GetBySlug(ctx, slugStr)
	if err != nil {
		return 0, err
	}
	if idea == nil {
		return 0, response.NewError(404, "想法不存在")
	}

	if err := s.VoteDAO.Create(ctx, idea.ID, userID); err != nil {
		return 0, err
	}
	return s.VoteDAO.CountByIdea(ctx, idea.ID)
}

// Unvote 取消投票, 返回最新票数
func (s *VoteService) Unvote(ctx context.Context, userID int64, slugStr string) (int64, error) {
	idea, err := s.IdeaDAO.GetBySlug(ctx, slugStr)
	if err != nil {
		return 0, err
	}
	if idea == nil {
		return 0, response.NewError(404, "想法不存在")
	}

	if err := s.VoteDAO.Delete(ctx, idea.ID, userID); err != nil {
		return 0, err
	}
	return s.VoteDAO.CountByIdea(ctx, idea.ID)
}
