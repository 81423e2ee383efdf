package service

import (
	"context"

	"voteboard/dao"
	"voteboard/pkg/log"
	"voteboard/pkg/response"
	"voteboard/types"

	"go.uber.org/zap"
)

var _ IAdminService = (*AdminService)(nil)

type IAdminService interface {
	SetStatus(ctx context.Context, slugStr string, req *types.SetStatusRequest) error
	MarkIdeaNotSpam(ctx context.Context, slugStr string) error
	MarkCommentNotSpam(ctx context.Context, commentID int64) error
	SpamCounts(ctx context.Context) (*types.SpamCounts, error)
}

// AdminService 管理操作: 状态流转与垃圾内容处置.
// 路由层已经拦截非管理员, 这里不再校验角色
type AdminService struct {
	IdeaDAO    *dao.IdeaDAO
	CommentDAO *dao.CommentDAO
	StatusDAO  *dao.StatusDAO
	VoteDAO    *dao.VoteDAO
	Notify     INotifyService
}

// SetStatus 修改想法状态, 可选通知全部投票人
func (s *AdminService) SetStatus(ctx context.Context, slugStr string, req *types.SetStatusRequest) error {
	idea, err := s.IdeaDAO.GetBySlug(ctx, slugStr)
	if err != nil {
		return err
	}
	if idea == nil {
		return response.NewError(404, "想法不存在")
	}

	status, err := s.StatusDAO.GetByName(ctx, req.Status)
	if err != nil {
		return err
	}
	if status == nil {
		return response.NewError(400, "状态不存在")
	}

	if err := s.IdeaDAO.UpdateStatus(ctx, idea.ID, status.ID); err != nil {
		return err
	}

	if req.NotifyVoters {
		voterIDs, err := s.VoteDAO.VoterIDs(ctx, idea.ID)
		if err != nil {
			return err
		}
		if len(voterIDs) > 0 {
			event := &types.StatusChangedEvent{
				IdeaID:    idea.ID,
				IdeaTitle: idea.Title,
				Slug:      idea.Slug,
				Status:    status.Name,
				VoterIDs:  voterIDs,
			}
			// 通知失败不回滚状态变更
			if err := s.Notify.StatusChanged(ctx, event); err != nil {
				log.L.Error("notify voters failed",
					zap.Int64("ideaId", idea.ID),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

// MarkIdeaNotSpam 举报计数清零即撤销标记
func (s *AdminService) MarkIdeaNotSpam(ctx context.Context, slugStr string) error {
	idea, err := s.IdeaDAO.GetBySlug(ctx, slugStr)
	if err != nil {
		return err
	}
	if idea == nil {
		return response.NewError(404, "想法不存在")
	}
	return s.IdeaDAO.ResetSpamReports(ctx, idea.ID)
}

func (s *AdminService) MarkCommentNotSpam(ctx context.Context, commentID int64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewError(404, "评论不存在")
	}
	return s.CommentDAO.ResetSpamReports(ctx, commentID)
}

// SpamCounts 管理后台角标: 被举报想法数与被举报评论数
func (s *AdminService) SpamCounts(ctx context.Context) (*types.SpamCounts, error) {
	ideas, err := s.IdeaDAO.CountSpam(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.CommentDAO.CountSpam(ctx)
	if err != nil {
		return nil, err
	}
	return &types.SpamCounts{Ideas: ideas, Comments: comments}, nil
}
