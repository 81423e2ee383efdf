package dao

import (
	"context"
	"errors"

	"voteboard/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

func (d *CommentDAO) Create(ctx context.Context, comment *models.Comment) error {
	return d.Db.WithContext(ctx).Create(comment).Error
}

func (d *CommentDAO) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := d.Db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if comment.ID == 0 {
		return nil, nil
	}
	return &comment, nil
}

// FindByIdea 某个想法的评论分页, 按时间正序
func (d *CommentDAO) FindByIdea(ctx context.Context, ideaID int64, offset, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// CountByIdea 某个想法的评论总数
func (d *CommentDAO) CountByIdea(ctx context.Context, ideaID int64) (int64, error) {
	return d.Count(ctx, "idea_id = ?", ideaID)
}

// CountByIdeaIDs 批量聚合评论数
func (d *CommentDAO) CountByIdeaIDs(ctx context.Context, ideaIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(ideaIDs))
	if len(ideaIDs) == 0 {
		return counts, nil
	}

	type row struct {
		IdeaID int64
		Total  int64
	}
	var rows []row

	err := d.Db.WithContext(ctx).Model(&models.Comment{}).
		Select("idea_id, COUNT(*) AS total").
		Where("idea_id IN ?", ideaIDs).
		Group("idea_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.IdeaID] = r.Total
	}
	return counts, nil
}

// SpamIdeaSet 给定想法集合中存在被举报评论的子集,
// 每个想法至多出现一次, 与被举报评论条数无关
func (d *CommentDAO) SpamIdeaSet(ctx context.Context, ideaIDs []int64) (map[int64]struct{}, error) {
	set := make(map[int64]struct{}, len(ideaIDs))
	if len(ideaIDs) == 0 {
		return set, nil
	}

	var ids []int64
	err := d.Db.WithContext(ctx).Model(&models.Comment{}).
		Distinct("idea_id").
		Where("idea_id IN ? AND spam_reports > 0", ideaIDs).
		Pluck("idea_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// IncrSpamReports 累加举报计数
func (d *CommentDAO) IncrSpamReports(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("spam_reports", gorm.Expr("spam_reports + 1")).Error
}

// ResetSpamReports 清零举报计数
func (d *CommentDAO) ResetSpamReports(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Update("spam_reports", 0).Error
}

// CountSpam 被举报评论总数 (管理员角标)
func (d *CommentDAO) CountSpam(ctx context.Context) (int64, error) {
	return d.Count(ctx, "spam_reports > 0")
}
