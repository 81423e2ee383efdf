package dao

import (
	"context"
	"errors"

	"voteboard/models"
	"voteboard/types"

	"gorm.io/gorm"
)

type IdeaDAO struct {
	Repo[models.Idea]
}

func NewIdeaDAO(db *gorm.DB) *IdeaDAO {
	return &IdeaDAO{Repo: NewRepo[models.Idea](db)}
}

// FeedPage 按筛选模式查询一页想法, 返回窗口数据和总条数.
// 排序二级键统一为 created_at DESC, id DESC (雪花ID随时间递增)
func (d *IdeaDAO) FeedPage(ctx context.Context, f *types.FeedFilter, callerID int64, offset, limit int) ([]*models.Idea, int64, error) {
	var ideas []*models.Idea

	base := d.filtered(ctx, f, callerID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := d.filtered(ctx, f, callerID)
	switch f.Mode {
	case types.FilterTopVoted:
		q = q.Select("ideas.*, COUNT(votes.id) AS vote_rank").
			Joins("LEFT JOIN votes ON votes.idea_id = ideas.id").
			Group("ideas.id").
			Order("vote_rank DESC, ideas.created_at DESC, ideas.id DESC")
	case types.FilterSpamIdeas:
		q = q.Order("spam_reports DESC, created_at DESC, id DESC")
	default:
		q = q.Order("created_at DESC, id DESC")
	}

	err := q.Offset(offset).Limit(limit).Find(&ideas).Error
	return ideas, total, err
}

// CountByStatus 各状态下的想法数量, 口径为除状态外的当前筛选范围,
// 这样切换状态页签不会改变其它页签的计数
func (d *IdeaDAO) CountByStatus(ctx context.Context, f *types.FeedFilter, callerID int64) (map[int64]int64, error) {
	type row struct {
		StatusID int64
		Total    int64
	}
	var rows []row

	q := d.Db.WithContext(ctx).Model(&models.Idea{}).
		Select("status_id, COUNT(*) AS total")
	q = applyScope(q, f, callerID)

	if err := q.Group("status_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, r := range rows {
		counts[r.StatusID] = r.Total
	}
	return counts, nil
}

// filtered 按模式构建筛选后的查询, 不含排序
func (d *IdeaDAO) filtered(ctx context.Context, f *types.FeedFilter, callerID int64) *gorm.DB {
	q := d.Db.WithContext(ctx).Model(&models.Idea{})

	switch f.Mode {
	case types.FilterStatus:
		return q.Where("status_id = ?", f.StatusID)
	case types.FilterTopVoted:
		return q
	case types.FilterSpamIdeas:
		return q.Where("spam_reports > 0")
	case types.FilterSpamComments:
		return q.Where("EXISTS (SELECT 1 FROM comments WHERE comments.idea_id = ideas.id AND comments.spam_reports > 0)")
	default:
		return applyScope(q, f, callerID)
	}
}

// applyScope 叠加分类/搜索/归属维度 (默认模式与 My Ideas 下生效)
func applyScope(q *gorm.DB, f *types.FeedFilter, callerID int64) *gorm.DB {
	if f.Mode == types.FilterMyIdeas {
		q = q.Where("user_id = ?", callerID)
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("(title LIKE ? OR description LIKE ?)", like, like)
	}
	return q
}

func (d *IdeaDAO) Create(ctx context.Context, idea *models.Idea) error {
	return d.Db.WithContext(ctx).Create(idea).Error
}

func (d *IdeaDAO) GetByID(ctx context.Context, id int64) (*models.Idea, error) {
	var idea models.Idea
	err := d.Db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&idea).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if idea.ID == 0 {
		return nil, nil
	}
	return &idea, nil
}

func (d *IdeaDAO) GetBySlug(ctx context.Context, slug string) (*models.Idea, error) {
	var idea models.Idea
	err := d.Db.WithContext(ctx).Where("slug = ?", slug).Limit(1).Find(&idea).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if idea.ID == 0 {
		return nil, nil
	}
	return &idea, nil
}

// UpdateContent 更新标题/描述/分类
func (d *IdeaDAO) UpdateContent(ctx context.Context, id int64, values map[string]interface{}) error {
	return d.Db.WithContext(ctx).
		Model(&models.Idea{}).
		Where("id = ?", id).
		Updates(values).Error
}

// UpdateStatus 更新想法状态
func (d *IdeaDAO) UpdateStatus(ctx context.Context, id int64, statusID int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Idea{}).
		Where("id = ?", id).
		Update("status_id", statusID).Error
}

// IncrSpamReports 累加举报计数
func (d *IdeaDAO) IncrSpamReports(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Idea{}).
		Where("id = ?", id).
		UpdateColumn("spam_reports", gorm.Expr("spam_reports + 1")).Error
}

// ResetSpamReports 清零举报计数
func (d *IdeaDAO) ResetSpamReports(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Idea{}).
		Where("id = ?", id).
		Update("spam_reports", 0).Error
}

// Delete 删除想法及其投票/评论
func (d *IdeaDAO) Delete(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("idea_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Idea{}).Error
	})
}

// CountSpam 被举报想法总数 (管理员角标)
func (d *IdeaDAO) CountSpam(ctx context.Context) (int64, error) {
	return d.Count(ctx, "spam_reports > 0")
}
