package dao

import (
	"context"

	"voteboard/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteDAO struct {
	Repo[models.Vote]
}

func NewVoteDAO(db *gorm.DB) *VoteDAO {
	return &VoteDAO{Repo: NewRepo[models.Vote](db)}
}

// Create 投票, 依赖 uk_idea_user 唯一键, 重复投票不报错也不产生第二条记录
func (d *VoteDAO) Create(ctx context.Context, ideaID, userID int64) error {
	vote := models.Vote{IdeaID: ideaID, UserID: userID}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&vote).Error
}

// Delete 取消投票, 不存在时为空操作
func (d *VoteDAO) Delete(ctx context.Context, ideaID, userID int64) error {
	return d.Db.WithContext(ctx).
		Where("idea_id = ? AND user_id = ?", ideaID, userID).
		Delete(&models.Vote{}).Error
}

// HasVoted 用户是否已投票
func (d *VoteDAO) HasVoted(ctx context.Context, ideaID, userID int64) (bool, error) {
	return d.IsExist(ctx, "idea_id = ? AND user_id = ?", ideaID, userID)
}

// CountByIdea 单个想法的票数
func (d *VoteDAO) CountByIdea(ctx context.Context, ideaID int64) (int64, error) {
	return d.Count(ctx, "idea_id = ?", ideaID)
}

// CountByIdeaIDs 批量聚合票数, 一次 GROUP BY 查询, 无投票的想法不在结果里
func (d *VoteDAO) CountByIdeaIDs(ctx context.Context, ideaIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(ideaIDs))
	if len(ideaIDs) == 0 {
		return counts, nil
	}

	type row struct {
		IdeaID int64
		Total  int64
	}
	var rows []row

	err := d.Db.WithContext(ctx).Model(&models.Vote{}).
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

// VotedSet 用户在给定想法集合中投过票的子集
func (d *VoteDAO) VotedSet(ctx context.Context, userID int64, ideaIDs []int64) (map[int64]struct{}, error) {
	voted := make(map[int64]struct{}, len(ideaIDs))
	if userID == 0 || len(ideaIDs) == 0 {
		return voted, nil
	}

	var ids []int64
	err := d.Db.WithContext(ctx).Model(&models.Vote{}).
		Where("user_id = ? AND idea_id IN ?", userID, ideaIDs).
		Pluck("idea_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		voted[id] = struct{}{}
	}
	return voted, nil
}

// VoterIDs 给想法投过票的全部用户 (状态变更通知用)
func (d *VoteDAO) VoterIDs(ctx context.Context, ideaID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).Model(&models.Vote{}).
		Where("idea_id = ?", ideaID).
		Pluck("user_id", &ids).Error
	return ids, err
}
