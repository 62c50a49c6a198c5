package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.PostComment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.PostComment](db),
	}
}

func (d *Comment) Create(ctx context.Context, comment *models.PostComment) error {
	return d.Db.WithContext(ctx).Create(comment).Error
}

// GetByID 根据ID获取评论，不存在返回 nil
func (d *Comment) GetByID(ctx context.Context, commentID uint64) (*models.PostComment, error) {
	return d.Repo.FindByWhere(ctx, "id = ?", commentID)
}

// GetByPost 获取帖子的评论列表(按时间正序，最早的在前)
func (d *Comment) GetByPost(ctx context.Context, postID string) ([]*models.PostComment, error) {
	var comments []*models.PostComment
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// DeleteByID 删除评论
func (d *Comment) DeleteByID(ctx context.Context, commentID uint64) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&models.PostComment{}).Error
}
