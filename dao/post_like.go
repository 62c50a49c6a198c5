package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
)

type PostLikeDAO struct {
	Repo[models.PostLike]
}

func NewPostLikeDAO(db *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: NewRepo[models.PostLike](db)}
}

// IsLiked 指定用户对指定帖子是否有点赞记录
func (d *PostLikeDAO) IsLiked(ctx context.Context, postID, userID string) (bool, error) {
	return d.IsExist(ctx, "post_id = ? AND user_id = ?", postID, userID)
}

// CountByPost 帖子的点赞总数，每次请求实时计算
func (d *PostLikeDAO) CountByPost(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// DeleteByPostUser 删除点赞记录，返回删除行数
func (d *PostLikeDAO) DeleteByPostUser(ctx context.Context, postID, userID string) (int64, error) {
	return d.Repo.Delete(ctx, "post_id = ? AND user_id = ?", postID, userID)
}
