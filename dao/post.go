package dao

import (
	"StudyHub/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// PostStatsRow 帖子 + 点赞统计的扫描结构
type PostStatsRow struct {
	ID          string    `gorm:"column:id" json:"id"`
	CourseID    uint64    `gorm:"column:course_id" json:"course_id"`
	AuthorID    string    `gorm:"column:author_id" json:"author_id"`
	Title       string    `gorm:"column:title" json:"title"`
	PreviewMD   string    `gorm:"column:preview_md" json:"preview_md"`
	ContentMD   string    `gorm:"column:content_md" json:"content_md"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	LikeCount   int64     `gorm:"column:like_count" json:"like_count"`
	LikedByUser bool      `gorm:"column:liked_by_user" json:"liked_by_user"`
}

func (d *PostDAO) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return d.Repo.FindByWhere(ctx, "id = ?", id)
}

// ListWithStats 列表查询，点赞数用分组子查询 + 左连接补齐，
// 零点赞的帖子也必须出现（LEFT JOIN，不能写成 INNER）
func (d *PostDAO) ListWithStats(ctx context.Context, courseID *uint64, sortByLikes bool, limit int, userID string) ([]*PostStatsRow, error) {
	q := d.Db.WithContext(ctx).Table("posts").
		Select(`posts.*,
			COALESCE(lc.like_count, 0) AS like_count,
			CASE WHEN ul.post_id IS NULL THEN 0 ELSE 1 END AS liked_by_user`).
		Joins(`LEFT JOIN (
			SELECT post_id, COUNT(*) AS like_count
			FROM post_likes
			GROUP BY post_id
		) lc ON lc.post_id = posts.id`).
		Joins(`LEFT JOIN (
			SELECT post_id FROM post_likes WHERE user_id = ?
		) ul ON ul.post_id = posts.id`, userID)

	if courseID != nil {
		q = q.Where("posts.course_id = ?", *courseID)
	}

	if sortByLikes {
		q = q.Order("like_count DESC")
	} else {
		q = q.Order("posts.created_at DESC")
	}

	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []*PostStatsRow
	err := q.Scan(&rows).Error
	return rows, err
}
