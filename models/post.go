package models

import "time"

// Post 帖子表
// id 为服务端生成的 uuid 字符串，created_at 写入后不再变更
type Post struct {
	ID        string    `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	CourseID  uint64    `gorm:"column:course_id;not null;index:idx_posts_course_id" json:"course_id"`
	AuthorID  string    `gorm:"column:author_id;type:varchar(64);not null;index:idx_posts_author_id" json:"author_id"`
	Title     string    `gorm:"column:title;type:varchar(100);not null" json:"title"`
	PreviewMD string    `gorm:"column:preview_md;type:varchar(500);not null" json:"preview_md"`
	ContentMD string    `gorm:"column:content_md;type:text;not null" json:"content_md"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_posts_created_at" json:"created_at"`
}

func (Post) TableName() string { return "posts" }
