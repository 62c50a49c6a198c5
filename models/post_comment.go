package models

import "time"

// PostComment 帖子评论
// 历史上曾用 (user_id, post_id) 做联合主键，导致同一用户无法重复评论，
// 现在统一用自增 id 寻址，同一用户可对同一帖子多次评论
type PostComment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;type:varchar(64);not null;index:ix_post_comments_user_id" json:"user_id"`
	PostID    string    `gorm:"column:post_id;type:varchar(64);not null;index:ix_post_comments_post_id" json:"post_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PostComment) TableName() string { return "post_comments" }
