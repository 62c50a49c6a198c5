package models

// PostLike 点赞记录
// 联合主键 (user_id, post_id)，同一用户对同一帖子至多一条
type PostLike struct {
	UserID string `gorm:"column:user_id;type:varchar(64);primaryKey" json:"user_id"`
	PostID string `gorm:"column:post_id;type:varchar(64);primaryKey" json:"post_id"`
}

func (PostLike) TableName() string { return "post_likes" }
