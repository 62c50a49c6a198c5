package types

import "time"

// 创建评论请求，同一用户可对同一帖子重复评论
type AddCommentRequest struct {
	PostID  string `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// CommentResponse 评论条目，is_author 标记当前请求者是否为评论作者
type CommentResponse struct {
	ID        uint64    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsAuthor  bool      `json:"is_author"`
}
