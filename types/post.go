package types

import "time"

// 创建帖子请求
type CreatePostRequest struct {
	CourseID  uint64 `json:"course_id" binding:"required"`
	AuthorID  string `json:"author_id" binding:"required"`
	Title     string `json:"title" binding:"required,min=3,max=100"`
	PreviewMD string `json:"preview_md" binding:"required,min=10,max=500"`
	ContentMD string `json:"content_md" binding:"required,min=10,max=5000"`
}

// 帖子列表查询参数
type ListPostsRequest struct {
	CourseID    *uint64 `form:"course_id"`
	SortByLikes bool    `form:"sort_by_likes"`
	Limit       int     `form:"limit"`
}

// PostDetailResponse 单帖详情，点赞数据每次实时计算
type PostDetailResponse struct {
	ID          string    `json:"id"`
	CourseID    uint64    `json:"course_id"`
	AuthorID    string    `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Title       string    `json:"title"`
	PreviewMD   string    `json:"preview_md"`
	ContentMD   string    `json:"content_md"`
	CreatedAt   time.Time `json:"created_at"`
	LikeCount   int64     `json:"like_count"`
	LikedByUser bool      `json:"liked_by_user"`
}
