package types

// 创建课程请求
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	TopicID     uint64 `json:"topic_id" binding:"required"`
}
