package types

// 创建主题请求
type CreateTopicRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CourseItem 课程条目，带当前用户的收藏标记
type CourseItem struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TopicID     uint64 `json:"topic_id"`
	IsFavorite  bool   `json:"is_favorite"`
}

// TopicWithCourses 主题及其全部课程（没有课程也要出现，courses 为空数组）
type TopicWithCourses struct {
	ID      uint64        `json:"id"`
	Name    string        `json:"name"`
	Courses []*CourseItem `json:"courses"`
}
