package models

// FavoriteCourse 收藏课程
// 联合主键 (user_id, course_id)
type FavoriteCourse struct {
	UserID   string `gorm:"column:user_id;type:varchar(64);primaryKey" json:"user_id"`
	CourseID uint64 `gorm:"column:course_id;primaryKey;autoIncrement:false" json:"course_id"`
}

func (FavoriteCourse) TableName() string { return "favorite_courses" }
