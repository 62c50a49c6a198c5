package models

// Course 课程表，挂在某个主题下
type Course struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string `gorm:"column:description;type:varchar(500);default:''" json:"description"`
	TopicID     uint64 `gorm:"column:topic_id;not null;index:idx_courses_topic_id" json:"topic_id"`
}

func (Course) TableName() string { return "courses" }
