package models

// Topic 主题表
type Topic struct {
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(100);not null" json:"name"`
}

func (Topic) TableName() string { return "topics" }
