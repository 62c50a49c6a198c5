package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
)

type Topic struct {
	Repo[models.Topic]
}

func NewTopic(db *gorm.DB) *Topic {
	return &Topic{
		Repo: NewRepo[models.Topic](db),
	}
}

// 创建主题
func (d *Topic) CreateTopic(ctx context.Context, topic *models.Topic) error {
	return d.Db.WithContext(ctx).Create(topic).Error
}

// GetAll - 获取全部主题
func (d *Topic) GetAll(ctx context.Context) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := d.Db.WithContext(ctx).Order("id ASC").Find(&topics).Error
	return topics, err
}
