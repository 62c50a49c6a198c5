package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
)

type Course struct {
	Repo[models.Course]
}

func NewCourse(db *gorm.DB) *Course {
	return &Course{
		Repo: NewRepo[models.Course](db),
	}
}

func (d *Course) CreateCourse(ctx context.Context, course *models.Course) error {
	return d.Db.WithContext(ctx).Create(course).Error
}

// GetAll - 获取全部课程（按主题分组由上层完成）
func (d *Course) GetAll(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	err := d.Db.WithContext(ctx).Order("id ASC").Find(&courses).Error
	return courses, err
}
