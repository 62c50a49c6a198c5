package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
)

type FavoriteCourseDAO struct {
	Repo[models.FavoriteCourse]
}

func NewFavoriteCourseDAO(db *gorm.DB) *FavoriteCourseDAO {
	return &FavoriteCourseDAO{Repo: NewRepo[models.FavoriteCourse](db)}
}

// IsFavorited 指定用户是否已收藏指定课程
func (d *FavoriteCourseDAO) IsFavorited(ctx context.Context, courseID uint64, userID string) (bool, error) {
	return d.IsExist(ctx, "course_id = ? AND user_id = ?", courseID, userID)
}

// DeleteByCourseUser 删除收藏记录，返回删除行数
func (d *FavoriteCourseDAO) DeleteByCourseUser(ctx context.Context, courseID uint64, userID string) (int64, error) {
	return d.Repo.Delete(ctx, "course_id = ? AND user_id = ?", courseID, userID)
}

// GetCourseIDsByUser 用户收藏的课程ID集合
func (d *FavoriteCourseDAO) GetCourseIDsByUser(ctx context.Context, userID string) ([]uint64, error) {
	var courseIDs []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.FavoriteCourse{}).
		Where("user_id = ?", userID).
		Pluck("course_id", &courseIDs).Error
	return courseIDs, err
}

// GetCoursesByUser 通过收藏表关联出用户收藏的课程
func (d *FavoriteCourseDAO) GetCoursesByUser(ctx context.Context, userID string) ([]*models.Course, error) {
	var courses []*models.Course
	err := d.Db.WithContext(ctx).Table("courses").
		Joins("INNER JOIN favorite_courses ON favorite_courses.course_id = courses.id").
		Where("favorite_courses.user_id = ?", userID).
		Order("courses.id ASC").
		Find(&courses).Error
	return courses, err
}
