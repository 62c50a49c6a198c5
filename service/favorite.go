package service

import (
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/response"
	"StudyHub/types"
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var _ IFavoriteService = (*FavoriteService)(nil)

type IFavoriteService interface {
	Favorite(ctx context.Context, courseID uint64, userID string) error
	Unfavorite(ctx context.Context, courseID uint64, userID string) error
	GetFavoriteCourses(ctx context.Context, userID string) ([]*types.CourseItem, error)
}

type FavoriteService struct {
	FavoriteDAO *dao.FavoriteCourseDAO
	CourseDAO   *dao.Course
	UserDAO     *dao.Users
}

func (s *FavoriteService) Favorite(ctx context.Context, courseID uint64, userID string) error {
	userExist, err := s.UserDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return err
	}
	if !userExist {
		return response.NewError(http.StatusNotFound, "User not found")
	}

	courseExist, err := s.CourseDAO.IsExist(ctx, "id = ?", courseID)
	if err != nil {
		return err
	}
	if !courseExist {
		return response.NewError(http.StatusNotFound, "Course not found")
	}

	isFav, err := s.FavoriteDAO.IsFavorited(ctx, courseID, userID)
	if err != nil {
		return err
	}
	if isFav {
		return response.NewError(http.StatusConflict, "Course already in favorites")
	}

	if err := s.FavoriteDAO.Create(ctx, &models.FavoriteCourse{UserID: userID, CourseID: courseID}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.NewError(http.StatusConflict, "Course already in favorites")
		}
		return err
	}
	return nil
}

func (s *FavoriteService) Unfavorite(ctx context.Context, courseID uint64, userID string) error {
	rows, err := s.FavoriteDAO.DeleteByCourseUser(ctx, courseID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return response.NewError(http.StatusNotFound, "Favorite not found")
	}
	return nil
}

// GetFavoriteCourses 用户收藏的课程，结果里全部带收藏标记
func (s *FavoriteService) GetFavoriteCourses(ctx context.Context, userID string) ([]*types.CourseItem, error) {
	userExist, err := s.UserDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return nil, err
	}
	if !userExist {
		return nil, response.NewError(http.StatusNotFound, "User not found")
	}

	courses, err := s.FavoriteDAO.GetCoursesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*types.CourseItem, 0, len(courses))
	for _, course := range courses {
		items = append(items, &types.CourseItem{
			ID:          course.ID,
			Name:        course.Name,
			Description: course.Description,
			TopicID:     course.TopicID,
			IsFavorite:  true,
		})
	}
	return items, nil
}
