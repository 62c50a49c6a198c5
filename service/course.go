package service

import (
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/response"
	"StudyHub/types"
	"context"
	"net/http"
)

var _ ICourseService = (*CourseService)(nil)

type ICourseService interface {
	CreateCourse(ctx context.Context, req *types.CreateCourseRequest) (*models.Course, error)
}

type CourseService struct {
	CourseDAO *dao.Course
	TopicDAO  *dao.Topic
}

func (s *CourseService) CreateCourse(ctx context.Context, req *types.CreateCourseRequest) (*models.Course, error) {
	// 校验主题存在
	exist, err := s.TopicDAO.IsExist(ctx, "id = ?", req.TopicID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewError(http.StatusNotFound, "Topic not found")
	}

	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		TopicID:     req.TopicID,
	}
	if err := s.CourseDAO.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}
