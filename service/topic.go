package service

import (
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/types"
	"context"
)

var _ ITopicService = (*TopicService)(nil)

type ITopicService interface {
	CreateTopic(ctx context.Context, name string) (*models.Topic, error)
	GetTopicsWithCourses(ctx context.Context, userID string) ([]*types.TopicWithCourses, error)
}

type TopicService struct {
	TopicDAO    *dao.Topic
	CourseDAO   *dao.Course
	FavoriteDAO *dao.FavoriteCourseDAO
}

func (s *TopicService) CreateTopic(ctx context.Context, name string) (*models.Topic, error) {
	topic := &models.Topic{Name: name}
	if err := s.TopicDAO.CreateTopic(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// GetTopicsWithCourses 全部主题及其课程，课程带当前用户的收藏标记。
// 没有课程的主题同样返回（courses 为空数组）
func (s *TopicService) GetTopicsWithCourses(ctx context.Context, userID string) ([]*types.TopicWithCourses, error) {
	topics, err := s.TopicDAO.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.CourseDAO.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	favIDs, err := s.FavoriteDAO.GetCourseIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	favSet := make(map[uint64]struct{}, len(favIDs))
	for _, id := range favIDs {
		favSet[id] = struct{}{}
	}

	// 按主题分组
	byTopic := make(map[uint64][]*types.CourseItem, len(topics))
	for _, course := range courses {
		_, fav := favSet[course.ID]
		byTopic[course.TopicID] = append(byTopic[course.TopicID], &types.CourseItem{
			ID:          course.ID,
			Name:        course.Name,
			Description: course.Description,
			TopicID:     course.TopicID,
			IsFavorite:  fav,
		})
	}

	result := make([]*types.TopicWithCourses, 0, len(topics))
	for _, topic := range topics {
		items := byTopic[topic.ID]
		if items == nil {
			items = make([]*types.CourseItem, 0)
		}
		result = append(result, &types.TopicWithCourses{
			ID:      topic.ID,
			Name:    topic.Name,
			Courses: items,
		})
	}
	return result, nil
}
