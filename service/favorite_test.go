package service

import (
	"StudyHub/dao"
	"StudyHub/pkg/response"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{
		FavoriteDAO: dao.NewFavoriteCourseDAO(db),
		CourseDAO:   dao.NewCourse(db),
		UserDAO:     dao.NewUsers(db),
	}
}

func TestFavoriteService_Favorite(t *testing.T) {
	ctx := context.Background()

	t.Run("用户不存在返回 404", func(t *testing.T) {
		db := newTestDB(t)
		s := newFavoriteService(db)
		topic := seedTopic(t, db, "Topic")
		course := seedCourse(t, db, topic.ID, "Course")

		err := s.Favorite(ctx, course.ID, "missing-user")
		var be *response.BizError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusNotFound, be.Code)
	})

	t.Run("课程不存在返回 404", func(t *testing.T) {
		db := newTestDB(t)
		s := newFavoriteService(db)
		user := seedUser(t, db, "user-1", "f@example.com", "fav")

		err := s.Favorite(ctx, 9999, user.ID)
		var be *response.BizError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusNotFound, be.Code)
	})

	t.Run("首次收藏成功，重复收藏返回 409", func(t *testing.T) {
		db := newTestDB(t)
		s := newFavoriteService(db)
		user := seedUser(t, db, "user-1", "f@example.com", "fav")
		topic := seedTopic(t, db, "Topic")
		course := seedCourse(t, db, topic.ID, "Course")

		require.NoError(t, s.Favorite(ctx, course.ID, user.ID))

		err := s.Favorite(ctx, course.ID, user.ID)
		var be *response.BizError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusConflict, be.Code)
	})
}

func TestFavoriteService_Unfavorite(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	s := newFavoriteService(db)
	user := seedUser(t, db, "user-1", "uf@example.com", "unfav")
	topic := seedTopic(t, db, "Topic")
	course := seedCourse(t, db, topic.ID, "Course")

	require.NoError(t, s.Favorite(ctx, course.ID, user.ID))
	require.NoError(t, s.Unfavorite(ctx, course.ID, user.ID))

	err := s.Unfavorite(ctx, course.ID, user.ID)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusNotFound, be.Code)
}

func TestFavoriteService_GetFavoriteCourses(t *testing.T) {
	ctx := context.Background()

	t.Run("用户不存在返回 404", func(t *testing.T) {
		db := newTestDB(t)
		s := newFavoriteService(db)

		_, err := s.GetFavoriteCourses(ctx, "missing-user")
		var be *response.BizError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusNotFound, be.Code)
	})

	t.Run("只返回收藏过的课程，全部带收藏标记", func(t *testing.T) {
		db := newTestDB(t)
		s := newFavoriteService(db)
		user := seedUser(t, db, "user-1", "list@example.com", "lister")
		topic := seedTopic(t, db, "Topic")
		liked := seedCourse(t, db, topic.ID, "Liked Course")
		seedCourse(t, db, topic.ID, "Other Course")

		require.NoError(t, s.Favorite(ctx, liked.ID, user.ID))

		courses, err := s.GetFavoriteCourses(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, liked.ID, courses[0].ID)
		assert.True(t, courses[0].IsFavorite)
	})
}

func TestTopicService_GetTopicsWithCourses(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	s := &TopicService{
		TopicDAO:    dao.NewTopic(db),
		CourseDAO:   dao.NewCourse(db),
		FavoriteDAO: dao.NewFavoriteCourseDAO(db),
	}
	favorites := newFavoriteService(db)

	user := seedUser(t, db, "user-1", "t@example.com", "topicuser")
	ai := seedTopic(t, db, "Artificial Intelligence")
	empty := seedTopic(t, db, "Empty Topic")
	ml := seedCourse(t, db, ai.ID, "Machine Learning Basics")
	dl := seedCourse(t, db, ai.ID, "Deep Learning with PyTorch")

	require.NoError(t, favorites.Favorite(ctx, ml.ID, user.ID))

	result, err := s.GetTopicsWithCourses(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, ai.ID, result[0].ID)
	require.Len(t, result[0].Courses, 2)

	byID := map[uint64]bool{}
	for _, course := range result[0].Courses {
		byID[course.ID] = course.IsFavorite
	}
	assert.True(t, byID[ml.ID])
	assert.False(t, byID[dl.ID])

	// 没有课程的主题也要出现，courses 是空数组不是 nil
	assert.Equal(t, empty.ID, result[1].ID)
	assert.NotNil(t, result[1].Courses)
	assert.Empty(t, result[1].Courses)
}
