package service

import (
	"StudyHub/pkg/response"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeService_Like(t *testing.T) {
	ctx := context.Background()

	t.Run("帖子不存在返回 404", func(t *testing.T) {
		db := newTestDB(t)
		s := newLikeService(db)

		err := s.Like(ctx, "missing-post", "user-1")
		var be *response.BizError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusNotFound, be.Code)
	})

	t.Run("首次点赞成功，重复点赞返回 409", func(t *testing.T) {
		db := newTestDB(t)
		s := newLikeService(db)
		user := seedUser(t, db, "user-1", "like@example.com", "likeuser")
		topic := seedTopic(t, db, "Topic")
		course := seedCourse(t, db, topic.ID, "Course")
		post := seedPost(t, db, "post-1", course.ID, user.ID, time.Now())

		require.NoError(t, s.Like(ctx, post.ID, user.ID))

		err := s.Like(ctx, post.ID, user.ID)
		var be *response.BizError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusConflict, be.Code)
	})
}

func TestLikeService_Unlike(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	s := newLikeService(db)
	user := seedUser(t, db, "user-1", "unlike@example.com", "unlikeuser")
	topic := seedTopic(t, db, "Topic")
	course := seedCourse(t, db, topic.ID, "Course")
	post := seedPost(t, db, "post-1", course.ID, user.ID, time.Now())

	require.NoError(t, s.Like(ctx, post.ID, user.ID))
	require.NoError(t, s.Unlike(ctx, post.ID, user.ID))

	// 已经删掉了，再删一次是 404
	err := s.Unlike(ctx, post.ID, user.ID)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusNotFound, be.Code)
}
