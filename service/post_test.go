package service

import (
	"StudyHub/pkg/response"
	"StudyHub/types"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("作者不存在返回 404", func(t *testing.T) {
		db := newTestDB(t)
		s := newPostService(db)
		topic := seedTopic(t, db, "Topic")
		course := seedCourse(t, db, topic.ID, "Course")

		_, err := s.CreatePost(ctx, &types.CreatePostRequest{
			CourseID:  course.ID,
			AuthorID:  "missing-user",
			Title:     "Some Title",
			PreviewMD: "Preview content here",
			ContentMD: "Full content goes here",
		})
		var be *response.BizError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusNotFound, be.Code)
		assert.Equal(t, "User not found", be.Msg)
	})

	t.Run("课程不存在返回 404", func(t *testing.T) {
		db := newTestDB(t)
		s := newPostService(db)
		user := seedUser(t, db, "user-1", "author@example.com", "author")

		_, err := s.CreatePost(ctx, &types.CreatePostRequest{
			CourseID:  9999,
			AuthorID:  user.ID,
			Title:     "Some Title",
			PreviewMD: "Preview content here",
			ContentMD: "Full content goes here",
		})
		var be *response.BizError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusNotFound, be.Code)
		assert.Equal(t, "Course not found", be.Msg)
	})

	t.Run("创建成功，id 和时间由服务端生成", func(t *testing.T) {
		db := newTestDB(t)
		s := newPostService(db)
		user := seedUser(t, db, "user-1", "author@example.com", "author")
		topic := seedTopic(t, db, "Topic")
		course := seedCourse(t, db, topic.ID, "Course")

		req := &types.CreatePostRequest{
			CourseID:  course.ID,
			AuthorID:  user.ID,
			Title:     "Getting Started",
			PreviewMD: "Preview content here",
			ContentMD: "Full content goes here",
		}
		post, err := s.CreatePost(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, post.ID)
		assert.False(t, post.CreatedAt.IsZero())
		assert.Equal(t, req.Title, post.Title)
		assert.Equal(t, req.PreviewMD, post.PreviewMD)
		assert.Equal(t, req.ContentMD, post.ContentMD)
	})
}

func TestPostService_GetPost(t *testing.T) {
	ctx := context.Background()

	t.Run("帖子不存在返回 404", func(t *testing.T) {
		db := newTestDB(t)
		s := newPostService(db)

		_, err := s.GetPost(ctx, "missing-post", "user-1")
		var be *response.BizError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusNotFound, be.Code)
	})

	t.Run("点赞数据实时计算", func(t *testing.T) {
		db := newTestDB(t)
		s := newPostService(db)
		likes := newLikeService(db)
		author := seedUser(t, db, "author-1", "author@example.com", "author")
		other := seedUser(t, db, "other-1", "other@example.com", "other")
		topic := seedTopic(t, db, "Topic")
		course := seedCourse(t, db, topic.ID, "Course")
		post := seedPost(t, db, "post-1", course.ID, author.ID, time.Now())

		detail, err := s.GetPost(ctx, post.ID, author.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, detail.LikeCount)
		assert.False(t, detail.LikedByUser)
		assert.Equal(t, author.Name, detail.AuthorName)

		require.NoError(t, likes.Like(ctx, post.ID, author.ID))
		require.NoError(t, likes.Like(ctx, post.ID, other.ID))

		detail, err = s.GetPost(ctx, post.ID, author.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, detail.LikeCount)
		assert.True(t, detail.LikedByUser)

		// 未点赞的视角
		stranger := seedUser(t, db, "stranger-1", "stranger@example.com", "stranger")
		detail, err = s.GetPost(ctx, post.ID, stranger.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, detail.LikeCount)
		assert.False(t, detail.LikedByUser)
	})

	t.Run("作者行缺失时用占位名", func(t *testing.T) {
		db := newTestDB(t)
		s := newPostService(db)
		author := seedUser(t, db, "author-1", "gone@example.com", "gone")
		topic := seedTopic(t, db, "Topic")
		course := seedCourse(t, db, topic.ID, "Course")
		post := seedPost(t, db, "post-1", course.ID, author.ID, time.Now())

		// 直接删掉作者行，模拟悬挂引用
		require.NoError(t, db.Delete(author).Error)

		detail, err := s.GetPost(ctx, post.ID, "someone")
		require.NoError(t, err)
		assert.Equal(t, UnknownAuthorName, detail.AuthorName)
	})
}

func TestPostService_ListPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("课程过滤但课程不存在返回 404", func(t *testing.T) {
		db := newTestDB(t)
		s := newPostService(db)
		missing := uint64(9999)

		_, err := s.ListPosts(ctx, &types.ListPostsRequest{CourseID: &missing}, "user-1")
		var be *response.BizError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusNotFound, be.Code)
	})

	t.Run("默认按创建时间倒序，零点赞的帖子也在", func(t *testing.T) {
		db := newTestDB(t)
		s := newPostService(db)
		likes := newLikeService(db)
		user := seedUser(t, db, "user-1", "list@example.com", "listuser")
		topic := seedTopic(t, db, "Topic")
		course := seedCourse(t, db, topic.ID, "Course")

		base := time.Now().Add(-time.Hour)
		oldest := seedPost(t, db, "post-old", course.ID, user.ID, base)
		middle := seedPost(t, db, "post-mid", course.ID, user.ID, base.Add(10*time.Minute))
		newest := seedPost(t, db, "post-new", course.ID, user.ID, base.Add(20*time.Minute))

		require.NoError(t, likes.Like(ctx, middle.ID, user.ID))

		rows, err := s.ListPosts(ctx, &types.ListPostsRequest{}, user.ID)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, newest.ID, rows[0].ID)
		assert.Equal(t, middle.ID, rows[1].ID)
		assert.Equal(t, oldest.ID, rows[2].ID)

		// 零点赞的帖子 like_count 是 0 而不是缺行
		assert.EqualValues(t, 0, rows[0].LikeCount)
		assert.EqualValues(t, 1, rows[1].LikeCount)
		assert.True(t, rows[1].LikedByUser)
		assert.False(t, rows[0].LikedByUser)
	})

	t.Run("按点赞数倒序", func(t *testing.T) {
		db := newTestDB(t)
		s := newPostService(db)
		likes := newLikeService(db)
		u1 := seedUser(t, db, "user-1", "u1@example.com", "u1")
		u2 := seedUser(t, db, "user-2", "u2@example.com", "u2")
		topic := seedTopic(t, db, "Topic")
		course := seedCourse(t, db, topic.ID, "Course")

		base := time.Now().Add(-time.Hour)
		hot := seedPost(t, db, "post-hot", course.ID, u1.ID, base)
		warm := seedPost(t, db, "post-warm", course.ID, u1.ID, base.Add(time.Minute))
		cold := seedPost(t, db, "post-cold", course.ID, u1.ID, base.Add(2*time.Minute))

		require.NoError(t, likes.Like(ctx, hot.ID, u1.ID))
		require.NoError(t, likes.Like(ctx, hot.ID, u2.ID))
		require.NoError(t, likes.Like(ctx, warm.ID, u1.ID))

		rows, err := s.ListPosts(ctx, &types.ListPostsRequest{SortByLikes: true}, u1.ID)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, hot.ID, rows[0].ID)
		assert.Equal(t, warm.ID, rows[1].ID)
		assert.Equal(t, cold.ID, rows[2].ID)

		// 点赞数非递增
		for i := 1; i < len(rows); i++ {
			assert.GreaterOrEqual(t, rows[i-1].LikeCount, rows[i].LikeCount)
		}
	})

	t.Run("limit 截断与课程过滤", func(t *testing.T) {
		db := newTestDB(t)
		s := newPostService(db)
		user := seedUser(t, db, "user-1", "limit@example.com", "limituser")
		topic := seedTopic(t, db, "Topic")
		c1 := seedCourse(t, db, topic.ID, "Course One")
		c2 := seedCourse(t, db, topic.ID, "Course Two")

		base := time.Now().Add(-time.Hour)
		seedPost(t, db, "post-1", c1.ID, user.ID, base)
		seedPost(t, db, "post-2", c1.ID, user.ID, base.Add(time.Minute))
		seedPost(t, db, "post-3", c2.ID, user.ID, base.Add(2*time.Minute))

		rows, err := s.ListPosts(ctx, &types.ListPostsRequest{CourseID: &c1.ID}, user.ID)
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		rows, err = s.ListPosts(ctx, &types.ListPostsRequest{Limit: 1}, user.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "post-3", rows[0].ID)
	})
}
