package service

import (
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/database"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB 每个测试用独立的 sqlite 文件库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, email, userName string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       id,
		Email:    email,
		UserName: userName,
		Name:     "Test User",
		ImageURL: "https://example.com/image.jpg",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTopic(t *testing.T, db *gorm.DB, name string) *models.Topic {
	t.Helper()
	topic := &models.Topic{Name: name}
	require.NoError(t, db.Create(topic).Error)
	return topic
}

func seedCourse(t *testing.T, db *gorm.DB, topicID uint64, name string) *models.Course {
	t.Helper()
	course := &models.Course{Name: name, Description: "A test course", TopicID: topicID}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedPost(t *testing.T, db *gorm.DB, id string, courseID uint64, authorID string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		ID:        id,
		CourseID:  courseID,
		AuthorID:  authorID,
		Title:     "Test Post",
		PreviewMD: "Preview content",
		ContentMD: "Full content",
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func newPostService(db *gorm.DB) *PostService {
	return &PostService{
		PostDAO:   dao.NewPostDAO(db),
		LikeDAO:   dao.NewPostLikeDAO(db),
		UserDAO:   dao.NewUsers(db),
		CourseDAO: dao.NewCourse(db),
	}
}

func newLikeService(db *gorm.DB) *LikeService {
	return &LikeService{
		LikeDAO: dao.NewPostLikeDAO(db),
		PostDAO: dao.NewPostDAO(db),
	}
}
