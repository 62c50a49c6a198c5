package database

import (
	"StudyHub/models"
	"StudyHub/pkg/log"

	"gorm.io/gorm"
)

// Migrate 建表与历史修复
func Migrate(db *gorm.DB) error {
	// 旧版 post_comments 用 (user_id, post_id) 做联合主键，没有 id 列，
	// 同一用户无法重复评论。检测到旧表结构时直接重建（与线上迁移历史一致）
	m := db.Migrator()
	if m.HasTable(&models.PostComment{}) && !m.HasColumn(&models.PostComment{}, "id") {
		log.L.Info("rebuilding post_comments with surrogate id")
		if err := m.DropTable(&models.PostComment{}); err != nil {
			return err
		}
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Course{},
		&models.Post{},
		&models.PostComment{},
		&models.PostLike{},
		&models.FavoriteCourse{},
	)
}
