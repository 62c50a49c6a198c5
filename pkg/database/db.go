package database

import (
	"StudyHub/config"
	"StudyHub/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// 唯一键冲突翻译成 gorm.ErrDuplicatedKey，并发点赞依赖它兜底
		TranslateError: true,
	})
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")

	if err := Migrate(db); err != nil {
		log.L.Error("failed to migrate database", zap.Error(err))
	}
	return db
}
