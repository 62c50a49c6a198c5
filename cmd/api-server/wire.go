//go:build wireinject
// +build wireinject

package main

import (
	"StudyHub/config"
	"StudyHub/dao"
	"StudyHub/handler"
	"StudyHub/middleware"
	"StudyHub/pkg/database"
	"StudyHub/pkg/server"
	"StudyHub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		server.NewGinEngine,
		middleware.NewHeaderAuthenticator,

		wire.Struct(new(handler.UserHandler), "*"),
		wire.Struct(new(handler.TopicHandler), "*"),
		wire.Struct(new(handler.CourseHandler), "*"),
		wire.Struct(new(handler.PostHandler), "*"),
		wire.Struct(new(handler.LikeHandler), "*"),
		wire.Struct(new(handler.FavoriteHandler), "*"),
		wire.Struct(new(handler.CommentHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
