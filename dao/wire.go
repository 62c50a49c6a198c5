//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewTopic,
	NewCourse,
	NewPostDAO,
	NewPostLikeDAO,
	NewFavoriteCourseDAO,
	NewComment,
)
