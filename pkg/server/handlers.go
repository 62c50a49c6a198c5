package server

import (
	"StudyHub/handler"
)

type Handlers struct {
	User     *handler.UserHandler
	Topic    *handler.TopicHandler
	Course   *handler.CourseHandler
	Post     *handler.PostHandler
	Like     *handler.LikeHandler
	Favorite *handler.FavoriteHandler
	Comment  *handler.CommentHandler
}
