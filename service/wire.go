package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(TopicService), "*"),
	wire.Bind(new(ITopicService), new(*TopicService)),

	wire.Struct(new(CourseService), "*"),
	wire.Bind(new(ICourseService), new(*CourseService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(FavoriteService), "*"),
	wire.Bind(new(IFavoriteService), new(*FavoriteService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),
)
