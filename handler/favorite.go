package handler

import (
	"StudyHub/config"
	"StudyHub/middleware"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	Config          *config.Config
	Auth            middleware.Authenticator
	FavoriteService service.IFavoriteService
}

func (fh *FavoriteHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Identity(fh.Auth)
	r.POST("/add_favorite_course", authorize, context.Wrap(fh.AddFavoriteCourse))
	r.DELETE("/remove_favorite_course", authorize, context.Wrap(fh.RemoveFavoriteCourse))
	r.GET("/favorite_courses", authorize, context.Wrap(fh.FavoriteCourses))
}

func (fh *FavoriteHandler) courseID(c *gin.Context) (uint64, error) {
	courseIDStr := c.Query("course_id")
	courseID, err := strconv.ParseUint(courseIDStr, 10, 64)
	if err != nil || courseID == 0 {
		return 0, response.NewError(http.StatusBadRequest, "course_id is invalid")
	}
	return courseID, nil
}

// AddFavoriteCourse 收藏课程，重复收藏返回 409
func (fh *FavoriteHandler) AddFavoriteCourse(c *gin.Context) error {
	courseID, err := fh.courseID(c)
	if err != nil {
		return err
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}

	if err := fh.FavoriteService.Favorite(c.Request.Context(), courseID, userID); err != nil {
		return err
	}

	response.Success(c, gin.H{"course_id": courseID})
	return nil
}

// RemoveFavoriteCourse 取消收藏，记录不存在返回 404
func (fh *FavoriteHandler) RemoveFavoriteCourse(c *gin.Context) error {
	courseID, err := fh.courseID(c)
	if err != nil {
		return err
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}

	if err := fh.FavoriteService.Unfavorite(c.Request.Context(), courseID, userID); err != nil {
		return err
	}

	response.Success(c, gin.H{"course_id": courseID})
	return nil
}

// FavoriteCourses 当前用户收藏的课程列表
func (fh *FavoriteHandler) FavoriteCourses(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}

	courses, err := fh.FavoriteService.GetFavoriteCourses(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, courses)
	return nil
}
