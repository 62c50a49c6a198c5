package handler

import (
	"StudyHub/config"
	"StudyHub/middleware"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	Config      *config.Config
	Auth        middleware.Authenticator
	LikeService service.ILikeService
}

func (lh *LikeHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Identity(lh.Auth)
	r.POST("/like_post", authorize, context.Wrap(lh.LikePost))
	r.DELETE("/remove_like", authorize, context.Wrap(lh.RemoveLike))
}

// LikePost 点赞，重复点赞返回 409
func (lh *LikeHandler) LikePost(c *gin.Context) error {
	postID := c.Query("post_id")
	if postID == "" {
		return response.NewError(http.StatusBadRequest, "post_id is required")
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}

	if err := lh.LikeService.Like(c.Request.Context(), postID, userID); err != nil {
		return err
	}

	response.Success(c, gin.H{"post_id": postID})
	return nil
}

// RemoveLike 取消点赞，记录不存在返回 404
func (lh *LikeHandler) RemoveLike(c *gin.Context) error {
	postID := c.Query("post_id")
	if postID == "" {
		return response.NewError(http.StatusBadRequest, "post_id is required")
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}

	if err := lh.LikeService.Unlike(c.Request.Context(), postID, userID); err != nil {
		return err
	}

	response.Success(c, gin.H{"post_id": postID})
	return nil
}
