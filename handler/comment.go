package handler

import (
	"StudyHub/config"
	"StudyHub/middleware"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"StudyHub/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	Config         *config.Config
	Auth           middleware.Authenticator
	CommentService service.ICommentService
}

func (ch *CommentHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Identity(ch.Auth)
	r.POST("/add_comment", authorize, context.Wrap(ch.AddComment))
	r.DELETE("/remove_comment", authorize, context.Wrap(ch.RemoveComment))
	r.GET("/get_comments", authorize, context.Wrap(ch.GetComments))
}

// AddComment 创建评论
func (ch *CommentHandler) AddComment(c *gin.Context) error {
	var req types.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}

	comment, err := ch.CommentService.AddComment(c.Request.Context(), &req, userID)
	if err != nil {
		return err
	}

	response.Success(c, comment)
	return nil
}

// RemoveComment 删除评论，只能删自己的
func (ch *CommentHandler) RemoveComment(c *gin.Context) error {
	commentIDStr := c.Query("comment_id")
	commentID, err := strconv.ParseUint(commentIDStr, 10, 64)
	if err != nil || commentID == 0 {
		return response.NewError(http.StatusBadRequest, "comment_id is invalid")
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}

	if err := ch.CommentService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		return err
	}

	response.Success(c, gin.H{"comment_id": commentID})
	return nil
}

// GetComments 帖子的评论列表(按时间正序)
func (ch *CommentHandler) GetComments(c *gin.Context) error {
	postID := c.Query("post_id")
	if postID == "" {
		return response.NewError(http.StatusBadRequest, "post_id is required")
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}

	comments, err := ch.CommentService.GetComments(c.Request.Context(), postID, userID)
	if err != nil {
		return err
	}

	response.Success(c, comments)
	return nil
}
