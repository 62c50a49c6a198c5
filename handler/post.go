package handler

import (
	"StudyHub/config"
	"StudyHub/middleware"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"StudyHub/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	Config      *config.Config
	Auth        middleware.Authenticator
	PostService service.IPostService
}

func (ph *PostHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Identity(ph.Auth)
	r.POST("/create_post", context.Wrap(ph.CreatePost))
	r.GET("/get_post/:post_id", authorize, context.Wrap(ph.GetPost))
	r.GET("/posts", authorize, context.Wrap(ph.ListPosts))
}

// CreatePost 创建帖子，作者和课程都要存在
func (ph *PostHandler) CreatePost(c *gin.Context) error {
	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	post, err := ph.PostService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	// 创建响应不含点赞数据，详情/列表接口才带
	response.Success(c, post)
	return nil
}

// GetPost 单帖详情，带实时点赞数和当前用户是否点赞
func (ph *PostHandler) GetPost(c *gin.Context) error {
	postID := c.Param("post_id")
	if postID == "" {
		return response.NewError(http.StatusBadRequest, "post_id is required")
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}

	detail, err := ph.PostService.GetPost(c.Request.Context(), postID, userID)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

// ListPosts 帖子列表，默认按时间倒序，可选按点赞数倒序、按课程过滤、截断条数
func (ph *PostHandler) ListPosts(c *gin.Context) error {
	var req types.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}

	rows, err := ph.PostService.ListPosts(c.Request.Context(), &req, userID)
	if err != nil {
		return err
	}

	response.Success(c, rows)
	return nil
}
