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

type TopicHandler struct {
	Config       *config.Config
	Auth         middleware.Authenticator
	TopicService service.ITopicService
}

func (th *TopicHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Identity(th.Auth)
	r.POST("/create_topic", context.Wrap(th.CreateTopic))
	r.GET("/topics_with_courses", authorize, context.Wrap(th.TopicsWithCourses))
}

func (th *TopicHandler) CreateTopic(c *gin.Context) error {
	var req types.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	topic, err := th.TopicService.CreateTopic(c.Request.Context(), req.Name)
	if err != nil {
		return err
	}

	response.Success(c, topic)
	return nil
}

// TopicsWithCourses 全部主题及课程，课程带当前用户的收藏标记
func (th *TopicHandler) TopicsWithCourses(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}

	result, err := th.TopicService.GetTopicsWithCourses(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}
