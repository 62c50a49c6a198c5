package handler

import (
	"StudyHub/config"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"StudyHub/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	Config        *config.Config
	CourseService service.ICourseService
}

func (ch *CourseHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/create_course", context.Wrap(ch.CreateCourse))
}

// CreateCourse 创建课程，topic_id 必须指向已存在的主题
func (ch *CourseHandler) CreateCourse(c *gin.Context) error {
	var req types.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	course, err := ch.CourseService.CreateCourse(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, course)
	return nil
}
