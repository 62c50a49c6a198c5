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

type UserHandler struct {
	Config      *config.Config
	UserService service.IUserService
}

func (uh *UserHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/create_user", context.Wrap(uh.CreateUser))
}

// CreateUser 创建用户，邮箱/用户名重复返回 409
func (uh *UserHandler) CreateUser(c *gin.Context) error {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := uh.UserService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, user)
	return nil
}
