package service

import (
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/response"
	"StudyHub/pkg/utils"
	"StudyHub/types"
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, error)
}

type UserService struct {
	UserDAO *dao.Users
}

func (s *UserService) CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, error) {
	// 邮箱或用户名任一重复都算冲突
	exist, err := s.UserDAO.IsEmailOrUserNameExist(ctx, req.Email, req.UserName)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, response.NewError(http.StatusConflict, "User with this email or username already exists")
	}

	user := &models.User{
		ID:       req.ID,
		Email:    req.Email,
		UserName: req.UserName,
		Name:     req.Name,
		ImageURL: req.ImageURL,
		IsAdmin:  req.IsAdmin,
	}
	if user.ID == "" {
		user.ID = utils.GenToken()
	}

	if err := s.UserDAO.Create(ctx, user); err != nil {
		// 并发注册兜底：唯一键冲突同样按冲突返回
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewError(http.StatusConflict, "User with this email or username already exists")
		}
		return nil, err
	}
	return user, nil
}
