package dao

import (
	"StudyHub/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

func (u *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "id = ?", id)
}

// IsEmailOrUserNameExist 邮箱或用户名是否已被占用（精确匹配）
func (u *Users) IsEmailOrUserNameExist(ctx context.Context, email, userName string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ? OR user_name = ?", email, userName)
}
