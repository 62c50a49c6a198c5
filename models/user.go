package models

// User 用户表
// id 由客户端提供（或服务端生成的 uuid），非自增，避免被遍历
type User struct {
	ID       string `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	Email    string `gorm:"column:email;type:varchar(255);uniqueIndex:uk_users_email;not null" json:"email"`
	UserName string `gorm:"column:user_name;type:varchar(50);uniqueIndex:uk_users_user_name;not null" json:"userName"`
	Name     string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	ImageURL string `gorm:"column:image_url;type:varchar(255);default:''" json:"imageUrl"`
	IsAdmin  bool   `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
}

func (User) TableName() string { return "users" }
