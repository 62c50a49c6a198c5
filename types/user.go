package types

// 创建用户请求，id 允许客户端自带（不带则服务端生成）
type CreateUserRequest struct {
	ID       string `json:"id"`
	Email    string `json:"email" binding:"required,email"`
	UserName string `json:"userName" binding:"required,min=3,max=50"`
	Name     string `json:"name" binding:"required,min=3,max=100"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
	IsAdmin  bool   `json:"is_admin"`
}
