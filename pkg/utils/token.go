package utils

import "github.com/google/uuid"

// GenToken 生成不可枚举的资源ID（用户/帖子）
func GenToken() string {
	return uuid.NewString()
}
