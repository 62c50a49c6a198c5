package middleware

import (
	"StudyHub/config"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	HeaderCsrfToken = "CSRF-Token"
	HeaderUserID    = "User-ID"
)

// CSRF 共享密钥校验，所有业务接口都要带 CSRF-Token 头
func CSRF(sec *config.Security) gin.HandlerFunc {
	token := []byte(sec.CsrfToken)
	return func(c *gin.Context) {
		got := c.GetHeader(HeaderCsrfToken)
		if got == "" {
			response.Abort(c, http.StatusBadRequest, "Missing CSRF-Token header")
			return
		}
		if subtle.ConstantTimeCompare([]byte(got), token) != 1 {
			response.Abort(c, http.StatusForbidden, "Invalid CSRF token")
			return
		}
		c.Next()
	}
}

// Authenticator 请求者身份解析。
// 目前的实现直接信任 User-ID 头（原型阶段的占位方案），
// 换成真正的凭证校验时只需要替换实现，handler 不用动
type Authenticator interface {
	Authenticate(c *gin.Context) (string, error)
}

type HeaderAuthenticator struct{}

func NewHeaderAuthenticator() Authenticator {
	return &HeaderAuthenticator{}
}

func (a *HeaderAuthenticator) Authenticate(c *gin.Context) (string, error) {
	userID := c.GetHeader(HeaderUserID)
	if userID == "" {
		return "", response.NewError(http.StatusBadRequest, "Missing User-ID header")
	}
	return userID, nil
}

// Identity 解析请求者身份并写入上下文
func Identity(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := auth.Authenticate(c)
		if err != nil {
			var be *response.BizError
			if e, ok := err.(*response.BizError); ok {
				be = e
			} else {
				be = response.NewError(http.StatusBadRequest, err.Error())
			}
			response.Abort(c, be.Code, be.Msg)
			return
		}
		c.Set(context.CtxUserID, userID)

		c.Next()
	}
}
