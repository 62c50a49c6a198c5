package middleware

import (
	"StudyHub/config"
	"StudyHub/pkg/log"
	"StudyHub/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IPBlocklist 黑名单 IP 拦截，名单启动时加载一次
func IPBlocklist(sec *config.Security) gin.HandlerFunc {
	blocked := make(map[string]struct{}, len(sec.IPBlocklist))
	for _, ip := range sec.IPBlocklist {
		blocked[ip] = struct{}{}
	}
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if _, ok := blocked[ip]; ok {
			log.L.Warn("blocked request", zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			response.Abort(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}
