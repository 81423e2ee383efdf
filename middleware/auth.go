package middleware

import (
	"net/http"
	"strings"

	"voteboard/pkg/jwt"
	"voteboard/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID  = "user_id"
	ctxIsAdmin = "is_admin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthHeader(c, secret)
		if !ok {
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// OptionalAuth 可匿名访问, 带合法 token 时注入调用者身份
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			// 无效 token 按匿名处理
			c.Next()
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// Admin 管理员专用路由
func Admin(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthHeader(c, secret)
		if !ok {
			return
		}
		if !claims.IsAdmin {
			response.Abort(c, http.StatusForbidden, "无管理员权限")
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxIsAdmin, true)

		c.Next()
	}
}

func parseAuthHeader(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
		return nil, false
	}

	claims, err := jwt.ParseToken(secret, "access", parts[1])
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, err.Error())
		return nil, false
	}
	return claims, true
}
