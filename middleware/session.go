package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "sid"
	ctxSessionID  = "session_id"
	// 浏览器会话内有效, 30 天兜底
	sessionMaxAge = 30 * 24 * 3600
)

// Session 确保每个请求携带会话ID, 没有则种一个 sid cookie
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set(ctxSessionID, sid)

		c.Next()
	}
}
