package context

import (
	"errors"
	"net/http"

	"voteboard/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID    = "user_id"
	CtxIsAdmin   = "is_admin"
	CtxSessionID = "session_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// CallerID 可匿名场景下获取用户ID, 未登录返回 0
func CallerID(c *gin.Context) int64 {
	uid, err := GetUserID(c)
	if err != nil {
		return 0
	}
	return uid
}

// IsAdmin 当前调用者是否为管理员
func IsAdmin(c *gin.Context) bool {
	v, ok := c.Get(CtxIsAdmin)
	if !ok {
		return false
	}
	admin, ok := v.(bool)
	return ok && admin
}

// SessionID 会话ID, 由 middleware.Session 写入
func SessionID(c *gin.Context) string {
	v, ok := c.Get(CtxSessionID)
	if !ok {
		return ""
	}
	sid, _ := v.(string)
	return sid
}
