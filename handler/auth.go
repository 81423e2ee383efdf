package handler

import (
	"net/http"

	"voteboard/config"
	"voteboard/pkg/context"
	"voteboard/pkg/response"
	"voteboard/service"
	"voteboard/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
	Config      *config.Config
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/login", context.Wrap(h.Login))
	g.POST("/register", context.Wrap(h.Register))
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
