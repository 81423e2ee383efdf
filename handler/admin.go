package handler

import (
	"net/http"
	"strconv"

	"voteboard/config"
	"voteboard/middleware"
	"voteboard/pkg/context"
	"voteboard/pkg/response"
	"voteboard/service"
	"voteboard/types"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	AdminService service.IAdminService
	Config       *config.Config
}

func (h *AdminHandler) RegisterRouter(r gin.IRouter) {
	admin := middleware.Admin([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/admin", admin)
	g.PUT("/ideas/:slug/status", context.Wrap(h.SetStatus))
	g.DELETE("/ideas/:slug/spam", context.Wrap(h.IdeaNotSpam))
	g.DELETE("/comments/:id/spam", context.Wrap(h.CommentNotSpam))
	g.GET("/spam-counts", context.Wrap(h.SpamCounts))
}

// SetStatus 状态流转, 可选通知投票人
func (h *AdminHandler) SetStatus(c *gin.Context) error {
	var req types.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.AdminService.SetStatus(c.Request.Context(), c.Param("slug"), &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminHandler) IdeaNotSpam(c *gin.Context) error {
	if err := h.AdminService.MarkIdeaNotSpam(c.Request.Context(), c.Param("slug")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminHandler) CommentNotSpam(c *gin.Context) error {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "评论ID格式错误")
	}

	if err := h.AdminService.MarkCommentNotSpam(c.Request.Context(), commentID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminHandler) SpamCounts(c *gin.Context) error {
	counts, err := h.AdminService.SpamCounts(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, counts)
	return nil
}
