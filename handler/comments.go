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

type CommentsHandler struct {
	CommentService service.ICommentService
	Config         *config.Config
}

func (h *CommentsHandler) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/ideas")
	g.GET("/:slug/comments", optional, context.Wrap(h.List))
	g.POST("/:slug/comments", authorize, context.Wrap(h.Add))

	c := r.Group("/v1/comments")
	c.POST("/:id/spam", authorize, context.Wrap(h.ReportSpam))
}

func (h *CommentsHandler) List(c *gin.Context) error {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	caller := types.Caller{
		ID:      context.CallerID(c),
		IsAdmin: context.IsAdmin(c),
	}

	result, err := h.CommentService.ListComments(c.Request.Context(), caller, c.Param("slug"), page)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *CommentsHandler) Add(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	commentID, err := h.CommentService.AddComment(c.Request.Context(), userID, c.Param("slug"), &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"comment_id": strconv.FormatInt(commentID, 10)})
	return nil
}

func (h *CommentsHandler) ReportSpam(c *gin.Context) error {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "评论ID格式错误")
	}

	if err := h.CommentService.ReportSpam(c.Request.Context(), commentID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
