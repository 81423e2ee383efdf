package handler

import (
	"errors"
	"net/http"

	"voteboard/config"
	"voteboard/dao/cache"
	"voteboard/middleware"
	"voteboard/pkg/context"
	"voteboard/pkg/log"
	"voteboard/pkg/response"
	"voteboard/service"
	"voteboard/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Idea struct {
	FeedService service.IFeedService
	IdeaService service.IIdeaService
	Nav         *cache.NavigationStorage
	Config      *config.Config
}

func (h *Idea) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)
	session := middleware.Session()

	g := r.Group("/v1/ideas")
	g.GET("", session, optional, context.Wrap(h.Feed))
	g.GET("/:slug", session, optional, context.Wrap(h.Detail))
	g.POST("", authorize, context.Wrap(h.Create))
	g.PUT("/:slug", authorize, context.Wrap(h.Update))
	g.DELETE("/:slug", authorize, context.Wrap(h.Delete))
	g.POST("/:slug/spam", authorize, context.Wrap(h.ReportSpam))
}

// Feed 信息流: 筛选/搜索/排序/分页一体, 并记录会话返回地址
func (h *Idea) Feed(c *gin.Context) error {
	var q types.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	caller := types.Caller{
		ID:      context.CallerID(c),
		IsAdmin: context.IsAdmin(c),
	}

	page, err := h.FeedService.GetFeed(c.Request.Context(), q, caller)
	if err != nil {
		// 身份不满足的筛选不降级, 显式回给边界
		if errors.Is(err, service.ErrLoginRequired) {
			c.JSON(http.StatusUnauthorized, response.Response{
				Code: http.StatusUnauthorized,
				Msg:  "请先登录",
				Data: gin.H{"redirect": "/login"},
			})
			return nil
		}
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, response.Response{
				Code: http.StatusForbidden,
				Msg:  "无权访问该视图",
			})
			return nil
		}
		return err
	}

	// 覆盖写入会话的"最近一次信息流 URL", 详情页用作返回地址.
	// 记录失败不影响本次渲染
	if sid := context.SessionID(c); sid != "" {
		if err := h.Nav.SetLastFeedURL(c.Request.Context(), sid, page.CanonicalURL); err != nil {
			log.L.Warn("record last feed url failed", zap.Error(err))
		}
	}

	response.Success(c, page)
	return nil
}

// Detail 详情页, 带会话级返回地址
func (h *Idea) Detail(c *gin.Context) error {
	caller := types.Caller{
		ID:      context.CallerID(c),
		IsAdmin: context.IsAdmin(c),
	}

	detail, err := h.IdeaService.GetDetail(c.Request.Context(), caller, c.Param("slug"))
	if err != nil {
		return err
	}
	detail.BackURL = h.Nav.LastFeedURL(c.Request.Context(), context.SessionID(c))

	response.Success(c, detail)
	return nil
}

func (h *Idea) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.IdeaService.CreateIdea(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Idea) Update(c *gin.Context) error {
	caller := types.Caller{ID: context.CallerID(c), IsAdmin: context.IsAdmin(c)}

	var req types.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.IdeaService.UpdateIdea(c.Request.Context(), caller, c.Param("slug"), &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Idea) Delete(c *gin.Context) error {
	caller := types.Caller{ID: context.CallerID(c), IsAdmin: context.IsAdmin(c)}

	if err := h.IdeaService.DeleteIdea(c.Request.Context(), caller, c.Param("slug")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Idea) ReportSpam(c *gin.Context) error {
	if err := h.IdeaService.ReportSpam(c.Request.Context(), c.Param("slug")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
