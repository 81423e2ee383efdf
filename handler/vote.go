package handler

import (
	"net/http"

	"voteboard/config"
	"voteboard/middleware"
	"voteboard/pkg/context"
	"voteboard/pkg/response"
	"voteboard/service"

	"github.com/gin-gonic/gin"
)

type Vote struct {
	VoteService service.IVoteService
	Config      *config.Config
}

func (h *Vote) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/ideas")
	g.POST("/:slug/vote", authorize, context.Wrap(h.Vote))
	g.DELETE("/:slug/vote", authorize, context.Wrap(h.Unvote))
}

func (h *Vote) Vote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	count, err := h.VoteService.Vote(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"vote_count": count, "voted": true})
	return nil
}

func (h *Vote) Unvote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	count, err := h.VoteService.Unvote(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"vote_count": count, "voted": false})
	return nil
}
