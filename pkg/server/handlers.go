package server

import (
	"voteboard/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	Idea     *handler.Idea
	Vote     *handler.Vote
	Comments *handler.CommentsHandler
	Admin    *handler.AdminHandler
}
