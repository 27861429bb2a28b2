package server

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/IX-Erich/oregon-trail/internal/config"
	"github.com/IX-Erich/oregon-trail/internal/game"
)

// New wires a Hertz server with a fresh game store and KPI recorder.
func New(cfg config.Server, rules *game.Rules) *server.Hertz {
	h := Handler{
		Store: NewStore(cfg.MaxGames),
		KPI:   NewRecorder(),
		Rules: rules,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	s.Use(corsMiddleware(cfg.AllowOrigin))
	h.RegisterRoutes(s)
	return s
}
