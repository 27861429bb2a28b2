package main

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/IX-Erich/oregon-trail/internal/config"
	"github.com/IX-Erich/oregon-trail/internal/server"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	rules, err := cfg.Rules()
	if err != nil {
		config.Exitf("load rules: %v", err)
	}

	s := server.New(cfg, rules)
	hlog.Infof("trail server listening on %s (max %d games)", cfg.Addr, cfg.MaxGames)
	s.Spin()
}
