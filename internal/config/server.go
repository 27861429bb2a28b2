package config

import (
	"fmt"

	"github.com/IX-Erich/oregon-trail/internal/game"
)

// Server configures the HTTP binary.
type Server struct {
	Addr        string `env:"TRAIL_ADDR" envDefault:":8080"`
	MaxGames    int    `env:"TRAIL_MAX_GAMES" envDefault:"1000"`
	RulesPath   string `env:"TRAIL_RULES_PATH"`
	AllowOrigin string `env:"TRAIL_ALLOW_ORIGIN" envDefault:"*"`
}

func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	if cfg.MaxGames <= 0 {
		return Server{}, fmt.Errorf("TRAIL_MAX_GAMES must be positive, got %d", cfg.MaxGames)
	}
	return cfg, nil
}

// Rules loads the rules file when one is configured. A nil result means the
// built-in tables.
func (s Server) Rules() (*game.Rules, error) {
	if s.RulesPath == "" {
		return nil, nil
	}
	rules, err := game.LoadRules(s.RulesPath)
	if err != nil {
		return nil, err
	}
	return &rules, nil
}
