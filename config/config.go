// Package config loads the harness settings from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Game struct {
	// Bots is the list of opponents offered for the game, by registry name.
	Bots []string `yaml:"bots"`
}

type Settings struct {
	LogLevel   string          `yaml:"log_level"`
	MaxMoves   int             `yaml:"max_moves"`
	MetricsDir string          `yaml:"metrics_dir"`
	ListenAddr string          `yaml:"listen_addr"`
	Games      map[string]Game `yaml:"games"`
}

func Default() Settings {
	return Settings{
		LogLevel:   "info",
		MaxMoves:   300,
		MetricsDir: "experiments",
		ListenAddr: ":8080",
		Games: map[string]Game{
			"tic_tac_toe":  {Bots: []string{"mcts", "random", "first"}},
			"breakthrough": {Bots: []string{"mcts", "dqn", "random", "first"}},
		},
	}
}

// Load reads path over the defaults. Games listed in the file replace the
// default entry of the same name.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read config: %w", err)
	}
	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return s, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	s.merge(file)
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

func (s *Settings) merge(o Settings) {
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
	if o.MaxMoves != 0 {
		s.MaxMoves = o.MaxMoves
	}
	if o.MetricsDir != "" {
		s.MetricsDir = o.MetricsDir
	}
	if o.ListenAddr != "" {
		s.ListenAddr = o.ListenAddr
	}
	for name, g := range o.Games {
		s.Games[name] = g
	}
}

func (s Settings) Validate() error {
	if s.MaxMoves <= 0 {
		return fmt.Errorf("max_moves must be positive, got %d", s.MaxMoves)
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	for name, g := range s.Games {
		if len(g.Bots) == 0 {
			return fmt.Errorf("game %s has no bots", name)
		}
	}
	return nil
}

// Level is the parsed log level; unknown levels fall back to info.
func (s Settings) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Bots returns the configured opponents for a game.
func (s Settings) Bots(game string) ([]string, error) {
	g, ok := s.Games[game]
	if !ok {
		return nil, fmt.Errorf("game %q not in list of available games", game)
	}
	return g.Bots, nil
}
