package experiments

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"minimax/engine"
	"minimax/experiments/metrics"
	"minimax/meta"
	"minimax/searcher/agent"

	"gopkg.in/yaml.v3"
)

const (
	Nim       = "nim"
	TicTacToe = "tictactoe"
)

var Games = []string{Nim, TicTacToe}

type Config struct {
	Name      string                `yaml:"name"`
	Game      string                `yaml:"game"`
	Size      int                   `yaml:"size"` // Starting pile for nim
	NumGames  int                   `yaml:"numGames"`
	MaxMoves  int                   `yaml:"maxMoves"`
	OutputDir string                `yaml:"outputDir"` // Results are not written when empty
	Agents    []metrics.AgentConfig `yaml:"agents"`
	Matchups  [][]int               `yaml:"matchups"` // Pairs of agent IDs, first listed moves first in odd games
}

func DefaultConfig() Config {
	return Config{
		Name:      "experiment",
		Game:      TicTacToe,
		NumGames:  meta.NUM_GAMES,
		MaxMoves:  engine.MaxMoves,
		OutputDir: meta.OUTPUT_DIR,
	}
}

// LoadConfig reads a YAML config file over DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	if !slices.Contains(Games, c.Game) {
		errs = append(errs, fmt.Errorf("unknown game %q, want one of %v", c.Game, Games))
	}
	if c.NumGames < 1 {
		errs = append(errs, fmt.Errorf("numGames must be at least 1, got %d", c.NumGames))
	}
	if c.MaxMoves < 1 {
		errs = append(errs, fmt.Errorf("maxMoves must be at least 1, got %d", c.MaxMoves))
	}

	ids := map[int]bool{}
	for _, a := range c.Agents {
		if ids[a.ID] {
			errs = append(errs, fmt.Errorf("duplicate agent id %d", a.ID))
		}
		ids[a.ID] = true
		if !slices.Contains(agent.Strategies, a.Strategy) {
			errs = append(errs, fmt.Errorf("agent %d: unknown strategy %q, want one of %v", a.ID, a.Strategy, agent.Strategies))
		}
	}
	for i, m := range c.Matchups {
		if len(m) != 2 {
			errs = append(errs, fmt.Errorf("matchup %d: want 2 agent ids, got %d", i+1, len(m)))
			continue
		}
		for _, id := range m {
			if !ids[id] {
				errs = append(errs, fmt.Errorf("matchup %d: unknown agent id %d", i+1, id))
			}
		}
	}
	return errors.Join(errs...)
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("agent %d not configured", id))
}
