package searcher

import (
	"fmt"

	"minimax/experiments/metrics"
	"minimax/game"

	"github.com/rs/zerolog"
)

type Option func(c *config)

type config struct {
	decay   float64
	workers int
	metrics metrics.Collector
	logger  zerolog.Logger
}

// WithDecay overrides the per-ply decay of depth-limited scores. Values
// outside (0, 1] are ignored.
func WithDecay(decay float64) Option {
	return func(c *config) {
		if decay > 0 && decay <= 1 {
			c.decay = decay
		}
	}
}

// WithWorkers bounds the number of root moves evaluated at once by the
// parallel search. Zero or less starts one goroutine per root move.
func WithWorkers(workers int) Option {
	return func(c *config) {
		c.workers = workers
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Searcher picks moves for any game satisfying game.Game. A Searcher keeps
// no state between searches apart from the metric of the last one, and must
// not run two searches at the same time.
type Searcher[S any, M any] struct {
	game game.Game[S, M]
	config
	last metrics.SearchMetric
}

func New[S any, M any](g game.Game[S, M], options ...Option) *Searcher[S, M] {
	if g == nil {
		panic("searcher needs a game")
	}
	s := &Searcher[S, M]{ // Default values
		game: g,
		config: config{
			decay:   DefaultDecay,
			metrics: metrics.NewDummyCollector(),
			logger:  zerolog.Nop(),
		},
	}
	for _, option := range options {
		option(&s.config)
	}
	return s
}

func (s *Searcher[S, M]) Decay() float64 {
	return s.decay
}

// LastMetric returns the metric of the most recent completed search. It is
// empty unless the Searcher was created WithMetrics.
func (s *Searcher[S, M]) LastMetric() metrics.SearchMetric {
	return s.last
}

func (s *Searcher[S, M]) complete(best M) {
	s.last = s.metrics.Complete()
	s.logger.Debug().
		Str("strategy", s.last.Strategy).
		Interface("move", best).
		Int64("nodes", s.last.Nodes).
		Int64("estimates", s.last.Estimates).
		Dur("duration", s.last.Duration).
		Msg("search complete")
}

// prepare checks the arguments shared by the depth-limited strategies and
// returns the root's legal moves.
func (s *Searcher[S, M]) prepare(estimator game.Estimator[S], moveLimit int, state S) ([]M, error) {
	if estimator == nil {
		return nil, ErrNilEstimator
	}
	if moveLimit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMoveLimit, moveLimit)
	}
	moves := s.game.LegalMoves(state)
	if len(moves) == 0 {
		return nil, ErrTerminalPosition
	}
	return moves, nil
}
