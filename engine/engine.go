package engine

import "minimax/experiments/metrics"

const MaxMoves = 10000

type Engine interface {
	// Run plays a game till it is finished or a max number of moves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
