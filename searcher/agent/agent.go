package agent

import (
	"minimax/experiments/metrics"
)

type Agent[S any, M any] interface {
	// FindMove returns the agent's move and the metrics of the search behind it
	FindMove(state S) (M, metrics.SearchMetric, error)
}
