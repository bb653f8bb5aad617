package engine

import (
	"context"
	"spiel/metrics"
)

type Runner interface {
	// Run plays a game till it ends or a max number of moves is reached
	Run(ctx context.Context) (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
