package workers

import (
	"context"

	"github.com/webstore/seller-sync/internal/config"
	"github.com/webstore/seller-sync/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the client's background workers: currently a single
// periodic replica sync job driven by cfg.SyncInterval.
func NewWorkers(ctx context.Context, syncer ReplicaSyncer, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newReplicaSyncWorker(ctx, syncer, cfg.SyncInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
