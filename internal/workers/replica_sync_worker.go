// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package workers

import (
	"context"
	"time"

	"github.com/webstore/seller-sync/internal/logger"
)

// replicaSyncWorker periodically refreshes the local replica. One refresh
// runs immediately on start so a freshly launched client is usable without
// waiting a full interval.
type replicaSyncWorker struct {
	ctx      context.Context
	syncer   ReplicaSyncer
	interval time.Duration
	logger   *logger.Logger
}

func newReplicaSyncWorker(ctx context.Context, syncer ReplicaSyncer, interval time.Duration, logger *logger.Logger) *replicaSyncWorker {
	return &replicaSyncWorker{
		ctx:      ctx,
		syncer:   syncer,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It spawns the sync loop and returns immediately;
// the loop stops when the worker's context is cancelled.
func (w *replicaSyncWorker) Run() {
	go w.loop()
}

func (w *replicaSyncWorker) loop() {
	w.syncOnce()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info().Str("func", "*replicaSyncWorker.loop").Msg("replica sync worker stopped")
			return
		case <-ticker.C:
			w.syncOnce()
		}
	}
}

// syncOnce runs one full refresh. Failures are logged, never fatal: the next
// tick retries from the replica's persisted state.
func (w *replicaSyncWorker) syncOnce() {
	if err := w.syncer.SyncAll(w.ctx); err != nil {
		w.logger.Err(err).Str("func", "*replicaSyncWorker.syncOnce").Msg("replica sync failed")
		return
	}

	w.logger.Debug().Str("func", "*replicaSyncWorker.syncOnce").Msg("replica sync completed")
}
