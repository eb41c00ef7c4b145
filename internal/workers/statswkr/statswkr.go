package statswkr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"xivfinder.app/backend/internal/app/appconfig"
	"xivfinder.app/backend/internal/service"
)

type WorkerDeps struct {
	fx.In
	StatsService *service.Stats
}

type Worker struct {
	// count counts the recomputations the worker has completed so far
	count int

	// interval describes the interval in-between recomputations
	interval time.Duration

	// deps
	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.StatsWorkerEnabled {
		log.Info().Msg("statswkr: worker disabled")
		return
	}
	(&Worker{
		interval:   conf.StatsWorkerInterval,
		WorkerDeps: deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			log.Info().
				Int("count", w.count).
				Msg("statswkr: recomputation started")

			if _, err := w.StatsService.Refresh(ctx); err != nil {
				// keep serving the previous snapshot and try again next tick
				log.Error().Err(err).Msg("statswkr: recomputation failed")
			} else {
				log.Info().Int("count", w.count).Msg("statswkr: recomputation finished")
			}

			w.count++
			time.Sleep(w.interval)
		}
	}()

	return cancel
}
