package workers

import (
	"github.com/datasciencemap/community-map/internal/config"
	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker the application runs: today
// that is the password-reset purge worker.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newPasswordResetPurgeWorker(services.PasswordResetService, cfg.PurgeInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop halts every worker that supports stopping.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if stoppable, ok := worker.(interface{ Stop() }); ok {
			stoppable.Stop()
		}
	}
}
