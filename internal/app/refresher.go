package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Freeeeeet/tutorhub_bot/internal/service"
)

// RefreshInterval is how often the shared tutor snapshot is renewed.
const RefreshInterval = time.Hour

// Refresher periodically re-fetches the tutor directory snapshot so open
// chats see new profiles without restarting.
type Refresher struct {
	directory *service.DirectoryService
	logger    *zap.Logger
	stopChan  chan struct{}
}

func NewRefresher(directory *service.DirectoryService, logger *zap.Logger) *Refresher {
	return &Refresher{
		directory: directory,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}
}

// Start launches the refresh loop.
func (r *Refresher) Start(ctx context.Context) {
	r.logger.Info("Starting directory refresher")
	go r.run(ctx)
}

// Stop stops the refresh loop.
func (r *Refresher) Stop() {
	r.logger.Info("Stopping directory refresher")
	close(r.stopChan)
}

func (r *Refresher) run(ctx context.Context) {
	// First fetch right away so the snapshot is warm before the first chat.
	r.refresh(ctx)

	ticker := time.NewTicker(RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.refresh(ctx)
		case <-r.stopChan:
			r.logger.Info("Directory refresher stopped")
			return
		case <-ctx.Done():
			r.logger.Info("Directory refresher cancelled")
			return
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	if err := r.directory.Refresh(ctx); err != nil {
		r.logger.Error("Directory refresh failed", zap.Error(err))
	}
}
