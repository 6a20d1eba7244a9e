package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/notekeeper/internal/notes/store"
	"github.com/aussiebroadwan/notekeeper/pkg/jwtx"
)

// HousekeepingService periodically prunes renewal records whose credential no
// longer verifies under the current renewal secret (for example after the
// secret was changed). Such records can never be renewed again.
type HousekeepingService struct {
	Store    store.Store
	Renewal  jwtx.Verifier
	Logger   *slog.Logger
	Interval time.Duration
	PageSize int

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(
	st store.Store,
	renewal jwtx.Verifier,
	logger *slog.Logger,
	interval time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Renewal:  renewal,
		Logger:   logger,
		Interval: interval,
		PageSize: 500,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.Interval)
	defer cancel()

	s.Logger.Info("starting housekeeping cleanup")

	pruned, err := s.PruneRenewalTokens(ctx)
	if err != nil {
		s.Logger.Error("failed to prune renewal tokens", "error", err, "pruned", pruned)
		return
	}

	s.Logger.Info("housekeeping cleanup completed", "pruned", pruned)
}

// PruneRenewalTokens pages through the renewal store and revokes every record
// that fails verification. It returns how many records were removed.
func (s *HousekeepingService) PruneRenewalTokens(ctx context.Context) (int64, error) {
	var (
		pruned int64
		cursor string
	)

	for {
		page, next, err := s.Store.RenewalTokens().ListRenewalTokens(ctx, cursor, s.PageSize)
		if err != nil {
			return pruned, storeErr("list renewal tokens", err)
		}

		for _, rec := range page {
			if _, err := s.Renewal.Verify(rec.Token); err == nil {
				continue
			}

			n, err := s.Store.RenewalTokens().RevokeRenewalToken(ctx, rec.Token)
			if err != nil {
				return pruned, storeErr("revoke renewal token", err)
			}
			pruned += n
			s.Logger.Debug("pruned renewal token", "record_id", rec.ID)
		}

		if next == "" {
			return pruned, nil
		}
		cursor = next
	}
}
