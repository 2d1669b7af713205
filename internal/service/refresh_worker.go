package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/deboragomesrs/kidsafe-browser/internal/model"
	"github.com/deboragomesrs/kidsafe-browser/internal/repository"
	"github.com/deboragomesrs/kidsafe-browser/internal/youtube"
)

// RefreshWorker is a periodic background job that re-fetches the display
// name and thumbnail of every allowed channel, so renamed or rebranded
// channels stay recognizable in the parent dashboard.
type RefreshWorker struct {
	repo     *repository.AllowedRepo
	api      youtube.Platform
	cache    *CacheService
	interval time.Duration
	stopCh   chan struct{}
}

// NewRefreshWorker creates a worker that ticks every interval.
func NewRefreshWorker(repo *repository.AllowedRepo, api youtube.Platform, cache *CacheService, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		repo:     repo,
		api:      api,
		cache:    cache,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic refresh loop.
// It runs one tick immediately, then every interval.
func (w *RefreshWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("refresh-worker: starting")

	// Run once immediately on startup
	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Info().Msg("refresh-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Info().Msg("refresh-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *RefreshWorker) Stop() {
	close(w.stopCh)
}

// tick runs one cycle: refresh metadata for every allowed channel entry.
func (w *RefreshWorker) tick(ctx context.Context) {
	if w.api == nil {
		return
	}
	start := time.Now()

	checked, updated, err := w.refreshAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("refresh-worker: error")
		return
	}

	log.Info().
		Int("checked", checked).
		Int("updated", updated).
		Dur("elapsed", time.Since(start).Round(time.Millisecond)).
		Msg("refresh-worker: tick complete")
}

// refreshAll walks the allowed list and updates stale channel entries.
// Individual lookup failures are logged and skipped so one dead channel
// cannot stall the rest of the list.
func (w *RefreshWorker) refreshAll(ctx context.Context) (checked, updated int, err error) {
	entries, err := w.repo.List(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, e := range entries {
		if e.Type != model.ContentTypeChannel {
			continue
		}
		checked++

		info, err := w.api.ChannelByID(ctx, e.ContentID)
		if err != nil {
			log.Warn().Err(err).Str("channelId", e.ContentID).Msg("refresh-worker: lookup failed")
			continue
		}

		n, err := w.repo.UpdateMetadata(ctx, e.ID, info.Title, info.ThumbnailURL)
		if err != nil {
			log.Warn().Err(err).Str("entryId", e.ID).Msg("refresh-worker: update failed")
			continue
		}
		updated += int(n)
	}

	if updated > 0 && w.cache != nil {
		if err := w.cache.InvalidateAllowedList(ctx); err != nil {
			log.Warn().Err(err).Msg("refresh-worker: cache invalidate error")
		}
	}
	return checked, updated, nil
}
