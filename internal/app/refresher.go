package app

import (
	"context"
	"time"

	"alephtop/internal/aleph"
	"alephtop/internal/state"
)

// The loop wakes once a second; the store's throttle decides whether the
// wake-up actually fetches.
const tickInterval = time.Second

// StartRefresher launches the background loop that keeps the store fresh.
// It returns immediately.
func StartRefresher(ctx context.Context, store *state.Store, clients []aleph.StatusFetcher, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			refresh(ctx, store, clients, interval, time.Now())
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// refresh runs one throttle-checked pass against the current profile. The
// status and metadata calls are sequential and independent: one failing does
// not block the other, and the store records each outcome in its own slot.
// At most one pass runs at a time.
func refresh(ctx context.Context, store *state.Store, clients []aleph.StatusFetcher, interval time.Duration, now time.Time) {
	profile, gen, due := store.BeginTick(now, interval)
	if !due {
		return
	}
	if profile.Index < 0 || profile.Index >= len(clients) {
		return
	}
	client := clients[profile.Index]

	status, statusErr := client.FetchStatus(ctx)
	metadata, metadataErr := client.FetchMetadata(ctx)
	store.FinishTick(gen, status, statusErr, metadata, metadataErr, time.Now())
}
