package app

import (
	"context"
	"fmt"
	"time"

	"alephtop/internal/aleph"
	"alephtop/internal/config"
	"alephtop/internal/state"
	"alephtop/internal/ui"
)

// Options configure the dashboard.
type Options struct {
	ConfigPath string
	FetchEvery int // seconds; zero uses the configured fetch_interval
	Version    string
}

// Run boots the dashboard until the context is cancelled or the user quits.
// Configuration problems (no profiles, unknown default profile, bad URLs) are
// fatal here, before the control loop starts; everything after startup
// degrades to a status-line message instead.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.FetchEvery > 0 {
		cfg.FetchInterval = opts.FetchEvery
	}

	clients := make([]aleph.StatusFetcher, len(cfg.Profiles))
	for i, profile := range cfg.Profiles {
		client, err := aleph.NewClient(profile.URL, profile.APIKey)
		if err != nil {
			return fmt.Errorf("profile %q: %w", profile.Name, err)
		}
		clients[i] = client
	}

	store := state.NewStore(cfg.Profiles, cfg.Current)
	interval := time.Duration(cfg.FetchInterval) * time.Second

	StartRefresher(ctx, store, clients, interval)

	return ui.Run(ctx, ui.Options{
		Store:         store,
		FetchInterval: interval,
		Version:       opts.Version,
	})
}
