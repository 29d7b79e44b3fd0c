package state

import (
	"sync"
	"time"

	"alephtop/internal/aleph"
	"alephtop/internal/config"
)

// Due reports whether a fetch is due. The inequality is strict: an elapsed
// time of exactly interval does not yet trigger.
func Due(now, last time.Time, interval time.Duration) bool {
	return now.Sub(last) > interval
}

// Snapshot is the latest data available to the UI. Status and Metadata are
// replaced wholesale by a fetch and must be treated as read-only views.
type Snapshot struct {
	Profile     config.Profile
	Generation  uint64
	Status      *aleph.Status
	Metadata    aleph.Metadata
	HasMetadata bool
	StatusErr   error
	MetadataErr error
	LastFetch   time.Time
}

// Message returns the error text for the status line. The fetch order is
// status then metadata, so when both slots hold an error the metadata one is
// the last encountered and wins. Empty means no error is shown.
func (s Snapshot) Message() string {
	if s.MetadataErr != nil {
		return s.MetadataErr.Error()
	}
	if s.StatusErr != nil {
		return s.StatusErr.Error()
	}
	return ""
}

// Store coordinates the refresh loop and the UI around one snapshot. Exactly
// one profile is current at any time; switching discards the old snapshot
// rather than merging it, and bumps a generation counter so a fetch that was
// in flight against the previous profile is dropped on arrival.
type Store struct {
	mu         sync.RWMutex
	profiles   []config.Profile
	current    int
	generation uint64
	lastFetch  time.Time
	snapshot   Snapshot
}

// NewStore returns a store over the configured profiles with the given
// profile current. The zero lastFetch makes the first tick due immediately.
func NewStore(profiles []config.Profile, current int) *Store {
	if current < 0 || current >= len(profiles) {
		current = 0
	}
	return &Store{profiles: profiles, current: current}
}

// CurrentProfile returns the profile the dashboard is pointed at.
func (s *Store) CurrentProfile() config.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[s.current]
}

// Profiles returns the configured profile list in order.
func (s *Store) Profiles() []config.Profile {
	return s.profiles
}

// BeginTick runs the throttle check for a refresh pass. It reports the
// profile and generation the pass must fetch against, and whether a fetch is
// due at all.
func (s *Store) BeginTick(now time.Time, interval time.Duration) (config.Profile, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[s.current], s.generation, Due(now, s.lastFetch, interval)
}

// FinishTick applies one refresh pass. Each slot is applied independently: a
// failed call keeps the previous data for its slot and records the error, a
// successful call replaces the slot and clears it. The last-fetch time
// advances unconditionally, success or not, which caps the retry cadence
// during sustained backend failure. A result from a stale generation is
// dropped whole: the profile changed while the fetch was in flight.
func (s *Store) FinishTick(gen uint64, status *aleph.Status, statusErr error, metadata *aleph.Metadata, metadataErr error, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}

	if statusErr != nil {
		s.snapshot.StatusErr = statusErr
	} else {
		s.snapshot.Status = status
		s.snapshot.StatusErr = nil
	}
	if metadataErr != nil {
		s.snapshot.MetadataErr = metadataErr
	} else if metadata != nil {
		s.snapshot.Metadata = *metadata
		s.snapshot.HasMetadata = true
		s.snapshot.MetadataErr = nil
	}

	s.lastFetch = now
	s.snapshot.LastFetch = now
}

// SwitchProfile commits the given profile as current. The old snapshot and
// error slots are discarded and the throttle is reset so the next refresh
// pass fetches immediately.
func (s *Store) SwitchProfile(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.profiles) {
		return
	}
	s.current = index
	s.generation++
	s.lastFetch = time.Time{}
	s.snapshot = Snapshot{}
}

// Snapshot returns the current snapshot together with the profile and
// generation it belongs to.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Profile = s.profiles[s.current]
	snap.Generation = s.generation
	return snap
}
