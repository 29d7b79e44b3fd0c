// Package app provides the orchestration layer for the alephtop dashboard.
//
// # Overview
//
// This package wires together configuration, the per-profile API clients,
// the snapshot store, the background refresh loop, and the UI. It is the
// composition root: nothing else knows about more than one of those pieces.
//
// # Startup
//
//  1. Load the profile configuration (fatal when no profiles are configured)
//  2. Build one aleph.Client per configured profile
//  3. Create the shared state.Store seeded with the default profile
//  4. Launch the background refresh goroutine
//  5. Run the TUI and block until the user quits or the context cancels
//
// # Refresh behavior
//
// The refresh loop wakes once a second and asks the store's throttle whether
// a fetch is due against the current profile. On a due pass it performs the
// status and metadata calls sequentially and hands both outcomes to the
// store. Failures are recoverable: they surface in the UI status line and the
// previous snapshot stays visible. The throttle advances whether the pass
// succeeded or not, so a dead backend is retried at the configured cadence
// rather than hammered.
//
// Profile switches happen in the UI; the loop simply picks up the new current
// profile (and the reset throttle) on its next pass. A response that arrives
// for a profile the user has already switched away from is dropped by the
// store's generation check.
package app
