// Package view turns status snapshots into renderable table state.
//
// Flatten projects the nested job hierarchy (results → batches → queues →
// tasks) into one ordered row sequence, the single source of truth for row
// indices. Cursor tracks a selection over such a sequence, and ResolveDetail
// maps any row back to its owning result for the detail pane. The package is
// pure: it never fetches, renders, or mutates a snapshot.
package view
