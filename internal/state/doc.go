// Package state owns the shared snapshot between the refresh loop and the
// UI: the current profile, the latest status and metadata, independent error
// slots for the two fetch calls, and the fetch throttle. The store is the
// only piece of the program touched from two goroutines.
package state
