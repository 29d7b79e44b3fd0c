// Package aleph talks to an Aleph instance's status API and defines the
// typed snapshot it returns. Snapshots are replaced wholesale on each fetch
// and treated as immutable afterwards.
package aleph
