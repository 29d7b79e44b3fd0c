package aleph

import "fmt"

// MalformedSnapshotError reports a payload whose shape does not match the
// status API contract. It is recoverable: the control loop keeps the previous
// snapshot and shows the message in the status line.
type MalformedSnapshotError struct {
	Endpoint string
	Err      error
}

func (e *MalformedSnapshotError) Error() string {
	return fmt.Sprintf("malformed snapshot from %s: %v", e.Endpoint, e.Err)
}

func (e *MalformedSnapshotError) Unwrap() error { return e.Err }

// FetchError reports a transport or HTTP failure against the backend.
// StatusCode is zero when the request never completed.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch %s: backend returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
