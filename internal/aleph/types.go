package aleph

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Counters holds the per-state task tallies reported at every level of the
// job hierarchy. Values are taken from the backend verbatim; Total is never
// recomputed, even when it disagrees with the sum of the other fields.
type Counters struct {
	Todo      int `json:"todo"`
	Doing     int `json:"doing"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Aborted   int `json:"aborted"`
	Aborting  int `json:"aborting"`
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
	Active    int `json:"active"`
	Finished  int `json:"finished"`
}

// Timing carries the free-form timestamp and duration strings attached to
// each level. They are opaque display values; empty string means absent.
type Timing struct {
	MinTS         string `json:"min_ts"`
	MaxTS         string `json:"max_ts"`
	RemainingTime string `json:"remaining_time"`
	Took          string `json:"took"`
}

// Status mirrors the payload returned by /api/2/status. It is the root of a
// fetch cycle and is replaced wholesale on every successful fetch.
type Status struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
}

// Result aggregates one collection's job state.
type Result struct {
	Counters
	Timing
	Name       string      `json:"name"`
	Batches    []Batch     `json:"batches"`
	Collection *Collection `json:"collection"`
	Stages     StageList   `json:"stages"`
}

// Batch groups queues under a result.
type Batch struct {
	Counters
	Timing
	Name   string  `json:"name"`
	Queues []Queue `json:"queues"`
}

// Queue groups tasks under a batch.
type Queue struct {
	Counters
	Timing
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Task is the leaf of the hierarchy; it carries no children.
type Task struct {
	Counters
	Timing
	Name string `json:"name"`
}

// Collection describes the collection bound to a result. It is nil on
// results with no bound collection, such as export-only jobs; partial
// collection data is not representable.
type Collection struct {
	ID           string   `json:"id"`
	CollectionID string   `json:"collection_id"`
	ForeignID    string   `json:"foreign_id"`
	Label        string   `json:"label"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Frequency    string   `json:"frequency"`
	Countries    []string `json:"countries"`
	Casefile     bool     `json:"casefile"`
	Secret       bool     `json:"secret"`
	Writeable    bool     `json:"writeable"`
	Shallow      bool     `json:"shallow"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
	Links        Links    `json:"links"`
}

// Links holds the API and UI locations published for a collection.
type Links struct {
	Self       string `json:"self"`
	XrefExport string `json:"xref_export"`
	Reconcile  string `json:"reconcile"`
	UI         string `json:"ui"`
}

// Stage reports one pipeline stage's standing inside a result.
type Stage struct {
	Stage    string `json:"stage"`
	Pending  int    `json:"pending"`
	Running  int    `json:"running"`
	Finished int    `json:"finished"`
}

// StageList tolerates the backend delivering the "stages" field either as a
// single object or as an array. Both shapes decode to a slice once, at
// deserialization time, so nothing downstream branches on the wire shape.
type StageList []Stage

func (s *StageList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}
	switch trimmed[0] {
	case '[':
		var many []Stage
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return err
		}
		*s = many
		return nil
	case '{':
		var one Stage
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return err
		}
		*s = StageList{one}
		return nil
	default:
		return fmt.Errorf("stages: expected object or array, got %s", preview(trimmed))
	}
}

func preview(data []byte) string {
	const max = 24
	if len(data) > max {
		return string(data[:max]) + "…"
	}
	return string(data)
}

// Metadata mirrors the payload returned by /api/2/metadata.
type Metadata struct {
	Status      string      `json:"status"`
	Maintenance bool        `json:"maintenance"`
	App         MetadataApp `json:"app"`
}

// MetadataApp carries the optional identity of the backend application.
type MetadataApp struct {
	Title      string `json:"title"`
	Version    string `json:"version"`
	FTMVersion string `json:"ftm_version"`
}
