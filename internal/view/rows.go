package view

import "alephtop/internal/aleph"

// RowKind tags a flattened table row.
type RowKind int

const (
	KindCollection RowKind = iota
	KindTask
)

// Row is one display row of the flattened job hierarchy. ResultIndex points
// back at the owning result for both kinds; the detail pane always resolves
// through it.
type Row struct {
	Kind        RowKind
	ResultIndex int
	BatchName   string
	TaskName    string
	Counters    aleph.Counters
	MinTS       string
}

// Flatten turns a status snapshot into the ordered table rows: one collection
// row per result in fetch order, immediately followed by that result's task
// rows in batch→queue→task order. The traversal is deterministic and is the
// single source of truth for the row index→result mapping and the row count.
// It runs in O(total tasks) and is recomputed on every snapshot replacement.
func Flatten(status *aleph.Status) []Row {
	if status == nil {
		return nil
	}
	rows := make([]Row, 0, len(status.Results))
	for i := range status.Results {
		result := &status.Results[i]
		rows = append(rows, Row{
			Kind:        KindCollection,
			ResultIndex: i,
			Counters:    result.Counters,
			MinTS:       result.MinTS,
		})
		for _, batch := range result.Batches {
			for _, queue := range batch.Queues {
				for _, task := range queue.Tasks {
					rows = append(rows, Row{
						Kind:        KindTask,
						ResultIndex: i,
						BatchName:   batch.Name,
						TaskName:    task.Name,
						Counters:    task.Counters,
						MinTS:       task.MinTS,
					})
				}
			}
		}
	}
	return rows
}
