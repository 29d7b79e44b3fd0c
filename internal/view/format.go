package view

import (
	"github.com/dustin/go-humanize"

	"alephtop/internal/aleph"
)

// Columns are the table headers, in render order. Task rows reuse the foreign
// id column for their batch name and indent the task name under the label.
var Columns = []string{
	"Collection ID",
	"Foreign ID",
	"Label/Task Name",
	"Start Time",
	"Todo",
	"Doing",
	"Success",
	"Failed",
	"Aborted",
	"Aborting",
	"Cancel",
}

// FormatCount renders a counter with thousands grouping.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// Cells renders one flattened row into the table's column values.
func Cells(status *aleph.Status, r Row) []string {
	cells := make([]string, 0, len(Columns))
	switch r.Kind {
	case KindCollection:
		id, foreign := "-", "-"
		label := ""
		if status != nil && r.ResultIndex < len(status.Results) {
			result := &status.Results[r.ResultIndex]
			label = result.Name
			if col := result.Collection; col != nil {
				id = col.CollectionID
				foreign = col.ForeignID
				label = col.Label
			}
		}
		cells = append(cells, id, foreign, label, orDash(r.MinTS))
	case KindTask:
		cells = append(cells, "", r.BatchName, "  "+r.TaskName, orDash(r.MinTS))
	}
	for _, n := range []int{
		r.Counters.Todo,
		r.Counters.Doing,
		r.Counters.Succeeded,
		r.Counters.Failed,
		r.Counters.Aborted,
		r.Counters.Aborting,
		r.Counters.Cancelled,
	} {
		cells = append(cells, FormatCount(n))
	}
	return cells
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
