package view

import (
	"fmt"

	"alephtop/internal/aleph"
)

// Detail is the render-ready projection of the selected row's owning result.
// Duration and timestamp values stay opaque strings; absent values are "N/A".
type Detail struct {
	Title         string
	CollectionID  string
	ForeignID     string
	Label         string
	Total         int
	Active        int
	Finished      int
	RemainingTime string
	Took          string
	URL           string
}

// ResolveDetail maps a flattened row index back to its owning result and
// builds the detail projection. Task rows resolve to the owning result: the
// detail pane shows collection-level aggregates, never per-task detail.
func ResolveDetail(status *aleph.Status, rows []Row, index int) (Detail, bool) {
	if status == nil || index < 0 || index >= len(rows) {
		return Detail{}, false
	}
	resultIndex := rows[index].ResultIndex
	if resultIndex < 0 || resultIndex >= len(status.Results) {
		return Detail{}, false
	}
	result := &status.Results[resultIndex]

	d := Detail{
		Title:         "Details",
		CollectionID:  "-",
		ForeignID:     "-",
		Label:         result.Name,
		Total:         result.Total,
		Active:        result.Active,
		Finished:      result.Finished,
		RemainingTime: orNA(result.RemainingTime),
		Took:          orNA(result.Took),
		URL:           "N/A",
	}
	if col := result.Collection; col != nil {
		d.Title = fmt.Sprintf("Collection %s <%s>", col.CollectionID, col.Label)
		d.CollectionID = col.CollectionID
		d.ForeignID = col.ForeignID
		d.Label = col.Label
		if col.Links.UI != "" {
			d.URL = col.Links.UI
		}
	}
	return d, true
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
