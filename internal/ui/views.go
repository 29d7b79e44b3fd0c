package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"alephtop/internal/view"
)

const (
	selectionPrefix = ">> "
	columnGap       = 1
	minLabelWidth   = 20
)

// Fixed widths for every column except the flexible label column (index 2).
var fixedWidths = []int{15, 15, 0, 20, 8, 8, 8, 8, 8, 8, 8}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting…"
	}

	header := m.renderHeader()
	detail := m.renderDetail()
	errLine := m.renderErrorLine()
	statusBar := m.renderStatusBar()

	chrome := lipgloss.Height(header) + lipgloss.Height(detail) + 2
	tableHeight := m.height - chrome
	if tableHeight < 3 {
		tableHeight = 3
	}

	var middle string
	if m.showProfiles {
		middle = m.renderProfilePicker(tableHeight)
	} else {
		middle = m.renderTable(tableHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, middle, detail, errLine, statusBar)
}

func (m Model) renderHeader() string {
	total := 0
	if m.snap.Status != nil {
		total = m.snap.Status.Total
	}

	title := fmt.Sprintf("(%s): %s jobs running", m.snap.Profile.Name, view.FormatCount(total))
	if m.snap.HasMetadata && m.snap.Metadata.App.Title != "" {
		title = fmt.Sprintf("%s %s", m.snap.Metadata.App.Title, title)
	}
	if m.snap.HasMetadata && m.snap.Metadata.Maintenance {
		title += "  " + maintenanceStyle.Render("MAINTENANCE")
	}

	var version string
	if m.snap.HasMetadata {
		app := m.snap.Metadata.App
		switch {
		case app.Version != "" && app.FTMVersion != "":
			version = fmt.Sprintf("version: %s, followthemoney: %s", app.Version, app.FTMVersion)
		case app.Version != "":
			version = fmt.Sprintf("version: %s", app.Version)
		case app.FTMVersion != "":
			version = fmt.Sprintf("followthemoney: %s", app.FTMVersion)
		}
	}

	return headerStyle.Width(m.width - 2).Render(title + "\n" + version)
}

// columnWidths spreads the terminal width over the table columns, giving the
// label column everything the fixed columns leave over.
func (m Model) columnWidths() []int {
	widths := make([]int, len(fixedWidths))
	copy(widths, fixedWidths)

	used := len(selectionPrefix) + columnGap*(len(widths)-1)
	for _, w := range widths {
		used += w
	}
	label := m.width - used
	if label < minLabelWidth {
		label = minLabelWidth
	}
	widths[2] = label
	return widths
}

func renderCells(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(runewidth.Truncate(cell, widths[i], "…"), widths[i])
	}
	return strings.Join(padded, strings.Repeat(" ", columnGap))
}

func (m Model) renderTable(height int) string {
	widths := m.columnWidths()

	lines := make([]string, 0, height)
	headerLine := strings.Repeat(" ", len(selectionPrefix)) + renderCells(view.Columns, widths)
	lines = append(lines, tableHeaderStyle.Render(truncateLine(headerLine, m.width)))

	visible := height - 1
	selected, hasSelection := m.cursor.Index()

	start := 0
	if hasSelection && selected >= visible {
		start = selected - visible + 1
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := start; i < end; i++ {
		row := m.rows[i]
		prefix := strings.Repeat(" ", len(selectionPrefix))
		if hasSelection && i == selected {
			prefix = selectionPrefix
		}
		line := truncateLine(prefix+renderCells(view.Cells(m.snap.Status, row), widths), m.width)

		switch {
		case hasSelection && i == selected:
			line = selectedRowStyle.Render(line)
		case row.Kind == view.KindCollection:
			line = collectionRowStyle.Render(line)
		}
		lines = append(lines, line)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	body := "No selection"
	title := "Details"

	if index, ok := m.cursor.Index(); ok {
		if d, ok := view.ResolveDetail(m.snap.Status, m.rows, index); ok {
			title = d.Title
			body = fmt.Sprintf(
				"Total: %s | Active: %s | Finished: %s\nRemaining time: %s\nTook: %s\nURL: %s",
				view.FormatCount(d.Total),
				view.FormatCount(d.Active),
				view.FormatCount(d.Finished),
				d.RemainingTime,
				d.Took,
				d.URL,
			)
		}
	}

	content := detailTitleStyle.Render(title) + "\n" + body
	return detailPanelStyle.Width(m.width - 2).Render(content)
}

func (m Model) renderErrorLine() string {
	message := m.snap.Message()
	if message == "" {
		return ""
	}
	return errorStyle.Render(truncateLine(message, m.width))
}

func (m Model) renderStatusBar() string {
	lastFetch := "never"
	if !m.snap.LastFetch.IsZero() {
		lastFetch = humanize.Time(m.snap.LastFetch)
	}
	left := fmt.Sprintf("alephtop %s  fetching every %s - last fetch %s",
		m.opts.Version, m.opts.FetchInterval, lastFetch)
	bar := left + "  " + m.help.View(m.keys)
	return statusBarStyle.Render(truncateLine(bar, m.width))
}

func (m Model) renderProfilePicker(height int) string {
	profiles := m.opts.Store.Profiles()
	selected, _ := m.profileCursor.Index()

	lines := make([]string, 0, len(profiles)+1)
	lines = append(lines, popupTitleStyle.Render("Select profile"))
	for i, profile := range profiles {
		line := "   " + profile.Name
		if i == selected {
			line = selectedRowStyle.Render(selectionPrefix + profile.Name)
		}
		lines = append(lines, line)
	}

	popup := popupStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, popup)
}

func truncateLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	return runewidth.Truncate(line, width, "")
}
