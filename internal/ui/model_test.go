package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"alephtop/internal/aleph"
	"alephtop/internal/config"
	"alephtop/internal/state"
)

func testStatus(name string, taskNames ...string) *aleph.Status {
	result := aleph.Result{Name: name}
	if len(taskNames) > 0 {
		queue := aleph.Queue{Name: "q"}
		for _, tn := range taskNames {
			queue.Tasks = append(queue.Tasks, aleph.Task{Name: tn})
		}
		result.Batches = []aleph.Batch{{Name: "b", Queues: []aleph.Queue{queue}}}
	}
	return &aleph.Status{Results: []aleph.Result{result}, Total: 1}
}

func newTestModel(t *testing.T) (Model, *state.Store) {
	t.Helper()
	profiles := []config.Profile{
		{Name: "prod", URL: "https://a.example.org", Index: 0},
		{Name: "staging", URL: "https://b.example.org", Index: 1},
	}
	store := state.NewStore(profiles, 0)
	store.FinishTick(0, testStatus("ingest-1", "ingest", "index"), nil,
		&aleph.Metadata{Status: "ok", App: aleph.MetadataApp{Title: "Aleph", Version: "3.15.5"}}, nil,
		time.Now())

	m := NewModel(Options{Store: store, FetchInterval: 10 * time.Second, Version: "test"})
	m = apply(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})
	m = apply(t, m, tickMsg(time.Now()))
	return m, store
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_TickFlattensSnapshot(t *testing.T) {
	m, _ := newTestModel(t)

	if len(m.rows) != 3 {
		t.Fatalf("rows = %d, want [collection, task, task]", len(m.rows))
	}
	if idx, ok := m.cursor.Index(); !ok || idx != 0 {
		t.Fatalf("cursor = %d ok=%v, want first row", idx, ok)
	}
}

func TestModel_NavigationClampsAtBounds(t *testing.T) {
	m, _ := newTestModel(t)

	m = apply(t, m, keyRune('k')) // up at top is a no-op
	if idx, _ := m.cursor.Index(); idx != 0 {
		t.Fatalf("index = %d after up at top", idx)
	}

	for i := 0; i < 5; i++ {
		m = apply(t, m, keyRune('j'))
	}
	if idx, _ := m.cursor.Index(); idx != 2 {
		t.Fatalf("index = %d, want clamp at last row", idx)
	}
}

func TestModel_ProfilePopupOwnsNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	m = apply(t, m, keyRune('j')) // table cursor to row 1
	m = apply(t, m, keyRune('p'))
	if !m.showProfiles {
		t.Fatal("p did not open the profile selector")
	}
	if idx, _ := m.profileCursor.Index(); idx != 0 {
		t.Fatalf("popup cursor = %d, want current profile", idx)
	}

	// Movement drives the popup cursor, never the table cursor.
	m = apply(t, m, keyRune('j'))
	if idx, _ := m.profileCursor.Index(); idx != 1 {
		t.Fatalf("popup cursor = %d, want 1", idx)
	}
	if idx, _ := m.cursor.Index(); idx != 1 {
		t.Fatalf("table cursor moved to %d while popup open", idx)
	}

	// Toggle without confirming changes nothing.
	m = apply(t, m, keyRune('p'))
	if m.showProfiles {
		t.Fatal("second p did not close the selector")
	}
	if m.opts.Store.CurrentProfile().Name != "prod" {
		t.Fatal("toggle without confirm switched the profile")
	}
}

func TestModel_ProfileSwitchResetsSelection(t *testing.T) {
	m, store := newTestModel(t)

	// Row 2 selected with 3 rows in the old snapshot.
	m = apply(t, m, keyRune('j'))
	m = apply(t, m, keyRune('j'))

	m = apply(t, m, keyRune('p'))
	m = apply(t, m, keyRune('j'))
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.showProfiles {
		t.Fatal("confirm did not close the selector")
	}
	if store.CurrentProfile().Name != "staging" {
		t.Fatalf("current profile = %q, want staging", store.CurrentProfile().Name)
	}
	if _, ok := m.cursor.Index(); ok {
		t.Fatal("old selection survived the switch")
	}

	// New snapshot arrives with 2 rows. A clamp of the old index 2 would
	// land on row 1; the switch policy starts over at row 0.
	gen := store.Snapshot().Generation
	store.FinishTick(gen, testStatus("other", "task-a"), nil, nil, nil, time.Now())
	m = apply(t, m, tickMsg(time.Now()))

	if len(m.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(m.rows))
	}
	if idx, ok := m.cursor.Index(); !ok || idx != 0 {
		t.Fatalf("post-switch selection = %d ok=%v, want reset to 0", idx, ok)
	}
}

func TestModel_ShrinkingSnapshotClampsSelection(t *testing.T) {
	m, store := newTestModel(t)

	m = apply(t, m, keyRune('j'))
	m = apply(t, m, keyRune('j'))

	// Same profile, smaller snapshot: the selection clamps, not resets.
	store.FinishTick(0, testStatus("ingest-1", "ingest"), nil, nil, nil, time.Now())
	m = apply(t, m, tickMsg(time.Now()))

	if len(m.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(m.rows))
	}
	if idx, ok := m.cursor.Index(); !ok || idx != 1 {
		t.Fatalf("selection = %d ok=%v, want clamp to last row", idx, ok)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	for _, msg := range []tea.Msg{keyRune('q'), tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyCtrlC}} {
		next, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%v produced no command, want quit", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%v produced %T, want tea.QuitMsg", msg, cmd())
		}
		m = next.(Model)
	}
}

func TestModel_ViewRendersFrame(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()
	if !strings.Contains(out, "Aleph (prod)") {
		t.Fatalf("header missing title/profile:\n%s", out)
	}
	if !strings.Contains(out, "version: 3.15.5") {
		t.Fatal("header missing version line")
	}
	if !strings.Contains(out, "Collection ID") {
		t.Fatal("table header missing")
	}
	if !strings.Contains(out, "ingest-1") {
		t.Fatal("collection row missing")
	}

	m = apply(t, m, keyRune('p'))
	out = m.View()
	if !strings.Contains(out, "Select profile") {
		t.Fatal("profile popup missing")
	}
	if !strings.Contains(out, "staging") {
		t.Fatal("profile list missing entries")
	}
}
