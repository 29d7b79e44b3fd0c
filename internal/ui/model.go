package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"alephtop/internal/state"
	"alephtop/internal/view"
)

// Options configure the UI runtime.
type Options struct {
	Store         *state.Store
	FetchInterval time.Duration
	Version       string
}

// The UI re-reads the store once a second. Actual backend fetches are paced
// by the store's throttle, not by this tick.
const uiTick = time.Second

type tickMsg time.Time

// Model is the bubbletea model for the dashboard. It owns all view state:
// the flattened rows, both cursors, and the profile-selector visibility. The
// refresh loop never touches any of it; it only replaces snapshots in the
// store, which the model picks up on its tick.
type Model struct {
	opts Options
	keys keyMap
	help help.Model

	width  int
	height int

	snap   state.Snapshot
	rows   []view.Row
	cursor view.Cursor

	showProfiles  bool
	profileCursor view.Cursor
}

// NewModel builds the initial model around a store.
func NewModel(opts Options) Model {
	return Model{
		opts: opts,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(uiTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		m.refresh()
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// refresh pulls the latest snapshot and reflattens the table when the
// snapshot was replaced. The selection is clamped into the new row range; it
// only survives a replacement when the table did not shrink past it.
func (m *Model) refresh() {
	snap := m.opts.Store.Snapshot()
	if snap.Status != m.snap.Status || snap.Generation != m.snap.Generation {
		m.rows = view.Flatten(snap.Status)
		m.cursor.Clamp(len(m.rows))
	}
	m.snap = snap
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Profiles):
		m.toggleProfiles()
	case key.Matches(msg, m.keys.Up):
		if m.showProfiles {
			m.profileCursor.Up()
		} else {
			m.cursor.Up()
		}
	case key.Matches(msg, m.keys.Down):
		if m.showProfiles {
			m.profileCursor.Down()
		} else {
			m.cursor.Down()
		}
	case key.Matches(msg, m.keys.Confirm):
		if m.showProfiles {
			m.confirmProfile()
		}
	}
	return m, nil
}

func (m *Model) toggleProfiles() {
	m.showProfiles = !m.showProfiles
	if m.showProfiles {
		m.profileCursor = view.NewCursor(len(m.opts.Store.Profiles()))
		m.profileCursor.Select(m.snap.Profile.Index)
	}
}

// confirmProfile commits the highlighted profile as current. The old
// snapshot is discarded, the main selection starts over (a reset, not a
// clamp), and the store's throttle reset makes the refresh loop fetch the
// new backend on its next pass.
func (m *Model) confirmProfile() {
	index, ok := m.profileCursor.Index()
	m.showProfiles = false
	if !ok {
		return
	}
	m.opts.Store.SwitchProfile(index)
	m.snap = m.opts.Store.Snapshot()
	m.rows = nil
	m.cursor.Reset(0)
}

// Run starts the bubbletea program and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	program := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
