// Package tui implements the interactive terminal UI: a page per screen of
// the tracker (dashboard, transactions, accounts, budgets, categories),
// dispatched through an explicit page registry.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pocketbook/pocketbook/internal/ledger"
)

// keyMap defines the application-level keyboard shortcuts.
type keyMap struct {
	NextPage  key.Binding
	PrevPage  key.Binding
	Refresh   key.Binding
	ThemeFlip key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPage: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "previous page"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		ThemeFlip: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// App is the root model: all shared UI state lives here rather than in
// package globals.
type App struct {
	ledger   *ledger.Ledger
	snap     *Snapshot
	registry *Registry
	theme    Theme
	keys     keyMap
	active   int
	width    int
	height   int
	err      error
}

type snapshotMsg struct{ snap *Snapshot }

type errMsg struct{ err error }

// NewApp loads the initial snapshot and builds the page registry.
func NewApp(ctx context.Context, l *ledger.Ledger) (*App, error) {
	snap, err := LoadSnapshot(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger state: %w", err)
	}

	theme := ThemeFor(snap.Settings.Theme)
	return &App{
		ledger:   l,
		snap:     snap,
		theme:    theme,
		keys:     defaultKeyMap(),
		registry: buildRegistry(snap, theme),
		width:    100,
		height:   30,
	}, nil
}

// buildRegistry constructs every page once, in tab order.
func buildRegistry(snap *Snapshot, theme Theme) *Registry {
	return NewRegistry(
		newDashboardPage(snap, theme),
		newTransactionsPage(snap, theme),
		newAccountsPage(snap, theme),
		newBudgetsPage(snap, theme),
		newCategoriesPage(snap, theme),
	)
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case snapshotMsg:
		a.snap = msg.snap
		a.theme = ThemeFor(msg.snap.Settings.Theme)
		a.registry = buildRegistry(a.snap, a.theme)
		a.err = nil
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.NextPage):
			a.active = (a.active + 1) % a.registry.Len()
			return a, nil
		case key.Matches(msg, a.keys.PrevPage):
			a.active = (a.active + a.registry.Len() - 1) % a.registry.Len()
			return a, nil
		case key.Matches(msg, a.keys.Refresh):
			return a, a.reload()
		case key.Matches(msg, a.keys.ThemeFlip):
			return a, a.flipTheme()
		}
	}

	page, cmd := a.registry.At(a.active).Update(msg)
	a.registry.Replace(a.active, page)
	return a, cmd
}

// reload re-reads the snapshot out of band.
func (a *App) reload() tea.Cmd {
	l := a.ledger
	return func() tea.Msg {
		snap, err := LoadSnapshot(context.Background(), l)
		if err != nil {
			return errMsg{err: err}
		}
		return snapshotMsg{snap: snap}
	}
}

// flipTheme persists the opposite theme and reloads so every page picks up
// the new styles.
func (a *App) flipTheme() tea.Cmd {
	l := a.ledger
	next := a.theme.Toggle().Name
	return func() tea.Msg {
		ctx := context.Background()
		settings, err := l.Store().Settings(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		settings.Theme = next
		if err := l.Store().SaveSettings(ctx, settings); err != nil {
			return errMsg{err: err}
		}
		snap, err := LoadSnapshot(ctx, l)
		if err != nil {
			return errMsg{err: err}
		}
		return snapshotMsg{snap: snap}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	tabs := make([]string, 0, a.registry.Len())
	for i := 0; i < a.registry.Len(); i++ {
		title := a.registry.At(i).Title()
		if i == a.active {
			tabs = append(tabs, a.theme.TabFocus.Render(title))
		} else {
			tabs = append(tabs, a.theme.Tab.Render(title))
		}
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	body := a.registry.At(a.active).View(a.width)
	footer := a.theme.Subtle.Render("tab: switch • r: reload • t: theme • q: quit")
	if a.err != nil {
		footer = a.theme.Negative.Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, l *ledger.Ledger) error {
	app, err := NewApp(ctx, l)
	if err != nil {
		return err
	}
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
