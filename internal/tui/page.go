package tui

import tea "github.com/charmbracelet/bubbletea"

// Page is one screen of the application. Pages are registered in a Registry
// at startup; navigation dispatches through the registry rather than
// checking at runtime whether a page happens to exist.
type Page interface {
	// ID is the stable identifier the page is registered under.
	ID() string
	// Title is the tab label.
	Title() string
	// Update handles input while the page is active.
	Update(msg tea.Msg) (Page, tea.Cmd)
	// View renders the page body for the given width.
	View(width int) string
}

// Registry is the capability table mapping page ids to implementations.
// Order is the tab order.
type Registry struct {
	byID  map[string]Page
	order []string
}

// NewRegistry builds a registry from pages in tab order.
func NewRegistry(pages ...Page) *Registry {
	r := &Registry{byID: make(map[string]Page, len(pages))}
	for _, p := range pages {
		r.byID[p.ID()] = p
		r.order = append(r.order, p.ID())
	}
	return r
}

// Lookup returns the page registered under id.
func (r *Registry) Lookup(id string) (Page, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Len returns the number of registered pages.
func (r *Registry) Len() int { return len(r.order) }

// At returns the page at a tab position.
func (r *Registry) At(i int) Page { return r.byID[r.order[i]] }

// Replace swaps the implementation at a tab position, keeping its id.
func (r *Registry) Replace(i int, p Page) { r.byID[r.order[i]] = p }

// IDs returns the page ids in tab order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}
