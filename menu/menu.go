package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/overlaykit/ctxmenu/focus"
	"github.com/overlaykit/ctxmenu/internal/logging/events"
)

// Menu hosts a set of items for one open session. Showing the menu stores
// the opener's props and trigger event, renders every item and mounts the
// resulting nodes into the focus registry; hiding tears all of that down.
// Positioning the popup is the embedding program's business.
type Menu struct {
	id       string
	title    string
	items    []Item
	renderer *Renderer
	registry focus.Registry
	filter   string

	props   *TriggerProps
	trigger tea.Msg
	nodes   []*Node
	visible bool
}

// New constructs a menu. A nil renderer falls back to the default theme
// with no width constraint; a nil registry disables focus tracking.
func New(id, title string, items []Item, registry focus.Registry, renderer *Renderer) *Menu {
	if renderer == nil {
		renderer = NewRenderer(nil, 0)
	}
	return &Menu{
		id:       id,
		title:    title,
		items:    CloneItems(items),
		renderer: renderer,
		registry: registry,
	}
}

func (m *Menu) ID() string          { return m.id }
func (m *Menu) Title() string       { return m.title }
func (m *Menu) Visible() bool       { return m.visible }
func (m *Menu) Filter() string      { return m.filter }
func (m *Menu) Renderer() *Renderer { return m.renderer }

// Items returns a copy of the configured items.
func (m *Menu) Items() []Item {
	return CloneItems(m.items)
}

// SetItems replaces the configured items. An open menu re-renders.
func (m *Menu) SetItems(items []Item) {
	m.items = CloneItems(items)
	if m.visible {
		m.mount()
	}
}

// Nodes returns the nodes of the current pass, in item order. Hidden and
// filtered-out items have no node.
func (m *Menu) Nodes() []*Node {
	return m.nodes
}

// NodeByID finds a mounted node by item ID.
func (m *Menu) NodeByID(id string) *Node {
	for _, node := range m.nodes {
		if node.item.ID == id {
			return node
		}
	}
	return nil
}

// Show opens a session with the supplied opener props and trigger event
// and performs the first render pass. Props and trigger stay fixed until
// Hide.
func (m *Menu) Show(props *TriggerProps, trigger tea.Msg) {
	m.props = props
	m.trigger = trigger
	m.filter = ""
	m.visible = true
	m.mount()
	events.Menu.Show(m.id, len(m.nodes))
}

// Hide closes the session, unregistering every mounted node.
func (m *Menu) Hide() {
	if !m.visible {
		return
	}
	m.unmount()
	m.visible = false
	m.props = nil
	m.trigger = nil
	events.Menu.Hide(m.id)
}

// Refresh re-runs the render pass with the current session. Predicates are
// re-evaluated, so items may change disabled state or disappear; every
// node is replaced and the registry updated to match.
func (m *Menu) Refresh() {
	if !m.visible {
		return
	}
	m.mount()
	events.Menu.Refresh(m.id, len(m.nodes))
}

// SetFilter narrows the rendered items by fuzzy label match. Items that
// fall out of the match set behave like hidden ones for the pass: no node,
// no registry entry.
func (m *Menu) SetFilter(query string) {
	if m.filter == query {
		return
	}
	m.filter = query
	if m.visible {
		m.mount()
		events.Menu.Filter(m.id, query, len(m.nodes))
	}
}

func (m *Menu) mount() {
	m.unmount()
	candidates := FilterItems(m.items, m.filter)
	nodes := make([]*Node, 0, len(candidates))
	for _, item := range candidates {
		node := m.renderer.Render(item, m.props, m.trigger)
		if node == nil {
			continue
		}
		Mount(m.registry, node)
		nodes = append(nodes, node)
	}
	m.nodes = nodes
}

func (m *Menu) unmount() {
	for _, node := range m.nodes {
		Unmount(m.registry, node)
	}
	m.nodes = nil
}

// View renders the open menu as a block of lines with the cursor on the
// given node index. Hidden menus render nothing.
func (m *Menu) View(cursor int) string {
	if !m.visible {
		return ""
	}
	lines := make([]string, 0, len(m.nodes)+1)
	if m.title != "" {
		lines = append(lines, m.title)
	}
	for i, node := range m.nodes {
		lines = append(lines, m.renderer.Line(node, i == cursor))
	}
	return strings.Join(lines, "\n")
}
