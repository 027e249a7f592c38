package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/overlaykit/ctxmenu/internal/logging/events"
	"github.com/overlaykit/ctxmenu/menu"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.filtering {
		return m.handleFilterKey(msg)
	}
	if m.menuOpen() {
		return m.handleMenuKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Enter):
		m.openMenu(msg)
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Escape):
		m.closeMenu()
	case key.Matches(msg, m.keys.Up):
		m.moveMenuCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveMenuCursor(1)
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.contextMenu.Filter())
		return m.filterInput.Focus()
	case key.Matches(msg, m.keys.Enter):
		m.activateCurrent(msg, true)
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.contextMenu.SetFilter("")
		m.menuCursor = m.firstFocusableIndex()
		return nil
	case key.Matches(msg, m.keys.Enter):
		m.filtering = false
		m.filterInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.contextMenu.SetFilter(m.filterInput.Value())
	m.menuCursor = m.firstFocusableIndex()
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonRight:
		if row := msg.Y - fileFirstRow; row >= 0 && row < len(m.files) {
			m.cursor = row
		}
		m.openMenu(msg)
	case tea.MouseButtonLeft:
		if !m.menuOpen() {
			return nil
		}
		m.clickMenuRow(msg)
	}
	return nil
}

func (m *Model) clickMenuRow(msg tea.MouseMsg) {
	nodes := m.contextMenu.Nodes()
	idx := msg.Y - m.menuFirstNodeRow()
	if idx < 0 || idx >= len(nodes) {
		m.closeMenu()
		return
	}
	node := nodes[idx]
	if m.registry.Contains(node) {
		m.menuCursor = idx
	}
	m.dispatch(node, msg, false)
}

// firstFocusableIndex scans for the first node with a registry entry.
func (m *Model) firstFocusableIndex() int {
	if m.contextMenu == nil {
		return 0
	}
	for i, node := range m.contextMenu.Nodes() {
		if m.registry.Contains(node) {
			return i
		}
	}
	return 0
}

// moveMenuCursor walks the node list in the given direction, wrapping, and
// lands only on nodes the focus registry knows about. Disabled items never
// registered, so they are skipped without inspecting their state.
func (m *Model) moveMenuCursor(delta int) {
	nodes := m.contextMenu.Nodes()
	if len(nodes) == 0 {
		return
	}
	idx := m.menuCursor
	for range nodes {
		idx = (idx + delta + len(nodes)) % len(nodes)
		if m.registry.Contains(nodes[idx]) {
			m.menuCursor = idx
			events.UI.Cursor(m.contextMenu.ID(), idx)
			return
		}
	}
}

func (m *Model) activateCurrent(msg tea.Msg, viaKey bool) {
	nodes := m.contextMenu.Nodes()
	if m.menuCursor < 0 || m.menuCursor >= len(nodes) {
		return
	}
	m.dispatch(nodes[m.menuCursor], msg, viaKey)
}

func (m *Model) dispatch(node *menu.Node, msg tea.Msg, viaKey bool) {
	kind := "click"
	var act menu.Activation
	if viaKey {
		kind = "key"
		act = node.KeyActivate(msg)
	} else {
		act = node.Click(msg)
	}
	events.UI.Activate(m.contextMenu.ID(), node.ID(), kind)
	switch act {
	case menu.ActivationHandled:
		m.closeMenu()
	case menu.ActivationSuppressed:
		// Consumed; the menu stays open and nothing else reacts.
	case menu.ActivationNone:
		m.infoMsg = ""
	}
}
