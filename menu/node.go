package menu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/overlaykit/ctxmenu/focus"
	"github.com/overlaykit/ctxmenu/internal/logging/events"
)

// RoleMenuItem is the accessibility role carried by every mounted node.
const RoleMenuItem = "menuitem"

// Activation describes the outcome of dispatching a click or key press.
type Activation int

const (
	// ActivationNone means no handler was found. The event is left for
	// the surrounding widget tree.
	ActivationNone Activation = iota
	// ActivationSuppressed means the item was disabled. The event is
	// consumed so handlers on enclosing widgets never see it.
	ActivationSuppressed
	// ActivationHandled means a handler ran to completion.
	ActivationHandled
)

// Consumed reports whether the event should stop propagating.
func (a Activation) Consumed() bool {
	return a == ActivationSuppressed || a == ActivationHandled
}

// Node is a mounted menu item for one render pass. Nodes are built fresh
// on every pass and identified by pointer; the focus registry keys on that
// identity. A node's disabled state and params are fixed for its lifetime.
type Node struct {
	item     Item
	params   *Params
	disabled bool
	content  string
}

func (n *Node) ID() string      { return n.item.ID }
func (n *Node) Role() string    { return RoleMenuItem }
func (n *Node) Disabled() bool  { return n.disabled }
func (n *Node) Focusable() bool { return !n.disabled }
func (n *Node) Hint() string    { return n.item.Hint }

// Params exposes the shared parameter object for this pass.
func (n *Node) Params() *Params { return n.params }

// Content returns the node's display text: the custom render output when
// a RenderFunc is configured, the label otherwise.
func (n *Node) Content() string { return n.content }

// Click dispatches a mouse activation. Disabled items consume the event
// without running anything. Otherwise the item's own OnClick wins over the
// opener's id-keyed handler, and a missing handler on both sides is a
// silent no-op.
func (n *Node) Click(ev tea.Msg) Activation {
	n.params.Event = ev
	if n.disabled {
		events.Dispatch.Suppressed(n.item.ID)
		return ActivationSuppressed
	}
	if n.item.OnClick != nil {
		events.Dispatch.Click(n.item.ID, "item")
		n.item.OnClick(n.params)
		return ActivationHandled
	}
	if n.params.Props != nil {
		if h := n.params.Props.OnClickHandlers[n.item.ID]; h != nil {
			events.Dispatch.Click(n.item.ID, "opener")
			h(n.params)
			return ActivationHandled
		}
	}
	events.Dispatch.NoOp(n.item.ID)
	return ActivationNone
}

// KeyActivate dispatches the designated activation key. The key path runs
// only the item's own OnClick: it checks neither the disabled state nor
// the opener's handler map. That asymmetry with Click matches the observed
// behaviour of existing menus and is kept deliberately.
func (n *Node) KeyActivate(ev tea.Msg) Activation {
	n.params.Event = ev
	if n.item.OnClick != nil {
		events.Dispatch.Key(n.item.ID)
		n.item.OnClick(n.params)
		return ActivationHandled
	}
	return ActivationNone
}

// Mount registers a freshly rendered node with the focus registry.
// Disabled nodes are never registered, which keeps them structurally out
// of keyboard traversal rather than skipped by a runtime check.
func Mount(reg focus.Registry, n *Node) {
	if reg == nil || n == nil {
		return
	}
	if n.disabled {
		reg.Unregister(n)
		return
	}
	reg.Register(n, focus.Entry{IsSubmenu: false})
	events.Focus.Registered(n.item.ID)
}

// Unmount removes the node's registry entry.
func Unmount(reg focus.Registry, n *Node) {
	if reg == nil || n == nil {
		return
	}
	reg.Unregister(n)
	events.Focus.Unregistered(n.item.ID)
}
