package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/overlaykit/ctxmenu/internal/logging/events"
	"github.com/overlaykit/ctxmenu/theme"
)

// Renderer resolves items into mounted nodes and styles their display
// lines. State is recomputed on every pass; nothing is cached across
// renders.
type Renderer struct {
	styles *theme.Styles
	width  int
}

// NewRenderer builds a renderer. A nil styles argument falls back to the
// default theme; width 0 disables padding and truncation.
func NewRenderer(styles *theme.Styles, width int) *Renderer {
	if styles == nil {
		styles = theme.Default()
	}
	return &Renderer{styles: styles, width: width}
}

// SetWidth updates the target column width for subsequent lines.
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// Render resolves one item for the current pass. Hidden items produce no
// node at all: nothing to display, nothing to register. Otherwise the
// returned node carries the resolved disabled state and the shared params.
func (r *Renderer) Render(item Item, props *TriggerProps, trigger tea.Msg) *Node {
	params := newParams(item, props, trigger)
	if item.isHidden(params) {
		events.Item.Hidden(item.ID)
		return nil
	}
	node := &Node{
		item:     item,
		params:   params,
		disabled: item.isDisabled(params),
	}
	if item.Render != nil {
		node.content = item.Render(params)
	} else {
		node.content = item.Label
	}
	events.Item.Rendered(item.ID, node.disabled)
	return node
}

// Line styles a node's display row. selected marks the cursor position.
func (r *Renderer) Line(n *Node, selected bool) string {
	if n == nil {
		return ""
	}
	indicator := "▌"
	lineStyle := r.styles.Item
	indicatorStyle := r.styles.ItemIndicator
	if n.disabled {
		lineStyle = r.styles.DisabledItem
	}
	if selected {
		indicatorStyle = r.styles.SelectedItemIndicator
		lineStyle = r.styles.SelectedItem
	}

	text := n.content
	if hint := n.item.Hint; hint != "" {
		text += "  " + hint
	}
	full := indicator + " " + text
	if r.width > 0 {
		if w := lipgloss.Width(full); w > r.width {
			full = truncate.StringWithTail(full, uint(r.width-1), "…")
		} else if pad := r.width - w; pad > 0 {
			full += strings.Repeat(" ", pad)
		}
	}

	runes := []rune(full)
	head := string(runes[:1])
	tail := string(runes[1:])
	if indicatorStyle != nil {
		head = indicatorStyle.Render(head)
	}
	if lineStyle != nil {
		tail = lineStyle.Render(tail)
	}
	return head + tail
}
