package menu

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderHiddenProducesNoNode(t *testing.T) {
	r := NewRenderer(nil, 0)
	item := Item{ID: "x", Label: "X", Hidden: Fn(func(*Params) bool { return true })}
	if node := r.Render(item, nil, nil); node != nil {
		t.Fatalf("expected no node for a hidden item, got %+v", node)
	}
}

func TestRenderHiddenWinsOverDisabled(t *testing.T) {
	r := NewRenderer(nil, 0)
	item := Item{ID: "x", Hidden: Bool(true), Disabled: Bool(true)}
	if node := r.Render(item, nil, nil); node != nil {
		t.Fatalf("expected hidden item to emit nothing regardless of disabled state")
	}
}

func TestRenderResolvesDisabledState(t *testing.T) {
	r := NewRenderer(nil, 0)
	enabled := r.Render(Item{ID: "copy", Label: "Copy"}, nil, nil)
	if enabled == nil || enabled.Disabled() {
		t.Fatalf("expected an enabled node")
	}
	if !enabled.Focusable() {
		t.Fatalf("expected enabled node to be focusable")
	}
	disabled := r.Render(Item{ID: "paste", Label: "Paste", Disabled: Bool(true)}, nil, nil)
	if disabled == nil || !disabled.Disabled() {
		t.Fatalf("expected a disabled node")
	}
	if disabled.Focusable() {
		t.Fatalf("expected disabled node to be non-focusable")
	}
	if disabled.Role() != RoleMenuItem {
		t.Fatalf("expected role %q, got %q", RoleMenuItem, disabled.Role())
	}
}

func TestRenderCustomContentTakesPrecedence(t *testing.T) {
	r := NewRenderer(nil, 0)
	var got *Params
	item := Item{
		ID:    "copy",
		Label: "Copy",
		Render: func(p *Params) string {
			got = p
			return "Copy (3 selected)"
		},
	}
	node := r.Render(item, nil, nil)
	if node == nil {
		t.Fatalf("expected a node")
	}
	if node.Content() != "Copy (3 selected)" {
		t.Fatalf("expected custom content, got %q", node.Content())
	}
	if got != node.Params() {
		t.Fatalf("expected render func to receive the shared params")
	}
}

func TestLinePadsAndTruncatesToWidth(t *testing.T) {
	r := NewRenderer(nil, 20)
	short := r.Render(Item{ID: "a", Label: "Open"}, nil, nil)
	if w := lipgloss.Width(r.Line(short, false)); w != 20 {
		t.Fatalf("expected padded line width 20, got %d", w)
	}
	long := r.Render(Item{ID: "b", Label: strings.Repeat("long-label-", 8)}, nil, nil)
	if w := lipgloss.Width(r.Line(long, true)); w > 20 {
		t.Fatalf("expected truncated line width <= 20, got %d", w)
	}
}

func TestLineIncludesHint(t *testing.T) {
	r := NewRenderer(nil, 0)
	node := r.Render(Item{ID: "copy", Label: "Copy", Hint: "ctrl+c"}, nil, nil)
	line := r.Line(node, false)
	if !strings.Contains(line, "ctrl+c") {
		t.Fatalf("expected hint in line, got %q", line)
	}
}
