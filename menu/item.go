// Package menu implements a context-menu widget for Bubble Tea programs.
// Each item resolves its enabled/visible state and its activation handler
// from three sources: the item's own configuration, the props supplied by
// whoever opened the menu, and the triggering event.
package menu

// RenderFunc produces custom content for an item. When set it takes
// precedence over the item label and receives the same params the item's
// predicates and handlers see.
type RenderFunc func(*Params) string

// Item configures a single selectable menu entry.
type Item struct {
	ID       string
	Label    string
	Data     any
	Disabled Predicate
	Hidden   Predicate
	OnClick  HandlerFunc
	Render   RenderFunc

	// Hint is an optional right-aligned annotation, typically a key
	// binding ("ctrl+c") or a short note.
	Hint string
}

// isDisabled applies the OR rule: the item's own predicate first, then the
// opener's id-keyed override. Both default to false when absent.
func (it Item) isDisabled(p *Params) bool {
	if it.Disabled.Resolve(p) {
		return true
	}
	if p.Props != nil {
		if fn := p.Props.DisabledPredicates[it.ID]; fn != nil {
			return fn(p)
		}
	}
	return false
}

// isHidden follows the identical OR rule using the hidden predicates.
func (it Item) isHidden(p *Params) bool {
	if it.Hidden.Resolve(p) {
		return true
	}
	if p.Props != nil {
		if fn := p.Props.HiddenPredicates[it.ID]; fn != nil {
			return fn(p)
		}
	}
	return false
}
