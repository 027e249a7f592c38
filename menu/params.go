package menu

import tea "github.com/charmbracelet/bubbletea"

// HandlerFunc runs when an item is activated.
type HandlerFunc func(*Params)

// TriggerProps carries the per-open-session values supplied by whoever
// opened the menu. The maps are keyed by item ID and act as the opener's
// per-item overrides. TriggerProps must not change while the menu is open.
type TriggerProps struct {
	Data               any
	DisabledPredicates map[string]PredicateFunc
	HiddenPredicates   map[string]PredicateFunc
	OnClickHandlers    map[string]HandlerFunc
}

// Params is the parameter object passed to every predicate and handler of
// one render pass. A single Params value is shared, by reference, across
// the disabled check, hidden check, click handler and key handler of that
// pass, so all four observe the same data, opener props and trigger event.
type Params struct {
	ID           string
	Data         any
	Props        *TriggerProps
	TriggerEvent tea.Msg

	// Event is the activating message (mouse click or key press). It is
	// attached at activation time only; predicates never see it.
	Event tea.Msg
}

func newParams(item Item, props *TriggerProps, trigger tea.Msg) *Params {
	return &Params{
		ID:           item.ID,
		Data:         item.Data,
		Props:        props,
		TriggerEvent: trigger,
	}
}

// DataAs retrieves the item payload as a concrete type.
func DataAs[T any](p *Params) (T, bool) {
	v, ok := p.Data.(T)
	return v, ok
}

// PropsData retrieves the opener payload as a concrete type.
func PropsData[T any](p *Params) (T, bool) {
	if p.Props == nil {
		var zero T
		return zero, false
	}
	v, ok := p.Props.Data.(T)
	return v, ok
}
