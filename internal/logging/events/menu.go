package events

import "github.com/overlaykit/ctxmenu/internal/logging"

type MenuTracer struct{}

type ItemTracer struct{}

type DispatchTracer struct{}

type FocusTracer struct{}

var (
	Menu     = MenuTracer{}
	Item     = ItemTracer{}
	Dispatch = DispatchTracer{}
	Focus    = FocusTracer{}
)

func (MenuTracer) Show(menuID string, itemCount int) {
	logging.Trace("menu.show", map[string]interface{}{"menu": menuID, "items": itemCount})
}

func (MenuTracer) Hide(menuID string) {
	logging.Trace("menu.hide", map[string]interface{}{"menu": menuID})
}

func (MenuTracer) Refresh(menuID string, itemCount int) {
	logging.Trace("menu.refresh", map[string]interface{}{"menu": menuID, "items": itemCount})
}

func (MenuTracer) Filter(menuID, query string, matches int) {
	logging.Trace("menu.filter", map[string]interface{}{"menu": menuID, "query": query, "matches": matches})
}

func (ItemTracer) Rendered(itemID string, disabled bool) {
	logging.Trace("item.rendered", map[string]interface{}{"item": itemID, "disabled": disabled})
}

func (ItemTracer) Hidden(itemID string) {
	logging.Trace("item.hidden", map[string]interface{}{"item": itemID})
}

func (DispatchTracer) Click(itemID, handler string) {
	logging.Trace("dispatch.click", map[string]interface{}{"item": itemID, "handler": handler})
}

func (DispatchTracer) Suppressed(itemID string) {
	logging.Trace("dispatch.suppressed", map[string]interface{}{"item": itemID})
}

func (DispatchTracer) NoOp(itemID string) {
	logging.Trace("dispatch.noop", map[string]interface{}{"item": itemID})
}

func (DispatchTracer) Key(itemID string) {
	logging.Trace("dispatch.key", map[string]interface{}{"item": itemID})
}

func (FocusTracer) Registered(itemID string) {
	logging.Trace("focus.register", map[string]interface{}{"item": itemID})
}

func (FocusTracer) Unregistered(itemID string) {
	logging.Trace("focus.unregister", map[string]interface{}{"item": itemID})
}
