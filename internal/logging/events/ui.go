package events

import "github.com/overlaykit/ctxmenu/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) MenuOpened(menuID, target string) {
	logging.Trace("ui.menu-opened", map[string]interface{}{"menu": menuID, "target": target})
}

func (UITracer) MenuClosed(menuID string) {
	logging.Trace("ui.menu-closed", map[string]interface{}{"menu": menuID})
}

func (UITracer) Cursor(menuID string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"menu": menuID, "cursor": cursor})
}

func (UITracer) Activate(menuID, itemID, kind string) {
	logging.Trace("ui.activate", map[string]interface{}{"menu": menuID, "item": itemID, "kind": kind})
}
