// Package ui contains the Bubble Tea program for the ctxmenu demo: a small
// file browser whose entries carry a right-click context menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses are routed by mode: filter input when the filter prompt is
//     active, menu navigation while a menu is open, file-list navigation
//     otherwise (internal/ui/navigation.go).
//   - Mouse presses either open the menu (right button) or are routed to the
//     clicked node (left button), which dispatches through menu.Node.Click.
//
// State ownership:
//   - The menu package owns item resolution: per-pass params, disabled and
//     hidden predicates, activation precedence, and node mounting.
//   - The focus registry (focus.Table) is owned by the model and injected
//     into the menu; cursor traversal consults it to skip nodes that were
//     never registered, which is how disabled items stay unreachable.
//   - The demo's file list, clipboard, and status messages live on the Model
//     and are mutated only by item handlers and key handlers.
package ui
