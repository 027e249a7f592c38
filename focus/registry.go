// Package focus tracks which menu nodes are reachable by keyboard
// navigation. Items register their mounted node while enabled and drop it
// on unmount or disable; traversal code treats nodes without an entry as
// unreachable.
package focus

// Entry describes a registered node.
type Entry struct {
	IsSubmenu bool
}

// Registry is the capability handed to each menu item. Entries are keyed
// by node identity; Register replaces any prior entry for the same node.
type Registry interface {
	Register(node any, entry Entry)
	Unregister(node any)
	Contains(node any) bool
}

// Table is the default map-backed registry. All access happens on the
// program's event loop, so no locking is performed.
type Table struct {
	entries map[any]Entry
}

// NewTable returns an empty registry table.
func NewTable() *Table {
	return &Table{entries: make(map[any]Entry)}
}

// Register inserts or replaces the entry for node. Nil nodes are ignored.
func (t *Table) Register(node any, entry Entry) {
	if node == nil {
		return
	}
	t.entries[node] = entry
}

// Unregister removes the entry for node, if any.
func (t *Table) Unregister(node any) {
	if node == nil {
		return
	}
	delete(t.entries, node)
}

// Contains reports whether node currently has an entry.
func (t *Table) Contains(node any) bool {
	if node == nil {
		return false
	}
	_, ok := t.entries[node]
	return ok
}

// Lookup returns the entry for node.
func (t *Table) Lookup(node any) (Entry, bool) {
	entry, ok := t.entries[node]
	return entry, ok
}

// Len returns the number of registered nodes.
func (t *Table) Len() int {
	return len(t.entries)
}
