package focus

import "testing"

type fakeNode struct{ id string }

func TestRegisterAndContains(t *testing.T) {
	table := NewTable()
	a := &fakeNode{id: "a"}
	b := &fakeNode{id: "b"}

	table.Register(a, Entry{})
	if !table.Contains(a) {
		t.Fatalf("expected a registered")
	}
	if table.Contains(b) {
		t.Fatalf("expected b absent")
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", table.Len())
	}
}

func TestRegisterReplacesByNodeIdentity(t *testing.T) {
	table := NewTable()
	n := &fakeNode{id: "a"}
	table.Register(n, Entry{IsSubmenu: false})
	table.Register(n, Entry{IsSubmenu: true})
	if table.Len() != 1 {
		t.Fatalf("expected insert-or-replace to keep 1 entry, got %d", table.Len())
	}
	entry, ok := table.Lookup(n)
	if !ok || !entry.IsSubmenu {
		t.Fatalf("expected replaced entry, got %+v (ok=%v)", entry, ok)
	}
}

func TestUnregisterRemovesEntry(t *testing.T) {
	table := NewTable()
	n := &fakeNode{id: "a"}
	table.Register(n, Entry{})
	table.Unregister(n)
	if table.Contains(n) {
		t.Fatalf("expected n removed")
	}
	// Removing again is harmless.
	table.Unregister(n)
	if table.Len() != 0 {
		t.Fatalf("expected empty table, got %d", table.Len())
	}
}

func TestNilNodesAreIgnored(t *testing.T) {
	table := NewTable()
	table.Register(nil, Entry{})
	if table.Len() != 0 {
		t.Fatalf("expected nil registration ignored")
	}
	if table.Contains(nil) {
		t.Fatalf("expected nil lookup to be false")
	}
	table.Unregister(nil)
}

func TestDistinctNodesWithEqualContentStayDistinct(t *testing.T) {
	table := NewTable()
	a := &fakeNode{id: "same"}
	b := &fakeNode{id: "same"}
	table.Register(a, Entry{})
	table.Register(b, Entry{})
	if table.Len() != 2 {
		t.Fatalf("expected identity keying to keep both entries, got %d", table.Len())
	}
}
