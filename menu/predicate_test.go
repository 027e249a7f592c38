package menu

import "testing"

func TestResolveLiteral(t *testing.T) {
	params := &Params{ID: "copy"}
	if !Bool(true).Resolve(params) {
		t.Fatalf("expected Bool(true) to resolve true")
	}
	if Bool(false).Resolve(params) {
		t.Fatalf("expected Bool(false) to resolve false")
	}
}

func TestResolveZeroValueDefaultsFalse(t *testing.T) {
	var p Predicate
	if p.Resolve(&Params{ID: "copy"}) {
		t.Fatalf("expected zero-value predicate to resolve false")
	}
}

func TestResolveNilFunctionDefaultsFalse(t *testing.T) {
	if Fn(nil).Resolve(&Params{ID: "copy"}) {
		t.Fatalf("expected Fn(nil) to resolve false")
	}
}

func TestResolveFunctionReceivesParams(t *testing.T) {
	var seen *Params
	p := Fn(func(params *Params) bool {
		seen = params
		return params.ID == "paste"
	})
	params := &Params{ID: "paste", Data: 42}
	if !p.Resolve(params) {
		t.Fatalf("expected predicate to resolve true for id %q", params.ID)
	}
	if seen != params {
		t.Fatalf("expected predicate to receive the shared params pointer")
	}
	if p.Resolve(&Params{ID: "copy"}) {
		t.Fatalf("expected predicate to resolve false for id copy")
	}
}
