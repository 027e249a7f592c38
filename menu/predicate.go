package menu

// PredicateFunc computes a boolean decision from the shared item params.
// Implementations must not mutate the params they receive.
type PredicateFunc func(*Params) bool

// Predicate is either a literal boolean or a function of the item params.
// The zero value resolves to false.
type Predicate struct {
	fn  PredicateFunc
	lit bool
}

// Bool returns a predicate that always resolves to v.
func Bool(v bool) Predicate {
	return Predicate{lit: v}
}

// Fn returns a predicate backed by fn. A nil fn behaves like Bool(false).
func Fn(fn PredicateFunc) Predicate {
	return Predicate{fn: fn}
}

// Resolve evaluates the predicate against params. Panics raised by a
// predicate function are caller errors and propagate unchanged.
func (p Predicate) Resolve(params *Params) bool {
	if p.fn != nil {
		return p.fn(params)
	}
	return p.lit
}
