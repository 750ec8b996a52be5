// Package critical provides the interrupt-masking critical section and the
// single-slot cell used to share a peripheral handle between the main loop
// and an interrupt handler.
package critical

// Token proves the holder is inside a critical section. Only Do hands one out.
type Token struct{ _ [0]func() }

// Do runs fn with interrupts masked. Sections must not be nested on the host
// build.
func Do(fn func(cs Token)) {
	s := disable()
	defer restore(s)
	fn(Token{})
}

// Cell holds at most one value. It is written once during start-up and then
// read or mutated from both contexts, always under a critical section.
type Cell[T any] struct {
	v   T
	set bool
}

// Install moves v into the cell. A second install is ignored and reports
// false; the first value stays in place.
func (c *Cell[T]) Install(_ Token, v T) bool {
	if c.set {
		return false
	}
	c.v = v
	c.set = true
	return true
}

// Borrow returns the inner value, if any.
func (c *Cell[T]) Borrow(_ Token) (T, bool) {
	return c.v, c.set
}

// WithAccess enters a critical section and runs fn against the inner value.
// An empty cell is a silent no-op and reports false.
func (c *Cell[T]) WithAccess(fn func(cs Token, v T)) bool {
	ran := false
	Do(func(cs Token) {
		v, ok := c.Borrow(cs)
		if !ok {
			return
		}
		fn(cs, v)
		ran = true
	})
	return ran
}

// Installed reports whether the cell has been filled.
func (c *Cell[T]) Installed() bool {
	var ok bool
	Do(func(cs Token) { _, ok = c.Borrow(cs) })
	return ok
}
