// Package named labels operations for diagnostics. A function value
// renders as a bare pointer at best; wrapping one in an Op gives logs and
// test failure messages a stable, human-readable name.
package named

// Op decorates a single operation with a label. Only the debug rendering
// changes: Fn hands the operation back untouched, so calls and failures
// flow exactly as without the decorator.
type Op[F any] struct {
	label string
	fn    F
}

// Wrap decorates fn with label
func Wrap[F any](label string, fn F) Op[F] {
	return Op[F]{label: label, fn: fn}
}

// Fn returns the wrapped operation unchanged
func (o Op[F]) Fn() F {
	return o.fn
}

// Label returns the label
func (o Op[F]) Label() string {
	return o.label
}

func (o Op[F]) String() string {
	if o.label == "" {
		return "unnamed op"
	}
	return o.label
}
