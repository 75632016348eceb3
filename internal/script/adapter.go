package script

import "github.com/nyue/flexcore/internal/nodes"

// nodeOperator adapts an Operator to internal/nodes.Operator, whose
// Apply signature carries no error return. A script failure — bad
// syntax slipping past compile time is impossible, but a runtime type
// mismatch or timeout is not — surfaces as a panic, the same disposition
// internal/nodes.SwitchState gives an unknown-key lookup: a scripted
// operator that can't produce a result is a wiring error, not a value
// the node's contract has room to carry.
type nodeOperator[T, P, R any] struct{ op *Operator[T, P, R] }

// AsNodeOperator wraps op so it satisfies internal/nodes.Operator[T, P, R].
func AsNodeOperator[T, P, R any](op *Operator[T, P, R]) nodes.Operator[T, P, R] {
	return nodeOperator[T, P, R]{op: op}
}

func (a nodeOperator[T, P, R]) Apply(t T, param P) R {
	v, err := a.op.Apply(t, param)
	if err != nil {
		panic(err)
	}
	return v
}
