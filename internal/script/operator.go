// Package script implements the scripted operator (component J): a
// goja-backed Operator/Predicate that lets a Transform or Watch node
// (internal/nodes) be driven by a small JavaScript expression instead of
// a compiled Go closure. Grounded in Comcast-sheens' interpreters/goja
// package — same compile-once/run-per-call shape, same context-driven
// interrupt, same JSON-canonicalize-in/out boundary for passing Go values
// across the JS runtime.
package script

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dop251/goja"
)

// Operator evaluates a JavaScript expression of the form
// "function(t, param) { return ...; }" against each (t, param) pair, for
// JSON-marshalable T, P, R. Its Apply also returns an error, so it does
// not itself satisfy internal/nodes.Operator[T, P, R]; AsNodeOperator
// adapts it. Grounded in goja.Interpreter.Exec's env-injection pattern, pared
// down to the single expression Transform needs rather than sheens'
// full bindings/props/out(...) environment.
type Operator[T, P, R any] struct {
	prog    *goja.Program
	timeout time.Duration
}

// NewOperator compiles src, a JS function expression of two arguments,
// into an Operator. timeout bounds each Apply call; zero disables the
// bound.
func NewOperator[T, P, R any](src string, timeout time.Duration) (*Operator[T, P, R], error) {
	prog, err := goja.Compile("", fmt.Sprintf("(%s)", src), true)
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &Operator[T, P, R]{prog: prog, timeout: timeout}, nil
}

// Apply runs the compiled function with t and param marshaled to JSON
// and back, and unmarshals its return value into R. A panic inside the
// script (including an interrupt-triggered one) is recovered and
// resurfaces as a returned error — a scripted operator must never take
// down the node's owning region thread, the same disposition
// flexcore.EventSource.Fire gives a panicking Go handler.
func (op *Operator[T, P, R]) Apply(t T, param P) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script: panicked: %v", r)
		}
	}()

	vm := goja.New()
	fn, err := vm.RunProgram(op.prog)
	if err != nil {
		return result, fmt.Errorf("script: load: %w", err)
	}
	call, ok := goja.AssertFunction(fn)
	if !ok {
		return result, fmt.Errorf("script: compiled value is not callable")
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if op.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, op.timeout)
		defer cancel()
	}
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt("script: timed out")
		case <-done:
		}
	}()
	defer close(done)

	tv, err := toJS(vm, t)
	if err != nil {
		return result, err
	}
	pv, err := toJS(vm, param)
	if err != nil {
		return result, err
	}

	v, err := call(goja.Undefined(), tv, pv)
	if err != nil {
		return result, fmt.Errorf("script: exec: %w", err)
	}

	return fromJS[R](v)
}

func toJS(vm *goja.Runtime, v interface{}) (goja.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("script: marshal argument: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("script: unmarshal argument: %w", err)
	}
	return vm.ToValue(generic), nil
}

func fromJS[R any](v goja.Value) (R, error) {
	var out R
	data, err := json.Marshal(v.Export())
	if err != nil {
		return out, fmt.Errorf("script: marshal result: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("script: unmarshal result: %w", err)
	}
	return out, nil
}
