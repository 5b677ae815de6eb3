package policy

import (
	"fmt"

	"github.com/pkg/errors"
)

// Variable is a named, optionally-bound cell carrying a value of type T.
// Besides WitnessTemplate, it is the policy compiler's only mutable state:
// derive() bumps the parent's child counter, and Bind() assigns a value at
// most once.
type Variable[T any] struct {
	name         string
	value        *T
	bound        bool
	childCounter int
}

// NewVariable creates a fresh, unbound variable with the given provenance
// name.
func NewVariable[T any](name string) *Variable[T] {
	return &Variable[T]{name: name}
}

// NewBoundVariable creates a variable already carrying a literal value.
func NewBoundVariable[T any](name string, value T) *Variable[T] {
	return &Variable[T]{name: name, value: &value, bound: true}
}

// Name returns the variable's provenance name.
func (v *Variable[T]) Name() string { return v.name }

// Bound reports whether the variable has been assigned a value.
func (v *Variable[T]) Bound() bool { return v.bound }

// Value returns the bound value and true, or the zero value and false.
func (v *Variable[T]) Value() (T, bool) {
	if !v.bound {
		var zero T
		return zero, false
	}
	return *v.value, true
}

// Bind assigns value to the variable at most once between creation and
// compilation; a second call is treated as a caller bug and rejected.
func (v *Variable[T]) Bind(value T) error {
	if v.bound {
		return errors.Errorf("variable %q is already bound", v.name)
	}
	v.value = &value
	v.bound = true
	return nil
}

// Derive produces a new variable whose name is decorated with purpose and
// the parent's monotonically increasing child counter, then increments
// that counter. Names are stable across a single compilation but are not
// required to be globally unique.
func Derive[P, C any](parent *Variable[P], purpose string) *Variable[C] {
	name := fmt.Sprintf("%s_%d_%s", parent.name, parent.childCounter, purpose)
	parent.childCounter++
	return NewVariable[C](name)
}

func (v *Variable[T]) String() string {
	if v.bound {
		return fmt.Sprintf("Variable(%q, %v)", v.name, *v.value)
	}
	return fmt.Sprintf("Variable(%q, <unbound>)", v.name)
}
