// Package core provides the internal implementation of stub's binding,
// resolution, and trampoline infrastructure.
package core

import "reflect"

// Substitute is the replacement behavior bound to a stubbed call. It
// receives exactly the arguments supplied at call time, and its result
// becomes the resolved call's result.
type Substitute func(args ...any) []any

// Binding pairs a method name and an expected argument list with a
// substitute. Immutable once created; owned by the manager that created it.
type Binding struct {
	methodName string
	args       []any
	substitute Substitute
}

// NewBinding creates a Binding for the given method name, argument list,
// and substitute.
func NewBinding(methodName string, args []any, substitute Substitute) *Binding {
	return &Binding{
		methodName: methodName,
		args:       args,
		substitute: substitute,
	}
}

// Matches reports whether a call with the given name and arguments resolves
// to this binding. The names must be equal (the empty string is the sentinel
// used by function mocks), the argument lists must have the same length, and
// each argument must be deeply equal to the one recorded. There is no arity
// coercion.
func (b *Binding) Matches(methodName string, args []any) bool {
	if methodName != b.methodName {
		return false
	}

	if len(args) != len(b.args) {
		return false
	}

	for i, expected := range b.args {
		if !valuesEqual(args[i], expected) {
			return false
		}
	}

	return true
}

// Substitute returns the bound substitute.
func (b *Binding) Substitute() Substitute {
	return b.substitute
}

// valuesEqual checks if two values are equal using reflect.DeepEqual.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
