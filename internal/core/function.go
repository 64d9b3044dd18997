package core

import (
	"fmt"
	"reflect"
)

// functionName is the method-name sentinel for function mocks; a bare
// function has no method name. Exported Go method names are never empty, so
// the sentinel cannot collide with an object mock's capability set.
const functionName = ""

// FuncMock mocks a single callable of type T. The original callable is
// inspected only for its signature; its body is never invoked.
type FuncMock[T any] struct {
	*Manager

	// Fn is the mocked item: a callable of the same type as the original.
	// Invoking it resolves the first matching binding, or yields zero values
	// of the declared results when nothing matches.
	Fn T

	rec *Recorder
}

// NewFuncMock builds a FuncMock around the signature of fn. Passing a
// non-function is a precondition violation and panics.
func NewFuncMock[T any](fn T) *FuncMock[T] {
	signature := reflect.TypeOf(fn)
	if signature == nil || signature.Kind() != reflect.Func {
		panic(fmt.Sprintf("stub: MockFunction requires a function, got %T", fn))
	}

	mock := &FuncMock[T]{Manager: &Manager{}} //nolint:exhaustruct // Fn and rec are set below
	mock.rec = &Recorder{manager: mock.Manager, methods: nil}

	trampoline := reflect.MakeFunc(signature, func(in []reflect.Value) []reflect.Value {
		return conformResults(signature, mock.ResolveCall(functionName, flattenArgs(signature, in)))
	})

	// We are depending on MakeFunc to return the correct type, as
	// documented. If it somehow didn't, the item would not be callable as T,
	// so fail loudly here rather than at first use.
	item, ok := trampoline.Interface().(T)
	if !ok {
		panic(fmt.Sprintf(
			"stub: MockFunction produced %T, which is not callable as %T",
			trampoline.Interface(), fn,
		))
	}

	mock.Fn = item

	return mock
}

// Call invokes the mocked callable with an untyped argument list, returning
// the first matching substitute's result, or nil when no binding matches.
func (f *FuncMock[T]) Call(args ...any) []any {
	return f.ResolveCall(functionName, args)
}

// Item returns the exposed mocked item, the typed callable Fn.
func (f *FuncMock[T]) Item() any {
	return f.Fn
}

func (f *FuncMock[T]) recorder() *Recorder {
	return f.rec
}
