// Package stub provides permissive when/then stubbing for objects and
// functions. A mock replaces selected methods of an arbitrary target with
// programmable substitutes without modifying or invoking the target:
//
//	m := stub.Mock(&greeter{})
//	stub.When(m).Call("Greet", "bob").ThenReturn("hello bob")
//
//	m.Call("Greet", "bob")   // ["hello bob"]
//	m.Call("Greet", "alice") // nil - unmatched calls are a silent no-op
//
// This is the public API entry point. Implementation lives in internal/core.
package stub

import (
	"github.com/toejough/stub/internal/core"
)

// Binding is the stored association between a matcher (method name plus
// argument list) and a substitute.
type Binding = core.Binding

// NewBinding creates a Binding. Mostly useful for tests of matching
// behavior; stubs are normally registered through When.
func NewBinding(methodName string, args []any, substitute Substitute) *Binding {
	return core.NewBinding(methodName, args, substitute)
}

// FuncMock is a mock of a single callable of type T. Its Fn field is the
// mocked item.
type FuncMock[T any] = core.FuncMock[T]

// Manager owns the ordered binding list for one mocked entity and resolves
// incoming calls to substitutes.
type Manager = core.Manager

// ObjectMock is a mock of the callable surface of an object.
type ObjectMock = core.ObjectMock

// Recorder is the recording handle returned by When. Calls through it only
// capture a method name and arguments for the next stub declaration.
type Recorder = core.Recorder

// Stubbing is the short-lived handle for finalizing one stub declaration
// with Then, ThenReturn, or ThenPanic.
type Stubbing = core.Stubbing

// Substitute is the replacement behavior bound to a stub.
type Substitute = core.Substitute

// Mock builds an ObjectMock over the callable surface of target, which may
// be a live instance, a typed nil pointer such as (*T)(nil), or a
// reflect.Type. Discovery never constructs or invokes the target.
func Mock(target any) *ObjectMock {
	return core.NewObjectMock(target)
}

// MockFunction builds a FuncMock around the signature of fn. The returned
// mock's Fn field is a callable of the same type whose behavior is
// programmed through When(...).Invoke(...).
func MockFunction[T any](fn T) *FuncMock[T] {
	return core.NewFuncMock(fn)
}

// When returns the recording handle attached to an item previously produced
// by Mock or MockFunction, used to begin a stub declaration. It panics when
// given anything else.
func When(item any) *Recorder {
	return core.When(item)
}

// Error philosophy:
//
// Programmer errors - When on a non-mock, mocking a non-function, calling or
// recording a method outside the mocked capability set, a stub returning a
// value a typed trampoline cannot convert - imply intervention is necessary
// to resolve, and trigger an explanatory panic for the programmer to track
// down.
//
// Unmatched calls are not errors: they resolve to an unset value (nil, or
// zero values through a typed trampoline) by design, so large surfaces can
// be stubbed partially.
//
// A failure inside a registered substitute propagates unchanged to the
// caller of the mocked method; nothing is caught, wrapped, or logged.
