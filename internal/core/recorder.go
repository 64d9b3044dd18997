package core

import (
	"fmt"
	"reflect"
)

// Recorder is the recording proxy attached to a mocked item. Calls made
// through it never invoke real or mocked behavior; they only capture a
// method name and argument list for the next stub declaration. Each mock
// carries exactly one Recorder for its whole life, so repeated When calls on
// the same item return the same handle.
type Recorder struct {
	manager *Manager
	methods map[string]reflect.Value // nil for function mocks
}

// Call begins a stub declaration for the named method on an object mock.
// Recording a name outside the mocked capability set is a programmer error
// and panics, mirroring the execution side.
func (r *Recorder) Call(methodName string, args ...any) *Stubbing {
	if r.methods == nil {
		panic("stub: Call records object-mock methods; use Invoke for a mocked function")
	}

	if _, ok := r.methods[methodName]; !ok {
		panic(fmt.Sprintf("stub: cannot record %q: no such mocked method", methodName))
	}

	return r.manager.RecordCall(methodName, args)
}

// Invoke begins a stub declaration for a function mock.
func (r *Recorder) Invoke(args ...any) *Stubbing {
	if r.methods != nil {
		panic("stub: Invoke records function mocks; use Call(method, args...) for an object mock")
	}

	return r.manager.RecordCall(functionName, args)
}

// mocked is the association between a mocked item and its recording handle,
// implemented by ObjectMock and FuncMock. It replaces the original design's
// magic well-known property on the proxy with an explicit one.
type mocked interface {
	recorder() *Recorder
}

// When returns the recording handle attached to an item previously produced
// by Mock or MockFunction. Calling it with anything else is a programmer
// error in test code, surfaced immediately as a panic rather than silently
// recovered.
func When(item any) *Recorder {
	wrapper, ok := item.(mocked)
	if !ok {
		panic(fmt.Sprintf(
			"stub: When called on %T, which was not produced by Mock or MockFunction",
			item,
		))
	}

	recorder := wrapper.recorder()
	if recorder == nil {
		panic("stub: mocked item carries no recording handle")
	}

	return recorder
}
