package core

import "sync"

// Manager owns the ordered binding list for one mocked entity and resolves
// incoming calls to substitutes. ObjectMock and FuncMock embed it; each call
// to Mock or MockFunction produces an independently owned Manager, so two
// mocks of the same original never interact.
type Manager struct {
	mu       sync.Mutex // protects bindings
	bindings []*Binding
}

// RecordCall captures a recording call, producing a fresh Stubbing that
// holds the manager, method name, and arguments. No side effect beyond the
// allocation; nothing is registered until the Stubbing is finalized.
func (m *Manager) RecordCall(methodName string, args []any) *Stubbing {
	return &Stubbing{
		manager:    m,
		methodName: methodName,
		args:       args,
	}
}

// AddBinding appends a new Binding to the ordered list. Registration order
// is observable: earlier bindings win resolution, so a later, more general
// stub never overrides an earlier, more specific one.
func (m *Manager) AddBinding(methodName string, args []any, substitute Substitute) {
	m.mu.Lock()
	m.bindings = append(m.bindings, NewBinding(methodName, args, substitute))
	m.mu.Unlock()
}

// ResolveCall scans the bindings in insertion order and invokes the first
// matching substitute, returning its result. A call with no matching binding
// resolves to nil - unmatched calls are a supported, silent no-op, which is
// what makes partial stubbing of large surfaces workable. A panic from the
// substitute propagates unchanged to the caller.
//
// The lock is released before the substitute runs, so a substitute may call
// back into the same mock to resolve or register further bindings.
func (m *Manager) ResolveCall(methodName string, args []any) []any {
	m.mu.Lock()
	bindings := make([]*Binding, len(m.bindings))
	copy(bindings, m.bindings)
	m.mu.Unlock()

	for _, binding := range bindings {
		if binding.Matches(methodName, args) {
			return binding.Substitute()(args...)
		}
	}

	return nil
}
