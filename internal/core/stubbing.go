package core

// Stubbing is the short-lived handle returned by a recording call. It
// captures the method name and arguments of the recording call; calling Then
// or ThenReturn registers a binding for them on the owning manager. A
// Stubbing holds no state beyond that capture, so finalizing one twice
// simply adds two bindings.
type Stubbing struct {
	manager    *Manager
	methodName string
	args       []any
}

// Then registers substitute for calls matching the recorded method name and
// arguments. The substitute receives the arguments of the eventual call, not
// the recorded ones (they are equal by value, not necessarily identical).
func (s *Stubbing) Then(substitute Substitute) {
	s.manager.AddBinding(s.methodName, s.args, substitute)
}

// ThenReturn registers a substitute that ignores its arguments and always
// returns the given values.
func (s *Stubbing) ThenReturn(values ...any) {
	s.Then(func(...any) []any {
		return values
	})
}

// ThenPanic registers a substitute that panics with the given value. The
// panic propagates unchanged to the caller of the mocked method; the manager
// performs no catching or wrapping.
func (s *Stubbing) ThenPanic(value any) {
	s.Then(func(...any) []any {
		panic(value)
	})
}
