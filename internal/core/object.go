package core

import (
	"fmt"
	"reflect"
	"sort"
)

// wellKnownMethods are formatting methods that callers sometimes need to
// stub even when the target type never declares them, because fmt consults
// them implicitly. They are force-included in every object mock's capability
// set with a func() string signature.
var wellKnownMethods = []string{"Error", "GoString", "String"}

// stringSignature is the signature installed for the well-known methods.
var stringSignature = reflect.TypeOf((func() string)(nil))

// ObjectMock mocks the callable surface of an object. The capability set is
// discovered at construction time from the target's type: every exported
// method of the pointer method set, every exported func-typed struct field,
// every method of an interface type, plus the well-known formatting methods.
// Non-callable fields are ignored - not copied, not proxied.
//
// The ObjectMock itself is the mocked item. Call dispatches by name through
// the manager's resolution; Func exposes a typed trampoline per discovered
// method. The original target is never invoked and never mutated.
type ObjectMock struct {
	*Manager

	methods map[string]reflect.Value // name -> typed execution trampoline
	rec     *Recorder
}

// NewObjectMock builds an ObjectMock from a live instance, a typed nil
// pointer such as (*T)(nil), or a reflect.Type. The nil-pointer and
// reflect.Type forms discover the capability set without constructing
// anything, so no initializer side effects ever run. Passing an untyped nil
// is a precondition violation and panics.
func NewObjectMock(target any) *ObjectMock {
	targetType := typeOf(target)
	if targetType == nil {
		panic("stub: Mock requires an instance, a typed nil pointer, or a reflect.Type")
	}

	mock := &ObjectMock{
		Manager: &Manager{},
		methods: map[string]reflect.Value{},
	}
	mock.rec = &Recorder{manager: mock.Manager, methods: mock.methods}

	mock.discoverMethods(targetType)
	mock.discoverFuncFields(targetType)

	for _, name := range wellKnownMethods {
		mock.install(name, stringSignature)
	}

	return mock
}

// Call invokes the execution path for the named method with the given
// arguments, returning the first matching substitute's result, or nil when
// no binding matches. Calling a name outside the mocked capability set is a
// programmer error and panics.
func (m *ObjectMock) Call(methodName string, args ...any) []any {
	if _, ok := m.methods[methodName]; !ok {
		panic(fmt.Sprintf(
			"stub: no mocked method %q; mocked methods are %v",
			methodName, m.Methods(),
		))
	}

	return m.ResolveCall(methodName, args)
}

// Func returns the typed execution trampoline for the named method, or nil
// if the name was not discovered. The result type-asserts to the method's
// own signature:
//
//	add := mock.Func("Add").(func(int, int) int)
func (m *ObjectMock) Func(methodName string) any {
	trampoline, ok := m.methods[methodName]
	if !ok {
		return nil
	}

	return trampoline.Interface()
}

// Item returns the exposed mocked item. Idempotent, no side effects.
func (m *ObjectMock) Item() any {
	return m
}

// Methods returns the sorted names of the mocked capability set.
func (m *ObjectMock) Methods() []string {
	names := make([]string, 0, len(m.methods))
	for name := range m.methods {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (m *ObjectMock) recorder() *Recorder {
	return m.rec
}

// discoverMethods installs a trampoline per exported method. Pointer method
// sets include value-receiver methods, so discovery on concrete types always
// goes through the pointer type. Interface types carry their method set
// directly, with no receiver to strip.
func (m *ObjectMock) discoverMethods(targetType reflect.Type) {
	if targetType.Kind() == reflect.Interface {
		for i := range targetType.NumMethod() {
			method := targetType.Method(i)
			m.install(method.Name, method.Type)
		}

		return
	}

	pointerType := targetType
	if pointerType.Kind() != reflect.Pointer {
		pointerType = reflect.PointerTo(pointerType)
	}

	for i := range pointerType.NumMethod() {
		method := pointerType.Method(i)
		m.install(method.Name, signatureOf(method))
	}
}

// discoverFuncFields installs a trampoline per exported func-typed struct
// field, the closest analogue of an object's own callable properties.
func (m *ObjectMock) discoverFuncFields(targetType reflect.Type) {
	structType := targetType
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}

	if structType.Kind() != reflect.Struct {
		return
	}

	for i := range structType.NumField() {
		field := structType.Field(i)
		if !field.IsExported() || field.Type.Kind() != reflect.Func {
			continue
		}

		m.install(field.Name, field.Type)
	}
}

// install adds a typed trampoline for the named method unless the name is
// already mocked. The trampoline forwards its arguments into the manager's
// resolution and conforms the substitute's result to the declared return
// types.
func (m *ObjectMock) install(name string, signature reflect.Type) {
	if _, ok := m.methods[name]; ok {
		return
	}

	m.methods[name] = reflect.MakeFunc(signature, func(in []reflect.Value) []reflect.Value {
		return conformResults(signature, m.ResolveCall(name, flattenArgs(signature, in)))
	})
}

// signatureOf strips the receiver from a concrete method's type.
func signatureOf(method reflect.Method) reflect.Type {
	methodType := method.Type

	in := make([]reflect.Type, 0, methodType.NumIn()-1)
	for i := 1; i < methodType.NumIn(); i++ {
		in = append(in, methodType.In(i))
	}

	out := make([]reflect.Type, 0, methodType.NumOut())
	for i := range methodType.NumOut() {
		out = append(out, methodType.Out(i))
	}

	return reflect.FuncOf(in, out, methodType.IsVariadic())
}

// typeOf resolves the target to a type, accepting a reflect.Type directly.
// Returns nil for an untyped nil target.
func typeOf(target any) reflect.Type {
	if targetType, ok := target.(reflect.Type); ok {
		return targetType
	}

	return reflect.TypeOf(target)
}
