package core

import (
	"fmt"
	"reflect"
)

// flattenArgs converts the reflected arguments of a trampoline invocation
// into plain values, expanding a variadic tail so that recorded and executed
// argument lists always have the same shape.
func flattenArgs(signature reflect.Type, in []reflect.Value) []any {
	if signature.IsVariadic() && len(in) > 0 {
		tail := in[len(in)-1]

		expanded := make([]reflect.Value, 0, len(in)-1+tail.Len())
		expanded = append(expanded, in[:len(in)-1]...)

		for i := range tail.Len() {
			expanded = append(expanded, tail.Index(i))
		}

		in = expanded
	}

	return unreflectValues(in)
}

// unreflectValues returns the actual values of the reflected values.
func unreflectValues(in []reflect.Value) []any {
	if len(in) == 0 {
		return nil
	}

	args := make([]any, len(in))
	for i := range in {
		args[i] = in[i].Interface()
	}

	return args
}

// conformResults converts a substitute's results to the declared return
// types of a typed trampoline. Missing or nil results become zero values -
// a typed function cannot return "unset", so zero is the closest rendition
// of an unmatched call. Convertible values are converted; anything else is a
// programmer error in the registered stub and panics with an explanation.
func conformResults(signature reflect.Type, results []any) []reflect.Value {
	out := make([]reflect.Value, signature.NumOut())

	for i := range out {
		outType := signature.Out(i)

		if i >= len(results) || results[i] == nil {
			out[i] = reflect.Zero(outType)
			continue
		}

		value := reflect.ValueOf(results[i])

		switch {
		case value.Type().AssignableTo(outType):
			out[i] = value
		case value.Type().ConvertibleTo(outType):
			out[i] = value.Convert(outType)
		default:
			panic(fmt.Sprintf(
				"stub: substitute returned %T for result %d, which is not convertible to %v",
				results[i], i, outType,
			))
		}
	}

	return out
}
