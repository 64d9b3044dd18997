package core_test

import (
	"testing"

	"github.com/toejough/stub"
)

// TestBindingMatches_Exact verifies a binding matches a call with the same
// name and deeply equal arguments.
func TestBindingMatches_Exact(t *testing.T) {
	t.Parallel()

	binding := stub.NewBinding("Greet", []any{1, "a"}, nil)

	if !binding.Matches("Greet", []any{1, "a"}) {
		t.Error("expected [1, a] to match the recorded [1, a]")
	}
}

// TestBindingMatches_NameMismatch verifies name equality is required,
// including the empty-string sentinel used by function mocks.
func TestBindingMatches_NameMismatch(t *testing.T) {
	t.Parallel()

	binding := stub.NewBinding("Greet", []any{1}, nil)

	if binding.Matches("Shout", []any{1}) {
		t.Error("expected a different method name not to match")
	}

	if binding.Matches("", []any{1}) {
		t.Error("expected the function sentinel not to match a named binding")
	}
}

// TestBindingMatches_ValueMismatch verifies matching is by value, not
// identity, and that any differing element rejects the call.
func TestBindingMatches_ValueMismatch(t *testing.T) {
	t.Parallel()

	binding := stub.NewBinding("Greet", []any{1, "a"}, nil)

	if binding.Matches("Greet", []any{1, "b"}) {
		t.Error("expected [1, b] not to match the recorded [1, a]")
	}
}

// TestBindingMatches_ArityMismatch verifies there is no arity coercion: a
// shorter or longer argument list never matches.
func TestBindingMatches_ArityMismatch(t *testing.T) {
	t.Parallel()

	binding := stub.NewBinding("Greet", []any{1, "a"}, nil)

	if binding.Matches("Greet", []any{1}) {
		t.Error("expected [1] not to match the recorded [1, a]")
	}

	if binding.Matches("Greet", []any{1, "a", true}) {
		t.Error("expected [1, a, true] not to match the recorded [1, a]")
	}
}

// TestBindingMatches_DeepEquality verifies compound arguments compare by
// deep value, the contract chosen for the source's open question about
// compound matching.
func TestBindingMatches_DeepEquality(t *testing.T) {
	t.Parallel()

	binding := stub.NewBinding("Save", []any{[]int{1, 2}, map[string]int{"a": 1}}, nil)

	if !binding.Matches("Save", []any{[]int{1, 2}, map[string]int{"a": 1}}) {
		t.Error("expected deeply equal compound arguments to match")
	}

	if binding.Matches("Save", []any{[]int{1, 3}, map[string]int{"a": 1}}) {
		t.Error("expected differing slice contents not to match")
	}
}

// TestBindingSubstitute verifies the stored substitute is returned as-is.
func TestBindingSubstitute(t *testing.T) {
	t.Parallel()

	substitute := func(...any) []any { return []any{42} }
	binding := stub.NewBinding("Answer", nil, substitute)

	got := binding.Substitute()(nil)
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("expected the stored substitute to run, got %v", got)
	}
}
