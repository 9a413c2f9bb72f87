// Package selection computes selection transitions for single and multiple choice menus.
//
// The reducer is pure: it never stores state. Callers own the current State, pass it
// to Reduce along with the toggled identifier and the menu's Policy, and persist the
// returned State for the next call.
package selection

import (
	"strconv"
	"strings"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Kind identifies the variant of a State.
type Kind int

const (
	KindNone Kind = iota
	KindSingle
	KindMultiple
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSingle:
		return "single"
	case KindMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// Policy fixes how a menu reacts to toggles.
type Policy struct {
	// Multiple allows any number of selected identifiers.
	Multiple bool
	// Unselectable lets a single-choice menu clear its selection by toggling the
	// selected identifier again.
	Unselectable bool
}

// State is an immutable selection value. The zero value is None.
type State struct {
	kind Kind
	ids  []string
}

// None returns the empty single-choice state.
func None() State {
	return State{kind: KindNone}
}

// Single returns a single-choice state holding id.
func Single(id string) State {
	return State{kind: KindSingle, ids: []string{id}}
}

// Multiple returns a multiple-choice state holding ids in order. Duplicates keep their
// first occurrence.
func Multiple(ids ...string) State {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return State{kind: KindMultiple, ids: out}
}

// Empty returns the legal empty state for policy.
func Empty(policy Policy) State {
	if policy.Multiple {
		return Multiple()
	}
	return None()
}

// Kind reports the state variant.
func (s State) Kind() Kind {
	return s.kind
}

// ID returns the selected identifier of a Single state.
func (s State) ID() (string, bool) {
	if s.kind != KindSingle {
		return "", false
	}
	return s.ids[0], true
}

// IDs returns a copy of the selected identifiers in selection order.
func (s State) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected identifiers.
func (s State) Len() int {
	return len(s.ids)
}

// Contains reports whether id is selected.
func (s State) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Equal reports whether both states have the same variant and members in the same order.
func (s State) Equal(other State) bool {
	if s.kind != other.kind || len(s.ids) != len(other.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

func (s State) String() string {
	switch s.kind {
	case KindSingle:
		return "single(" + strconv.Quote(s.ids[0]) + ")"
	case KindMultiple:
		quoted := make([]string, len(s.ids))
		for i, id := range s.ids {
			quoted[i] = strconv.Quote(id)
		}
		return "multiple[" + strings.Join(quoted, ", ") + "]"
	default:
		return "none"
	}
}

// Reduce returns the state that follows toggling id under policy. A state whose shape
// does not match the policy yields a *errors.StateError.
func Reduce(state State, toggled string, policy Policy) (State, error) {
	if !policy.Multiple {
		if state.kind == KindMultiple {
			return state, swatcherrors.NewStateError(state.kind.String(), false)
		}
		if policy.Unselectable && state.kind == KindSingle && state.ids[0] == toggled {
			return None(), nil
		}
		return Single(toggled), nil
	}

	if state.kind != KindMultiple {
		return state, swatcherrors.NewStateError(state.kind.String(), true)
	}

	if state.Contains(toggled) {
		remaining := make([]string, 0, len(state.ids)-1)
		for _, id := range state.ids {
			if id != toggled {
				remaining = append(remaining, id)
			}
		}
		return State{kind: KindMultiple, ids: remaining}, nil
	}

	added := make([]string, len(state.ids), len(state.ids)+1)
	copy(added, state.ids)
	return State{kind: KindMultiple, ids: append(added, toggled)}, nil
}
