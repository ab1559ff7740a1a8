package store

import (
	"errors"
	"fmt"
	"maps"

	"github.com/mohae/deepcopy"
	"github.com/thenoetrevino/opserr/internal/attempt"
)

var (
	// ErrPathNotFound is returned when a path does not resolve to a value.
	ErrPathNotFound = errors.New("path not found")
	// ErrNotSubstate is returned when a path resolves to a leaf value instead
	// of a nested substate.
	ErrNotSubstate = errors.New("not a substate")
)

// Snapshot is an immutable, hierarchically keyed view of application state.
// Nested substates are stored as map[string]any. Every write produces a new
// Snapshot that shares untouched branches with the previous one.
//
// The zero value is an empty snapshot using DefaultSeparator.
type Snapshot struct {
	root      map[string]any
	separator string
}

// NewSnapshot returns an empty snapshot whose paths use separator.
func NewSnapshot(separator string) Snapshot {
	return Snapshot{root: map[string]any{}, separator: separator}
}

// Separator returns the path separator of this snapshot.
func (s Snapshot) Separator() string {
	if s.separator == "" {
		return DefaultSeparator
	}
	return s.separator
}

// IsEmpty reports whether the snapshot holds no keys.
func (s Snapshot) IsEmpty() bool {
	return len(s.root) == 0
}

// ValueAt returns the value stored at path. A missing path, or a nil value,
// is an absence rather than an error condition.
func (s Snapshot) ValueAt(path string) attempt.Attempt[any] {
	keys := splitPath(path, s.Separator())
	if len(keys) == 0 {
		return attempt.Success[any](s.root)
	}

	node := s.root
	for i, key := range keys {
		v, ok := node[key]
		if !ok || v == nil {
			return attempt.Failure[any](fmt.Errorf("%w: %s", ErrPathNotFound, path))
		}
		if i == len(keys)-1 {
			return attempt.Success(v)
		}
		child, ok := v.(map[string]any)
		if !ok {
			return attempt.Failure[any](fmt.Errorf("%w: %s", ErrPathNotFound, path))
		}
		node = child
	}
	return attempt.Failure[any](fmt.Errorf("%w: %s", ErrPathNotFound, path))
}

// SubstateAt returns the nested substate at path as its own snapshot.
func (s Snapshot) SubstateAt(path string) attempt.Attempt[Snapshot] {
	return attempt.FlatMap(s.ValueAt(path), func(v any) attempt.Attempt[Snapshot] {
		m, ok := v.(map[string]any)
		if !ok {
			return attempt.Failure[Snapshot](fmt.Errorf("%w: %s", ErrNotSubstate, path))
		}
		return attempt.Success(Snapshot{root: m, separator: s.separator})
	})
}

// Branch returns a snapshot that contains only the substate at path, still
// rooted at the same position. Full value paths that point inside the
// branch resolve against it exactly as they would against s.
func (s Snapshot) Branch(path string) attempt.Attempt[Snapshot] {
	if path == "" {
		return attempt.Success(s)
	}
	return attempt.Map(s.SubstateAt(path), func(sub Snapshot) Snapshot {
		return Snapshot{separator: s.separator}.Set(path, sub)
	})
}

// Set returns a new snapshot with v stored at path. Intermediate substates
// are created as needed. Setting nil removes the key.
func (s Snapshot) Set(path string, v any) Snapshot {
	keys := splitPath(path, s.Separator())
	if sub, ok := v.(Snapshot); ok {
		v = sub.root
	}
	if len(keys) == 0 {
		root, ok := v.(map[string]any)
		if !ok {
			root = map[string]any{}
		}
		return Snapshot{root: root, separator: s.separator}
	}
	return Snapshot{root: setIn(s.root, keys, v), separator: s.separator}
}

func setIn(node map[string]any, keys []string, v any) map[string]any {
	out := make(map[string]any, len(node)+1)
	maps.Copy(out, node)

	key := keys[0]
	if len(keys) == 1 {
		if v == nil {
			delete(out, key)
		} else {
			out[key] = v
		}
		return out
	}

	child, _ := node[key].(map[string]any)
	out[key] = setIn(child, keys[1:], v)
	return out
}

// Raw returns a deep copy of the snapshot contents that the caller may
// modify freely. Leaf values are copied too; struct values keep only their
// exported fields.
func (s Snapshot) Raw() map[string]any {
	if s.root == nil {
		return map[string]any{}
	}
	out, _ := deepcopy.Copy(s.root).(map[string]any)
	return out
}
