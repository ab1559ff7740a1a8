package opserr

import (
	"fmt"
	"sync"
	"testing"

	"github.com/thenoetrevino/opserr/internal/attempt"
	"github.com/thenoetrevino/opserr/internal/config"
	"github.com/thenoetrevino/opserr/internal/store"
)

// backend builds a store and error model of one flavor. inject writes an
// arbitrary value into the error slot, bypassing the typed error channel.
type backend struct {
	name  string
	build func(t *testing.T, cfg config.ErrorDisplay) (st store.Store, model DisplayModel, inject func(any))
}

func backends() []backend {
	return []backend{
		{
			name: "dispatch",
			build: func(t *testing.T, cfg config.ErrorDisplay) (store.Store, DisplayModel, func(any)) {
				st := store.NewDispatchStore(cfg.PathSeparator, NewReducer())
				inject := func(v any) {
					st.Dispatch(store.Action{ID: UpdateErrorAction, Path: cfg.FullErrorValuePath, Payload: v})
				}
				return st, NewDispatchModel(st, cfg), inject
			},
		},
		{
			name: "reactive",
			build: func(t *testing.T, cfg config.ErrorDisplay) (store.Store, DisplayModel, func(any)) {
				st := store.NewReactiveStore(cfg.PathSeparator)
				t.Cleanup(st.Close)

				ch := NewErrorChannel(cfg)
				MergeReducer(st, ch)

				raw := store.NewSubject[any](nil)
				var once sync.Once
				inject := func(v any) {
					once.Do(func() {
						store.Merge(st, raw, func(s store.Snapshot, v any) store.Snapshot {
							if v == nil {
								return s
							}
							return s.Set(cfg.FullErrorValuePath, v)
						})
					})
					raw.Next(v)
				}
				return st, NewReactiveModel(st, ch, cfg), inject
			},
		},
	}
}

func testConfig() config.ErrorDisplay {
	return config.ErrorDisplay{
		FullErrorValuePath: "error.value",
		PathSeparator:      ".",
		DisplayDurationMs:  100,
	}
}

func makeErrors(n int) []error {
	errs := make([]error, n)
	for i := range errs {
		errs[i] = fmt.Errorf("operation %d failed", i)
	}
	return errs
}

// recorder collects the emissions of an error stream.
type recorder struct {
	mu      sync.Mutex
	present []error
	absent  int
	reasons []error
}

func record(t *testing.T, m Model) *recorder {
	t.Helper()
	r := &recorder{}
	sub := m.OperationErrorStream().Subscribe(func(a attempt.Attempt[error]) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if err, ok := a.Get(); ok {
			r.present = append(r.present, err)
			return
		}
		r.absent++
		r.reasons = append(r.reasons, a.Err())
	})
	t.Cleanup(sub.Unsubscribe)
	return r
}

func (r *recorder) counts() (present, absent int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.present), r.absent
}

func (r *recorder) errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]error, len(r.present))
	copy(out, r.present)
	return out
}

func (r *recorder) lastReason() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.reasons) == 0 {
		return nil
	}
	return r.reasons[len(r.reasons)-1]
}
