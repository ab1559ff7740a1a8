package app

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/opserr/internal/attempt"
	"github.com/thenoetrevino/opserr/internal/config"
)

func testConfig() config.ErrorDisplay {
	return config.ErrorDisplay{
		FullErrorValuePath: "error.value",
		PathSeparator:      ".",
		DisplayDurationMs:  50,
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		input string
		want  Backend
	}{
		{"dispatch", BackendDispatch},
		{"reactive", BackendReactive},
		{" Reactive ", BackendReactive},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseBackend("redux")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.FullErrorValuePath = ""

	_, err := New(cfg)
	assert.Error(t, err)

	_, err = New(testConfig(), WithBackend("redux"))
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestApp(t *testing.T) {
	for _, backend := range []Backend{BackendDispatch, BackendReactive} {
		t.Run(string(backend), func(t *testing.T) {
			t.Run("trigger writes into the store", func(t *testing.T) {
				a, err := New(testConfig(), WithBackend(backend))
				require.NoError(t, err)
				t.Cleanup(func() { _ = a.Close() })

				assert.Equal(t, backend, a.Backend())
				boom := errors.New("boom")
				a.ViewModel.OperationErrorTrigger()(boom)

				got, ok := a.Model().ErrorForState(a.Store().Snapshot()).Get()
				require.True(t, ok)
				assert.Equal(t, boom, got)

				a.ViewModel.OperationErrorTrigger()(nil)
				assert.False(t, a.ViewModel.HasError(a.Store().Snapshot()))
			})

			t.Run("injected values that are not errors are filtered", func(t *testing.T) {
				a, err := New(testConfig(), WithBackend(backend))
				require.NoError(t, err)
				t.Cleanup(func() { _ = a.Close() })

				var last attempt.Attempt[error]
				sub := a.Model().OperationErrorStream().Subscribe(func(e attempt.Attempt[error]) {
					last = e
				})
				t.Cleanup(sub.Unsubscribe)

				a.Inject("not an error")

				value, ok := a.Store().Snapshot().ValueAt("error.value").Get()
				require.True(t, ok)
				assert.Equal(t, "not an error", value)
				assert.False(t, last.IsSuccess())
				assert.Contains(t, last.Err().Error(), "not an error")
			})

			t.Run("view model deletes errors on the configured clock", func(t *testing.T) {
				mock := clock.NewMock()
				a, err := New(testConfig(), WithBackend(backend), WithClock(mock))
				require.NoError(t, err)
				t.Cleanup(func() { _ = a.Close() })

				a.ViewModel.InitializeErrorDeletionStream()
				a.ViewModel.OperationErrorTrigger()(errors.New("boom"))
				require.True(t, a.ViewModel.HasError(a.Store().Snapshot()))

				mock.Add(testConfig().DisplayDuration())
				assert.Eventually(t, func() bool {
					return !a.ViewModel.HasError(a.Store().Snapshot())
				}, time.Second, 2*time.Millisecond)
			})

			t.Run("close is idempotent", func(t *testing.T) {
				a, err := New(testConfig(), WithBackend(backend))
				require.NoError(t, err)

				assert.NoError(t, a.Close())
				assert.NoError(t, a.Close())
			})
		})
	}
}
