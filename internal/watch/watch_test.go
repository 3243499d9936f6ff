package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapfol/internal/testutil"
)

func TestWatcherRunsActionOnChange(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "vocab.xml")
	other := filepath.Join(dir, "other.xml")
	require.NoError(t, os.WriteFile(target, []byte("<vocabulary/>"), 0o600))

	logger, logs := testutil.NewCaptureLogger(t)
	w, err := New([]string{target}, WithDebounce(20*time.Millisecond), WithLogger(logger))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			fired <- struct{}{}
			return errors.New("action errors do not stop the watcher")
		})
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))
	select {
	case <-fired:
		t.Fatal("unrelated file triggered the action")
	case <-time.After(150 * time.Millisecond):
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(target, []byte("<vocabulary></vocabulary>"), 0o600))
	}
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("action did not run after change")
	}

	require.NoError(t, os.WriteFile(target, []byte("<vocabulary/>"), 0o600))
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("action did not run after second change")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.True(t, logs.Contains("watch action failed"))
}

func TestWatcherMissingDirectory(t *testing.T) {
	w, err := New([]string{filepath.Join(t.TempDir(), "missing", "v.xml")})
	require.NoError(t, err)

	err = w.Run(context.Background(), func(context.Context) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
