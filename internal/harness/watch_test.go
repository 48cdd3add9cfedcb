package harness_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/datepart/internal/harness"
	"github.com/leapstack-labs/datepart/internal/testutil"
)

const watchFixture = `## Original Query: SELECT date_part('YEAR', DATE '2019-08-12')
## PySpark 3.5.5 Result: {'date_part(YEAR, DATE '2019-08-12')': 2019}
#query
#SELECT date_part('YEAR', DATE '2019-08-12')
`

func TestWatch_RerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.slt")
	require.NoError(t, os.WriteFile(path, []byte(watchFixture), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := make(chan *harness.Report, 4)
	done := make(chan error, 1)

	r := harness.NewRunner(testutil.NewTestLogger(t))
	go func() {
		done <- r.Watch(ctx, []string{path}, func(rep *harness.Report) {
			reports <- rep
		})
	}()

	// Initial run fires before any change.
	select {
	case rep := <-reports:
		assert.True(t, rep.Ok())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for initial run")
	}

	// A write should trigger a rerun after the debounce window.
	require.NoError(t, os.WriteFile(path, []byte(watchFixture), 0o644))

	select {
	case rep := <-reports:
		assert.True(t, rep.Ok())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for rerun")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher shutdown")
	}
}
