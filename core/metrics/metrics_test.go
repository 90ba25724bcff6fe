package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lynx-bridge/core/reconcile"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveUpdate(t *testing.T) {
	r := New()
	finished := time.Unix(1700000000, 0)

	r.ObserveUpdate(reconcile.PlanSummary{Added: 2, Updated: 1, Unchanged: 5, Total: 8}, false, true, 1500*time.Millisecond, finished)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.races.WithLabelValues("added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.races.WithLabelValues("updated")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.races.WithLabelValues("unchanged")))
	assert.Equal(t, 8.0, testutil.ToFloat64(r.races.WithLabelValues("total")))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(r.lastRunUnix))
	assert.Equal(t, 1.5, testutil.ToFloat64(r.durationSeconds))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.dryRun))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.backupCreated))

	count, err := testutil.GatherAndCount(r.Registry())
	require.NoError(t, err)
	assert.Equal(t, 8, count)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := New()
	r.ObserveUpdate(reconcile.PlanSummary{Added: 3, Total: 3}, true, false, time.Second, time.Now())

	path := filepath.Join(t.TempDir(), "textfile", "lynx.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lynx_bridge_update_races{result="added"} 3`)
	assert.Contains(t, string(data), "lynx_bridge_update_dry_run 1")
}
