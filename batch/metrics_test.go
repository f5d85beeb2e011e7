package batch

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplanner/astar"
)

func TestMetrics_ObserveLabels(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.Observe(Outcome{Result: astar.Result{Found: true, Cost: 9, Expanded: 10}, Duration: time.Millisecond})
	m.Observe(Outcome{Result: astar.Result{Found: true, Cost: 3, Expanded: 4}})
	m.Observe(Outcome{Result: astar.Result{Truncated: true, Expanded: 3}})
	m.Observe(Outcome{Result: astar.Result{Expanded: 1}})
	m.Observe(Outcome{Err: errors.New("boom")})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues(resultFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues(resultTruncated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues(resultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues(resultError)))
	assert.Equal(t, 4, testutil.CollectAndCount(m.searches))
}
