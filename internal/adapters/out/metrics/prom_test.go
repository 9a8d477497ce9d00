package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPromRecorderCountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := NewPromRecorderWithRegistry(reg)
	require.NoError(t, err)

	recorder.RecordAssignment("auto")
	recorder.RecordAssignment("auto")
	recorder.RecordAssignment("preferred")
	recorder.RecordAssignmentFailure()
	recorder.RecordTransition("PICKED_UP")

	expected := `
# HELP assignments_total Total number of successful order assignments
# TYPE assignments_total counter
assignments_total{method="auto"} 2
assignments_total{method="preferred"} 1
`
	require.NoError(t, testutil.CollectAndCompare(recorder.assignments, strings.NewReader(expected)))
	require.Equal(t, float64(1), testutil.ToFloat64(recorder.failures))
	require.Equal(t, float64(1), testutil.ToFloat64(recorder.transitions.WithLabelValues("PICKED_UP")))
}

func TestPromRecorderReregistrationReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromRecorderWithRegistry(reg)
	require.NoError(t, err)

	second, err := NewPromRecorderWithRegistry(reg)
	require.NoError(t, err)

	first.RecordAssignmentFailure()
	second.RecordAssignmentFailure()
	require.Equal(t, float64(2), testutil.ToFloat64(second.failures))
}
