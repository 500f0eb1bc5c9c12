package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowstep/core"
	"github.com/katalvlaran/flowstep/flow"
)

// newTestCollector registers a Collector on an isolated registry so tests
// never touch the global Prometheus registry.
func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	return c, reg
}

func TestCollector_ObserveEngineRun(t *testing.T) {
	c, _ := newTestCollector(t)

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("S", "A", 3))
	require.NoError(t, g.AddEdge("S", "B", 2))
	require.NoError(t, g.AddEdge("A", "T", 2))
	require.NoError(t, g.AddEdge("B", "T", 3))
	require.NoError(t, g.AddEdge("A", "B", 1))

	e, err := flow.NewEdmondsKarp(g, "S", "T", flow.WithOnStep(c.Observe))
	require.NoError(t, err)
	e.Run()

	require.Equal(t, 3.0, testutil.ToFloat64(c.AugmentationsTotal))
	require.Equal(t, 5.0, testutil.ToFloat64(c.FlowPushedTotal))
	require.Equal(t, 5.0, testutil.ToFloat64(c.TotalFlow))
	require.Equal(t, 1, testutil.CollectAndCount(c.PathLength))
}

func TestCollector_DuplicateRegistration(t *testing.T) {
	_, reg := newTestCollector(t)

	_, err := NewCollector(reg)
	require.Error(t, err)
}

func TestCollector_NilRegisterer(t *testing.T) {
	c, err := NewCollector(nil)
	require.NoError(t, err)
	c.Observe(flow.StepRecord{Index: 1, Path: []flow.Arc{{From: "S", To: "T"}}, Bottleneck: 4, TotalFlow: 4})
	require.Equal(t, 4.0, testutil.ToFloat64(c.TotalFlow))
}

func TestWriteText(t *testing.T) {
	c, reg := newTestCollector(t)
	c.Observe(flow.StepRecord{Index: 1, Path: []flow.Arc{{From: "S", To: "T"}}, Bottleneck: 5, TotalFlow: 5})

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))
	out := buf.String()
	require.Contains(t, out, "flowstep_engine_augmentations_total 1")
	require.Contains(t, out, "flowstep_engine_total_flow 5")
	require.Contains(t, out, "# TYPE flowstep_engine_path_length histogram")
}
