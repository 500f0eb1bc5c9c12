package flow_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowstep/core"
	"github.com/katalvlaran/flowstep/flow"
)

// DinicSuite exercises the Dinic implementation under various scenarios.
type DinicSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *DinicSuite) SetupTest() {
	s.ctx = context.Background()
}

// TestSingleEdge verifies that a single edge yields max flow equal to its capacity.
func (s *DinicSuite) TestSingleEdge() {
	mf, res, err := flow.Dinic(s.ctx, buildGraph(s.T(), edge{"A", "B", 7}), "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7.0, mf)

	fwd, _ := res.Capacity("A", "B")
	back, _ := res.Capacity("B", "A")
	require.Equal(s.T(), 0.0, fwd, "forward arc should be saturated")
	require.Equal(s.T(), 7.0, back, "reverse arc should carry the flow")
}

// TestMultiPath verifies max flow on two disjoint paths.
func (s *DinicSuite) TestMultiPath() {
	g := buildGraph(s.T(),
		edge{"A", "B", 5}, // Path1: A→B (5)
		edge{"A", "C", 4}, // Path2: A→C (4) → C→B (3)
		edge{"C", "B", 3},
	)
	mf, _, err := flow.Dinic(s.ctx, g, "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8.0, mf) // 5 + 3
}

// TestAgreesWithEdmondsKarp on the diamond network.
func (s *DinicSuite) TestAgreesWithEdmondsKarp() {
	mf, res, err := flow.Dinic(s.ctx, diamond(s.T()), "S", "T")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, mf)
	assertConservation(s.T(), res, "S", "T", mf)
}

// TestZeroCapacity ensures that zero-capacity edges yield zero flow.
func (s *DinicSuite) TestZeroCapacity() {
	mf, _, err := flow.Dinic(s.ctx, buildGraph(s.T(), edge{"X", "Y", 0}), "X", "Y")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, mf)
}

// TestEpsilonEdgeCase verifies that capacities ≤ Epsilon are ignored.
func (s *DinicSuite) TestEpsilonEdgeCase() {
	mf, _, err := flow.Dinic(s.ctx, buildGraph(s.T(), edge{"U", "V", 1}), "U", "V", flow.WithEpsilon(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, mf)
}

// TestSourceEqualsSink is a zero flow, not an error.
func (s *DinicSuite) TestSourceEqualsSink() {
	mf, res, err := flow.Dinic(s.ctx, diamond(s.T()), "A", "A")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), res)
	require.Equal(s.T(), 0.0, mf)
}

// TestContextCancellation ensures a cancelled context aborts before any phase.
func (s *DinicSuite) TestContextCancellation() {
	g := core.NewGraph()
	prev := "V0"
	const n = 1000
	for i := 1; i < n; i++ {
		cur := fmt.Sprintf("V%d", i)
		require.NoError(s.T(), g.AddEdge(prev, cur, 1))
		prev = cur
	}

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, res, err := flow.Dinic(ctx, g, "V0", prev)
	require.Error(s.T(), err)
	require.True(s.T(), errors.Is(err, context.Canceled))
	require.Nil(s.T(), res)
}

// TestSourceSinkNotFound covers missing source or sink error cases.
func (s *DinicSuite) TestSourceSinkNotFound() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddVertex("A"))

	_, _, err1 := flow.Dinic(s.ctx, g, "X", "A")
	require.True(s.T(), errors.Is(err1, flow.ErrSourceNotFound))

	_, _, err2 := flow.Dinic(s.ctx, g, "A", "Z")
	require.True(s.T(), errors.Is(err2, flow.ErrSinkNotFound))
}

// Entry point for running the suite.
func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
