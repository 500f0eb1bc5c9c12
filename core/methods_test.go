package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowstep/core"
)

// GraphSuite covers vertex and edge lifecycle contracts.
type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require.NoError(s.T(), s.g.AddVertex("A"))
	require.NoError(s.T(), s.g.AddVertex("A"), "re-adding is a no-op")
	require.True(s.T(), s.g.HasVertex("A"))
	require.False(s.T(), s.g.HasVertex("B"))
	require.Equal(s.T(), 1, s.g.VertexCount())
	require.ErrorIs(s.T(), s.g.AddVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeAddsEndpoints() {
	require.NoError(s.T(), s.g.AddEdge("S", "T", 5))
	require.True(s.T(), s.g.HasVertex("S"))
	require.True(s.T(), s.g.HasVertex("T"))
	require.True(s.T(), s.g.HasEdge("S", "T"))
	require.False(s.T(), s.g.HasEdge("T", "S"), "edges are directed")

	c, err := s.g.Capacity("S", "T")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, c)
}

func (s *GraphSuite) TestAddEdgeRejections() {
	require.ErrorIs(s.T(), s.g.AddEdge("", "T", 1), core.ErrEmptyVertexID)
	require.ErrorIs(s.T(), s.g.AddEdge("A", "A", 1), core.ErrLoopNotAllowed)
	require.ErrorIs(s.T(), s.g.AddEdge("A", "B", -1), core.ErrBadCapacity)
	require.ErrorIs(s.T(), s.g.AddEdge("A", "B", math.NaN()), core.ErrBadCapacity)
	require.ErrorIs(s.T(), s.g.AddEdge("A", "B", math.Inf(1)), core.ErrBadCapacity)

	require.NoError(s.T(), s.g.AddEdge("A", "B", 1))
	require.ErrorIs(s.T(), s.g.AddEdge("A", "B", 2), core.ErrMultiEdgeNotAllowed)
	require.NoError(s.T(), s.g.AddEdge("B", "A", 2), "antiparallel edge is a different pair")
	require.Equal(s.T(), 2, s.g.VertexCount())
}

func (s *GraphSuite) TestOptions() {
	g := core.NewGraph(core.WithLoops(), core.WithNegativeCapacities())
	require.NoError(s.T(), g.AddEdge("A", "A", 1))
	require.NoError(s.T(), g.AddEdge("A", "B", -3))
	c, err := g.Capacity("A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), -3.0, c)
}

func (s *GraphSuite) TestSetCapacity() {
	require.ErrorIs(s.T(), s.g.SetCapacity("A", "B", 1), core.ErrEdgeNotFound)
	require.NoError(s.T(), s.g.AddEdge("A", "B", 1))
	require.NoError(s.T(), s.g.SetCapacity("A", "B", 9))
	require.ErrorIs(s.T(), s.g.SetCapacity("A", "B", -1), core.ErrBadCapacity)

	c, err := s.g.Capacity("A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9.0, c)
}

func (s *GraphSuite) TestRemoveEdgeKeepsOrder() {
	require.NoError(s.T(), s.g.AddEdge("A", "B", 1))
	require.NoError(s.T(), s.g.AddEdge("B", "C", 2))
	require.NoError(s.T(), s.g.AddEdge("C", "D", 3))

	require.NoError(s.T(), s.g.RemoveEdge("A", "B"))
	require.ErrorIs(s.T(), s.g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
	require.Equal(s.T(), []core.Edge{
		{From: "B", To: "C", Capacity: 2},
		{From: "C", To: "D", Capacity: 3},
	}, s.g.Edges())
	require.True(s.T(), s.g.HasVertex("A"), "endpoints survive edge removal")

	// the index of the shifted edges must still resolve
	require.NoError(s.T(), s.g.SetCapacity("C", "D", 4))
	c, err := s.g.Capacity("C", "D")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.0, c)
}

func (s *GraphSuite) TestInsertionOrder() {
	require.NoError(s.T(), s.g.AddEdge("Z", "Y", 1))
	require.NoError(s.T(), s.g.AddVertex("M"))
	require.NoError(s.T(), s.g.AddEdge("A", "Z", 1))
	require.Equal(s.T(), []string{"Z", "Y", "M", "A"}, s.g.Vertices())
	require.Equal(s.T(), 2, s.g.EdgeCount())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require.NoError(s.T(), s.g.AddEdge("A", "B", 1))
	c := s.g.Clone()
	require.NoError(s.T(), c.AddEdge("B", "C", 2))
	require.NoError(s.T(), c.SetCapacity("A", "B", 7))

	require.False(s.T(), s.g.HasEdge("B", "C"))
	orig, err := s.g.Capacity("A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1.0, orig)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
