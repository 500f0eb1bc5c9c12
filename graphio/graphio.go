// Package graphio reads and writes flow networks as YAML documents:
//
//	source: S
//	sink: T
//	nodes: [S, A, B, T]   # optional, fixes vertex order; edges add missing endpoints
//	edges:
//	  - {from: S, to: A, capacity: 3}
//	  - {from: A, to: T, capacity: 2}
//
// Edge order in the document is the insertion order of the resulting graph,
// and therefore the traversal order of the flow engine.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flowstep/core"
)

// ErrInvalidDocument wraps every structural problem in a network document.
var ErrInvalidDocument = errors.New("graphio: invalid network document")

// Network is a decoded document: the graph plus its default endpoints.
type Network struct {
	Graph  *core.Graph
	Source string
	Sink   string
}

type document struct {
	Source string       `yaml:"source,omitempty"`
	Sink   string       `yaml:"sink,omitempty"`
	Nodes  []string     `yaml:"nodes,omitempty"`
	Edges  []edgeRecord `yaml:"edges"`
}

type edgeRecord struct {
	From     string   `yaml:"from"`
	To       string   `yaml:"to"`
	Capacity *float64 `yaml:"capacity"`
}

// Decode parses one YAML network document from r.
//
// Negative capacities are kept so that the flow builder reports them with
// the offending edge; a missing capacity is rejected here.
func Decode(r io.Reader) (*Network, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	g := core.NewGraph(core.WithNegativeCapacities())
	for i, n := range doc.Nodes {
		if err := g.AddVertex(n); err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrInvalidDocument, i, err)
		}
	}
	for i, e := range doc.Edges {
		if e.Capacity == nil {
			return nil, fmt.Errorf("%w: edge %d (%s→%s): missing capacity", ErrInvalidDocument, i, e.From, e.To)
		}
		if err := g.AddEdge(e.From, e.To, *e.Capacity); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s→%s): %v", ErrInvalidDocument, i, e.From, e.To, err)
		}
	}

	return &Network{Graph: g, Source: doc.Source, Sink: doc.Sink}, nil
}

// Load decodes the network stored at path.
func Load(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// Encode writes n as a YAML document. Every vertex is listed under nodes so
// that isolated vertices and vertex order survive a round trip.
func Encode(w io.Writer, n *Network) error {
	doc := document{
		Source: n.Source,
		Sink:   n.Sink,
		Nodes:  n.Graph.Vertices(),
		Edges:  make([]edgeRecord, 0, n.Graph.EdgeCount()),
	}
	for _, e := range n.Graph.Edges() {
		c := e.Capacity
		doc.Edges = append(doc.Edges, edgeRecord{From: e.From, To: e.To, Capacity: &c})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}

	return enc.Close()
}
