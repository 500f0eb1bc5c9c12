// Package flowstep traces the Edmonds-Karp maximum flow algorithm one
// augmenting path at a time.
//
// The module is organized into small packages:
//
//	core/     - thread-safe directed capacity graph (vertices, edges, clone)
//	flow/     - residual network, stepwise Edmonds-Karp engine, min cut, Dinic
//	trace/    - session controller and step history formatting
//	metrics/  - Prometheus collector fed by engine step records
//	graphio/  - YAML network documents
//	cmd/      - the flowstep command line tool
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("S", "A", 3)
//	_ = g.AddEdge("A", "T", 2)
//	e, _ := flow.NewEdmondsKarp(g, "S", "T")
//	for {
//		rec, ok := e.Step()
//		if !ok {
//			break
//		}
//		fmt.Println(rec.PathString(), rec.Bottleneck)
//	}
package flowstep
