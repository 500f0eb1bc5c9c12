package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flowstep/flow"
	"github.com/katalvlaran/flowstep/graphio"
	"github.com/katalvlaran/flowstep/trace"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// report is the rendered outcome of one invocation.
type report struct {
	Source    string     `yaml:"source"`
	Sink      string     `yaml:"sink"`
	Steps     []stepView `yaml:"steps"`
	TotalFlow float64    `yaml:"total_flow"`
	Saturated bool       `yaml:"saturated"`
	Cut       *cutView   `yaml:"cut,omitempty"`

	history []flow.StepRecord
}

type stepView struct {
	Index      int      `yaml:"index"`
	Path       []string `yaml:"path"`
	Bottleneck float64  `yaml:"bottleneck"`
	TotalFlow  float64  `yaml:"total_flow"`
}

type cutView struct {
	SourceSide []string  `yaml:"source_side"`
	SinkSide   []string  `yaml:"sink_side"`
	Edges      []cutEdge `yaml:"edges"`
	Capacity   float64   `yaml:"capacity"`
}

type cutEdge struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Capacity float64 `yaml:"capacity"`
}

func newReport(n *graphio.Network, s *trace.Session, cut *flow.Cut) *report {
	history := s.History()
	r := &report{
		Source:    n.Source,
		Sink:      n.Sink,
		Steps:     make([]stepView, 0, len(history)),
		TotalFlow: s.TotalFlow(),
		Saturated: s.Done(),
		history:   history,
	}
	for _, rec := range history {
		r.Steps = append(r.Steps, stepView{
			Index:      rec.Index,
			Path:       rec.Vertices(),
			Bottleneck: rec.Bottleneck,
			TotalFlow:  rec.TotalFlow,
		})
	}
	if cut != nil {
		cv := &cutView{SourceSide: cut.SourceSide, SinkSide: cut.SinkSide, Capacity: cut.Capacity}
		for _, e := range cut.Edges {
			cv.Edges = append(cv.Edges, cutEdge{From: e.From, To: e.To, Capacity: e.Capacity})
		}
		r.Cut = cv
	}

	return r
}

func (r *report) write(w io.Writer, format string) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	return r.writeText(w)
}

func (r *report) writeText(w io.Writer) error {
	if err := trace.WriteHistory(w, r.history); err != nil {
		return err
	}
	if r.Saturated {
		if _, err := fmt.Fprintln(w, "No more augmenting paths."); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "total flow: %g\n", r.TotalFlow); err != nil {
		return err
	}
	if r.Cut == nil {
		return nil
	}
	for _, e := range r.Cut.Edges {
		if _, err := fmt.Fprintf(w, "cut edge: %s -> %s capacity %g\n", e.From, e.To, e.Capacity); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "min cut capacity: %g\n", r.Cut.Capacity)

	return err
}
