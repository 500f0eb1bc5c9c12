package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowstep/flow"
	"github.com/katalvlaran/flowstep/graphio"
	"github.com/katalvlaran/flowstep/metrics"
	"github.com/katalvlaran/flowstep/trace"
)

var (
	// ErrMissingEndpoint is returned when neither the file nor the flags name an endpoint.
	ErrMissingEndpoint = errors.New("flowstep: source and sink are required")

	// ErrVerifyMismatch is returned when --verify finds a different Dinic value.
	ErrVerifyMismatch = errors.New("flowstep: Edmonds-Karp and Dinic disagree")
)

// runContext is everything one invocation needs after flag parsing.
type runContext struct {
	cmd      *cobra.Command
	opts     *options
	log      *logrus.Logger
	network  *graphio.Network
	session  *trace.Session
	registry *prometheus.Registry
}

func newRunCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run to completion and print every augmenting path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := prepare(cmd, o)
			if err != nil {
				return err
			}
			if _, err = rc.session.RunToCompletion(); err != nil {
				return err
			}

			return rc.finish(nil)
		},
	}
}

func newStepCommand(o *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Perform up to N augmentations and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("flowstep: --count must be at least 1, got %d", count)
			}
			rc, err := prepare(cmd, o)
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				_, ok, err := rc.session.Step()
				if err != nil {
					return err
				}
				if !ok {
					break
				}
			}

			return rc.finish(nil)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of augmenting steps to perform")

	return cmd
}

func newCutCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cut",
		Short: "Run to completion and print the minimum cut",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := prepare(cmd, o)
			if err != nil {
				return err
			}
			if _, err = rc.session.RunToCompletion(); err != nil {
				return err
			}
			cut, err := rc.session.Engine().MinCut()
			if err != nil {
				return err
			}

			return rc.finish(&cut)
		},
	}
}

// prepare loads the network, resolves endpoints, wires logging and metrics,
// and initializes a session.
func prepare(cmd *cobra.Command, o *options) (*runContext, error) {
	if o.output != outputText && o.output != outputYAML {
		return nil, fmt.Errorf("flowstep: unknown output format %q", o.output)
	}
	rc := &runContext{cmd: cmd, opts: o, log: newLogger(cmd, o.verbose)}

	rc.log.WithField("file", o.file).Debug("loading network")
	n, err := graphio.Load(o.file)
	if err != nil {
		return nil, err
	}
	if o.source != "" {
		n.Source = o.source
	}
	if o.sink != "" {
		n.Sink = o.sink
	}
	if n.Source == "" || n.Sink == "" {
		return nil, ErrMissingEndpoint
	}
	rc.network = n

	flowOpts := []flow.Option{flow.WithLogger(rc.log), flow.WithEpsilon(o.epsilon)}
	if o.metrics {
		rc.registry = prometheus.NewRegistry()
		collector, err := metrics.NewCollector(rc.registry)
		if err != nil {
			return nil, err
		}
		flowOpts = append(flowOpts, flow.WithOnStep(collector.Observe))
	}

	rc.session = trace.NewSession(rc.log, flowOpts...)
	if err := rc.session.Init(n.Graph, n.Source, n.Sink); err != nil {
		return nil, err
	}

	return rc, nil
}

// finish verifies (if asked), renders the report and dumps metrics.
func (rc *runContext) finish(cut *flow.Cut) error {
	if rc.opts.verify && rc.session.Done() {
		if err := rc.verify(); err != nil {
			return err
		}
	}

	rep := newReport(rc.network, rc.session, cut)
	out := rc.cmd.OutOrStdout()
	if err := rep.write(out, rc.opts.output); err != nil {
		return err
	}
	if rc.registry != nil {
		return metrics.WriteText(out, rc.registry)
	}

	return nil
}

// verify compares the saturated value with an independent Dinic run.
func (rc *runContext) verify() error {
	want, _, err := flow.Dinic(rc.cmd.Context(), rc.network.Graph, rc.network.Source, rc.network.Sink,
		flow.WithEpsilon(rc.opts.epsilon))
	if err != nil {
		return err
	}
	got := rc.session.TotalFlow()
	if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
		return fmt.Errorf("%w: %g vs %g", ErrVerifyMismatch, got, want)
	}
	rc.log.WithField("max_flow", want).Info("verified against Dinic")

	return nil
}
