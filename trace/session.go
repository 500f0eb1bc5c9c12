// Package trace owns the caller side of a stepwise max-flow computation:
// one engine per (graph, source, sink) and the append-only step history.
//
// The flow engine returns one record per call and keeps no history; a Session
// accumulates it, and re-initializing discards both engine and history.
package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flowstep/core"
	"github.com/katalvlaran/flowstep/flow"
)

// ErrNotInitialized is returned by Step and RunToCompletion before Init.
var ErrNotInitialized = errors.New("trace: session not initialized")

// Session pairs an engine with its step history. Not safe for concurrent use.
type Session struct {
	engine  *flow.Engine
	history []flow.StepRecord
	opts    []flow.Option
	log     logrus.FieldLogger
}

// NewSession returns an empty session. opts are passed to every engine it creates.
func NewSession(log logrus.FieldLogger, opts ...flow.Option) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Session{opts: opts, log: log}
}

// Init replaces the engine with a fresh one for (g, source, sink) and clears
// the history. On error the previous engine and history are kept.
func (s *Session) Init(g *core.Graph, source, sink string) error {
	e, err := flow.NewEdmondsKarp(g, source, sink, s.opts...)
	if err != nil {
		return err
	}
	s.engine = e
	s.history = nil
	s.log.WithFields(logrus.Fields{"source": source, "sink": sink}).Info("session initialized")

	return nil
}

// Step performs one augmentation and appends it to the history.
// ok is false once no augmenting path remains.
func (s *Session) Step() (rec flow.StepRecord, ok bool, err error) {
	if s.engine == nil {
		return flow.StepRecord{}, false, ErrNotInitialized
	}
	rec, ok = s.engine.Step()
	if !ok {
		s.log.WithField("total_flow", s.engine.TotalFlow()).Info("no more augmenting paths")
		return rec, false, nil
	}
	s.history = append(s.history, rec)

	return rec, true, nil
}

// RunToCompletion runs the engine until saturation, extends the history and
// returns the records produced by this call.
func (s *Session) RunToCompletion() ([]flow.StepRecord, error) {
	if s.engine == nil {
		return nil, ErrNotInitialized
	}
	steps := s.engine.Run()
	s.history = append(s.history, steps...)
	s.log.WithFields(logrus.Fields{
		"steps":      len(steps),
		"total_flow": s.engine.TotalFlow(),
	}).Info("run to completion")

	return steps, nil
}

// History returns a copy of every record produced since the last Init.
func (s *Session) History() []flow.StepRecord {
	out := make([]flow.StepRecord, len(s.history))
	copy(out, s.history)

	return out
}

// Engine exposes the current engine, nil before Init.
func (s *Session) Engine() *flow.Engine { return s.engine }

// TotalFlow returns the current total flow, 0 before Init.
func (s *Session) TotalFlow() float64 {
	if s.engine == nil {
		return 0
	}

	return s.engine.TotalFlow()
}

// Done reports whether the current engine is saturated.
func (s *Session) Done() bool {
	return s.engine != nil && s.engine.Saturated()
}

// FormatStep renders one history line, numbered from 1:
//
//	Step 1: Path [(S, A) (A, T)] capacity 2 total flow 2
func FormatStep(rec flow.StepRecord) string {
	return fmt.Sprintf("Step %d: Path %s capacity %g total flow %g",
		rec.Index, rec.PathString(), rec.Bottleneck, rec.TotalFlow)
}

// WriteHistory writes one FormatStep line per record.
func WriteHistory(w io.Writer, steps []flow.StepRecord) error {
	for _, rec := range steps {
		if _, err := fmt.Fprintln(w, FormatStep(rec)); err != nil {
			return err
		}
	}

	return nil
}
