// Package diagnostic implements the database status probe behind GET /test.
// A probe never fails: every error is folded into an Outcome.
package diagnostic

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ruva-app/ruva-backend/internal/database"
)

// Recorder counts probe outcomes.
type Recorder interface {
	ObserveProbe(status string)
}

// Probe checks the optional database module.
type Probe struct {
	resolve  func() database.Resolution
	lookup   func(string) string
	log      *zap.Logger
	recorder Recorder
}

// Option configures a Probe.
type Option func(*Probe)

// WithLogger sets the logger used for probe outcomes.
func WithLogger(l *zap.Logger) Option {
	return func(p *Probe) {
		if l != nil {
			p.log = l
		}
	}
}

// WithEnv replaces os.Getenv for the presence checks.
func WithEnv(lookup func(string) string) Option {
	return func(p *Probe) {
		if lookup != nil {
			p.lookup = lookup
		}
	}
}

// WithRecorder counts each outcome.
func WithRecorder(r Recorder) Option {
	return func(p *Probe) { p.recorder = r }
}

// New builds a Probe around a resolver, usually (*database.Module).Resolve.
func New(resolve func() database.Resolution, opts ...Option) *Probe {
	p := &Probe{
		resolve: resolve,
		lookup:  os.Getenv,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run probes and renders the report.
func (p *Probe) Run(ctx context.Context) Report {
	return p.Render(p.Check(ctx))
}

// Render renders an Outcome with the probe's environment.
func (p *Probe) Render(o Outcome) Report {
	return Render(o, p.lookup)
}

// Check resolves the module and, when a handle exists, lists its
// collections once.
func (p *Probe) Check(ctx context.Context) Outcome {
	o := p.check(ctx)

	fields := []zap.Field{zap.Stringer("status", o.Status)}
	if o.Excerpt != "" {
		fields = append(fields, zap.String("error", o.Excerpt))
	}
	if o.Status.Connected() {
		fields = append(fields, zap.String("database", o.Name), zap.Int("collections", len(o.Collections)))
	}
	if o.Status == StatusWorking {
		p.log.Debug("database probe", fields...)
	} else {
		p.log.Warn("database probe", fields...)
	}
	if p.recorder != nil {
		p.recorder.ObserveProbe(o.Status.String())
	}
	return o
}

func (p *Probe) check(ctx context.Context) Outcome {
	res, err := p.safeResolve()
	if err != nil {
		return Outcome{Status: StatusResolveError, Excerpt: excerpt(err)}
	}

	switch res.Kind {
	case database.KindAbsent:
		return Outcome{Status: StatusModuleNotFound}
	case database.KindFailed:
		return Outcome{Status: StatusResolveError, Excerpt: excerpt(res.Err)}
	case database.KindPresent:
	default:
		return Outcome{Status: StatusResolveError, Excerpt: excerpt(fmt.Errorf("unexpected resolution %s", res.Kind))}
	}

	if res.Handle == nil {
		return Outcome{Status: StatusUninitialized}
	}

	name := NameConnected
	if n, ok := res.Handle.(database.Namer); ok && n.Name() != "" {
		name = n.Name()
	}

	names, err := safeList(ctx, res.Handle)
	if err != nil {
		return Outcome{Status: StatusConnectivityError, Excerpt: excerpt(err), Name: name}
	}
	return Outcome{Status: StatusWorking, Name: name, Collections: firstCollections(names)}
}

func (p *Probe) safeResolve() (res database.Resolution, err error) {
	if p.resolve == nil {
		return database.Absent(), nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return p.resolve(), nil
}

func safeList(ctx context.Context, h database.Handle) (names []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return h.ListCollections(ctx)
}
