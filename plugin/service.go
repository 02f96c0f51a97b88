package plugin

import (
	"context"

	"github.com/jokarl/constlint/audit"
	"github.com/jokarl/constlint/engine"
	"github.com/jokarl/constlint/lint"
)

// Service is the linter as seen by an editor host.
// GRPCLinterClient implements it on the host side; Local adapts an
// engine.Linter on the server side.
type Service interface {
	// Check returns the findings for doc, replacing any previous ones.
	Check(ctx context.Context, doc engine.Document) ([]lint.Finding, error)
	// Reload re-reads the constitution and reports whether linting is enabled.
	Reload(ctx context.Context) (bool, error)
	// Rules describes the rules of the current constitution.
	Rules(ctx context.Context) ([]lint.RuleInfo, error)
	// Audit starts the project audit registered as audit.CommandName and
	// returns its process id without waiting for it to finish.
	Audit(ctx context.Context) (int, error)
}

// LocalOption configures the Service returned by Local.
type LocalOption func(*localService)

// WithAudit sets the trigger used by Audit. An empty Dir is replaced by the
// linter's project root.
func WithAudit(t *audit.Trigger) LocalOption {
	return func(s *localService) {
		s.audit = *t
	}
}

// Local returns a Service backed by an in-process linter.
func Local(l *engine.Linter, opts ...LocalOption) Service {
	s := &localService{linter: l}
	for _, opt := range opts {
		opt(s)
	}
	if s.audit.Dir == "" {
		s.audit.Dir = l.Root()
	}
	return s
}

type localService struct {
	linter *engine.Linter
	audit  audit.Trigger
}

func (s *localService) Check(_ context.Context, doc engine.Document) ([]lint.Finding, error) {
	return s.linter.Check(doc), nil
}

func (s *localService) Reload(_ context.Context) (bool, error) {
	return s.linter.Reload() != nil, nil
}

func (s *localService) Rules(_ context.Context) ([]lint.RuleInfo, error) {
	return s.linter.Rules(), nil
}

// Audit starts the audit detached from ctx, so it outlives the request.
func (s *localService) Audit(_ context.Context) (int, error) {
	run, err := s.audit.Start(context.Background())
	if err != nil {
		return 0, err
	}
	return run.Pid(), nil
}
