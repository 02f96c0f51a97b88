package engine

import (
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/constlint/constitution"
	"github.com/jokarl/constlint/lint"
)

// Linter checks documents of one project root against its constitution.
// It is safe for concurrent use.
type Linter struct {
	root   string
	logger hclog.Logger
	loader *constitution.Loader

	mu sync.RWMutex
	c  *constitution.Constitution
}

// Option configures a Linter.
type Option func(*Linter)

// WithLogger sets the logger of the linter and its loader.
func WithLogger(logger hclog.Logger) Option {
	return func(l *Linter) {
		l.logger = logger
	}
}

// NewLinter returns a Linter for root. No constitution is loaded until Load.
func NewLinter(root string, opts ...Option) *Linter {
	l := &Linter{
		root:   root,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.loader = constitution.NewLoader(l.logger.Named("constitution"))
	return l
}

// Root returns the project root.
func (l *Linter) Root() string {
	return l.root
}

// Load reads the constitution of the root and makes it current.
// It returns the loaded constitution, nil when linting is disabled.
func (l *Linter) Load() *constitution.Constitution {
	c := l.loader.Load(l.root)

	l.mu.Lock()
	l.c = c
	l.mu.Unlock()

	return c
}

// Reload is Load for a running linter. It logs the resulting state.
func (l *Linter) Reload() *constitution.Constitution {
	c := l.Load()
	l.logger.Info("constitution reloaded", "root", l.root, "enabled", c != nil)
	return c
}

// Constitution returns the current constitution, or nil.
func (l *Linter) Constitution() *constitution.Constitution {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.c
}

// Enabled reports whether a constitution is loaded.
func (l *Linter) Enabled() bool {
	return l.Constitution() != nil
}

// Check checks doc against the current constitution.
func (l *Linter) Check(doc Document) []lint.Finding {
	findings, err := Run(doc.Text, doc.LanguageTag, l.Constitution())
	if err != nil {
		l.logger.Debug("rule failed", "uri", doc.URI, "error", err)
	}
	return findings
}

// Rules describes the rules of the current constitution.
// It returns nil when linting is disabled.
func (l *Linter) Rules() []lint.RuleInfo {
	c := l.Constitution()
	if c == nil {
		return nil
	}
	return c.RuleSet().Describe()
}
