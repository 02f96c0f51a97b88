package constitution

import (
	"errors"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Loader loads the constitution of a project root and reports problems on
// its logger. Missing files are silent.
type Loader struct {
	logger hclog.Logger
}

// NewLoader returns a Loader logging to logger. A nil logger discards logs.
func NewLoader(logger hclog.Logger) *Loader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Loader{logger: logger}
}

// Path returns the constitution path for a project root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads the constitution of root.
//
// It returns nil when the file is missing, has a false JSON root, is
// unreadable or is not valid JSON; the latter two log exactly one error. A constitution with rejected
// linter settings is still returned and logs one warning.
func (l *Loader) Load(root string) *Constitution {
	path := Path(root)

	c, err := Read(path)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if errors.Is(err, ErrDisabled) {
		l.logger.Debug("constitution disables linting", "path", path)
		return nil
	}
	if err != nil {
		l.logger.Error("failed to load constitution", "path", path, "error", err)
		return nil
	}

	if c.SettingsErr != nil {
		l.logger.Warn("ignoring invalid linter settings", "path", path, "error", c.SettingsErr)
	}
	l.logger.Debug("constitution loaded", "path", path,
		"language", c.Settings.Language,
		"locale", c.Settings.Locale.String(),
		"rules", len(c.RuleSet().EnabledRules()))
	return c
}
