// Package settings loads the tool settings of the constlint CLI.
//
// Settings are layered with koanf, lowest to highest precedence: built-in
// defaults, the optional .constlint.yaml file, CONSTLINT_* environment
// variables, then flags set on the command line. The constitution itself
// is not a setting; it is read from the project root by the constitution
// package.
package settings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/jokarl/constlint/audit"
	"github.com/jokarl/constlint/watch"
)

// EnvPrefix is the prefix of environment variables read as settings.
const EnvPrefix = "CONSTLINT_"

// FileNames are the settings files looked up in the working directory.
var FileNames = []string{".constlint.yaml", ".constlint.yml"}

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Settings holds the CLI settings.
type Settings struct {
	Root            string        `koanf:"root"`
	LogLevel        string        `koanf:"log_level"`
	LogJSON         bool          `koanf:"log_json"`
	Output          string        `koanf:"output"`
	Debounce        time.Duration `koanf:"debounce"`
	AuditEntrypoint []string      `koanf:"audit_entrypoint"`

	// File is the settings file that was loaded, if any.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"root":             ".",
		"log_level":        "warn",
		"log_json":         false,
		"output":           OutputText,
		"debounce":         watch.DefaultDebounce,
		"audit_entrypoint": audit.DefaultEntrypoint(),
	}
}

// Default returns the settings used when nothing overrides them.
func Default() *Settings {
	return &Settings{
		Root:            ".",
		LogLevel:        "warn",
		Output:          OutputText,
		Debounce:        watch.DefaultDebounce,
		AuditEntrypoint: audit.DefaultEntrypoint(),
	}
}

// findFile returns the settings file to load, or "" when there is none.
func findFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range FileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads the settings. cfgFile names an explicit settings file; flags
// may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Settings, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Settings file
	used := findFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", used, err)
		}
	}

	// 3. Environment: CONSTLINT_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	s.File = used

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the settings values.
func (s *Settings) Validate() error {
	if s.Root == "" {
		return fmt.Errorf("root must not be empty")
	}
	if hclog.LevelFromString(s.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", s.LogLevel)
	}
	switch s.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", s.Output, OutputText, OutputJSON)
	}
	if s.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", s.Debounce)
	}
	if len(s.AuditEntrypoint) == 0 || s.AuditEntrypoint[0] == "" {
		return fmt.Errorf("audit entrypoint must name a program")
	}
	return nil
}

// NewLogger returns the operator logger described by the settings.
func (s *Settings) NewLogger(w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "constlint",
		Level:      hclog.LevelFromString(s.LogLevel),
		Output:     w,
		JSONFormat: s.LogJSON,
	})
}
