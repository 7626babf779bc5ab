package config

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/dshills/ghostedit/internal/config/loader"
	"github.com/dshills/ghostedit/internal/engine"
	"github.com/dshills/ghostedit/internal/logging"
)

// Config is the resolved ghostedit configuration.
type Config struct {
	Engine  EngineConfig
	Logging LoggingConfig

	// Emoji holds extra or overriding emoji entries, keyed by name.
	Emoji map[string]string

	// Path is the file the configuration was loaded from, if any.
	Path string
}

// EngineConfig holds engine settings.
type EngineConfig struct {
	// UndoLimit is the number of snapshots kept for undo.
	UndoLimit int

	// WordsPerMinute is the reading speed used for statistics.
	WordsPerMinute float64
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level name.
	Level string

	// File is the log file path. Empty disables logging in the TUI.
	File string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			UndoLimit:      engine.DefaultMaxUndoEntries,
			WordsPerMinute: engine.DefaultWordsPerMinute,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Emoji: map[string]string{},
	}
}

// defaultsMap returns the built-in configuration as a layer map.
func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"engine": map[string]any{
			"undoLimit":      int64(d.Engine.UndoLimit),
			"wordsPerMinute": d.Engine.WordsPerMinute,
		},
		"logging": map[string]any{
			"level": d.Logging.Level,
			"file":  d.Logging.File,
		},
		"emoji": map[string]any{},
	}
}

// loadOptions configures Load.
type loadOptions struct {
	fs  loader.FileSystem
	env loader.Loader
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithFS reads config files through fsys.
func WithFS(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnvLoader overrides the environment layer. Passing nil disables it.
func WithEnvLoader(l loader.Loader) LoadOption {
	return func(o *loadOptions) {
		o.env = l
	}
}

// Load resolves the configuration: defaults, then the file at path (if
// path is non-empty and the file exists), then GHOSTEDIT_* environment
// variables.
func Load(path string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(loader.DefaultEnvPrefix),
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged := defaultsMap()

	if path != "" {
		fl, err := loader.ForPath(o.fs, path)
		if err != nil {
			return nil, err
		}
		fileCfg, err := fl.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, fileCfg)
	}

	if o.env != nil {
		envCfg, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, envCfg)
	}

	cfg, err := FromMap(merged)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// FromMap decodes and validates a configuration map. Missing settings
// keep their defaults; unknown settings are ignored.
func FromMap(m map[string]any) (*Config, error) {
	cfg := Default()
	var errs []error

	if sec, ok, err := section(m, "engine"); err != nil {
		errs = append(errs, err)
	} else if ok {
		if v, ok, err := getInt(sec, "engine.undoLimit", "undoLimit"); err != nil {
			errs = append(errs, err)
		} else if ok {
			cfg.Engine.UndoLimit = v
		}
		if v, ok, err := getFloat(sec, "engine.wordsPerMinute", "wordsPerMinute"); err != nil {
			errs = append(errs, err)
		} else if ok {
			cfg.Engine.WordsPerMinute = v
		}
	}

	if sec, ok, err := section(m, "logging"); err != nil {
		errs = append(errs, err)
	} else if ok {
		if v, ok, err := getString(sec, "logging.level", "level"); err != nil {
			errs = append(errs, err)
		} else if ok {
			cfg.Logging.Level = v
		}
		if v, ok, err := getString(sec, "logging.file", "file"); err != nil {
			errs = append(errs, err)
		} else if ok {
			cfg.Logging.File = v
		}
	}

	if sec, ok, err := section(m, "emoji"); err != nil {
		errs = append(errs, err)
	} else if ok {
		for name := range sec {
			glyph, _, err := getString(sec, "emoji."+name, name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			cfg.Emoji[name] = glyph
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Engine.UndoLimit <= 0 {
		errs = append(errs, &ValidationError{
			Path:    "engine.undoLimit",
			Message: "must be positive",
			Value:   c.Engine.UndoLimit,
		})
	}
	if c.Engine.WordsPerMinute <= 0 {
		errs = append(errs, &ValidationError{
			Path:    "engine.wordsPerMinute",
			Message: "must be positive",
			Value:   c.Engine.WordsPerMinute,
		})
	}
	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Message: "must be one of debug, info, warn, error",
			Value:   c.Logging.Level,
		})
	}
	for name, glyph := range c.Emoji {
		if name == "" {
			errs = append(errs, &ValidationError{
				Path:    "emoji",
				Message: "emoji name must not be empty",
				Value:   glyph,
			})
		}
	}

	return errors.Join(errs...)
}

// EmojiEntries returns the default emoji table with configured entries
// applied. Overrides keep the default position; additions follow in name
// order.
func (c *Config) EmojiEntries() []engine.EmojiEntry {
	entries := engine.DefaultEmoji()
	seen := make(map[string]bool, len(entries))
	for i := range entries {
		seen[entries[i].Key] = true
		if glyph, ok := c.Emoji[entries[i].Key]; ok {
			entries[i].Value = glyph
		}
	}

	extra := make([]string, 0, len(c.Emoji))
	for name := range c.Emoji {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		entries = append(entries, engine.EmojiEntry{Key: name, Value: c.Emoji[name]})
	}
	return entries
}

// EngineOptions returns engine options for this configuration.
func (c *Config) EngineOptions(logger *zap.Logger) []engine.Option {
	return []engine.Option{
		engine.WithMaxUndoEntries(c.Engine.UndoLimit),
		engine.WithWordsPerMinute(c.Engine.WordsPerMinute),
		engine.WithEmojiTable(c.EmojiEntries()),
		engine.WithLogger(logger),
	}
}

// ApplyTo updates a running engine with reloadable settings: undo bound,
// reading speed and emoji entries. Emoji entries are only ever added or
// replaced, never removed.
func (c *Config) ApplyTo(e *engine.Engine) {
	e.SetMaxUndoEntries(c.Engine.UndoLimit)
	e.SetWordsPerMinute(c.Engine.WordsPerMinute)
	for _, entry := range c.EmojiEntries() {
		e.AddEmoji(entry.Key, entry.Value)
	}
}

// ============================================================================
// Map accessors
// ============================================================================

func section(m map[string]any, name string) (map[string]any, bool, error) {
	raw, ok := m[name]
	if !ok || raw == nil {
		return nil, false, nil
	}
	sec, ok := raw.(map[string]any)
	if !ok {
		return nil, false, &TypeError{Path: name, Expected: "table", Actual: fmt.Sprintf("%T", raw)}
	}
	return sec, true, nil
}

func getInt(m map[string]any, path, key string) (int, bool, error) {
	raw, ok := m[key]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int64:
		return int(v), true, nil
	case int:
		return v, true, nil
	case float64:
		if v == float64(int(v)) {
			return int(v), true, nil
		}
	}
	return 0, false, &TypeError{Path: path, Expected: "integer", Actual: fmt.Sprintf("%T", raw)}
}

func getFloat(m map[string]any, path, key string) (float64, bool, error) {
	raw, ok := m[key]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case int64:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	}
	return 0, false, &TypeError{Path: path, Expected: "number", Actual: fmt.Sprintf("%T", raw)}
}

func getString(m map[string]any, path, key string) (string, bool, error) {
	raw, ok := m[key]
	if !ok {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, &TypeError{Path: path, Expected: "string", Actual: fmt.Sprintf("%T", raw)}
	}
	return s, true, nil
}
