package config

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/dshills/ghostedit/internal/engine"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

// staticEnv is an environment layer with fixed content.
type staticEnv map[string]any

func (s staticEnv) Load() (map[string]any, error) { return s, nil }

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Engine.UndoLimit != 50 {
		t.Errorf("UndoLimit = %d, want 50", cfg.Engine.UndoLimit)
	}
	if cfg.Engine.WordsPerMinute != 200 {
		t.Errorf("WordsPerMinute = %v, want 200", cfg.Engine.WordsPerMinute)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("", WithEnvLoader(nil))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Engine.UndoLimit != 50 {
		t.Errorf("UndoLimit = %d, want default", cfg.Engine.UndoLimit)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/missing.toml", WithFS(memFS{}), WithEnvLoader(nil))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if cfg.Path != "/missing.toml" {
		t.Errorf("Path = %q", cfg.Path)
	}
}

func TestLoadTOML(t *testing.T) {
	fsys := memFS{"/ghostedit.toml": `
[engine]
undoLimit = 10
wordsPerMinute = 250

[logging]
level = "debug"
file = "/tmp/ghost.log"

[emoji]
tada = "🎉"
fire = "🧯"
`}

	cfg, err := Load("/ghostedit.toml", WithFS(fsys), WithEnvLoader(nil))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Engine.UndoLimit != 10 {
		t.Errorf("UndoLimit = %d, want 10", cfg.Engine.UndoLimit)
	}
	if cfg.Engine.WordsPerMinute != 250 {
		t.Errorf("WordsPerMinute = %v, want 250", cfg.Engine.WordsPerMinute)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/ghost.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Emoji["tada"] != "🎉" || cfg.Emoji["fire"] != "🧯" {
		t.Errorf("Emoji = %v", cfg.Emoji)
	}
}

func TestLoadYAML(t *testing.T) {
	fsys := memFS{"/ghostedit.yaml": "engine:\n  undoLimit: 7\nemoji:\n  wave: \"👋\"\n"}

	cfg, err := Load("/ghostedit.yaml", WithFS(fsys), WithEnvLoader(nil))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Engine.UndoLimit != 7 {
		t.Errorf("UndoLimit = %d, want 7", cfg.Engine.UndoLimit)
	}
	if cfg.Emoji["wave"] != "👋" {
		t.Errorf("Emoji = %v", cfg.Emoji)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	fsys := memFS{"/c.toml": "[engine]\nundoLimit = 10\n"}
	env := staticEnv{"engine": map[string]any{"undoLimit": int64(3)}}

	cfg, err := Load("/c.toml", WithFS(fsys), WithEnvLoader(env))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Engine.UndoLimit != 3 {
		t.Errorf("UndoLimit = %d, want env value 3", cfg.Engine.UndoLimit)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("/c.json", WithFS(memFS{}), WithEnvLoader(nil)); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestLoadParseError(t *testing.T) {
	fsys := memFS{"/c.toml": "[engine\n"}
	_, err := Load("/c.toml", WithFS(fsys), WithEnvLoader(nil))

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestFromMapTypeErrors(t *testing.T) {
	_, err := FromMap(map[string]any{
		"engine":  map[string]any{"undoLimit": "many", "wordsPerMinute": true},
		"logging": "loud",
	})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	for _, path := range []string{"engine.undoLimit", "engine.wordsPerMinute", "logging"} {
		if !strings.Contains(err.Error(), path) {
			t.Errorf("error should mention %s: %v", path, err)
		}
	}
}

func TestFromMapIntegralFloat(t *testing.T) {
	cfg, err := FromMap(map[string]any{"engine": map[string]any{"undoLimit": 12.0}})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine.UndoLimit != 12 {
		t.Errorf("UndoLimit = %d, want 12", cfg.Engine.UndoLimit)
	}

	if _, err := FromMap(map[string]any{"engine": map[string]any{"undoLimit": 1.5}}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("fractional undoLimit should be a type error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"zero undo", func(c *Config) { c.Engine.UndoLimit = 0 }, "engine.undoLimit"},
		{"negative wpm", func(c *Config) { c.Engine.WordsPerMinute = -1 }, "engine.wordsPerMinute"},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }, "logging.level"},
		{"empty emoji name", func(c *Config) { c.Emoji[""] = "x" }, "emoji"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Path != tt.path {
				t.Errorf("Path = %q, want %q", ve.Path, tt.path)
			}
			if !errors.Is(err, ErrValidationFailed) {
				t.Error("ValidationError should unwrap to ErrValidationFailed")
			}
		})
	}
}

func TestEmojiEntries(t *testing.T) {
	cfg := Default()
	cfg.Emoji["fire"] = "🧯"
	cfg.Emoji["wave"] = "👋"
	cfg.Emoji["tada"] = "🎉"

	entries := cfg.EmojiEntries()
	defaults := engine.DefaultEmoji()
	if len(entries) != len(defaults)+2 {
		t.Fatalf("len = %d, want %d", len(entries), len(defaults)+2)
	}
	if entries[1].Key != "fire" || entries[1].Value != "🧯" {
		t.Errorf("override should keep position: %v", entries[1])
	}
	if entries[len(entries)-2].Key != "tada" || entries[len(entries)-1].Key != "wave" {
		t.Errorf("additions should be sorted: %v", entries[len(entries)-2:])
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Engine.UndoLimit = 4
	cfg.Engine.WordsPerMinute = 100
	cfg.Emoji["tada"] = "🎉"

	e := engine.New(cfg.EngineOptions(nil)...)
	if e.MaxUndoEntries() != 4 {
		t.Errorf("MaxUndoEntries = %d, want 4", e.MaxUndoEntries())
	}
	if e.WordsPerMinute() != 100 {
		t.Errorf("WordsPerMinute = %v, want 100", e.WordsPerMinute())
	}
	if got, ok := e.SuggestEmoji("tada"); !ok || got != "🎉" {
		t.Errorf("SuggestEmoji(tada) = (%q, %v)", got, ok)
	}
	if _, ok := e.SuggestEmoji("ghost"); !ok {
		t.Error("defaults should remain available")
	}
}

func TestApplyTo(t *testing.T) {
	e := engine.New()
	for i := 0; i < 5; i++ {
		e.UpdateContent(strings.Repeat("a", i+1))
	}

	cfg := Default()
	cfg.Engine.UndoLimit = 2
	cfg.Engine.WordsPerMinute = 60
	cfg.Emoji["wave"] = "👋"
	cfg.ApplyTo(e)

	if e.UndoDepth() != 2 {
		t.Errorf("UndoDepth = %d, want 2", e.UndoDepth())
	}
	if e.WordsPerMinute() != 60 {
		t.Errorf("WordsPerMinute = %v, want 60", e.WordsPerMinute())
	}
	if got, ok := e.SuggestEmoji("wave"); !ok || got != "👋" {
		t.Errorf("SuggestEmoji(wave) = (%q, %v)", got, ok)
	}
}
