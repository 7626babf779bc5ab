package loader

import (
	"errors"
	"testing"
)

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[engine]
undoLimit = 25
wordsPerMinute = 250.0

[logging]
level = "debug"

[emoji]
tada = "🎉"
`)

	loader := NewTOMLLoaderWithFS(memfs, "/config.toml")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	engine, ok := config["engine"].(map[string]any)
	if !ok {
		t.Fatal("expected engine to be a map")
	}
	if engine["undoLimit"] != int64(25) {
		t.Errorf("undoLimit = %v (%T), want 25", engine["undoLimit"], engine["undoLimit"])
	}
	if engine["wordsPerMinute"] != 250.0 {
		t.Errorf("wordsPerMinute = %v, want 250", engine["wordsPerMinute"])
	}

	emoji, ok := config["emoji"].(map[string]any)
	if !ok {
		t.Fatal("expected emoji to be a map")
	}
	if emoji["tada"] != "🎉" {
		t.Errorf("tada = %v, want 🎉", emoji["tada"])
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	memfs := NewMemFS()
	loader := NewTOMLLoaderWithFS(memfs, "/nonexistent.toml")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if config != nil {
		t.Error("expected nil config for non-existent file")
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", `
[engine
undoLimit = 4
`)

	loader := NewTOMLLoaderWithFS(memfs, "/invalid.toml")
	_, err := loader.Load()
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Path != "/invalid.toml" {
		t.Errorf("Path = %q, want /invalid.toml", pe.Path)
	}
	if pe.Line == 0 {
		t.Error("expected line information for TOML decode error")
	}
}
