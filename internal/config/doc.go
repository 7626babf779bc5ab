// Package config provides the configuration system for ghostedit.
//
// # Architecture
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← GHOSTEDIT_* (highest priority)
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ghostedit.toml / ghostedit.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML, environment variables)
//   - watcher: File watching for live reload
//
// # Basic Usage
//
//	cfg, err := config.Load("ghostedit.toml")
//	if err != nil {
//	    return err
//	}
//	e := engine.New(cfg.EngineOptions(logger)...)
//
// # Settings
//
//	[engine]
//	undoLimit = 50          # snapshots kept for undo
//	wordsPerMinute = 200.0  # reading speed for statistics
//
//	[logging]
//	level = "info"          # debug, info, warn, error
//	file = ""               # log file path; empty disables logging in the TUI
//
//	[emoji]
//	tada = "🎉"             # added to (or replacing) the default table
package config
