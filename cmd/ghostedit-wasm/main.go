//go:build js && wasm

// Command ghostedit-wasm exposes the editor engine to a browser page.
//
// It registers these globals:
//
//	analyzeText(text)        -> {words, chars, graphemes, lines, readingTime}
//	updateContent(text)
//	handleKey(name, ctrl)    -> command token or null
//	undo()                   -> content
//	suggestEmoji(prefix)     -> glyph or null
//	getMode()                -> "normal" | "insert"
//	getContent()             -> content
package main

import (
	"syscall/js"

	"github.com/dshills/ghostedit/internal/engine"
	"github.com/dshills/ghostedit/internal/engine/stats"
)

func main() {
	e := engine.New()

	exports := map[string]func(args []js.Value) any{
		"analyzeText": func(args []js.Value) any {
			return statsObject(stats.Analyze(stringArg(args, 0), e.WordsPerMinute()))
		},
		"updateContent": func(args []js.Value) any {
			e.UpdateContent(stringArg(args, 0))
			return nil
		},
		"handleKey": func(args []js.Value) any {
			ctrl := len(args) > 1 && args[1].Truthy()
			cmd, ok := e.HandleKey(stringArg(args, 0), ctrl)
			if !ok {
				return js.Null()
			}
			return cmd.String()
		},
		"undo": func([]js.Value) any {
			return e.Undo()
		},
		"suggestEmoji": func(args []js.Value) any {
			glyph, ok := e.SuggestEmoji(stringArg(args, 0))
			if !ok {
				return js.Null()
			}
			return glyph
		},
		"getMode": func([]js.Value) any {
			return e.Mode().String()
		},
		"getContent": func([]js.Value) any {
			return e.Content()
		},
	}

	global := js.Global()
	for name, fn := range exports {
		fn := fn
		global.Set(name, js.FuncOf(func(_ js.Value, args []js.Value) any {
			return fn(args)
		}))
	}

	// Keep the exported functions alive.
	select {}
}

// stringArg returns args[i] as a string, or "" when missing.
func stringArg(args []js.Value, i int) string {
	if i >= len(args) || args[i].Type() != js.TypeString {
		return ""
	}
	return args[i].String()
}

func statsObject(st stats.Stats) map[string]any {
	return map[string]any{
		"words":       st.Words,
		"chars":       st.Chars,
		"graphemes":   st.Graphemes,
		"lines":       st.Lines,
		"readingTime": st.ReadingTime,
	}
}
