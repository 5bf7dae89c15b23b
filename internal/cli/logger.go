// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewLogger returns a logger writing to w: a colored tint handler when w is
// a terminal, a plain text handler otherwise. Unknown level names select info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl, _ := parseLevel(level)
	if isTerminal(w) {
		return slog.New(newTerminalHandler(w, lvl))
	}

	return slog.New(newTextHandler(w, lvl))
}

func newTextHandler(w io.Writer, lvl slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				return slog.String(a.Key, strings.ToLower(a.Value.Any().(slog.Level).String()))
			}
			return a
		},
	})
}

func newTerminalHandler(w io.Writer, lvl slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		NoColor:   runtime.GOOS == "windows",
		AddSource: lvl <= slog.LevelDebug,
		Level:     lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func parseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "err", "error":
		return slog.LevelError, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "", "info":
		return slog.LevelInfo, true
	case "debug":
		return slog.LevelDebug, true
	}

	return slog.LevelInfo, false
}
