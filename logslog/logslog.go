// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

// Package logslog adapts a *slog.Logger to bon.Logger.
package logslog

import (
	"context"
	"log/slog"

	"github.com/bonfmt/bon"
)

type Logger struct{ L *slog.Logger }

var _ bon.Logger = Logger{}

func (s Logger) Debug(msg string, f bon.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs(f)...)
}
func (s Logger) Info(msg string, f bon.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelInfo, msg, attrs(f)...)
}
func (s Logger) Warn(msg string, f bon.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs(f)...)
}
func (s Logger) Error(msg string, f bon.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelError, msg, attrs(f)...)
}

func attrs(f bon.Fields) []slog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]slog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, slog.Any(k, v))
	}
	return out
}
