// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

// Package logzap adapts a *zap.Logger to bon.Logger.
package logzap

import (
	"github.com/bonfmt/bon"
	"go.uber.org/zap"
)

type Logger struct{ L *zap.Logger }

var _ bon.Logger = Logger{}

func (z Logger) Debug(msg string, f bon.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f bon.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f bon.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f bon.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f bon.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
