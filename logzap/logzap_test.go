// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package logzap

import (
	"testing"

	"github.com/bonfmt/bon"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerPassesMessageAndFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Logger{L: zap.New(core)}

	l.Info("cache miss", bon.Fields{"key": "widget.v1"})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if entries[0].Message != "cache miss" {
		t.Errorf("message = %q, want %q", entries[0].Message, "cache miss")
	}
	ctx := entries[0].ContextMap()
	if ctx["key"] != "widget.v1" {
		t.Errorf("field \"key\" = %v, want %q", ctx["key"], "widget.v1")
	}
}

func TestLoggerImplementsBonLogger(t *testing.T) {
	var _ bon.Logger = Logger{}
}
