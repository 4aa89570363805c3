// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package logslog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/bonfmt/bon"
)

func TestLoggerPassesMessageAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: slog.New(slog.NewJSONHandler(&buf, nil))}

	l.Warn("eviction", bon.Fields{"key": "widget.v1"})

	var rec map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec); err != nil {
		t.Fatalf("decoding log line: %v", err)
	}
	if rec["msg"] != "eviction" {
		t.Errorf("msg = %v, want %q", rec["msg"], "eviction")
	}
	if rec["key"] != "widget.v1" {
		t.Errorf("key = %v, want %q", rec["key"], "widget.v1")
	}
	if rec["level"] != "WARN" {
		t.Errorf("level = %v, want %q", rec["level"], "WARN")
	}
}

func TestLoggerImplementsBonLogger(t *testing.T) {
	var _ bon.Logger = Logger{}
}
