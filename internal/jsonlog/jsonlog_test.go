package jsonlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
)

type logEntry struct {
	Level      string            `json:"level"`
	Time       string            `json:"time"`
	Message    string            `json:"message"`
	Properties map[string]string `json:"properties"`
	Trace      string            `json:"trace"`
}

func TestJSONLogger(t *testing.T) {
	var logBuffer bytes.Buffer

	t.Run("INFO level", func(t *testing.T) {
		logBuffer.Reset()
		l := New(&logBuffer, LevelInfo)
		l.PrintInfo("starting server", map[string]string{
			"addr": ":4000",
			"env":  "development",
		})
		var entry logEntry
		if err := json.Unmarshal(logBuffer.Bytes(), &entry); err != nil {
			t.Fatalf("log entry is not valid JSON: %v", err)
		}
		if entry.Level != "INFO" {
			t.Errorf("expected level INFO; got %s", entry.Level)
		}
		if entry.Message != "starting server" {
			t.Errorf("expected message %q; got %q", "starting server", entry.Message)
		}
		if entry.Properties["addr"] != ":4000" {
			t.Errorf("expected addr property %q; got %q", ":4000", entry.Properties["addr"])
		}
		if entry.Trace != "" {
			t.Error("expected no stack trace for INFO entries")
		}
	})

	t.Run("ERROR level includes trace", func(t *testing.T) {
		logBuffer.Reset()
		l := New(&logBuffer, LevelInfo)
		l.PrintError(fmt.Errorf("connection refused"), nil)
		var entry logEntry
		if err := json.Unmarshal(logBuffer.Bytes(), &entry); err != nil {
			t.Fatalf("log entry is not valid JSON: %v", err)
		}
		if entry.Level != "ERROR" {
			t.Errorf("expected level ERROR; got %s", entry.Level)
		}
		if entry.Trace == "" {
			t.Error("expected a stack trace for ERROR entries")
		}
	})

	t.Run("entries below the minimum level are dropped", func(t *testing.T) {
		logBuffer.Reset()
		l := New(&logBuffer, LevelError)
		l.PrintDebug("cache hit", nil)
		l.PrintInfo("ignored", nil)
		if logBuffer.Len() != 0 {
			t.Errorf("expected no output; got %q", logBuffer.String())
		}
	})

	t.Run("Write logs at the ERROR level", func(t *testing.T) {
		logBuffer.Reset()
		l := New(&logBuffer, LevelInfo)
		if _, err := l.Write([]byte("http: panic serving")); err != nil {
			t.Fatal(err)
		}
		var entry logEntry
		if err := json.Unmarshal(logBuffer.Bytes(), &entry); err != nil {
			t.Fatalf("log entry is not valid JSON: %v", err)
		}
		if entry.Level != "ERROR" {
			t.Errorf("expected level ERROR; got %s", entry.Level)
		}
	})
}
