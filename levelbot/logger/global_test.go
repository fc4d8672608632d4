package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

type capturedRecord struct {
	level slog.Level
	msg   string
	attrs map[string]string
}

type captureHandler struct {
	records *[]capturedRecord
}

func (h captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h captureHandler) Handle(_ context.Context, r slog.Record) error {
	rec := capturedRecord{level: r.Level, msg: r.Message, attrs: map[string]string{}}
	r.Attrs(func(a slog.Attr) bool {
		rec.attrs[a.Key] = a.Value.String()
		return true
	})
	*h.records = append(*h.records, rec)
	return nil
}

func (h captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h captureHandler) WithGroup(string) slog.Handler      { return h }

func captureRecords(t *testing.T) *[]capturedRecord {
	t.Helper()
	records := &[]capturedRecord{}
	prev := slog.Default()
	slog.SetDefault(slog.New(captureHandler{records: records}))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return records
}

func TestLogCommand(t *testing.T) {
	tests := []struct {
		name       string
		duration   time.Duration
		err        error
		wantLevel  slog.Level
		wantMsg    string
		wantStatus string
	}{
		{
			name:       "Fast success",
			duration:   50 * time.Millisecond,
			wantLevel:  slog.LevelInfo,
			wantMsg:    "Command completed",
			wantStatus: "success",
		},
		{
			name:       "Slow success",
			duration:   3 * time.Second,
			wantLevel:  slog.LevelWarn,
			wantMsg:    "Command executed slowly",
			wantStatus: "slow",
		},
		{
			name:       "Failure",
			duration:   50 * time.Millisecond,
			err:        errors.New("boom"),
			wantLevel:  slog.LevelError,
			wantMsg:    "Command failed",
			wantStatus: "failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := captureRecords(t)

			LogCommand("login", "alice", tt.duration, tt.err)

			if len(*records) != 1 {
				t.Fatalf("expected 1 record, got %d", len(*records))
			}
			rec := (*records)[0]
			if rec.level != tt.wantLevel {
				t.Errorf("expected level %v, got %v", tt.wantLevel, rec.level)
			}
			if rec.msg != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, rec.msg)
			}
			if rec.attrs["type"] != "cmd" {
				t.Errorf("expected type cmd, got %q", rec.attrs["type"])
			}
			if rec.attrs["name"] != "login" {
				t.Errorf("expected name login, got %q", rec.attrs["name"])
			}
			if rec.attrs["user_name"] != "alice" {
				t.Errorf("expected user_name alice, got %q", rec.attrs["user_name"])
			}
			if rec.attrs["status"] != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, rec.attrs["status"])
			}
		})
	}
}

func TestLogQuery(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel slog.Level
		wantMsg   string
	}{
		{
			name:      "Success",
			wantLevel: slog.LevelDebug,
			wantMsg:   "Query executed",
		},
		{
			name:      "Failure",
			err:       errors.New("connection reset"),
			wantLevel: slog.LevelError,
			wantMsg:   "Query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := captureRecords(t)

			LogQuery("CREATE INDEX IF NOT EXISTS idx ON boosts(player_id);", 0, time.Millisecond, tt.err)

			if len(*records) != 1 {
				t.Fatalf("expected 1 record, got %d", len(*records))
			}
			rec := (*records)[0]
			if rec.level != tt.wantLevel {
				t.Errorf("expected level %v, got %v", tt.wantLevel, rec.level)
			}
			if rec.msg != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, rec.msg)
			}
			if rec.attrs["type"] != "db" {
				t.Errorf("expected type db, got %q", rec.attrs["type"])
			}
			if rec.attrs["query"] == "" {
				t.Error("expected query attr to be set")
			}
		})
	}
}

func TestLogSystem(t *testing.T) {
	records := captureRecords(t)

	LogSystem("Bot is running", slog.String("version", "dev"))

	if len(*records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(*records))
	}
	rec := (*records)[0]
	if rec.level != slog.LevelInfo {
		t.Errorf("expected info level, got %v", rec.level)
	}
	if rec.attrs["type"] != "sys" {
		t.Errorf("expected type sys, got %q", rec.attrs["type"])
	}
	if rec.attrs["version"] != "dev" {
		t.Errorf("expected version dev, got %q", rec.attrs["version"])
	}
}

func TestLogError(t *testing.T) {
	records := captureRecords(t)

	LogError("Failed to open gateway", errors.New("dial timeout"))

	if len(*records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(*records))
	}
	rec := (*records)[0]
	if rec.level != slog.LevelError {
		t.Errorf("expected error level, got %v", rec.level)
	}
	if rec.attrs["type"] != "error" {
		t.Errorf("expected type error, got %q", rec.attrs["type"])
	}
	if rec.attrs["error"] != "dial timeout" {
		t.Errorf("expected error attr, got %q", rec.attrs["error"])
	}
}
