package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, c := newWithWriter(&buf, "warn", "")
	defer c.Close()

	log.Info("hidden")
	log.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "k=v") {
		t.Fatalf("warn missing: %q", out)
	}
}

func TestNew_TeesToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "bot.log")
	log, c := newWithWriter(&buf, "info", path)

	log.Info("card rendered", "user", "potato")
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "card rendered") {
		t.Fatalf("file missing record: %q", data)
	}
	if !strings.Contains(buf.String(), "card rendered") {
		t.Fatalf("stderr copy missing record: %q", buf.String())
	}
}

func TestDiscordLevel(t *testing.T) {
	if discordLevel(discordgo.LogError) != slog.LevelError {
		t.Error("LogError")
	}
	if discordLevel(discordgo.LogWarning) != slog.LevelWarn {
		t.Error("LogWarning")
	}
	if discordLevel(discordgo.LogDebug) != slog.LevelDebug {
		t.Error("LogDebug")
	}
}
