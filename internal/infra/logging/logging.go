package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel acepta debug/info/warn/error; cualquier otra cosa es info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New arma el logger de la app: texto a stderr y, si hay file, copia a un
// archivo rotado por lumberjack. El closer es no-op sin archivo.
func New(level, file string) (*slog.Logger, io.Closer) {
	return newWithWriter(os.Stderr, level, file)
}

func newWithWriter(w io.Writer, level, file string) (*slog.Logger, io.Closer) {
	var closer io.Closer = nopCloser{}
	if strings.TrimSpace(file) != "" {
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		w = io.MultiWriter(w, lj)
		closer = lj
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(h), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// RouteDiscordgo manda el logger interno de discordgo a slog.
func RouteDiscordgo(log *slog.Logger) {
	discordgo.Logger = func(msgL, caller int, format string, a ...interface{}) {
		msg := fmt.Sprintf(format, a...)
		log.Log(context.Background(), discordLevel(msgL), msg, "src", "discordgo", "caller", caller)
	}
}

func discordLevel(l int) slog.Level {
	switch l {
	case discordgo.LogError:
		return slog.LevelError
	case discordgo.LogWarning:
		return slog.LevelWarn
	case discordgo.LogInformational:
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
