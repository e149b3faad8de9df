package config

import (
	"testing"
	"time"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DISCORD_TOKEN", "DISCORD_GUILD_ID", "TRACKER_KEY", "TRACKER_BASE_URL",
		"TRACKER_TIMEOUT_SECONDS", "DATABASE_URL", "ASSETS_DIR", "LAYOUT_FILE",
		"HTTP_ADDR", "LOG_LEVEL", "LOG_FILE", "RANK_ALIASES",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != defaultDatabaseURL {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.AssetsDir != defaultAssetsDir {
		t.Errorf("AssetsDir = %q", cfg.AssetsDir)
	}
	if cfg.TrackerTimeout != 10*time.Second {
		t.Errorf("TrackerTimeout = %v", cfg.TrackerTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if len(cfg.Aliases) != 0 {
		t.Errorf("Aliases = %v", cfg.Aliases)
	}
	if err := cfg.RequireDiscord(); err == nil {
		t.Error("RequireDiscord should fail without token")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "abc")
	t.Setenv("TRACKER_TIMEOUT_SECONDS", "3")
	t.Setenv("DATABASE_URL", "postgres://u@h/db")
	t.Setenv("RANK_ALIASES", "potato=realpotato@steam")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.RequireDiscord(); err != nil {
		t.Errorf("RequireDiscord: %v", err)
	}
	if cfg.BotAuth() != "Bot abc" {
		t.Errorf("BotAuth = %q", cfg.BotAuth())
	}
	if cfg.TrackerTimeout != 3*time.Second {
		t.Errorf("TrackerTimeout = %v", cfg.TrackerTimeout)
	}
	if cfg.DatabaseURL != "postgres://u@h/db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	want := domain.Identity{Username: "realpotato", Platform: domain.PlatformSteam}
	if got := cfg.Aliases["potato"]; got != want {
		t.Errorf("alias = %+v, want %+v", got, want)
	}
}

func TestLoad_BadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRACKER_TIMEOUT_SECONDS", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}

func TestBotAuth_KeepsPrefix(t *testing.T) {
	c := Config{DiscordToken: "Bot xyz"}
	if c.BotAuth() != "Bot xyz" {
		t.Fatalf("BotAuth = %q", c.BotAuth())
	}
}

func TestParseAliases(t *testing.T) {
	got, err := ParseAliases(" Foo = bar@epic , baz=qux ,, ")
	if err != nil {
		t.Fatalf("ParseAliases: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if got["foo"] != (domain.Identity{Username: "bar", Platform: domain.PlatformEpic}) {
		t.Errorf("foo = %+v", got["foo"])
	}
	if got["baz"] != (domain.Identity{Username: "qux"}) {
		t.Errorf("baz = %+v", got["baz"])
	}

	for _, bad := range []string{"noequals", "=x", "x=", "a=b@nintendo", "a=@steam"} {
		if _, err := ParseAliases(bad); err == nil {
			t.Errorf("ParseAliases(%q) expected error", bad)
		}
	}
}
