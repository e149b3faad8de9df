package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

func TestDefaultLayout(t *testing.T) {
	l, err := DefaultLayout()
	if err != nil {
		t.Fatalf("DefaultLayout: %v", err)
	}
	if l.Canvas.Width != 850 || l.Canvas.Height != 550 {
		t.Errorf("canvas = %dx%d", l.Canvas.Width, l.Canvas.Height)
	}
	want := []string{"Ranked Duel 1v1", "Ranked Doubles 2v2", "Ranked Standard 3v3", "Tournament Matches"}
	got := l.Slots(domain.ModeStandard)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("standard slot %d = %q, want %q", i, got[i], want[i])
		}
	}
	extras := l.Slots(domain.ModeExtras)
	if extras[0] != "Rumble" || extras[3] != "Heatseeker" {
		t.Errorf("extras = %v", extras)
	}
}

func TestLoadLayoutOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	data := `
[canvas]
background = "#000000"

[ranks]
gold = "#111111"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if l.Canvas.Background != "#000000" {
		t.Errorf("background = %q", l.Canvas.Background)
	}
	if l.Canvas.Width != 850 {
		t.Errorf("width lost on override: %d", l.Canvas.Width)
	}
	if l.Ranks["gold"] != "#111111" || l.Ranks["bronze"] == "" {
		t.Errorf("ranks not merged: %v", l.Ranks)
	}
}

func TestLoadLayoutInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(path, []byte("[modes]\nextras = [\"Hoops\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLayout(path); err == nil {
		t.Error("expected error for 1 extras slot")
	}
	if _, err := LoadLayout(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#DA7756")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.NRGBA{R: 0xDA, G: 0x77, B: 0x56, A: 255}) {
		t.Errorf("got %v", c)
	}
	if _, err := ParseHexColor("FFFFFF"); err != nil {
		t.Errorf("no # prefix: %v", err)
	}
	for _, bad := range []string{"#FFF", "#GGGGGG", "", "12345"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) expected error", bad)
		}
	}
}

func TestRankColor(t *testing.T) {
	l, err := DefaultLayout()
	if err != nil {
		t.Fatal(err)
	}
	p, err := newPalette(l)
	if err != nil {
		t.Fatal(err)
	}
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 255}

	tests := []struct {
		tier string
		want string
	}{
		{"Grand Champion II", "#FF0000"},
		{"champion I", "#A020F0"},
		{"GOLD III", "#FFD700"},
		{"Supersonic Legend", "#FFFFFF"},
	}
	for _, tt := range tests {
		want, _ := ParseHexColor(tt.want)
		if got := p.rankColor(tt.tier, fallback); got != want {
			t.Errorf("rankColor(%q) = %v, want %v", tt.tier, got, want)
		}
	}
	if got := p.rankColor("Wood IV", fallback); got != fallback {
		t.Errorf("unknown rank = %v, want fallback", got)
	}
}
