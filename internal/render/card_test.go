package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRenderer(t *testing.T, assetsDir string) *Renderer {
	t.Helper()
	l, err := DefaultLayout()
	if err != nil {
		t.Fatalf("DefaultLayout: %v", err)
	}
	r, err := New(l, LoadAssets(assetsDir, l, quietLogger()), quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func writeSolidPNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRenderEmptySegments(t *testing.T) {
	r := newTestRenderer(t, t.TempDir())

	for _, mode := range []domain.Mode{domain.ModeStandard, domain.ModeExtras} {
		img, err := r.Render(Request{
			Identity: domain.Identity{Username: "nobody", Platform: domain.PlatformEpic},
			Mode:     mode,
		})
		if err != nil {
			t.Fatalf("Render(%s): %v", mode, err)
		}
		if b := img.Bounds(); b.Dx() != 850 || b.Dy() != 550 {
			t.Errorf("%s: size = %dx%d, want 850x550", mode, b.Dx(), b.Dy())
		}

		// fondo fuera de header/tiles
		if got := img.RGBAAt(5, 5); got != (color.RGBA{R: 0x18, G: 0x1C, B: 0x23, A: 255}) {
			t.Errorf("%s: background pixel = %v", mode, got)
		}
		// parte baja de cada tile vacío: sólo el relleno
		for _, p := range r.layout.Tile.Positions {
			if got := img.RGBAAt(p.X+200, p.Y+190); got != (color.RGBA{R: 0x1E, G: 0x22, B: 0x2B, A: 255}) {
				t.Errorf("%s: tile fill at %v = %v", mode, p, got)
			}
		}
	}
}

func TestRenderMissingOptionalFields(t *testing.T) {
	r := newTestRenderer(t, t.TempDir())
	segs := []domain.Segment{
		{Type: domain.SegmentPlaylist, Name: "Ranked Duel 1v1", Stats: domain.Stats{Tier: "Gold II", Rating: 650}},
		{Type: domain.SegmentPlaylist, Name: "Ranked Doubles 2v2"},
		{Type: domain.SegmentOther, Name: "Ranked Standard 3v3"},
	}
	data, err := r.RenderPNG(Request{
		Identity: domain.Identity{Username: "potato", Platform: domain.PlatformSteam},
		Segments: segs,
		Mode:     domain.ModeStandard,
	})
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	cfg, err := decodeConfig(data)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != 850 || cfg.Height != 550 {
		t.Errorf("size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRenderPastesRankIcon(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "icons", "champion_2.png"), 16, 16, color.NRGBA{R: 255, A: 255})

	r := newTestRenderer(t, dir)
	img, err := r.Render(Request{
		Identity: domain.Identity{Username: "potato", Platform: domain.PlatformPSN},
		Segments: []domain.Segment{{
			Type:  domain.SegmentPlaylist,
			Name:  "Ranked Doubles 2v2",
			Stats: domain.Stats{Tier: "Champion II", Rating: 1300, MatchesPlayed: 10, Streak: domain.Streak{Value: 1, Type: domain.StreakLoss}},
		}},
		Mode: domain.ModeStandard,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	tile := r.layout.Tile
	pos := tile.Positions[1]
	cx := pos.X + tile.Icon.X + tile.IconSize/2
	cy := pos.Y + tile.Icon.Y + tile.IconSize/2
	got := img.RGBAAt(cx, cy)
	if got.R < 240 || got.G > 15 || got.B > 15 {
		t.Errorf("icon center = %v, want red", got)
	}

	// el mismo slot en otro tile no tiene ícono
	other := tile.Positions[0]
	if got := img.RGBAAt(other.X+tile.Icon.X+tile.IconSize/2, other.Y+tile.Icon.Y+tile.IconSize/2); got.R > 200 && got.G < 15 {
		t.Errorf("unranked tile has an icon: %v", got)
	}
}

func TestRenderPlatformIconKeepsAspect(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "icons", "xbl.png"), 80, 40, color.NRGBA{G: 255, A: 255})

	r := newTestRenderer(t, dir)
	img, err := r.Render(Request{Identity: domain.Identity{Username: "x", Platform: domain.PlatformXbox}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	h := r.layout.Header
	// 80x40 en una caja de 40 -> 40x20 centrado en y=50: filas 40..59
	if got := img.RGBAAt(h.Icon.X+20, h.Icon.Y); got.G < 240 {
		t.Errorf("icon center = %v, want green", got)
	}
	if got := img.RGBAAt(h.Icon.X+20, h.Icon.Y-15); got.G > 100 && got.R < 50 {
		t.Errorf("pixel above scaled icon = %v, icon was stretched", got)
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h, box    int
		wantW, wantH int
	}{
		{200, 100, 40, 40, 20},
		{100, 200, 40, 20, 40},
		{64, 64, 40, 40, 40},
		{0, 10, 40, 0, 0},
	}
	for _, tt := range tests {
		w, h := fitSize(tt.w, tt.h, tt.box)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fitSize(%d,%d,%d) = %d,%d want %d,%d", tt.w, tt.h, tt.box, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestLoadAssetsFallbackFont(t *testing.T) {
	l, _ := DefaultLayout()
	a := LoadAssets(t.TempDir(), l, quietLogger())
	face, err := a.face(18)
	if err != nil {
		t.Fatalf("face: %v", err)
	}
	defer face.Close()
	if face.Metrics().Height <= 0 {
		t.Error("fallback face has no height")
	}
	if _, ok := a.Icon("missing.png"); ok {
		t.Error("missing icon reported as present")
	}
}

func TestIsWebFont(t *testing.T) {
	if !isWebFont("a.woff2", nil) || !isWebFont("a.WOFF", nil) {
		t.Error("extension not detected")
	}
	if !isWebFont("a.bin", []byte("wOF2xxxx")) {
		t.Error("magic not detected")
	}
	if isWebFont("a.ttf", []byte{0, 1, 0, 0}) {
		t.Error("ttf detected as web font")
	}
}

func decodeConfig(b []byte) (image.Config, error) {
	return png.DecodeConfig(bytes.NewReader(b))
}

func TestLoadWithMissingLayoutFile(t *testing.T) {
	if _, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.toml"), quietLogger()); err == nil {
		t.Fatal("expected error for missing layout file")
	}
	r, err := Load(t.TempDir(), "", quietLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w, h := r.Size(); w != 850 || h != 550 {
		t.Fatalf("size = %dx%d", w, h)
	}
}
