package main

import (
	"bytes"
	"image/png"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/AkshatTyagi05/potato-league/internal/render"
)

func TestPlan(t *testing.T) {
	l, err := render.DefaultLayout()
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	icons, err := Plan(l)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	byFile := map[string]Icon{}
	for _, ic := range icons {
		if _, dup := byFile[ic.File]; dup {
			t.Fatalf("duplicate icon %s", ic.File)
		}
		byFile[ic.File] = ic
	}
	for _, want := range []string{"grand_champion_3.png", "bronze_1.png", "supersonic_legend.png", "unranked.png", "epic.png", "xbl.png"} {
		if _, ok := byFile[want]; !ok {
			t.Errorf("missing %s", want)
		}
	}

	gc := byFile["grand_champion_2.png"]
	if gc.Text != "GC2" {
		t.Errorf("text = %q", gc.Text)
	}
	if gc.Bg.R != 0xFF || gc.Bg.G != 0 || gc.Bg.B != 0 {
		t.Errorf("grand champion color = %v", gc.Bg)
	}
	if byFile["gold_1.png"].Bg.G != 0xD7 {
		t.Errorf("gold color = %v", byFile["gold_1.png"].Bg)
	}
}

func TestRenderIcon(t *testing.T) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	ic := Icon{File: "x.png", Text: "D2"}
	ic.Bg.R, ic.Bg.A = 0xFF, 0xFF
	ic.Fg.G, ic.Fg.A = 0xFF, 0xFF

	data, err := RenderIcon(ic, 64, f)
	if err != nil {
		t.Fatalf("RenderIcon: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v", b)
	}
	// fuera del círculo queda transparente
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d", a)
	}

	if _, err := RenderIcon(ic, 0, f); err == nil {
		t.Error("expected error for size 0")
	}
}
