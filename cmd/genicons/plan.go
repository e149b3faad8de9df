package main

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/AkshatTyagi05/potato-league/internal/render"
)

// Icon es un placeholder a generar.
type Icon struct {
	File string
	Text string
	Bg   color.NRGBA
	Fg   color.NRGBA
}

// sin fuente en disco LoadAssets avisa; acá da igual
var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// tiers con divisiones I-III; el resto es un único tier.
var (
	tiered = []string{"Bronze", "Silver", "Gold", "Platinum", "Diamond", "Champion", "Grand Champion"}
	single = []string{"Supersonic Legend", "Unranked"}
	roman  = []string{"I", "II", "III"}
)

// Plan arma la lista de íconos: uno por tier/división con el nombre que
// espera el renderer, más uno por plataforma del layout.
func Plan(l render.Layout) ([]Icon, error) {
	cards, err := render.New(l, render.LoadAssets("", l, quiet), quiet)
	if err != nil {
		return nil, err
	}
	white := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	dark := color.NRGBA{R: 0x18, G: 0x1C, B: 0x23, A: 0xFF}

	var out []Icon
	add := func(tier, text string) {
		bg := cards.RankColor(tier)
		fg := white
		if luminance(bg) > 0.6 {
			fg = dark
		}
		out = append(out, Icon{File: render.IconName(tier) + ".png", Text: text, Bg: bg, Fg: fg})
	}

	for _, t := range tiered {
		for i, r := range roman {
			add(t+" "+r, initials(t)+fmt.Sprint(i+1))
		}
	}
	for _, t := range single {
		add(t, initials(t))
	}

	codes := make([]string, 0, len(l.Platforms))
	for code := range l.Platforms {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		out = append(out, Icon{
			File: l.Platforms[code],
			Text: strings.ToUpper(code[:1]),
			Bg:   color.NRGBA{R: 0x2B, G: 0x30, B: 0x3B, A: 0xFF},
			Fg:   white,
		})
	}
	return out, nil
}

func initials(tier string) string {
	var b strings.Builder
	for _, w := range strings.Fields(tier) {
		b.WriteString(strings.ToUpper(w[:1]))
	}
	return b.String()
}

func luminance(c color.NRGBA) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}
