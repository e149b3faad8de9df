package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parsea "#RRGGBB" (con o sin #).
func ParseHexColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// palette son los colores del layout ya parseados.
type palette struct {
	background, headerFill, tileFill color.NRGBA

	name, label, division, rating, matches color.NRGBA
	win, loss, unranked                    color.NRGBA
	rankFallback, rewardFallback           color.NRGBA

	ranks map[string]color.NRGBA
}

func newPalette(l Layout) (palette, error) {
	var p palette
	var firstErr error
	parse := func(field, hex string) color.NRGBA {
		c, err := ParseHexColor(hex)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", field, err)
		}
		return c
	}

	p.background = parse("canvas.background", l.Canvas.Background)
	p.headerFill = parse("header.fill", l.Header.Fill)
	p.tileFill = parse("tile.fill", l.Tile.Fill)
	p.name = parse("colors.name", l.Colors.Name)
	p.label = parse("colors.label", l.Colors.Label)
	p.division = parse("colors.division", l.Colors.Division)
	p.rating = parse("colors.rating", l.Colors.Rating)
	p.matches = parse("colors.matches", l.Colors.Matches)
	p.win = parse("colors.win", l.Colors.Win)
	p.loss = parse("colors.loss", l.Colors.Loss)
	p.unranked = parse("colors.unranked", l.Colors.Unranked)
	p.rankFallback = parse("colors.rank_fallback", l.Colors.RankFallback)
	p.rewardFallback = parse("colors.reward_fallback", l.Colors.RewardFallback)

	p.ranks = make(map[string]color.NRGBA, len(l.Ranks))
	for k, v := range l.Ranks {
		p.ranks[strings.ToLower(k)] = parse("ranks."+k, v)
	}
	return p, firstErr
}

// rankColor busca primero la clave completa sin numeral ("grand_champion")
// y después la primera palabra ("champion" en "Champion II").
func (p palette) rankColor(tier string, fallback color.NRGBA) color.NRGBA {
	if c, ok := p.ranks[rankKey(tier)]; ok {
		return c
	}
	if f := strings.Fields(strings.ToLower(tier)); len(f) > 0 {
		if c, ok := p.ranks[f[0]]; ok {
			return c
		}
	}
	return fallback
}

// RankColor es el color con que la card pinta un tier (o el fallback).
func (r *Renderer) RankColor(tier string) color.NRGBA {
	return r.colors.rankColor(tier, r.colors.rankFallback)
}
