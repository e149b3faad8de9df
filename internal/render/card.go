package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

// Request es todo lo que necesita una card. No se modifica al renderizar.
type Request struct {
	Identity domain.Identity
	Segments []domain.Segment
	Mode     domain.Mode
}

type Renderer struct {
	layout Layout
	colors palette
	assets *Assets
	log    *slog.Logger
}

func New(l Layout, assets *Assets, log *slog.Logger) (*Renderer, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	p, err := newPalette(l)
	if err != nil {
		return nil, fmt.Errorf("layout colors: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	if assets == nil {
		assets = LoadAssets("", l, log)
	}
	return &Renderer{layout: l, colors: p, assets: assets, log: log}, nil
}

// Load arma un Renderer desde disco: layout (default + override opcional) y
// assets del directorio.
func Load(assetsDir, layoutFile string, log *slog.Logger) (*Renderer, error) {
	l, err := LoadLayout(layoutFile)
	if err != nil {
		return nil, err
	}
	return New(l, LoadAssets(assetsDir, l, log), log)
}

// Size es el tamaño fijo del canvas.
func (r *Renderer) Size() (int, int) {
	return r.layout.Canvas.Width, r.layout.Canvas.Height
}

type faces struct {
	main, sub, small, tierSmall font.Face
}

func (f faces) Close() {
	for _, x := range []font.Face{f.main, f.sub, f.small, f.tierSmall} {
		if x != nil {
			_ = x.Close()
		}
	}
}

func (r *Renderer) faces() (faces, error) {
	var f faces
	var err error
	sizes := []struct {
		dst  *font.Face
		size float64
	}{
		{&f.main, r.layout.Fonts.Main},
		{&f.sub, r.layout.Fonts.Sub},
		{&f.small, r.layout.Fonts.Small},
		{&f.tierSmall, r.layout.Fonts.TierSmall},
	}
	for _, s := range sizes {
		size := s.size
		if size <= 0 {
			size = r.layout.Fonts.Sub
		}
		if *s.dst, err = r.assets.face(size); err != nil {
			f.Close()
			return faces{}, fmt.Errorf("font face %.0f: %w", size, err)
		}
	}
	return f, nil
}

// Render compone la card. Siempre devuelve un canvas del tamaño del layout.
func (r *Renderer) Render(req Request) (*image.RGBA, error) {
	l := r.layout
	canvas := image.NewRGBA(image.Rect(0, 0, l.Canvas.Width, l.Canvas.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.colors.background), image.Point{}, draw.Src)
	if bg, ok := r.assets.image(l.Canvas.BackgroundImage); ok {
		draw.CatmullRom.Scale(canvas, canvas.Bounds(), bg, bg.Bounds(), draw.Over, nil)
	}

	f, err := r.faces()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r.drawHeader(canvas, f, req)

	index := PlaylistIndex(req.Segments)
	for i, mode := range l.Slots(req.Mode) {
		pos := l.Tile.Positions[i]
		seg, ok := index[mode]
		r.drawTile(canvas, f, pos, mode, seg, ok)
	}
	return canvas, nil
}

// RenderPNG es Render + encode.
func (r *Renderer) RenderPNG(req Request) ([]byte, error) {
	img, err := r.Render(req)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(dst *image.RGBA, f faces, req Request) {
	h := r.layout.Header
	rect := image.Rect(h.Rect.X0, h.Rect.Y0, h.Rect.X1, h.Rect.Y1)
	fillRoundedRect(dst, rect, h.Radius, r.colors.headerFill)

	if file := r.layout.Platforms[string(req.Identity.Platform)]; file != "" {
		if icon, ok := r.assets.Icon(file); ok {
			b := icon.Bounds()
			w, hh := fitSize(b.Dx(), b.Dy(), h.IconBox)
			top := h.Icon.Y - hh/2
			pasteScaled(dst, icon, image.Rect(h.Icon.X, top, h.Icon.X+w, top+hh))
		}
	} else {
		r.log.Debug("no platform icon configured", "platform", req.Identity.Platform)
	}

	drawText(dst, f.main, h.Name.X, h.Name.Y, strings.ToUpper(req.Identity.Name()), r.colors.name)

	reward := RewardLevel(req.Segments)
	drawText(dst, f.sub, h.Reward.X, h.Reward.Y, reward, r.colors.rankColor(reward, r.colors.rewardFallback))
}

func (r *Renderer) drawTile(dst *image.RGBA, f faces, pos Point, mode string, seg domain.Segment, found bool) {
	t := r.layout.Tile
	x, y := pos.X, pos.Y
	fillRoundedRect(dst, image.Rect(x, y, x+t.Width, y+t.Height), t.Radius, r.colors.tileFill)

	drawText(dst, f.sub, x+t.Label.X, y+t.Label.Y, mode, r.colors.label)
	if !found {
		drawText(dst, f.main, x+t.Tier.X, y+t.Tier.Y, "Unranked", r.colors.unranked)
		return
	}

	st := seg.Stats
	tier := st.TierName()
	tierFace := f.main
	if r.layout.Fonts.TierShrinkAfter > 0 && utf8.RuneCountInString(tier) > r.layout.Fonts.TierShrinkAfter {
		tierFace = f.tierSmall
	}
	drawText(dst, tierFace, x+t.Tier.X, y+t.Tier.Y, tier, r.colors.rankColor(tier, r.colors.rankFallback))
	drawText(dst, f.small, x+t.Division.X, y+t.Division.Y, st.Division, r.colors.division)
	drawText(dst, f.small, x+t.Rating.X, y+t.Rating.Y, fmt.Sprintf("%d MMR", st.Rating), r.colors.rating)
	drawText(dst, f.small, x+t.Matches.X, y+t.Matches.Y, fmt.Sprintf("%d Matches", st.MatchesPlayed), r.colors.matches)

	if icon, ok := r.assets.Icon(IconName(tier) + ".png"); ok {
		ix, iy := x+t.Icon.X, y+t.Icon.Y
		pasteScaled(dst, icon, image.Rect(ix, iy, ix+t.IconSize, iy+t.IconSize))
	}

	streakColor := r.colors.win
	if st.Streak.Type == domain.StreakLoss {
		streakColor = r.colors.loss
	}
	drawText(dst, f.sub, x+t.Streak.X, y+t.Streak.Y, StreakText(st.Streak), streakColor)
}
