package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// roundedMask es una máscara opaca con esquinas redondeadas.
type roundedMask struct {
	r      image.Rectangle
	radius int
}

func (m roundedMask) ColorModel() color.Model { return color.AlphaModel }
func (m roundedMask) Bounds() image.Rectangle { return m.r }

func (m roundedMask) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.r) {
		return color.Transparent
	}
	rad := m.radius
	cx, cy := x, y
	switch {
	case x < m.r.Min.X+rad:
		cx = m.r.Min.X + rad
	case x >= m.r.Max.X-rad:
		cx = m.r.Max.X - rad - 1
	}
	switch {
	case y < m.r.Min.Y+rad:
		cy = m.r.Min.Y + rad
	case y >= m.r.Max.Y-rad:
		cy = m.r.Max.Y - rad - 1
	}
	dx, dy := x-cx, y-cy
	if dx*dx+dy*dy > rad*rad {
		return color.Transparent
	}
	return color.Opaque
}

func fillRoundedRect(dst draw.Image, r image.Rectangle, radius int, c color.Color) {
	if radius*2 > r.Dx() || radius*2 > r.Dy() {
		radius = min(r.Dx(), r.Dy()) / 2
	}
	m := roundedMask{r: r, radius: radius}
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, m, r.Min, draw.Over)
}

// drawText dibuja s con (x, y) como esquina superior izquierda de la línea.
func drawText(dst draw.Image, face font.Face, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// fitSize escala (w, h) para entrar en un cuadrado de lado box sin deformar.
func fitSize(w, h, box int) (int, int) {
	if w <= 0 || h <= 0 || box <= 0 {
		return 0, 0
	}
	if w >= h {
		return box, max(1, h*box/w)
	}
	return max(1, w*box/h), box
}

func pasteScaled(dst draw.Image, src image.Image, r image.Rectangle) {
	draw.CatmullRom.Scale(dst, r, src, src.Bounds(), draw.Over, nil)
}
