package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RenderIcon dibuja el texto centrado sobre un círculo del color del tier.
func RenderIcon(ic Icon, size int, otFont *opentype.Font) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size %d", size)
	}
	fontSize := float64(size) * 0.36
	if len(ic.Text) <= 1 {
		fontSize = float64(size) * 0.5
	}
	face, err := opentype.NewFace(otFont, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(img, img.Bounds(), image.NewUniform(ic.Bg), image.Point{}, circle(size), image.Point{}, draw.Over)

	bounds, _ := font.BoundString(face, ic.Text)
	glyphW := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphH := (bounds.Max.Y - bounds.Min.Y).Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ic.Fg),
		Face: face,
		Dot:  fixed.P((size-glyphW)/2-bounds.Min.X.Floor(), (size-glyphH)/2-bounds.Min.Y.Floor()),
	}
	d.DrawString(ic.Text)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// circle es una máscara alpha con un disco inscrito.
func circle(size int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy <= r*r {
				m.Pix[y*m.Stride+x] = 0xFF
			}
		}
	}
	return m
}
