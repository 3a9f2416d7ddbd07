//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// WavePainter uploads displacement and wall data into a single RGBA
// image and draws it scaled.
type WavePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewWavePainter allocates a painter for a grid of size w*h.
func NewWavePainter(w, h int) *WavePainter {
	wp := &WavePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	wp.img = ebiten.NewImage(w, h)
	return wp
}

// Blit renders the field and wall overlay onto dst.
func (wp *WavePainter) Blit(dst *ebiten.Image, cells []float32, walls []bool, scale int) {
	if len(cells) != wp.w*wp.h {
		return
	}
	fillWaveRGBA(wp.buf, cells, walls)
	wp.img.WritePixels(wp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(wp.img, op)
}

// Size returns the dimensions of the underlying image.
func (wp *WavePainter) Size() (int, int) { return wp.w, wp.h }
