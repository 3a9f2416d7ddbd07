package render

import "math"

// Background and wall colors, tuned to match the simulator's dark theme.
var (
	bgR, bgG, bgB       = uint8(13), uint8(13), uint8(20)
	wallR, wallG, wallB = uint8(38), uint8(38), uint8(38)
)

// fillWaveRGBA converts a displacement field into RGBA pixels in buf.
// Positive displacement maps to warm tones and negative to cold ones,
// with a tanh curve boosting contrast around zero. Wall cells are drawn
// as flat dark gray on top of the field.
func fillWaveRGBA(buf []byte, cells []float32, walls []bool) {
	for i, c := range cells {
		base := i * 4
		if len(walls) == len(cells) && walls[i] {
			buf[base+0] = wallR
			buf[base+1] = wallG
			buf[base+2] = wallB
			buf[base+3] = 255
			continue
		}
		v := math.Tanh(float64(c)*1.5) * 0.9
		r, g, b := bgR, bgG, bgB
		if v > 0 {
			r = shade(bgR, 255, v)
			g = shade(bgG, 96, v)
		} else if v < 0 {
			b = shade(bgB, 255, -v)
			g = shade(bgG, 64, -v)
		}
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = 255
	}
}

// shade interpolates from the background channel toward a peak value.
func shade(from, to uint8, t float64) uint8 {
	if t > 1 {
		t = 1
	}
	return uint8(float64(from) + t*(float64(to)-float64(from)))
}
