package core

// Mask stores a 2D grid of boolean cell flags in row-major order.
type Mask struct {
	W, H int
	data []bool
}

// NewMask allocates a mask with the given dimensions.
func NewMask(w, h int) *Mask {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Mask{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (m *Mask) Cells() []bool { return m.data }

// Index returns the linear slice index for coordinates (x, y).
func (m *Mask) Index(x, y int) int { return y*m.W + x }

// At reports the flag at (x, y). Out-of-bounds coordinates read false.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false
	}
	return m.data[y*m.W+x]
}

// Set writes the flag at (x, y). Out-of-bounds coordinates are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return
	}
	m.data[y*m.W+x] = v
}

// Clear resets every cell to false.
func (m *Mask) Clear() {
	for i := range m.data {
		m.data[i] = false
	}
}
