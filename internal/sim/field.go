package sim

// Field stores the three displacement generations required by the
// second-order finite difference solver. All three buffers share the
// same row-major W*H layout and are allocated once at construction.
type Field struct {
	w, h  int
	cur   []float32
	prev  []float32
	prev2 []float32
}

func newField(w, h int) *Field {
	return &Field{
		w: w, h: h,
		cur:   make([]float32, w*h),
		prev:  make([]float32, w*h),
		prev2: make([]float32, w*h),
	}
}

// Cells exposes the current displacement buffer.
func (f *Field) Cells() []float32 { return f.cur }

// advance rotates the generations: current becomes previous, previous
// becomes previous-previous, and the retired oldest buffer is reused as
// the new current to be overwritten in place. Slice headers swap; no
// element is copied.
func (f *Field) advance() {
	f.cur, f.prev, f.prev2 = f.prev2, f.cur, f.prev
}

// clear zeroes all three generations.
func (f *Field) clear() {
	for i := range f.cur {
		f.cur[i] = 0
		f.prev[i] = 0
		f.prev2[i] = 0
	}
}
