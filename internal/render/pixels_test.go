package render

import "testing"

func TestFillWaveRGBA(t *testing.T) {
	cells := []float32{0, 1.5, -1.5, 0.4}
	walls := []bool{false, false, false, true}
	buf := make([]byte, 4*len(cells))

	fillWaveRGBA(buf, cells, walls)

	// Zero displacement renders the background.
	if buf[0] != bgR || buf[1] != bgG || buf[2] != bgB || buf[3] != 255 {
		t.Fatalf("zero cell = %v, want background", buf[0:4])
	}
	// Positive displacement pushes red above background, negative blue.
	if buf[4] <= bgR {
		t.Fatalf("positive cell red = %d, want > %d", buf[4], bgR)
	}
	if buf[4+2] != bgB {
		t.Fatal("positive cell must not gain blue")
	}
	if buf[8+2] <= bgB {
		t.Fatalf("negative cell blue = %d, want > %d", buf[8+2], bgB)
	}
	// Walls override the field with flat gray.
	if buf[12] != wallR || buf[13] != wallG || buf[14] != wallB {
		t.Fatalf("wall cell = %v, want gray", buf[12:16])
	}
}

func TestFillWaveRGBASaturates(t *testing.T) {
	cells := []float32{1e6, -1e6}
	buf := make([]byte, 8)
	fillWaveRGBA(buf, cells, nil)
	if buf[0] <= bgR || buf[4+2] <= bgB {
		t.Fatal("extreme values must still map into the palette")
	}
	if buf[3] != 255 || buf[7] != 255 {
		t.Fatal("alpha must stay opaque")
	}
}
