package render

import "testing"

func TestFillStateRGBA(t *testing.T) {
	cells := []uint8{0, 1, 1, 0}
	buf := make([]byte, len(cells)*4)
	FillStateRGBA(buf, cells)

	for i, c := range cells {
		base := i * 4
		want := byte(0)
		if c != 0 {
			want = 255
		}
		if buf[base] != want || buf[base+1] != want || buf[base+2] != want {
			t.Fatalf("cell %d texel (%d,%d,%d)", i, buf[base], buf[base+1], buf[base+2])
		}
		if buf[base+3] != 255 {
			t.Fatalf("cell %d alpha %d, want 255", i, buf[base+3])
		}
	}
}
