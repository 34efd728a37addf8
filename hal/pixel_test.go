package hal

import "testing"

func TestRGB565Roundtrip(t *testing.T) {
	cases := []struct {
		r, g, b uint8
	}{
		{0x00, 0x00, 0x00},
		{0xFF, 0xFF, 0xFF},
		{0xFF, 0x00, 0x00},
		{0x00, 0xFF, 0x00},
		{0x00, 0x00, 0xFF},
	}
	for _, c := range cases {
		r, g, b := rgb888From565(rgb565(c.r, c.g, c.b))
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("roundtrip (%d,%d,%d) -> (%d,%d,%d)", c.r, c.g, c.b, r, g, b)
		}
	}
}

func TestRGB565Packing(t *testing.T) {
	if got := rgb565(0xFF, 0xFF, 0xFF); got != 0xFFFF {
		t.Fatalf("white = %#04x", got)
	}
	if got := rgb565(0x00, 0x00, 0x00); got != 0x0000 {
		t.Fatalf("black = %#04x", got)
	}
	if got := rgb565(0xFF, 0x00, 0x00); got != 0xF800 {
		t.Fatalf("red = %#04x", got)
	}
}
