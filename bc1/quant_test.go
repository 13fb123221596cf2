package bc1

import "testing"

func TestQuantize565GridRoundTrip(t *testing.T) {
	for k := 0; k <= 31; k++ {
		v := float32(k) / 31
		c := vector3ToColor16(vector3{v, 0, v})
		if int(c.r) != k || int(c.b) != k {
			t.Fatalf("5-bit grid point %d: got r=%d b=%d", k, c.r, c.b)
		}
	}
	for k := 0; k <= 63; k++ {
		v := float32(k) / 63
		c := vector3ToColor16(vector3{0, v, 0})
		if int(c.g) != k {
			t.Fatalf("6-bit grid point %d: got g=%d", k, c.g)
		}
	}
}

func TestQuantize565RoundsAtExpandedMidpoint(t *testing.T) {
	// Values just past the midpoint between two bit-expanded grid points must
	// round up, values just before must round down.
	for k := 0; k < 31; k++ {
		lo := vector3ToColor16(vector3{midpoints5[k] - 0.001, 0, 0})
		hi := vector3ToColor16(vector3{midpoints5[k] + 0.001, 0, 0})
		if int(lo.r) != k {
			t.Errorf("below midpoint %d: got %d", k, lo.r)
		}
		if int(hi.r) != k+1 {
			t.Errorf("above midpoint %d: got %d", k, hi.r)
		}
	}
}

func TestBitexpand(t *testing.T) {
	tests := []struct {
		in   color16
		want color32
	}{
		{color16{0, 0, 0}, color32{0, 0, 0, 0xFF}},
		{color16{31, 63, 31}, color32{255, 255, 255, 0xFF}},
		{color16{1, 1, 1}, color32{8, 4, 8, 0xFF}},
		{color16{16, 32, 16}, color32{132, 130, 132, 0xFF}},
	}
	for _, tt := range tests {
		if got := bitexpand(tt.in); got != tt.want {
			t.Errorf("bitexpand(%v): got %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestMidpointsMatchExpansion(t *testing.T) {
	// Each midpoint is the average of adjacent bit-expanded grid values in
	// 8-bit-normalized space.
	for i := 0; i < 31; i++ {
		e0 := float32((i<<3)|(i>>2)) / 255
		e1 := float32(((i+1)<<3)|((i+1)>>2)) / 255
		want := (e0 + e1) / 2
		if midpoints5[i] != want {
			t.Fatalf("midpoints5[%d] = %v, want %v", i, midpoints5[i], want)
		}
		if !(midpoints5[i] > e0 && midpoints5[i] < e1) {
			t.Fatalf("midpoints5[%d] not between grid values", i)
		}
	}
	if midpoints5[31] != 1 || midpoints6[63] != 1 {
		t.Fatalf("top midpoints must be 1")
	}
}

func TestBlockPackRoundTrip(t *testing.T) {
	b := blockDXT1{
		col0:    makeColor16(0xF85A),
		col1:    makeColor16(0x07E3),
		indices: 0xDEADBEEF,
	}
	got := unpackBlock(b.pack())
	if got != b {
		t.Fatalf("pack/unpack mismatch: got %+v want %+v", got, b)
	}

	// Little-endian on disk, endpoint0 first.
	packed := b.pack()
	if packed[0] != 0x5A || packed[1] != 0xF8 {
		t.Errorf("endpoint0 bytes: got % x", packed[0:2])
	}
	if packed[4] != 0xEF || packed[7] != 0xDE {
		t.Errorf("index word bytes: got % x", packed[4:8])
	}
}
