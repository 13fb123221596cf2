package bc1_test

import (
	"testing"

	"github.com/aet/icbc/bc1"
)

func makeBlock(c0, c1 uint16, indices uint32) bc1.Block {
	return bc1.Block{
		byte(c0), byte(c0 >> 8),
		byte(c1), byte(c1 >> 8),
		byte(indices), byte(indices >> 8), byte(indices >> 16), byte(indices >> 24),
	}
}

func TestDecodeReferencePalette(t *testing.T) {
	// Endpoints pure red and pure blue, texels walking the whole palette.
	blk := makeBlock(0xF800, 0x001F, 0b11100100)
	decoded := bc1.DecodeBlock(blk, bc1.DecoderD3D10)

	want := [4][4]byte{
		{255, 0, 0, 255},
		{0, 0, 255, 255},
		{170, 0, 85, 255},
		{85, 0, 170, 255},
	}
	for i := 0; i < 4; i++ {
		got := [4]byte{decoded[4*i], decoded[4*i+1], decoded[4*i+2], decoded[4*i+3]}
		if got != want[i] {
			t.Fatalf("palette entry %d: got %v want %v", i, got, want[i])
		}
	}
}

func TestDecodeThreeColorTransparentBlack(t *testing.T) {
	// endpoint0 <= endpoint1 selects 3-color mode; index 3 decodes to
	// transparent black.
	blk := makeBlock(0x0000, 0xF800, 0xFFFFFFFF)
	decoded := bc1.DecodeBlock(blk, bc1.DecoderD3D10)
	for i := 0; i < 16; i++ {
		if decoded[4*i] != 0 || decoded[4*i+1] != 0 || decoded[4*i+2] != 0 || decoded[4*i+3] != 0 {
			t.Fatalf("texel %d: got %v want transparent black", i, decoded[4*i:4*i+4])
		}
	}

	// The 3-color midpoint sits halfway between the expanded endpoints.
	blk = makeBlock(0x0000, 0xF800, 0xAAAAAAAA)
	decoded = bc1.DecodeBlock(blk, bc1.DecoderD3D10)
	if decoded[0] != 127 || decoded[1] != 0 || decoded[2] != 0 || decoded[3] != 255 {
		t.Fatalf("midpoint entry: got %v want (127,0,0,255)", decoded[0:4])
	}
}

func TestDecoderVariantsDisagree(t *testing.T) {
	// All texels on interpolated entry 2 of an r=31/r=30 endpoint pair,
	// where the three interpolators genuinely produce different values.
	blk := makeBlock(0xF800, 0xF000, 0xAAAAAAAA)

	ref := bc1.DecodeBlock(blk, bc1.DecoderD3D10)
	nv := bc1.DecodeBlock(blk, bc1.DecoderNVIDIA)
	amd := bc1.DecodeBlock(blk, bc1.DecoderAMD)

	// Reference: (2*255 + 247) / 3.
	if ref[0] != 252 {
		t.Fatalf("reference entry 2 red: got %d want 252", ref[0])
	}
	// NVIDIA interpolates on the unexpanded 5-bit channel: ((2*31+30)*22)/8.
	if nv[0] != 253 {
		t.Fatalf("nvidia entry 2 red: got %d want 253", nv[0])
	}
	// The AMD interpolator widens past 8 bits on extreme endpoints and
	// truncates on store: (43*255 + 21*247 + 32)/8 mod 256.
	if amd[0] != 231 {
		t.Fatalf("amd entry 2 red: got %d want 231", amd[0])
	}

	// Entries 0 and 1 are plain bit expansion on every decoder.
	blk01 := makeBlock(0xF800, 0x001F, 0x00000000)
	for _, dec := range []bc1.Decoder{bc1.DecoderD3D10, bc1.DecoderNVIDIA, bc1.DecoderAMD} {
		d := bc1.DecodeBlock(blk01, dec)
		if d[0] != 255 || d[1] != 0 || d[2] != 0 {
			t.Fatalf("decoder %d entry 0: got %v", dec, d[0:3])
		}
	}
}

func TestEvaluateErrorCountsSquaredDifference(t *testing.T) {
	// Solid white block against a reference one gray step away on a single
	// channel of a single texel.
	blk := makeBlock(0xFFFF, 0x0000, 0x00000000)
	rgba := make([]byte, 64)
	for i := range rgba {
		rgba[i] = 255
	}
	if got := bc1.EvaluateError(rgba, blk, bc1.DecoderD3D10); got != 0 {
		t.Fatalf("identical block error: got %v want 0", got)
	}

	rgba[4*5+1] = 245
	if got := bc1.EvaluateError(rgba, blk, bc1.DecoderD3D10); got != 100 {
		t.Fatalf("single-channel delta: got %v want 100", got)
	}

	// Alpha differences are excluded.
	rgba[4*5+1] = 255
	rgba[4*9+3] = 0
	if got := bc1.EvaluateError(rgba, blk, bc1.DecoderD3D10); got != 0 {
		t.Fatalf("alpha delta counted: got %v", got)
	}
}
