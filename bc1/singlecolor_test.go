package bc1

import "testing"

// Exhaustive check that the single-color tables pick an optimal endpoint
// pair for every 8-bit channel value, under the interpolation-error-plus-
// distance scoring they are built with.
func TestSingleColorTablesOptimal(t *testing.T) {
	Init()

	score5 := func(mx, mn, target int) int {
		e := func(v int) int { return v<<3 | v>>2 }
		return abs(lerp13(e(mx), e(mn))-target)*100 + abs(mx-mn)*3
	}
	score6 := func(mx, mn, target int) int {
		e := func(v int) int { return v<<2 | v>>4 }
		return abs(lerp13(e(mx), e(mn))-target)*100 + abs(mx-mn)*3
	}

	for v := 0; v < 256; v++ {
		best := 1 << 30
		for mn := 0; mn < 32; mn++ {
			for mx := 0; mx < 32; mx++ {
				if s := score5(mx, mn, v); s < best {
					best = s
				}
			}
		}
		got := score5(int(match5[v][0]), int(match5[v][1]), v)
		if got != best {
			t.Fatalf("match5[%d] = %v scores %d, optimum is %d", v, match5[v], got, best)
		}

		best = 1 << 30
		for mn := 0; mn < 64; mn++ {
			for mx := 0; mx < 64; mx++ {
				if s := score6(mx, mn, v); s < best {
					best = s
				}
			}
		}
		got = score6(int(match6[v][0]), int(match6[v][1]), v)
		if got != best {
			t.Fatalf("match6[%d] = %v scores %d, optimum is %d", v, match6[v], got, best)
		}
	}
}

func TestSingleColorOptimalOrdering(t *testing.T) {
	Init()

	// The emitted block must select 4-color mode (or the degenerate equal
	// pair) and keep every index on the interpolated entry.
	for _, c := range []color32{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
		{128, 128, 128, 255},
		{200, 100, 50, 255},
		{3, 250, 7, 255},
	} {
		var blk blockDXT1
		compressSingleColorOptimal(c, &blk)

		if blk.col0.u() < blk.col1.u() {
			t.Fatalf("color %v: endpoints not ordered: %04x < %04x", c, blk.col0.u(), blk.col1.u())
		}
		// All indices sit on the interpolated entry: 2, or 3 when the
		// endpoint swap inverted the index bits.
		if blk.indices != 0xaaaaaaaa && blk.indices != 0xffffffff {
			t.Fatalf("color %v: indices %08x", c, blk.indices)
		}
	}
}
