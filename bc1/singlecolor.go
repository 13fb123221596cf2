package bc1

// Optimal single-color endpoint tables: for each 8-bit channel value, the
// (max, min) endpoint pair whose 2:1 interpolation lands nearest it.
var (
	match5 [256][2]uint8
	match6 [256][2]uint8
)

func lerp13(a, b int) int {
	return (a*2 + b) / 3
}

func prepareOptTable(table *[256][2]uint8, expand []uint8, size int) {
	for i := 0; i < 256; i++ {
		bestErr := 256 * 100

		for mn := 0; mn < size; mn++ {
			for mx := 0; mx < size; mx++ {
				mine := int(expand[mn])
				maxe := int(expand[mx])

				err := abs(lerp13(maxe, mine)-i) * 100

				// DX10 only requires interpolation within 3% of the exact
				// result, and nothing says the decoder error is unbiased.
				// Charging distant pairs for it keeps the picked pair safe
				// on any decoder.
				err += abs(mx-mn) * 3

				if err < bestErr {
					bestErr = err
					table[i][0] = uint8(mx)
					table[i][1] = uint8(mn)
				}
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func initSingleColorTables() {
	var expand5 [32]uint8
	var expand6 [64]uint8
	for i := 0; i < 32; i++ {
		expand5[i] = uint8(i<<3 | i>>2)
	}
	for i := 0; i < 64; i++ {
		expand6[i] = uint8(i<<2 | i>>4)
	}

	prepareOptTable(&match5, expand5[:], 32)
	prepareOptTable(&match6, expand6[:], 64)
}

// compressSingleColorOptimal emits the best block for a uniform color: both
// endpoints from the per-channel tables, every index on the interpolated
// entry, with the endpoint order normalized for 4-color mode.
func compressSingleColorOptimal(c color32, output *blockDXT1) {
	output.col0.r = match5[c.r][0]
	output.col0.g = match6[c.g][0]
	output.col0.b = match5[c.b][0]
	output.col1.r = match5[c.r][1]
	output.col1.g = match6[c.g][1]
	output.col1.b = match5[c.b][1]
	output.indices = 0xaaaaaaaa

	if output.col0.u() < output.col1.u() {
		output.col0, output.col1 = output.col1, output.col0
		output.indices ^= 0x55555555
	}
}
