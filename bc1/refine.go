package bc1

// Perturbation stencil for the endpoint refiner: single- and paired-axis
// moves in 5:6:5 space.
var refineDeltas = [16][3]int8{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},

	{-1, 0, 0},
	{0, -1, 0},
	{0, 0, -1},

	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},

	{-1, -1, 0},
	{-1, 0, -1},
	{0, -1, -1},

	{-1, 1, 0},
	{1, -1, 0},
	{0, -1, 1},
	{0, 1, -1},
}

func addWrap(v uint8, d int8, mask uint8) uint8 {
	return uint8(int(v)+int(d)) & mask
}

// refineEndpoints walks up to 256 perturbation steps from the current best
// block, alternating which endpoint moves, and keeps every candidate that
// lowers the error. Stops after 32 consecutive steps without improvement.
func refineEndpoints(inputColors *[16]vector3, inputWeights *[16]float32, colorWeights vector3, threeColorMode bool, inputError float32, output *blockDXT1) float32 {
	bestError := inputError

	lastImprovement := -1
	for i := 0; i < 256; i++ {
		refined := *output
		delta := refineDeltas[i%16]

		if (i/16)&1 != 0 {
			refined.col0.r = addWrap(refined.col0.r, delta[0], 31)
			refined.col0.g = addWrap(refined.col0.g, delta[1], 63)
			refined.col0.b = addWrap(refined.col0.b, delta[2], 31)
		} else {
			refined.col1.r = addWrap(refined.col1.r, delta[0], 31)
			refined.col1.g = addWrap(refined.col1.g, delta[1], 63)
			refined.col1.b = addWrap(refined.col1.b, delta[2], 31)
		}

		if !threeColorMode {
			if refined.col0.u() == refined.col1.u() {
				refined.col1.g = (refined.col1.g + 1) & 63
			}
			if refined.col0.u() < refined.col1.u() {
				refined.col0, refined.col1 = refined.col1, refined.col0
			}
		}

		// Candidate indices are selected under the current best palette,
		// not the perturbed one.
		var palette [4]vector3
		evaluatePaletteV3(output.col0, output.col1, &palette)

		refined.indices = computeIndices(inputColors, colorWeights, &palette)

		refinedError := blockError(inputColors, inputWeights, colorWeights, &refined)
		if refinedError < bestError {
			bestError = refinedError
			*output = refined
			lastImprovement = i
		}

		if i-lastImprovement >= 32 {
			break
		}
	}

	return bestError
}
