package bc1

// isBlack reports whether a texel is dark enough to be left out of the
// 3-cluster search (its PCA and SAT), leaving the transparent-black palette
// slot to it. The large threshold improves compression; it does not force
// these texels to black.
func isBlack(c vector3) bool {
	return c.x < 1.0/8 && c.y < 1.0/8 && c.z < 1.0/8
}

// reduceColors merges input texels that are within 1/256 of each other on
// every channel, accumulating their weights. Zero-weight texels are dropped.
// Returns the reduced count and whether any near-black texel was seen.
func reduceColors(inputColors *[16]vector3, inputWeights *[16]float32, colors []vector3, weights []float32) (int, bool) {
	anyBlack := false

	n := 0
	for i := 0; i < 16; i++ {
		ci := inputColors[i]
		wi := inputWeights[i]

		if wi > 0 {
			const threshold = 1.0 / 256

			// Find matching color.
			j := 0
			for ; j < n; j++ {
				if equalVec(colors[j], ci, threshold) {
					weights[j] += wi
					break
				}
			}

			// No match found. Add new color.
			if j == n {
				colors[n] = ci
				weights[n] = wi
				n++
			}

			if isBlack(ci) {
				anyBlack = true
			}
		}
	}

	debugAssert(n <= 16)

	return n, anyBlack
}

// skipBlacks copies the reduced set minus its near-black entries.
func skipBlacks(inputColors []vector3, inputWeights []float32, count int, colors []vector3, weights []float32) int {
	n := 0
	for i := 0; i < count; i++ {
		if isBlack(inputColors[i]) {
			continue
		}
		colors[n] = inputColors[i]
		weights[n] = inputWeights[i]
		n++
	}
	return n
}
