package bc1

// paletteError is the squared distance between a palette entry and an input
// color, scaled to 8-bit space and weighted per channel.
func paletteError(p vector3, c vector3, w vector3) float32 {
	d := p.sub(c).mul(w).scale(255)
	return dot(d, d)
}

func btou(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// computeIndices4 assigns each texel its nearest 4-color palette entry. The
// five pairwise comparisons combine into the index bits directly.
func computeIndices4(inputColors *[16]vector3, colorWeights vector3, palette *[4]vector3) uint32 {
	var indices uint32
	for i := 0; i < 16; i++ {
		d0 := paletteError(palette[0], inputColors[i], colorWeights)
		d1 := paletteError(palette[1], inputColors[i], colorWeights)
		d2 := paletteError(palette[2], inputColors[i], colorWeights)
		d3 := paletteError(palette[3], inputColors[i], colorWeights)

		b0 := btou(d0 > d3)
		b1 := btou(d1 > d2)
		b2 := btou(d0 > d2)
		b3 := btou(d1 > d3)
		b4 := btou(d2 > d3)

		x0 := b1 & b2
		x1 := b0 & b3
		x2 := b0 & b4

		indices |= (x2 | ((x0 | x1) << 1)) << (2 * uint(i))
	}
	return indices
}

// computeIndices is the four-way comparison used for 3-color-mode blocks,
// where entry 3 is transparent black.
func computeIndices(inputColors *[16]vector3, colorWeights vector3, palette *[4]vector3) uint32 {
	var indices uint32
	for i := 0; i < 16; i++ {
		d0 := paletteError(palette[0], inputColors[i], colorWeights)
		d1 := paletteError(palette[1], inputColors[i], colorWeights)
		d2 := paletteError(palette[2], inputColors[i], colorWeights)
		d3 := paletteError(palette[3], inputColors[i], colorWeights)

		var index uint32
		switch {
		case d0 < d1 && d0 < d2 && d0 < d3:
			index = 0
		case d1 < d2 && d1 < d3:
			index = 1
		case d2 < d3:
			index = 2
		default:
			index = 3
		}

		indices |= index << (2 * uint(i))
	}
	return indices
}

// optimizeEndpoints4 solves the normal equations for the endpoint pair that
// minimizes squared error under a fixed index assignment, with a
// caller-supplied alpha per index value. Every texel counts equally: neither
// per-texel nor per-channel weights are applied. Returns false when the
// system is degenerate (all texels in one cluster).
func optimizeEndpoints4(indices uint32, colors []vector3, count int, factors [4]float32) (vector3, vector3, bool) {
	var alpha2Sum, beta2Sum, alphabetaSum float32
	var alphaxSum, betaxSum vector3

	for i := 0; i < count; i++ {
		idx := (indices >> (2 * uint(i))) & 3
		alpha := factors[idx]
		beta := 1 - alpha

		alpha2Sum += alpha * alpha
		beta2Sum += beta * beta
		alphabetaSum += alpha * beta
		alphaxSum = alphaxSum.add(colors[i].scale(alpha))
		betaxSum = betaxSum.add(colors[i].scale(beta))
	}

	denom := alpha2Sum*beta2Sum - alphabetaSum*alphabetaSum
	if equalEps(denom, 0, 0.0001) {
		return vector3{}, vector3{}, false
	}

	factor := 1.0 / denom

	a := alphaxSum.scale(beta2Sum).sub(betaxSum.scale(alphabetaSum)).scale(factor).saturate()
	b := betaxSum.scale(alpha2Sum).sub(alphaxSum.scale(alphabetaSum)).scale(factor).saturate()

	return a, b, true
}

func optimizeEndpoints4Default(indices uint32, colors []vector3, count int) (vector3, vector3, bool) {
	return optimizeEndpoints4(indices, colors, count, [4]float32{1, 0, 2.0 / 3, 1.0 / 3})
}
