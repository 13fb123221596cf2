package bc1

// fitColorsBBox finds the axis-aligned bounding box of the color set; c0
// takes the maximum corner, c1 the minimum.
func fitColorsBBox(colors []vector3, c0, c1 *vector3) {
	*c0 = vector3{}
	*c1 = vector3{1, 1, 1}

	for i := range colors {
		*c0 = maxv(*c0, colors[i])
		*c1 = minv(*c1, colors[i])
	}
}

// selectDiagonal flips the box diagonal per axis pair by the sign of the
// x-z and y-z covariance terms about the box center.
func selectDiagonal(colors []vector3, c0, c1 *vector3) {
	center := c0.add(*c1).scale(0.5)

	var covXZ, covYZ float32
	for i := range colors {
		t := colors[i].sub(center)
		covXZ += t.x * t.z
		covYZ += t.y * t.z
	}

	x0, y0 := c0.x, c0.y
	x1, y1 := c1.x, c1.y

	if covXZ < 0 {
		x0, x1 = x1, x0
	}
	if covYZ < 0 {
		y0, y1 = y1, y0
	}

	*c0 = vector3{x0, y0, c0.z}
	*c1 = vector3{x1, y1, c1.z}
}

func insetBBox(c0, c1 *vector3) {
	const bias = (8.0 / 255.0) / 16.0
	inset := c0.sub(*c1).scale(1.0 / 16.0).sub(vector3{bias, bias, bias})
	*c0 = c0.sub(inset).saturate()
	*c1 = c1.add(inset).saturate()
}

// outputBlock4 quantizes an endpoint pair, orders it for 4-color mode and
// assigns indices. An equal pair degenerates to the 3-color palette; the
// index selector still works against it.
func outputBlock4(inputColors *[16]vector3, colorWeights vector3, v0, v1 vector3, block *blockDXT1) {
	color0 := vector3ToColor16(v0)
	color1 := vector3ToColor16(v1)

	if color0.u() < color1.u() {
		color0, color1 = color1, color0
	}

	var palette [4]vector3
	evaluatePaletteV3(color0, color1, &palette)

	block.col0 = color0
	block.col1 = color1
	block.indices = computeIndices4(inputColors, colorWeights, &palette)
}

// outputBlock3 orders the endpoints for 3-color mode and assigns indices
// with the four-way selector, so texels may land on transparent black.
func outputBlock3(inputColors *[16]vector3, colorWeights vector3, v0, v1 vector3, block *blockDXT1) {
	color0 := vector3ToColor16(v0)
	color1 := vector3ToColor16(v1)

	if color0.u() > color1.u() {
		color0, color1 = color1, color0
	}

	var palette [4]vector3
	evaluatePaletteV3(color0, color1, &palette)

	block.col0 = color0
	block.col1 = color1
	block.indices = computeIndices(inputColors, colorWeights, &palette)
}

// compressClusterFit runs the 4-cluster search, and when permitted the
// 3-cluster search, keeping the lower-error block. With near-black texels
// present the 3-cluster search runs on the reduced set minus the blacks, so
// the transparent slot stays available for them.
func compressClusterFit(inputColors *[16]vector3, inputWeights *[16]float32, colors []vector3, weights []float32, count int, colorWeights vector3, threeColorMode, useTransparentBlack bool, output *blockDXT1) float32 {
	metricSqr := colorWeights.mul(colorWeights)

	var sat summedAreaTable
	satCount := computeSAT(colors, weights, count, &sat)

	start, end := clusterFitFour(&sat, satCount, metricSqr)

	outputBlock4(inputColors, colorWeights, start, end, output)

	bestError := blockError(inputColors, inputWeights, colorWeights, output)

	if threeColorMode {
		if useTransparentBlack {
			var tmpColors [16]vector3
			var tmpWeights [16]float32
			tmpCount := skipBlacks(colors, weights, count, tmpColors[:], tmpWeights[:])
			if tmpCount == 0 {
				return bestError
			}

			satCount = computeSAT(tmpColors[:], tmpWeights[:], tmpCount, &sat)
		}

		start, end = clusterFitThree(&sat, satCount, metricSqr)

		var threeColorBlock blockDXT1
		outputBlock3(inputColors, colorWeights, start, end, &threeColorBlock)

		threeColorError := blockError(inputColors, inputWeights, colorWeights, &threeColorBlock)

		if threeColorError < bestError {
			bestError = threeColorError
			*output = threeColorBlock
		}
	}

	return bestError
}

func compressBlock(inputColors *[16]vector3, inputWeights *[16]float32, colorWeights vector3, threeColorMode, hq bool, output *blockDXT1) float32 {
	var colors [16]vector3
	var weights [16]float32
	count, useTransparentBlack := reduceColors(inputColors, inputWeights, colors[:], weights[:])

	if count == 0 {
		// Output trivial block.
		*output = blockDXT1{}
		return 0
	}

	// Cluster fit cannot handle single color blocks, so encode them optimally.
	if count == 1 {
		compressSingleColorOptimal(vector3ToColor32(colors[0]), output)
		return blockError(inputColors, inputWeights, colorWeights, output)
	}

	// Quick endpoint guess from the inset bounding box diagonal.
	var c0, c1 vector3
	fitColorsBBox(colors[:count], &c0, &c1)
	insetBBox(&c0, &c1)
	selectDiagonal(colors[:count], &c0, &c1)
	outputBlock4(inputColors, colorWeights, c0, c1, output)

	bestError := blockError(inputColors, inputWeights, colorWeights, output)

	// Refine the endpoints for the selected indices.
	if a, b, ok := optimizeEndpoints4Default(output.indices, inputColors[:], 16); ok {
		var optimized blockDXT1
		outputBlock4(inputColors, colorWeights, a, b, &optimized)

		optimizedError := blockError(inputColors, inputWeights, colorWeights, &optimized)
		if optimizedError < bestError {
			bestError = optimizedError
			*output = optimized
		}
	}

	// Try cluster fit.
	var clusterFitOutput blockDXT1
	clusterFitError := compressClusterFit(inputColors, inputWeights, colors[:], weights[:], count, colorWeights, threeColorMode, useTransparentBlack, &clusterFitOutput)
	if clusterFitError < bestError {
		bestError = clusterFitError
		*output = clusterFitOutput
	}

	if hq {
		bestError = refineEndpoints(inputColors, inputWeights, colorWeights, threeColorMode, bestError, output)
	}

	return bestError
}

func compressBlockFast(inputColors *[16]vector3, inputWeights *[16]float32, colorWeights vector3, output *blockDXT1) float32 {
	var c0, c1 vector3
	fitColorsBBox(inputColors[:], &c0, &c1)
	if c0 == c1 {
		compressSingleColorOptimal(vector3ToColor32(c0), output)
		return blockError(inputColors, inputWeights, colorWeights, output)
	}
	insetBBox(&c0, &c1)
	selectDiagonal(inputColors[:], &c0, &c1)
	outputBlock4(inputColors, colorWeights, c0, c1, output)

	// Refine the endpoints for the selected indices.
	if a, b, ok := optimizeEndpoints4Default(output.indices, inputColors[:], 16); ok {
		outputBlock4(inputColors, colorWeights, a, b, output)
	}

	return blockError(inputColors, inputWeights, colorWeights, output)
}

func compressBlockFastU8(inputColors *[16]vector3, output *blockDXT1) {
	uniform := vector3{1, 1, 1}

	var c0, c1 vector3
	fitColorsBBox(inputColors[:], &c0, &c1)
	if c0 == c1 {
		compressSingleColorOptimal(vector3ToColor32(c0), output)
		return
	}
	insetBBox(&c0, &c1)
	selectDiagonal(inputColors[:], &c0, &c1)
	outputBlock4(inputColors, uniform, c0, c1, output)

	if a, b, ok := optimizeEndpoints4Default(output.indices, inputColors[:], 16); ok {
		outputBlock4(inputColors, uniform, a, b, output)
	}
}
