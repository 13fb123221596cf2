// Package bc1 is a pure-Go port of the icbc high-quality BC1 (DXT1) block
// encoder.
//
// The encoder consumes one 4x4 block of RGBA colors plus optional per-texel
// and per-channel weights, and produces the 8-byte BC1 block minimizing the
// weighted squared reconstruction error. The search is a cluster fit: the
// samples are sorted along the principal axis of their covariance, every
// contiguous partition into palette clusters is solved in closed form via
// summed-area-table lookups, and the best quantized endpoint pair wins. A
// companion evaluator reproduces the Direct3D reference, NVIDIA and AMD
// decoder variants.
package bc1

// Compress encodes one 4x4 block at the highest quality level.
//
// colors holds 16 RGBA texels (len 64, alpha ignored) with channels in
// [0,1]; weights holds 16 non-negative per-texel weights; channelWeights
// scales the error metric per channel. threeColorMode permits the 3-color
// sub-mode (entry 3 decodes to transparent black); it is tried whether or not
// a near-black texel is present, and near-black texels are left out of its
// cluster search when there are any.
// hq adds the endpoint perturbation search on top of the cluster fit.
//
// Returns the encoded block and its weighted squared error against the
// input.
func Compress(colors []float32, weights []float32, channelWeights [3]float32, threeColorMode, hq bool) (Block, float32) {
	ensureTables()

	inputColors, inputWeights := gatherInput(colors, weights)
	colorWeights := vector3{channelWeights[0], channelWeights[1], channelWeights[2]}

	var output blockDXT1
	err := compressBlock(&inputColors, &inputWeights, colorWeights, threeColorMode, hq, &output)
	return output.pack(), err
}

// CompressFast encodes one 4x4 block using only the bounding-box guess and a
// single least-squares refinement pass.
func CompressFast(colors []float32, weights []float32, channelWeights [3]float32) (Block, float32) {
	ensureTables()

	inputColors, inputWeights := gatherInput(colors, weights)
	colorWeights := vector3{channelWeights[0], channelWeights[1], channelWeights[2]}

	var output blockDXT1
	err := compressBlockFast(&inputColors, &inputWeights, colorWeights, &output)
	return output.pack(), err
}

// CompressFastU8 encodes one 4x4 block of 8-bit RGBA texels (len 64, alpha
// ignored) without input reduction or channel weighting.
func CompressFastU8(colors []byte) Block {
	ensureTables()
	_ = colors[63]

	var inputColors [16]vector3
	for i := 0; i < 16; i++ {
		inputColors[i] = vector3{
			float32(colors[4*i+0]) / 255.0,
			float32(colors[4*i+1]) / 255.0,
			float32(colors[4*i+2]) / 255.0,
		}
	}

	var output blockDXT1
	compressBlockFastU8(&inputColors, &output)
	return output.pack()
}

func gatherInput(colors []float32, weights []float32) ([16]vector3, [16]float32) {
	_ = colors[63]
	_ = weights[15]

	var inputColors [16]vector3
	var inputWeights [16]float32
	for i := 0; i < 16; i++ {
		inputColors[i] = vector3{colors[4*i+0], colors[4*i+1], colors[4*i+2]}
		inputWeights[i] = weights[i]
	}
	return inputColors, inputWeights
}
