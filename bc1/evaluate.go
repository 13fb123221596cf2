package bc1

// blockError is the per-texel weighted reconstruction error of a block
// against the full 16-texel input, under the encoder's palette arithmetic.
func blockError(inputColors *[16]vector3, inputWeights *[16]float32, colorWeights vector3, output *blockDXT1) float32 {
	var palette [4]vector3
	evaluatePaletteV3(output.col0, output.col1, &palette)

	var err float32
	for i := 0; i < 16; i++ {
		index := (output.indices >> (2 * uint(i))) & 3
		err += inputWeights[i] * paletteError(palette[index], inputColors[i], colorWeights)
	}
	return err
}

// EvaluateError decodes block under the named decoder variant and returns
// the sum of squared per-channel differences, in 8-bit space, against the
// 16-texel RGBA reference (len 64; alpha is excluded).
func EvaluateError(rgba []byte, block Block, decoder Decoder) float32 {
	_ = rgba[63]
	blk := unpackBlock(block)

	var palette [4]color32
	evaluatePaletteFor(decoder, blk.col0, blk.col1, &palette)

	var err float32
	for i := 0; i < 16; i++ {
		index := (blk.indices >> (2 * uint(i))) & 3
		p := palette[index]

		dr := int(p.r) - int(rgba[4*i+0])
		dg := int(p.g) - int(rgba[4*i+1])
		db := int(p.b) - int(rgba[4*i+2])
		err += float32(dr*dr + dg*dg + db*db)
	}
	return err
}

// DecodeBlock reconstructs the 16 RGBA texels of a block under the named
// decoder variant. Entry 3 of a 3-color-mode palette decodes to transparent
// black.
func DecodeBlock(block Block, decoder Decoder) [64]byte {
	blk := unpackBlock(block)

	var palette [4]color32
	evaluatePaletteFor(decoder, blk.col0, blk.col1, &palette)

	var out [64]byte
	for i := 0; i < 16; i++ {
		index := (blk.indices >> (2 * uint(i))) & 3
		p := palette[index]
		out[4*i+0] = p.r
		out[4*i+1] = p.g
		out[4*i+2] = p.b
		out[4*i+3] = p.a
	}
	return out
}
