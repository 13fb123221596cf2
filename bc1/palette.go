package bc1

// Decoder selects which hardware decoder's palette arithmetic to reproduce.
type Decoder uint32

const (
	// DecoderD3D10 is the Direct3D reference decoder.
	DecoderD3D10 Decoder = 0
	// DecoderNVIDIA reproduces the NVIDIA hardware interpolator.
	DecoderNVIDIA Decoder = 1
	// DecoderAMD reproduces the AMD hardware interpolator.
	DecoderAMD Decoder = 2
)

// encoderDecoder is the palette arithmetic the encoder itself optimizes for.
const encoderDecoder = DecoderD3D10

func evaluatePalette4D3D10(c0, c1 color16, palette *[4]color32) {
	palette[2].r = uint8((2*int(palette[0].r) + int(palette[1].r)) / 3)
	palette[2].g = uint8((2*int(palette[0].g) + int(palette[1].g)) / 3)
	palette[2].b = uint8((2*int(palette[0].b) + int(palette[1].b)) / 3)
	palette[2].a = 0xFF

	palette[3].r = uint8((2*int(palette[1].r) + int(palette[0].r)) / 3)
	palette[3].g = uint8((2*int(palette[1].g) + int(palette[0].g)) / 3)
	palette[3].b = uint8((2*int(palette[1].b) + int(palette[0].b)) / 3)
	palette[3].a = 0xFF
}

func evaluatePalette3D3D10(c0, c1 color16, palette *[4]color32) {
	palette[2].r = uint8((int(palette[0].r) + int(palette[1].r)) / 2)
	palette[2].g = uint8((int(palette[0].g) + int(palette[1].g)) / 2)
	palette[2].b = uint8((int(palette[0].b) + int(palette[1].b)) / 2)
	palette[2].a = 0xFF
	palette[3] = color32{}
}

// The NVIDIA G-channel formulas operate on widened integers; on extreme
// endpoint pairs the intermediates exceed the 8-bit range and truncate on
// store, matching the modeled hardware. Do not clamp.
func evaluatePalette4NV(c0, c1 color16, palette *[4]color32) {
	gdiff := int(palette[1].g) - int(palette[0].g)
	palette[2].r = uint8(((2*int(c0.r) + int(c1.r)) * 22) / 8)
	palette[2].g = uint8((256*int(palette[0].g) + gdiff/4 + 128 + gdiff*80) / 256)
	palette[2].b = uint8(((2*int(c0.b) + int(c1.b)) * 22) / 8)
	palette[2].a = 0xFF

	palette[3].r = uint8(((2*int(c1.r) + int(c0.r)) * 22) / 8)
	palette[3].g = uint8((256*int(palette[1].g) - gdiff/4 + 128 - gdiff*80) / 256)
	palette[3].b = uint8(((2*int(c1.b) + int(c0.b)) * 22) / 8)
	palette[3].a = 0xFF
}

func evaluatePalette3NV(c0, c1 color16, palette *[4]color32) {
	gdiff := int(palette[1].g) - int(palette[0].g)
	palette[2].r = uint8(((int(c0.r) + int(c1.r)) * 33) / 8)
	palette[2].g = uint8((256*int(palette[0].g) + gdiff/4 + 128 + gdiff*128) / 256)
	palette[2].b = uint8(((int(c0.b) + int(c1.b)) * 33) / 8)
	palette[2].a = 0xFF
	palette[3] = color32{}
}

func evaluatePalette4AMD(c0, c1 color16, palette *[4]color32) {
	palette[2].r = uint8((43*int(palette[0].r) + 21*int(palette[1].r) + 32) / 8)
	palette[2].g = uint8((43*int(palette[0].g) + 21*int(palette[1].g) + 32) / 8)
	palette[2].b = uint8((43*int(palette[0].b) + 21*int(palette[1].b) + 32) / 8)
	palette[2].a = 0xFF

	palette[3].r = uint8((43*int(palette[1].r) + 21*int(palette[0].r) + 32) / 8)
	palette[3].g = uint8((43*int(palette[1].g) + 21*int(palette[0].g) + 32) / 8)
	palette[3].b = uint8((43*int(palette[1].b) + 21*int(palette[0].b) + 32) / 8)
	palette[3].a = 0xFF
}

func evaluatePalette3AMD(c0, c1 color16, palette *[4]color32) {
	// The AMD midpoint works on the unexpanded endpoint fields.
	palette[2].r = uint8((int(c0.r) + int(c1.r) + 1) / 2)
	palette[2].g = uint8((int(c0.g) + int(c1.g) + 1) / 2)
	palette[2].b = uint8((int(c0.b) + int(c1.b) + 1) / 2)
	palette[2].a = 0xFF
	palette[3] = color32{}
}

// evaluatePaletteFor fills the 4-entry reconstruction palette for an endpoint
// pair under the given decoder. Entries 0 and 1 are the bit-expanded
// endpoints; c0.u > c1.u selects the 4-color sub-mode.
func evaluatePaletteFor(decoder Decoder, c0, c1 color16, palette *[4]color32) {
	palette[0] = bitexpand(c0)
	palette[1] = bitexpand(c1)

	fourColor := c0.u() > c1.u()
	switch decoder {
	case DecoderNVIDIA:
		if fourColor {
			evaluatePalette4NV(c0, c1, palette)
		} else {
			evaluatePalette3NV(c0, c1, palette)
		}
	case DecoderAMD:
		if fourColor {
			evaluatePalette4AMD(c0, c1, palette)
		} else {
			evaluatePalette3AMD(c0, c1, palette)
		}
	default:
		if fourColor {
			evaluatePalette4D3D10(c0, c1, palette)
		} else {
			evaluatePalette3D3D10(c0, c1, palette)
		}
	}
}

func evaluatePalette(c0, c1 color16, palette *[4]color32) {
	evaluatePaletteFor(encoderDecoder, c0, c1, palette)
}

func evaluatePaletteV3(c0, c1 color16, palette *[4]vector3) {
	var p32 [4]color32
	evaluatePalette(c0, c1, &p32)
	for i := range palette {
		palette[i] = colorToVector3(p32[i])
	}
}
