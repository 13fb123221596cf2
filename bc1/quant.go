package bc1

// color16 is an unpacked 5:6:5 endpoint. r and b hold 5-bit values, g a
// 6-bit value.
type color16 struct {
	r, g, b uint8
}

func (c color16) u() uint16 {
	return uint16(c.r)<<11 | uint16(c.g)<<5 | uint16(c.b)
}

func makeColor16(u uint16) color16 {
	return color16{
		r: uint8(u>>11) & 31,
		g: uint8(u>>5) & 63,
		b: uint8(u) & 31,
	}
}

// color32 is a bit-expanded 8:8:8:8 color.
type color32 struct {
	r, g, b, a uint8
}

// midpoints between adjacent bit-expanded grid values, in 8-bit-normalized
// space. Rounding against these rather than the plain 31/63 grid matches the
// hardware's bit-replication decode.
var (
	midpoints5 = computeMidpoints5()
	midpoints6 = computeMidpoints6()
)

func computeMidpoints5() [32]float32 {
	var m [32]float32
	for i := 0; i < 31; i++ {
		f0 := float32((i<<3)|(i>>2)) / 255.0
		f1 := float32(((i+1)<<3)|((i+1)>>2)) / 255.0
		m[i] = (f0 + f1) * 0.5
	}
	m[31] = 1.0
	return m
}

func computeMidpoints6() [64]float32 {
	var m [64]float32
	for i := 0; i < 63; i++ {
		f0 := float32((i<<2)|(i>>4)) / 255.0
		f1 := float32(((i+1)<<2)|((i+1)>>4)) / 255.0
		m[i] = (f0 + f1) * 0.5
	}
	m[63] = 1.0
	return m
}

func quantizeIndex(v float32, scale int32, midpoints []float32) uint8 {
	q := int32(v * float32(scale))
	if q < 0 {
		q = 0
	} else if q > scale {
		q = scale
	}
	if q < scale && v > midpoints[q] {
		q++
	}
	return uint8(q)
}

// vector3ToColor16 quantizes a [0,1] color to the 5:6:5 grid, rounding each
// channel against the bit-expansion midpoints.
func vector3ToColor16(v vector3) color16 {
	return color16{
		r: quantizeIndex(v.x, 31, midpoints5[:]),
		g: quantizeIndex(v.y, 63, midpoints6[:]),
		b: quantizeIndex(v.z, 31, midpoints5[:]),
	}
}

// bitexpand materializes the 16-bit endpoint the way the hardware decoder
// does: 5-bit channels as (v<<3)|(v>>2), 6-bit as (v<<2)|(v>>4).
func bitexpand(c color16) color32 {
	return color32{
		r: c.r<<3 | c.r>>2,
		g: c.g<<2 | c.g>>4,
		b: c.b<<3 | c.b>>2,
		a: 0xFF,
	}
}

func colorToVector3(c color32) vector3 {
	return vector3{float32(c.r) / 255.0, float32(c.g) / 255.0, float32(c.b) / 255.0}
}

// vector3ToColor32 clamps to [0,1] and rounds to the nearest 8-bit value.
func vector3ToColor32(v vector3) color32 {
	return color32{
		r: uint8(saturate(v.x)*255 + 0.5),
		g: uint8(saturate(v.y)*255 + 0.5),
		b: uint8(saturate(v.z)*255 + 0.5),
		a: 255,
	}
}
