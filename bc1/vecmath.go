package bc1

import "math"

const maxFloat32 = math.MaxFloat32

type vector3 struct {
	x, y, z float32
}

func (a vector3) add(b vector3) vector3 {
	return vector3{a.x + b.x, a.y + b.y, a.z + b.z}
}

func (a vector3) sub(b vector3) vector3 {
	return vector3{a.x - b.x, a.y - b.y, a.z - b.z}
}

func (a vector3) mul(b vector3) vector3 {
	return vector3{a.x * b.x, a.y * b.y, a.z * b.z}
}

func (a vector3) scale(s float32) vector3 {
	return vector3{a.x * s, a.y * s, a.z * s}
}

func dot(a, b vector3) float32 {
	return a.x*b.x + a.y*b.y + a.z*b.z
}

func lengthSquared(v vector3) float32 {
	return dot(v, v)
}

func saturate(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func (a vector3) saturate() vector3 {
	return vector3{saturate(a.x), saturate(a.y), saturate(a.z)}
}

func minv(a, b vector3) vector3 {
	return vector3{min(a.x, b.x), min(a.y, b.y), min(a.z, b.z)}
}

func maxv(a, b vector3) vector3 {
	return vector3{max(a.x, b.x), max(a.y, b.y), max(a.z, b.z)}
}

func equalEps(a, b float32, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func equalVec(a, b vector3, eps float32) bool {
	return equalEps(a.x, b.x, eps) && equalEps(a.y, b.y, eps) && equalEps(a.z, b.z, eps)
}

// -----------------------------------------------------------------------------
// Fixed-width lane layer for the cluster-fit inner loop.
//
// The hot loop is written once against vfloat/vvec3 and a small capability
// set (broadcast, mad, saturate, endpoint rounding, compare, select, and a
// lane-by-lane gather from the 16-entry SAT). vecSize is a compile-time
// constant; out-of-range partition lanes read +FLT_MAX SAT sentinels and can
// never win the strict less-than reduction, so results are identical for any
// lane width.
// -----------------------------------------------------------------------------

const vecSize = 4

type vfloat [vecSize]float32

type vmask [vecSize]bool

type vvec3 struct {
	x, y, z vfloat
}

func vbroadcast(x float32) vfloat {
	var r vfloat
	for l := range r {
		r[l] = x
	}
	return r
}

func vadd(a, b vfloat) vfloat {
	var r vfloat
	for l := range r {
		r[l] = a[l] + b[l]
	}
	return r
}

func vsub(a, b vfloat) vfloat {
	var r vfloat
	for l := range r {
		r[l] = a[l] - b[l]
	}
	return r
}

func vmul(a, b vfloat) vfloat {
	var r vfloat
	for l := range r {
		r[l] = a[l] * b[l]
	}
	return r
}

func vrcp(a vfloat) vfloat {
	var r vfloat
	for l := range r {
		r[l] = 1.0 / a[l]
	}
	return r
}

// vmad returns a*b+c.
func vmad(a, b, c vfloat) vfloat {
	var r vfloat
	for l := range r {
		r[l] = a[l]*b[l] + c[l]
	}
	return r
}

func vless(a, b vfloat) vmask {
	var m vmask
	for l := range m {
		m[l] = a[l] < b[l]
	}
	return m
}

// vselect returns b where the mask is set, a elsewhere.
func vselect(m vmask, a, b vfloat) vfloat {
	var r vfloat
	for l := range r {
		if m[l] {
			r[l] = b[l]
		} else {
			r[l] = a[l]
		}
	}
	return r
}

func vbroadcast3(v vector3) vvec3 {
	return vvec3{vbroadcast(v.x), vbroadcast(v.y), vbroadcast(v.z)}
}

func vadd3(a, b vvec3) vvec3 {
	return vvec3{vadd(a.x, b.x), vadd(a.y, b.y), vadd(a.z, b.z)}
}

func vsub3(a, b vvec3) vvec3 {
	return vvec3{vsub(a.x, b.x), vsub(a.y, b.y), vsub(a.z, b.z)}
}

func vmul3(a, b vvec3) vvec3 {
	return vvec3{vmul(a.x, b.x), vmul(a.y, b.y), vmul(a.z, b.z)}
}

func vmul3s(a vvec3, s vfloat) vvec3 {
	return vvec3{vmul(a.x, s), vmul(a.y, s), vmul(a.z, s)}
}

// vmad3s returns a*s+c.
func vmad3s(a vvec3, s vfloat, c vvec3) vvec3 {
	return vvec3{vmad(a.x, s, c.x), vmad(a.y, s, c.y), vmad(a.z, s, c.z)}
}

func vsaturate(a vfloat) vfloat {
	var r vfloat
	for l := range r {
		r[l] = saturate(a[l])
	}
	return r
}

func vsaturate3(a vvec3) vvec3 {
	return vvec3{vsaturate(a.x), vsaturate(a.y), vsaturate(a.z)}
}

func vdot3(a, b vvec3) vfloat {
	return vadd(vmul(a.x, b.x), vadd(vmul(a.y, b.y), vmul(a.z, b.z)))
}

func vselect3(m vmask, a, b vvec3) vvec3 {
	return vvec3{vselect(m, a.x, b.x), vselect(m, a.y, b.y), vselect(m, a.z, b.z)}
}

// vround5 snaps a saturated value to the nearest 5-bit grid point, using the
// bit-expansion midpoints. A NaN lane (degenerate least-squares factor) would
// convert out of range; the clamp keeps the table lookup valid and the lane
// snaps to 0, so it is scored as a black endpoint.
func vround5(a vfloat) vfloat {
	var r vfloat
	for l := range r {
		q := int32(a[l] * 31)
		if q < 0 {
			q = 0
		} else if q > 31 {
			q = 31
		}
		if a[l] > midpoints5[q] {
			q++
		}
		r[l] = float32(q) * (1.0 / 31)
	}
	return r
}

func vround6(a vfloat) vfloat {
	var r vfloat
	for l := range r {
		q := int32(a[l] * 63)
		if q < 0 {
			q = 0
		} else if q > 63 {
			q = 63
		}
		if a[l] > midpoints6[q] {
			q++
		}
		r[l] = float32(q) * (1.0 / 63)
	}
	return r
}

// vroundEndpoint snaps each channel to the 5:6:5 endpoint grid.
func vroundEndpoint(v vvec3) vvec3 {
	return vvec3{vround5(v.x), vround6(v.y), vround5(v.z)}
}
