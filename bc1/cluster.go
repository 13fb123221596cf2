package bc1

// combination is one partition descriptor: cumulative cluster boundaries
// (c0, c0+c1, c0+c1+c2) within a total ordering of the samples.
type combination struct {
	c0, c1, c2 uint8
}

// Partition descriptor tables, grouped cumulatively by input count: the
// descriptors valid for count t are a prefix of those valid for t+1.
// fourClusterTotal[t-1] is the number of descriptors for t samples. The
// tables carry vecSize replicated tail entries so the solver may over-read
// to a lane boundary.
var (
	fourClusterTotal  [16]int
	threeClusterTotal [16]int
	fourCluster       [968 + vecSize]combination
	threeCluster      [152 + vecSize]combination
)

func initClusterTables() {
	i := 0
	for t := 1; t <= 16; t++ {
		for c0 := 0; c0 <= t; c0++ {
			for c1 := 0; c1 <= t-c0; c1++ {
				for c2 := 0; c2 <= t-c0-c1; c2++ {
					// The empty descriptor is excluded.
					if c0 == 0 && c1 == 0 && c2 == 0 {
						continue
					}

					found := false
					if t > 1 {
						for j := 0; j < fourClusterTotal[t-2]; j++ {
							if int(fourCluster[j].c0) == c0 && int(fourCluster[j].c1) == c0+c1 && int(fourCluster[j].c2) == c0+c1+c2 {
								found = true
								break
							}
						}
					}

					if !found {
						fourCluster[i] = combination{uint8(c0), uint8(c0 + c1), uint8(c0 + c1 + c2)}
						i++
					}
				}
			}
		}
		fourClusterTotal[t-1] = i
	}

	for j := 0; j < vecSize; j++ {
		fourCluster[968+j] = fourCluster[968-1]
	}

	i = 0
	for t := 1; t <= 16; t++ {
		for c0 := 0; c0 <= t; c0++ {
			for c1 := 0; c1 <= t-c0; c1++ {
				if c0 == 0 && c1 == 0 {
					continue
				}

				found := false
				if t > 1 {
					for j := 0; j < threeClusterTotal[t-2]; j++ {
						if int(threeCluster[j].c0) == c0 && int(threeCluster[j].c1) == c0+c1 {
							found = true
							break
						}
					}
				}

				if !found {
					threeCluster[i] = combination{c0: uint8(c0), c1: uint8(c0 + c1)}
					i++
				}
			}
		}
		threeClusterTotal[t-1] = i
	}

	for j := 0; j < vecSize; j++ {
		threeCluster[152+j] = threeCluster[152-1]
	}
}

// gatherCluster loads one cluster-boundary SAT entry per lane. A zero
// boundary means an empty prefix and loads zero sums.
func gatherCluster(sat *summedAreaTable, table []combination, i int, sel func(combination) uint8) (vvec3, vfloat) {
	var x vvec3
	var w vfloat
	for l := 0; l < vecSize; l++ {
		c := sel(table[i+l])
		if c != 0 {
			x.x[l] = sat.r[c-1]
			x.y[l] = sat.g[c-1]
			x.z[l] = sat.b[c-1]
			w[l] = sat.w[c-1]
		}
	}
	return x, w
}

// clusterFitThree searches every 3-cluster partition of the sorted samples,
// solving the weighted least-squares endpoints per partition and keeping the
// lowest closed-form error. Interpolation weights are {1, 1/2, 0}.
func clusterFitThree(sat *summedAreaTable, count int, metricSqr vector3) (vector3, vector3) {
	rSum := sat.r[count-1]
	gSum := sat.g[count-1]
	bSum := sat.b[count-1]
	wSum := sat.w[count-1]

	vbesterror := vbroadcast(maxFloat32)
	var vbeststart, vbestend vvec3

	totalOrderCount := threeClusterTotal[count-1]

	for i := 0; i < totalOrderCount; i += vecSize {
		x0, w0 := gatherCluster(sat, threeCluster[:], i, func(c combination) uint8 { return c.c0 })
		x1, w1 := gatherCluster(sat, threeCluster[:], i, func(c combination) uint8 { return c.c1 })

		w2 := vsub(vbroadcast(wSum), w1)
		x1 = vsub3(x1, x0)
		w1 = vsub(w1, w0)

		alphabetaSum := vmul(w1, vbroadcast(0.25))
		alpha2Sum := vadd(w0, alphabetaSum)
		beta2Sum := vadd(w2, alphabetaSum)
		factor := vrcp(vsub(vmul(alpha2Sum, beta2Sum), vmul(alphabetaSum, alphabetaSum)))

		alphaxSum := vmad3s(x1, vbroadcast(0.5), x0)
		betaxSum := vsub3(vbroadcast3(vector3{rSum, gSum, bSum}), alphaxSum)

		a := vmul3s(vsub3(vmul3s(alphaxSum, beta2Sum), vmul3s(betaxSum, alphabetaSum)), factor)
		b := vmul3s(vsub3(vmul3s(betaxSum, alpha2Sum), vmul3s(alphaxSum, alphabetaSum)), factor)

		a = vroundEndpoint(vsaturate3(a))
		b = vroundEndpoint(vsaturate3(b))

		e1 := vmad3s(vmul3(a, a), alpha2Sum,
			vmad3s(vmul3(b, b), beta2Sum,
				vmul3s(vsub3(vmul3s(vmul3(a, b), alphabetaSum), vadd3(vmul3(a, alphaxSum), vmul3(b, betaxSum))), vbroadcast(2.0))))

		err := vdot3(e1, vbroadcast3(metricSqr))

		// Strict less-than: on ties the earlier partition wins, and lanes
		// that read the FLT_MAX sentinels never do.
		mask := vless(err, vbesterror)
		vbesterror = vselect(mask, vbesterror, err)
		vbeststart = vselect3(mask, vbeststart, a)
		vbestend = vselect3(mask, vbestend, b)
	}

	return reduceLanes(vbesterror, vbeststart, vbestend)
}

// clusterFitFour is the 4-color-mode variant with interpolation weights
// {1, 2/3, 1/3, 0}.
func clusterFitFour(sat *summedAreaTable, count int, metricSqr vector3) (vector3, vector3) {
	rSum := sat.r[count-1]
	gSum := sat.g[count-1]
	bSum := sat.b[count-1]
	wSum := sat.w[count-1]

	vbesterror := vbroadcast(maxFloat32)
	var vbeststart, vbestend vvec3

	totalOrderCount := fourClusterTotal[count-1]

	for i := 0; i < totalOrderCount; i += vecSize {
		x0, w0 := gatherCluster(sat, fourCluster[:], i, func(c combination) uint8 { return c.c0 })
		x1, w1 := gatherCluster(sat, fourCluster[:], i, func(c combination) uint8 { return c.c1 })
		x2, w2 := gatherCluster(sat, fourCluster[:], i, func(c combination) uint8 { return c.c2 })

		w3 := vsub(vbroadcast(wSum), w2)
		x2 = vsub3(x2, x1)
		x1 = vsub3(x1, x0)
		w2 = vsub(w2, w1)
		w1 = vsub(w1, w0)

		alpha2Sum := vmad(w2, vbroadcast(1.0/9.0), vmad(w1, vbroadcast(4.0/9.0), w0))
		beta2Sum := vmad(w1, vbroadcast(1.0/9.0), vmad(w2, vbroadcast(4.0/9.0), w3))

		alphabetaSum := vmul(vadd(w1, w2), vbroadcast(2.0/9.0))
		factor := vrcp(vsub(vmul(alpha2Sum, beta2Sum), vmul(alphabetaSum, alphabetaSum)))

		alphaxSum := vmad3s(x2, vbroadcast(1.0/3.0), vmad3s(x1, vbroadcast(2.0/3.0), x0))
		betaxSum := vsub3(vbroadcast3(vector3{rSum, gSum, bSum}), alphaxSum)

		a := vmul3s(vsub3(vmul3s(alphaxSum, beta2Sum), vmul3s(betaxSum, alphabetaSum)), factor)
		b := vmul3s(vsub3(vmul3s(betaxSum, alpha2Sum), vmul3s(alphaxSum, alphabetaSum)), factor)

		a = vroundEndpoint(vsaturate3(a))
		b = vroundEndpoint(vsaturate3(b))

		e1 := vmad3s(vmul3(a, a), alpha2Sum,
			vmad3s(vmul3(b, b), beta2Sum,
				vmul3s(vsub3(vmul3s(vmul3(a, b), alphabetaSum), vadd3(vmul3(a, alphaxSum), vmul3(b, betaxSum))), vbroadcast(2.0))))

		err := vdot3(e1, vbroadcast3(metricSqr))

		mask := vless(err, vbesterror)
		vbesterror = vselect(mask, vbesterror, err)
		vbeststart = vselect3(mask, vbeststart, a)
		vbestend = vselect3(mask, vbestend, b)
	}

	return reduceLanes(vbesterror, vbeststart, vbestend)
}

func reduceLanes(vbesterror vfloat, vbeststart, vbestend vvec3) (vector3, vector3) {
	besterror := float32(maxFloat32)
	bestindex := 0
	for l := 0; l < vecSize; l++ {
		if vbesterror[l] < besterror {
			besterror = vbesterror[l]
			bestindex = l
		}
	}

	start := vector3{vbeststart.x[bestindex], vbeststart.y[bestindex], vbeststart.z[bestindex]}
	end := vector3{vbestend.x[bestindex], vbestend.y[bestindex], vbestend.z[bestindex]}
	return start, end
}
