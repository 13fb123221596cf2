package bc1

// summedAreaTable holds prefix sums of weighted R, G, B and total weight
// along the principal-axis projection order. Entries past the real count are
// FLT_MAX so that out-of-range partition lookups can never win.
type summedAreaTable struct {
	r [16]float32
	g [16]float32
	b [16]float32
	w [16]float32
}

func computeSAT(colors []vector3, weights []float32, count int, sat *summedAreaTable) int {
	// A cheaper approximation of the principal direction loses quality; the
	// best-fit line produces the best partitions.
	principal := computePrincipalComponent(count, colors, weights)

	var order [16]int
	var dps [16]float32
	for i := 0; i < count; i++ {
		order[i] = i
		dps[i] = dot(colors[i], principal)
	}

	// Stable insertion sort by projection.
	for i := 0; i < count; i++ {
		for j := i; j > 0 && dps[j] < dps[j-1]; j-- {
			dps[j], dps[j-1] = dps[j-1], dps[j]
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	w := weights[order[0]]
	sat.r[0] = colors[order[0]].x * w
	sat.g[0] = colors[order[0]].y * w
	sat.b[0] = colors[order[0]].z * w
	sat.w[0] = w

	for i := 1; i < count; i++ {
		w := weights[order[i]]
		sat.r[i] = sat.r[i-1] + colors[order[i]].x*w
		sat.g[i] = sat.g[i-1] + colors[order[i]].y*w
		sat.b[i] = sat.b[i-1] + colors[order[i]].z*w
		sat.w[i] = sat.w[i-1] + w
	}

	for i := count; i < 16; i++ {
		sat.r[i] = maxFloat32
		sat.g[i] = maxFloat32
		sat.b[i] = maxFloat32
		sat.w[i] = maxFloat32
	}

	return count
}
