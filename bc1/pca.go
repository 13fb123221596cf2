package bc1

func computeCentroid(n int, points []vector3, weights []float32) vector3 {
	var centroid vector3
	total := float32(0)

	for i := 0; i < n; i++ {
		total += weights[i]
		centroid = centroid.add(points[i].scale(weights[i]))
	}
	return centroid.scale(1.0 / total)
}

// computeCovariance fills the upper triangle of the weighted 3x3 covariance
// matrix: [xx xy xz yy yz zz].
func computeCovariance(n int, points []vector3, weights []float32, covariance *[6]float32) {
	centroid := computeCentroid(n, points, weights)

	for i := range covariance {
		covariance[i] = 0
	}

	for i := 0; i < n; i++ {
		a := points[i].sub(centroid)
		b := a.scale(weights[i])

		covariance[0] += a.x * b.x
		covariance[1] += a.x * b.y
		covariance[2] += a.x * b.z
		covariance[3] += a.y * b.y
		covariance[4] += a.y * b.z
		covariance[5] += a.z * b.z
	}
}

// estimatePrincipalComponent seeds the power iteration with the covariance
// row of greatest squared length.
func estimatePrincipalComponent(matrix *[6]float32) vector3 {
	row0 := vector3{matrix[0], matrix[1], matrix[2]}
	row1 := vector3{matrix[1], matrix[3], matrix[4]}
	row2 := vector3{matrix[2], matrix[4], matrix[5]}

	r0 := lengthSquared(row0)
	r1 := lengthSquared(row1)
	r2 := lengthSquared(row2)

	if r0 > r1 && r0 > r2 {
		return row0
	}
	if r1 > r2 {
		return row1
	}
	return row2
}

// firstEigenVector runs eight power iterations with infinity-norm
// normalization; enough in practice and avoids a square root per step.
// A zero diagonal means a degenerate (single-point) color set; the zero
// vector tells the caller to fall back to input order.
func firstEigenVector(matrix *[6]float32) vector3 {
	if matrix[0] == 0 && matrix[3] == 0 && matrix[5] == 0 {
		return vector3{}
	}

	v := estimatePrincipalComponent(matrix)

	for i := 0; i < 8; i++ {
		x := v.x*matrix[0] + v.y*matrix[1] + v.z*matrix[2]
		y := v.x*matrix[1] + v.y*matrix[3] + v.z*matrix[4]
		z := v.x*matrix[2] + v.y*matrix[4] + v.z*matrix[5]

		ax, ay, az := x, y, z
		if ax < 0 {
			ax = -ax
		}
		if ay < 0 {
			ay = -ay
		}
		if az < 0 {
			az = -az
		}
		norm := max(max(ax, ay), az)

		v = vector3{x, y, z}.scale(1.0 / norm)
	}

	return v
}

func computePrincipalComponent(n int, points []vector3, weights []float32) vector3 {
	var matrix [6]float32
	computeCovariance(n, points, weights, &matrix)
	return firstEigenVector(&matrix)
}
