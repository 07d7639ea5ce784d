// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsfft

import "github.com/luxfi/ligerito/binaryfield"

// FFT evaluates the degree-<2^m polynomial given by coeffs (monomial
// basis, low-degree-first) at every point of the affine subspace
// shift + span(basis), via Horner's rule. len(coeffs) must equal
// 1<<len(basis); the caller zero-pads short messages before calling.
func FFT[T binaryfield.Field[T]](coeffs []T, basis []T, shift T, domain func(i int, basis []T, shift T) T) []T {
	n := len(coeffs)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		x := domain(i, basis, shift)
		out[i] = horner(coeffs, x)
	}
	return out
}

func horner[T binaryfield.Field[T]](coeffs []T, x T) T {
	var acc T
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(coeffs[i])
	}
	return acc
}

// IFFT recovers the unique degree-<2^m interpolating polynomial
// through the 2^m (point, value) pairs {(domain(i), values[i])}, via
// Newton's divided-difference construction. Because the domain points
// are pairwise distinct, this polynomial exists and is unique, which
// is exactly what makes IFFT(FFT(x)) = x hold for every input.
func IFFT[T binaryfield.Field[T]](values []T, basis []T, shift T, domain func(i int, basis []T, shift T) T) []T {
	n := len(values)
	points := make([]T, n)
	for i := range points {
		points[i] = domain(i, basis, shift)
	}
	return interpolate(points, values)
}

// interpolate returns the coefficient vector (monomial basis,
// low-degree-first) of the unique polynomial of degree < len(xs)
// passing through (xs[i], ys[i]) for every i, via Newton's method:
// maintain the running interpolant P and the running node polynomial
// B = prod_{j<i} (x + xs[j]); at each step solve for the next divided
// difference and fold B*d_i into P.
func interpolate[T binaryfield.Field[T]](xs, ys []T) []T {
	n := len(xs)
	poly := make([]T, n)
	poly[0] = ys[0]
	base := make([]T, n)
	base[0] = ys[0].One()
	baseLen := 1
	for i := 1; i < n; i++ {
		// base *= (x + xs[i-1])  — shift up and fold in the new root.
		newBase := make([]T, baseLen+1)
		c := xs[i-1]
		for k := 0; k < baseLen; k++ {
			newBase[k+1] = newBase[k+1].Add(base[k])
			newBase[k] = newBase[k].Add(c.Mul(base[k]))
		}
		copy(base, newBase)
		baseLen++
		residual := ys[i].Add(evalPoly(poly, xs[i]))
		denom := evalPoly(base[:baseLen], xs[i])
		d := residual.Mul(denom.Inv())
		for k := 0; k < baseLen; k++ {
			poly[k] = poly[k].Add(d.Mul(base[k]))
		}
	}
	return poly
}

func evalPoly[T binaryfield.Field[T]](coeffs []T, x T) T {
	return horner(coeffs, x)
}
