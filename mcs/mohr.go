// Copyright 2026 The Matcoord Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mcs converts 2D shell element results from element coordinates
// into each element's material coordinate system
package mcs

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// TransfMohrScalar performs the Mohr's circle based plane stress
// transformation of one tensor state, rotating it into the frame at
// angle θrad [radians] with respect to the current axes:
//
//	center = (σxx + σyy) / 2
//	R      = √((σxx - center)² + σxy²)
//	φ      = atan2(-σxy, σxx - center) + 2・θ
//	σxx'   = center + R・cos(φ)
//	σyy'   = center - R・cos(φ)
//	σxy'   = -R・sin(φ)
//
func TransfMohrScalar(sxx, syy, sxy, θrad float64) (txx, tyy, txy float64) {
	center := (sxx + syy) / 2.0
	radius := math.Sqrt((sxx-center)*(sxx-center) + sxy*sxy)
	φ := math.Atan2(-sxy, sxx-center) + 2.0*θrad
	txx = center + radius*math.Cos(φ)
	tyy = center - radius*math.Cos(φ)
	txy = -radius * math.Sin(φ)
	return
}

// TransfMohr transforms arrays of plane tensor states. sxx, syy and sxy
// have shape [nsteps][nrows]; θrad holds one rotation angle per row,
// applied to every step.
func TransfMohr(sxx, syy, sxy [][]float64, θrad []float64) (txx, tyy, txy [][]float64) {
	nsteps := len(sxx)
	txx = utl.Alloc(nsteps, len(θrad))
	tyy = utl.Alloc(nsteps, len(θrad))
	txy = utl.Alloc(nsteps, len(θrad))
	for t := 0; t < nsteps; t++ {
		for i, θ := range θrad {
			txx[t][i], tyy[t][i], txy[t][i] = TransfMohrScalar(sxx[t][i], syy[t][i], sxy[t][i], θ)
		}
	}
	return
}

// PrincipalAngleScalar returns the angle [degrees] from the current axes
// to the principal axes, where the shear component vanishes
func PrincipalAngleScalar(sxx, syy, sxy float64) float64 {
	center := (sxx + syy) / 2.0
	return math.Atan2(sxy, center-syy) * 180.0 / math.Pi / 2.0
}

// PrincipalAngle computes principal angles [degrees] for arrays of plane
// tensor states with shape [nsteps][nrows]
func PrincipalAngle(sxx, syy, sxy [][]float64) (θdeg [][]float64) {
	nsteps := len(sxx)
	θdeg = make([][]float64, nsteps)
	for t := 0; t < nsteps; t++ {
		θdeg[t] = make([]float64, len(sxx[t]))
		for i := range sxx[t] {
			θdeg[t][i] = PrincipalAngleScalar(sxx[t][i], syy[t][i], sxy[t][i])
		}
	}
	return
}
