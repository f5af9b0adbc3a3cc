// Copyright 2026 The Matcoord Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcs

// ForceLayout names the component columns of a shell force record
type ForceLayout struct {
	Nxx, Nyy, Nxy int // membrane forces
	Mxx, Myy, Mxy int // bending moments
	Qx, Qy        int // transverse shear forces
}

// PlateLayout names the component columns of a layered stress or strain
// record at one fiber (bottom or top)
type PlateLayout struct {
	Sxx, Syy, Sxy int // in-plane components
	Angle         int // angle to the principal axes [degrees]
}

// column positions in the solver output. Column 0 of stress/strain
// records holds the fiber distance and is never touched here.
var (
	Force = ForceLayout{Nxx: 0, Nyy: 1, Nxy: 2, Mxx: 3, Myy: 4, Mxy: 5, Qx: 6, Qy: 7}
	Plate = PlateLayout{Sxx: 1, Syy: 2, Sxy: 3, Angle: 4}
)

// vector kind names per category. These lists are supersets: kinds
// absent from a results container are skipped.
var (
	ForceKinds = []string{"cquad4_force", "cquad8_force", "cquadr_force",
		"ctria3_force", "ctria6_force", "ctriar_force"}
	StressKinds = []string{"cquad4_stress", "cquad8_stress", "cquadr_stress",
		"ctria3_stress", "ctria6_stress", "ctriar_stress"}
	StrainKinds = []string{"cquad4_strain", "cquad8_strain", "cquadr_strain",
		"ctria3_strain", "ctria6_strain", "ctriar_strain"}
)
