// Copyright 2026 The Matcoord Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcs

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/strucmech/matcoord/inp"
	"github.com/strucmech/matcoord/res"
)

// ToMaterialCoord converts 2D shell element forces, stresses and strains
// from element coordinates to each element's material coordinate system.
// If inPlace is false, the input container is left untouched and a deep
// copy is converted and returned; otherwise results itself is mutated
// and returned.
//
// Every element id referenced by a record must be present in the model;
// a missing id aborts the conversion, as does a record whose id sequence
// is not aligned to its row axis. Vector kinds absent from results are
// skipped.
func ToMaterialCoord(mdl *inp.Model, results res.Results, inPlace bool) (res.Results, error) {

	converted := results
	if !inPlace {
		converted = results.DeepCopy()
	}

	// force vectors
	for _, kind := range ForceKinds {
		for subcase, vector := range results[kind] {
			newVector := converted[kind][subcase]
			if err := vector.Check(); err != nil {
				return nil, err
			}
			eids, err := vector.Eids()
			if err != nil {
				return nil, err
			}
			θrad, err := anglesRad(mdl, eids)
			if err != nil {
				return nil, err
			}
			thick, err := thicknesses(mdl, eids)
			if err != nil {
				return nil, err
			}
			convertForce(vector, newVector, θrad, thick)
		}
	}

	// stress vectors
	if err := convertPlateVectors(mdl, results, converted, StressKinds, false); err != nil {
		return nil, err
	}

	// strain vectors
	if err := convertPlateVectors(mdl, results, converted, StrainKinds, true); err != nil {
		return nil, err
	}
	return converted, nil
}

// anglesRad looks up material orientation angles and converts them to radians
func anglesRad(mdl *inp.Model, eids []int) ([]float64, error) {
	θrad := make([]float64, len(eids))
	for i, eid := range eids {
		θdeg, err := mdl.Angle(eid)
		if err != nil {
			return nil, err
		}
		θrad[i] = θdeg * math.Pi / 180.0
	}
	return θrad, nil
}

// thicknesses looks up shell thicknesses
func thicknesses(mdl *inp.Model, eids []int) ([]float64, error) {
	thick := make([]float64, len(eids))
	for i, eid := range eids {
		t, err := mdl.Thickness(eid)
		if err != nil {
			return nil, err
		}
		thick[i] = t
	}
	return thick, nil
}

// convertForce rotates the membrane, bending and transverse blocks of a
// force record. Reads come from old and writes go to neu; the two may be
// the same record since no column is read after being written.
func convertForce(old, neu *res.Record, θrad, thick []float64) {
	lay := Force

	// membrane terms
	rotateScaled(old, neu, lay.Nxx, lay.Nyy, lay.Nxy, θrad, thick)

	// bending terms (same thickness scaling as the membrane block)
	rotateScaled(old, neu, lay.Mxx, lay.Myy, lay.Mxy, θrad, thick)

	// transverse terms rotate as a vector
	for t := range old.Data {
		for i, θ := range θrad {
			qx := old.Data[t][i][lay.Qx]
			qy := old.Data[t][i][lay.Qy]
			neu.Data[t][i][lay.Qx] = math.Cos(θ)*qx + math.Sin(θ)*qy
			neu.Data[t][i][lay.Qy] = -math.Sin(θ)*qx + math.Cos(θ)*qy
		}
	}
}

// rotateScaled rotates one triple of force columns, expressed as stress
// equivalents via the thickness
func rotateScaled(old, neu *res.Record, cx, cy, cxy int, θrad, thick []float64) {
	nsteps := len(old.Data)
	n := len(θrad)
	sxx := utl.Alloc(nsteps, n)
	syy := utl.Alloc(nsteps, n)
	sxy := utl.Alloc(nsteps, n)
	for t := 0; t < nsteps; t++ {
		for i := 0; i < n; i++ {
			row := old.Data[t][i]
			sxx[t][i] = row[cx] / thick[i]
			syy[t][i] = row[cy] / thick[i]
			sxy[t][i] = row[cxy] / thick[i]
		}
	}
	txx, tyy, txy := TransfMohr(sxx, syy, sxy, θrad)
	for t := 0; t < nsteps; t++ {
		for i := 0; i < n; i++ {
			row := neu.Data[t][i]
			row[cx] = txx[t][i] * thick[i]
			row[cy] = tyy[t][i] * thick[i]
			row[cxy] = txy[t][i] * thick[i]
		}
	}
}

// convertPlateVectors rotates the in-plane block of stress or strain
// records and recomputes the principal angle column. Rows whose element
// id is zero are non-physical padding and stay untouched.
func convertPlateVectors(mdl *inp.Model, results, converted res.Results, kinds []string, isStrain bool) error {
	for _, kind := range kinds {
		for subcase, vector := range results[kind] {
			newVector := converted[kind][subcase]
			if err := vector.Check(); err != nil {
				return err
			}
			eids, err := vector.Eids()
			if err != nil {
				return err
			}
			rows := make([]int, 0, len(eids))
			live := make([]int, 0, len(eids))
			for i, eid := range eids {
				if eid != 0 {
					rows = append(rows, i)
					live = append(live, eid)
				}
			}
			θrad, err := anglesRad(mdl, live)
			if err != nil {
				return err
			}
			convertPlate(vector, newVector, rows, θrad, isStrain)
		}
	}
	return nil
}

// convertPlate rotates the selected rows of a stress/strain record. For
// strains, the engineering shear is halved before the rotation and the
// rotated tensor shear is doubled before being written back; the
// principal angle is computed from the tensor shear.
func convertPlate(old, neu *res.Record, rows []int, θrad []float64, isStrain bool) {
	lay := Plate
	nsteps := len(old.Data)
	n := len(rows)
	sxx := utl.Alloc(nsteps, n)
	syy := utl.Alloc(nsteps, n)
	sxy := utl.Alloc(nsteps, n)
	for t := 0; t < nsteps; t++ {
		for j, r := range rows {
			row := old.Data[t][r]
			sxx[t][j] = row[lay.Sxx]
			syy[t][j] = row[lay.Syy]
			sxy[t][j] = row[lay.Sxy]
			if isStrain {
				sxy[t][j] /= 2.0
			}
		}
	}
	txx, tyy, txy := TransfMohr(sxx, syy, sxy, θrad)
	θdeg := PrincipalAngle(txx, tyy, txy)
	for t := 0; t < nsteps; t++ {
		for j, r := range rows {
			row := neu.Data[t][r]
			row[lay.Sxx] = txx[t][j]
			row[lay.Syy] = tyy[t][j]
			shear := txy[t][j]
			if isStrain {
				shear *= 2.0
			}
			row[lay.Sxy] = shear
			row[lay.Angle] = θdeg[t][j]
		}
	}
}
