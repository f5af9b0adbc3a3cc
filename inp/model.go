// Copyright 2026 The Matcoord Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of shell model data required to
// re-express element results in material coordinates
package inp

import (
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Element holds the material orientation and thickness of one 2D shell element
type Element struct {
	ThetaDeg float64 `json:"thetadeg"` // material orientation angle w.r.t element x-axis [degrees]
	Thick    float64 `json:"thick"`    // shell thickness
}

// Model holds the per-element data required by the conversion to material coordinates
type Model struct {
	Elements map[int]*Element `json:"elements"` // maps element id to element data
}

// Angle returns the material orientation angle [degrees] of element eid
func (o *Model) Angle(eid int) (float64, error) {
	e, ok := o.Elements[eid]
	if !ok {
		return 0, chk.Err("element %d is not in the model", eid)
	}
	return e.ThetaDeg, nil
}

// Thickness returns the shell thickness of element eid
func (o *Model) Thickness(eid int) (float64, error) {
	e, ok := o.Elements[eid]
	if !ok {
		return 0, chk.Err("element %d is not in the model", eid)
	}
	return e.Thick, nil
}

// ReadModel reads model data from a JSON file
//  Note: fn is the filename and dir is the directory where the file is located
func ReadModel(dir, fn string) (mdl *Model, err error) {

	// new model
	mdl = new(Model)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdl)
	if err != nil {
		return nil, chk.Err("cannot parse model file %q: %v", fn, err)
	}
	return
}

// String prints the model in a JSON-like format with sorted element ids
func (o Model) String() string {
	eids := make([]int, 0, len(o.Elements))
	for eid := range o.Elements {
		eids = append(eids, eid)
	}
	sort.Ints(eids)
	l := "{\n  \"elements\" : {\n"
	for i, eid := range eids {
		if i > 0 {
			l += ",\n"
		}
		e := o.Elements[eid]
		l += io.Sf("    \"%d\" : { \"thetadeg\":%g, \"thick\":%g }", eid, e.ThetaDeg, e.Thick)
	}
	l += "\n  }\n}"
	return l
}
