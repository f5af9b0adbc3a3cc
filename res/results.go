// Copyright 2026 The Matcoord Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

// Results maps vector kind names (e.g. "cquad4_stress") to per-subcase records
type Results map[string]map[int]*Record

// Set stores a record for a given vector kind and subcase id
func (o Results) Set(kind string, subcase int, rec *Record) {
	if o[kind] == nil {
		o[kind] = make(map[int]*Record)
	}
	o[kind][subcase] = rec
}

// DeepCopy returns a new container with the same kind/subcase structure
// and deep copies of all records
func (o Results) DeepCopy() Results {
	neu := make(Results)
	for kind, subcases := range o {
		neu[kind] = make(map[int]*Record)
		for subcase, rec := range subcases {
			neu[kind][subcase] = rec.DeepCopy()
		}
	}
	return neu
}
