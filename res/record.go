// Copyright 2026 The Matcoord Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package res implements containers for per-subcase solver result vectors
package res

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// IdKind indicates how a record identifies the rows of its data array
type IdKind int

const (
	IdNone     IdKind = iota // record carries no id data; invalid
	IdFlat                   // one element id per row
	IdElemNode               // one (element id, node id) pair per row
)

// Record holds the results of one vector kind in one subcase. Data has
// shape [nsteps][nrows][ncomps] where the first axis spans output steps
// (times, frequencies or modes), the second spans element rows and the
// third spans the components of the vector kind. Exactly one of Element
// or ElementNode must be set; both are aligned to the row axis.
type Record struct {
	Data        [][][]float64 // [nsteps][nrows][ncomps] numeric payload
	Element     []int         // [nrows] element ids
	ElementNode [][]int       // [nrows] (element id, node id) pairs
}

// NewRecord allocates a record with a zeroed data array and a flat
// element-id sequence of length nrows
func NewRecord(nsteps, nrows, ncomps int) *Record {
	return &Record{
		Data:    utl.Deep3alloc(nsteps, nrows, ncomps),
		Element: make([]int, nrows),
	}
}

// IdsKind returns the kind of id data carried by this record
func (o *Record) IdsKind() IdKind {
	if o.Element != nil {
		return IdFlat
	}
	if o.ElementNode != nil {
		return IdElemNode
	}
	return IdNone
}

// Eids returns the element ids aligned to the row axis of Data. For
// records carrying (element, node) pairs, the element part is extracted
// preserving row order.
func (o *Record) Eids() ([]int, error) {
	switch o.IdsKind() {
	case IdFlat:
		return o.Element, nil
	case IdElemNode:
		eids := make([]int, len(o.ElementNode))
		for i, pair := range o.ElementNode {
			eids[i] = pair[0]
		}
		return eids, nil
	}
	return nil, chk.Err("record carries neither element ids nor (element,node) pairs")
}

// Check verifies that the id sequence is aligned to the row axis of Data
func (o *Record) Check() error {
	eids, err := o.Eids()
	if err != nil {
		return err
	}
	for t, step := range o.Data {
		if len(step) != len(eids) {
			return chk.Err("step %d has %d rows but record has %d element ids", t, len(step), len(eids))
		}
	}
	return nil
}

// DeepCopy returns a new record with copies of the data array and id sequences
func (o *Record) DeepCopy() *Record {
	neu := new(Record)
	if o.Data != nil {
		neu.Data = make([][][]float64, len(o.Data))
		for t, step := range o.Data {
			neu.Data[t] = make([][]float64, len(step))
			for i, row := range step {
				neu.Data[t][i] = make([]float64, len(row))
				copy(neu.Data[t][i], row)
			}
		}
	}
	if o.Element != nil {
		neu.Element = make([]int, len(o.Element))
		copy(neu.Element, o.Element)
	}
	if o.ElementNode != nil {
		neu.ElementNode = make([][]int, len(o.ElementNode))
		for i, pair := range o.ElementNode {
			neu.ElementNode[i] = make([]int, len(pair))
			copy(neu.ElementNode[i], pair)
		}
	}
	return neu
}
