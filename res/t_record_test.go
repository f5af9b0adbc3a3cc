// Copyright 2026 The Matcoord Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_record01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("record01. element ids: flat and (element,node) pairs")

	flat := NewRecord(1, 3, 8)
	copy(flat.Element, []int{10, 20, 30})
	chk.IntAssert(int(flat.IdsKind()), int(IdFlat))
	eids, err := flat.Eids()
	if err != nil {
		tst.Errorf("Eids failed:\n%v", err)
		return
	}
	chk.Ints(tst, "flat eids", eids, []int{10, 20, 30})

	pairs := &Record{
		Data:        [][][]float64{{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}}},
		ElementNode: [][]int{{10, 1}, {10, 2}, {20, 1}, {20, 2}},
	}
	chk.IntAssert(int(pairs.IdsKind()), int(IdElemNode))
	eids, err = pairs.Eids()
	if err != nil {
		tst.Errorf("Eids failed:\n%v", err)
		return
	}
	chk.Ints(tst, "pair eids", eids, []int{10, 10, 20, 20})

	if err := pairs.Check(); err != nil {
		tst.Errorf("Check failed:\n%v", err)
		return
	}

	empty := new(Record)
	_, err = empty.Eids()
	if err == nil {
		tst.Errorf("Eids should have failed for record without ids\n")
		return
	}
	io.Pforan("error message: %v\n", err)
}

func Test_record02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("record02. misaligned ids are caught")

	rec := NewRecord(2, 3, 8)
	rec.Element = []int{1, 2}
	if err := rec.Check(); err == nil {
		tst.Errorf("Check should have failed for misaligned ids\n")
	}
}

func Test_copy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("copy01. deep copy independence")

	results := make(Results)
	rec := NewRecord(1, 2, 8)
	copy(rec.Element, []int{1, 2})
	rec.Data[0][0][0] = 100
	rec.Data[0][1][0] = 200
	results.Set("cquad4_force", 1, rec)

	clone := results.DeepCopy()
	chk.IntAssert(len(clone), 1)
	chk.IntAssert(len(clone["cquad4_force"]), 1)

	// mutating the clone must not touch the original
	crec := clone["cquad4_force"][1]
	crec.Data[0][0][0] = -1
	crec.Element[0] = 99
	chk.Scalar(tst, "original data", 1e-17, rec.Data[0][0][0], 100)
	chk.Ints(tst, "original eids", rec.Element, []int{1, 2})
	chk.Scalar(tst, "clone data", 1e-17, crec.Data[0][0][0], -1)
}
