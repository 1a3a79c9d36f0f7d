// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"cmp"
	"fmt"
)

type zLayer uint8

// Layer ranks. The zero value is Specific so that ZIndex{} is Specific(0).
const (
	zSpecific zLayer = iota
	zBelowAll
	zAboveAll
)

func (l zLayer) rank() int {
	switch l {
	case zBelowAll:
		return 0
	case zSpecific:
		return 1
	case zAboveAll:
		return 2
	default:
		panic(fmt.Sprintf("render: invalid z layer %d", uint8(l)))
	}
}

// ZIndex orders sprites for drawing. BelowAll draws first, then every
// Specific layer by ascending n, then AboveAll.
//
// The zero value is Specific(0).
type ZIndex struct {
	layer zLayer
	n     uint32
}

// AboveAll returns the z-index drawn after every other layer.
func AboveAll() ZIndex { return ZIndex{layer: zAboveAll} }

// BelowAll returns the z-index drawn before every other layer.
func BelowAll() ZIndex { return ZIndex{layer: zBelowAll} }

// Specific returns the z-index of layer n.
func Specific(n uint32) ZIndex { return ZIndex{layer: zSpecific, n: n} }

// Layer returns n and true for Specific(n), or 0 and false otherwise.
func (z ZIndex) Layer() (uint32, bool) {
	return z.n, z.layer == zSpecific
}

// Compare returns -1, 0 or +1 as z draws before, together with, or after o.
// Two AboveAll (or two BelowAll) values compare equal.
func (z ZIndex) Compare(o ZIndex) int {
	if c := cmp.Compare(z.layer.rank(), o.layer.rank()); c != 0 {
		return c
	}
	if z.layer == zSpecific {
		return cmp.Compare(z.n, o.n)
	}
	return 0
}

// Less reports whether z draws before o.
func (z ZIndex) Less(o ZIndex) bool { return z.Compare(o) < 0 }

// String returns "AboveAll", "BelowAll" or "Specific(n)".
func (z ZIndex) String() string {
	switch z.layer {
	case zAboveAll:
		return "AboveAll"
	case zBelowAll:
		return "BelowAll"
	default:
		return fmt.Sprintf("Specific(%d)", z.n)
	}
}
