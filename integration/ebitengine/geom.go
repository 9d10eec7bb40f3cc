// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitengine

import (
	"github.com/gogpu/affine"
	"github.com/hajimehoshi/ebiten/v2"
)

// GeoM converts t to an ebiten.GeoM.
//
// GeoM holds only the top two rows of the matrix; the bottom row of t is
// dropped, which loses nothing for transforms built from translations,
// rotations and scalings.
func GeoM(t affine.Transform) ebiten.GeoM {
	m := t.Matrix3()
	var g ebiten.GeoM
	for i := range 2 {
		for j := range 3 {
			g.SetElement(i, j, float64(m[i*3+j]))
		}
	}
	return g
}

// FromGeoM converts an ebiten.GeoM to an affine.Transform.
func FromGeoM(g ebiten.GeoM) affine.Transform {
	var m [9]float32
	for i := range 2 {
		for j := range 3 {
			m[i*3+j] = float32(g.Element(i, j))
		}
	}
	m[8] = 1
	return affine.FromMatrix(m)
}
