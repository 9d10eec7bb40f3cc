// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitengine connects affine to the Ebitengine game engine.
//
// It provides two bridges:
//
//   - GeoM and FromGeoM convert between affine.Transform and ebiten.GeoM,
//     so transforms built with affine can be passed to DrawImageOptions.
//   - Mouse implements mouse.Source on top of Ebitengine's input polling.
//
// # Usage
//
//	if err := ebitengine.Register(); err != nil {
//	    log.Fatal(err)
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//	    var t affine.Transform
//	    t.Translate(g.x, g.y).RotateWithCenter(g.angle, 16, 16)
//
//	    op := &ebiten.DrawImageOptions{GeoM: ebitengine.GeoM(t)}
//	    screen.DrawImage(g.sprite, op)
//	}
//
// # Thread Safety
//
// Ebitengine input functions are only meaningful while the game loop runs.
// Query the mouse from Update or Draw.
package ebitengine
