// Package affine provides 2D affine transforms and the small value types
// they operate on.
//
// # Overview
//
// affine is a Pure Go implementation of the transform type found in
// multimedia libraries such as SFML. A Transform positions, rotates and
// scales drawable entities before they are handed to a renderer; the
// renderer itself, windows and device polling live elsewhere.
//
// # Quick Start
//
//	import "github.com/gogpu/affine"
//
//	var t affine.Transform // identity
//	t.Translate(100, 50).RotateWithCenter(45, 16, 16).Scale(2, 2)
//
//	p := t.TransformPoint(affine.V2f(1, 1))
//	bounds := t.TransformRect(affine.Rect(0, 0, 32, 32))
//
// # Conventions
//
//   - Angles are in degrees.
//   - Combining is matrix multiplication from the right: the transform
//     added last is applied to a point first.
//   - No operation fails. Inverting a singular matrix yields the identity
//     and rotated rectangles grow to their axis-aligned bounds.
//
// # Interoperability
//
// Transforms convert to and from mgl32 matrices, x/image affine matrices
// and, in integration/ebitengine, ebiten.GeoM. Matrix and AppendUniform
// produce the column-major 4x4 layout used by GPU shaders.
//
// # Packages
//
//   - affine: Transform, Vector2f, Vector2i, FloatRect
//   - mouse: real-time mouse button, wheel and cursor state
//   - integration/ebitengine: ebiten-backed mouse source and GeoM conversion
package affine

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
