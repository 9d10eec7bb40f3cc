package affine

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a 3x3 affine transformation matrix.
//
// In row-major form the matrix is
//
//	| a00  a01  a02 |
//	| a10  a11  a12 |
//	| a20  a21  a22 |
//
// and a point is mapped as
//
//	x' = a00*x + a01*y + a02
//	y' = a10*x + a11*y + a12
//
// The zero value is the identity transform. Transform is a value type:
// copies are independent and the methods with pointer receivers modify
// only the receiver.
//
// Combining transforms multiplies matrices left to right, so
//
//	t.Translate(10, 0).Rotate(90)
//
// rotates a point first and then translates it.
type Transform struct {
	// m is column-major and only meaningful when set is true.
	m   mgl32.Mat3
	set bool
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{}
}

// NewTransform creates a transform from the nine matrix entries,
// given row by row. The values are not validated.
func NewTransform(a00, a01, a02, a10, a11, a12, a20, a21, a22 float32) Transform {
	return Transform{
		m: mgl32.Mat3{
			a00, a10, a20,
			a01, a11, a21,
			a02, a12, a22,
		},
		set: true,
	}
}

// FromMatrix creates a transform from a row-major 3x3 matrix:
//
//	[a00, a01, a02,
//	 a10, a11, a12,
//	 a20, a21, a22]
//
// Any nine values are accepted, including non-invertible matrices.
func FromMatrix(m [9]float32) Transform {
	return NewTransform(m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

func (t Transform) mat() mgl32.Mat3 {
	if !t.set {
		return mgl32.Ident3()
	}
	return t.m
}

// Matrix returns the transform as a 4x4 column-major matrix, the layout
// expected by OpenGL-style and WGSL mat4x4 uniforms:
//
//	[a00, a10, 0, a20,
//	 a01, a11, 0, a21,
//	 0,   0,   1, 0,
//	 a02, a12, 0, a22]
func (t Transform) Matrix() [16]float32 {
	m := t.mat()
	return [16]float32{
		m[0], m[1], 0, m[2],
		m[3], m[4], 0, m[5],
		0, 0, 1, 0,
		m[6], m[7], 0, m[8],
	}
}

// Matrix3 returns the 3x3 matrix in the row-major order accepted by FromMatrix.
func (t Transform) Matrix3() [9]float32 {
	m := t.mat()
	return [9]float32{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// determinant uses the cofactor expansion along the first row.
func (t Transform) determinant() float32 {
	m := t.Matrix3()
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[3], m[4], m[5]
	a20, a21, a22 := m[6], m[7], m[8]
	return a00*(a22*a11-a21*a12) -
		a01*(a22*a10-a12*a20) +
		a02*(a21*a10-a11*a20)
}

// IsInvertible reports whether the matrix has a non-zero determinant.
func (t Transform) IsInvertible() bool {
	return t.determinant() != 0
}

// Inverse returns the inverse transform.
// If the determinant is exactly zero the identity transform is returned.
// The receiver is not modified.
func (t Transform) Inverse() Transform {
	det := t.determinant()
	if det == 0 {
		Logger().Debug("affine: transform is not invertible, using identity")
		return Identity()
	}

	m := t.Matrix3()
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[3], m[4], m[5]
	a20, a21, a22 := m[6], m[7], m[8]
	return NewTransform(
		(a22*a11-a21*a12)/det,
		-(a22*a01-a21*a02)/det,
		(a12*a01-a11*a02)/det,
		-(a22*a10-a20*a12)/det,
		(a22*a00-a20*a02)/det,
		-(a12*a00-a10*a02)/det,
		(a21*a10-a20*a11)/det,
		-(a21*a00-a20*a01)/det,
		(a11*a00-a10*a01)/det,
	)
}

// Combine sets t to the matrix product t * other and returns t.
// The result maps a point through other first and then through the
// previous t.
func (t *Transform) Combine(other Transform) *Transform {
	t.m = t.mat().Mul3(other.mat())
	t.set = true
	return t
}

// Mul returns the product t * other without modifying t.
func (t Transform) Mul(other Transform) Transform {
	t.Combine(other)
	return t
}

// Translate combines t with a translation by (x, y).
func (t *Transform) Translate(x, y float32) *Transform {
	return t.Combine(Transform{m: mgl32.Translate2D(x, y), set: true})
}

// Rotate combines t with a rotation about the origin.
// The angle is in degrees.
func (t *Transform) Rotate(angle float32) *Transform {
	return t.Combine(Transform{m: mgl32.HomogRotate2D(mgl32.DegToRad(angle)), set: true})
}

// RotateWithCenter combines t with a rotation of angle degrees about
// (cx, cy). It gives the same result as
//
//	t.Translate(cx, cy).Rotate(angle).Translate(-cx, -cy)
//
// with a single matrix product.
func (t *Transform) RotateWithCenter(angle, cx, cy float32) *Transform {
	s, c := math.Sincos(float64(mgl32.DegToRad(angle)))
	sin, cos := float32(s), float32(c)
	return t.Combine(NewTransform(
		cos, -sin, cx*(1-cos)+cy*sin,
		sin, cos, cy*(1-cos)-cx*sin,
		0, 0, 1,
	))
}

// Scale combines t with a scaling about the origin.
func (t *Transform) Scale(x, y float32) *Transform {
	return t.Combine(Transform{m: mgl32.Scale2D(x, y), set: true})
}

// ScaleWithCenter combines t with a scaling by (sx, sy) about (cx, cy),
// equivalent to
//
//	t.Translate(cx, cy).Scale(sx, sy).Translate(-cx, -cy)
func (t *Transform) ScaleWithCenter(sx, sy, cx, cy float32) *Transform {
	return t.Combine(NewTransform(
		sx, 0, cx*(1-sx),
		0, sy, cy*(1-sy),
		0, 0, 1,
	))
}

// TransformPoint applies the transformation to a point.
func (t Transform) TransformPoint(p Vector2f) Vector2f {
	v := t.mat().Mul3x1(mgl32.Vec3{p.X, p.Y, 1})
	return Vector2f{X: v[0], Y: v[1]}
}

// TransformRect applies the transformation to a rectangle.
//
// Rotated rectangles cannot be represented by FloatRect, so the result is
// the axis-aligned bounding box of the four transformed corners.
func (t Transform) TransformRect(r FloatRect) FloatRect {
	corners := [4]Vector2f{
		t.TransformPoint(Vector2f{X: r.Left, Y: r.Top}),
		t.TransformPoint(Vector2f{X: r.Left, Y: r.Top + r.Height}),
		t.TransformPoint(Vector2f{X: r.Left + r.Width, Y: r.Top}),
		t.TransformPoint(Vector2f{X: r.Left + r.Width, Y: r.Top + r.Height}),
	}

	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, p := range corners[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return FloatRect{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}

// Equal reports whether both transforms have identical matrices.
// Use Equal rather than == since the identity has more than one
// representation.
func (t Transform) Equal(other Transform) bool {
	return t.mat() == other.mat()
}

// IsIdentity returns true if the matrix is the identity matrix.
func (t Transform) IsIdentity() bool {
	return t.Equal(Identity())
}

func (t Transform) String() string {
	m := t.Matrix3()
	return fmt.Sprintf("Transform[%g %g %g; %g %g %g; %g %g %g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
