package affine

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// UniformSize is the size in bytes of a transform uniform
// (one WGSL mat4x4<f32>).
const UniformSize = 64

// FromMat3 creates a transform from a column-major mgl32 matrix.
func FromMat3(m mgl32.Mat3) Transform {
	return Transform{m: m, set: true}
}

// Mat3 returns the transform as a column-major mgl32 matrix.
func (t Transform) Mat3() mgl32.Mat3 {
	return t.mat()
}

// Mat4 returns the same 4x4 matrix as Matrix, typed for use with mgl32.
func (t Transform) Mat4() mgl32.Mat4 {
	return mgl32.Mat4(t.Matrix())
}

// FromAff3 creates a transform from an x/image affine matrix.
func FromAff3(a f32.Aff3) Transform {
	return NewTransform(
		a[0], a[1], a[2],
		a[3], a[4], a[5],
		0, 0, 1,
	)
}

// Aff3 returns the top two rows of the matrix as an x/image affine matrix.
// The bottom row is dropped.
func (t Transform) Aff3() f32.Aff3 {
	m := t.Matrix3()
	return f32.Aff3{m[0], m[1], m[2], m[3], m[4], m[5]}
}

// AppendUniform appends the 4x4 matrix returned by Matrix to buf as
// little-endian float32 values and returns the extended slice.
func (t Transform) AppendUniform(buf []byte) []byte {
	for _, v := range t.Matrix() {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

// UniformLayoutEntry describes a vertex-stage uniform buffer binding that
// holds one transform written by AppendUniform.
func UniformLayoutEntry(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageVertex,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeUniform,
			MinBindingSize: UniformSize,
		},
	}
}
