package affine

// Vector2f represents a 2D point or vector with float32 coordinates.
type Vector2f struct {
	X, Y float32
}

// V2f is a convenience function to create a Vector2f.
func V2f(x, y float32) Vector2f {
	return Vector2f{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector2f) Add(w Vector2f) Vector2f {
	return Vector2f{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2f) Sub(w Vector2f) Vector2f {
	return Vector2f{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vector2f) Mul(s float32) Vector2f {
	return Vector2f{X: v.X * s, Y: v.Y * s}
}

// Vector2i represents a 2D position in integer coordinates,
// such as a cursor position in pixels.
type Vector2i struct {
	X, Y int32
}

// V2i is a convenience function to create a Vector2i.
func V2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Float converts v to a Vector2f.
func (v Vector2i) Float() Vector2f {
	return Vector2f{X: float32(v.X), Y: float32(v.Y)}
}
