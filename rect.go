package affine

// FloatRect is an axis-aligned rectangle given by its top-left corner
// and its size. Width and Height are expected to be non-negative;
// TransformRect always produces such rectangles.
type FloatRect struct {
	Left, Top     float32
	Width, Height float32
}

// Rect is a convenience function to create a FloatRect.
func Rect(left, top, width, height float32) FloatRect {
	return FloatRect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge.
func (r FloatRect) Right() float32 {
	return r.Left + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r FloatRect) Bottom() float32 {
	return r.Top + r.Height
}

// Center returns the center point of the rectangle.
func (r FloatRect) Center() Vector2f {
	return Vector2f{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Contains reports whether p lies inside r.
// The left and top edges are inclusive, the right and bottom edges are not.
func (r FloatRect) Contains(p Vector2f) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// Intersection returns the overlapping area of r and other and whether
// that area is non-empty. When they do not overlap the zero rectangle
// is returned.
func (r FloatRect) Intersection(other FloatRect) (FloatRect, bool) {
	left := max(r.Left, other.Left)
	top := max(r.Top, other.Top)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return FloatRect{}, false
	}
	return FloatRect{Left: left, Top: top, Width: right - left, Height: bottom - top}, true
}

// Union returns the smallest rectangle containing both r and other.
func (r FloatRect) Union(other FloatRect) FloatRect {
	left := min(r.Left, other.Left)
	top := min(r.Top, other.Top)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	return FloatRect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}
