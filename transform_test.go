package affine

import (
	"math"
	"testing"
)

const epsilon = 1e-4

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func approxPoint(p, q Vector2f) bool {
	return approx(p.X, q.X) && approx(p.Y, q.Y)
}

func TestZeroValueIsIdentity(t *testing.T) {
	var tr Transform
	if tr != Identity() {
		t.Errorf("Transform{} != Identity()")
	}
	want := [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	if got := tr.Matrix(); got != want {
		t.Errorf("Transform{}.Matrix() = %v, want %v", got, want)
	}
	if !tr.IsIdentity() {
		t.Error("Transform{}.IsIdentity() = false")
	}
}

func TestIdentityLaw(t *testing.T) {
	id := Identity()
	points := []Vector2f{
		{0, 0}, {1, 2}, {-3.5, 7.25}, {1e6, -1e6}, {0.125, -0.5},
	}
	for _, p := range points {
		if got := id.TransformPoint(p); got != p {
			t.Errorf("Identity().TransformPoint(%v) = %v", p, got)
		}
	}

	rects := []FloatRect{
		Rect(0, 0, 1, 1),
		Rect(-10, 20, 30, 40),
		Rect(0.5, 0.25, 2, 8),
		Rect(3, 3, 0, 0),
	}
	for _, r := range rects {
		if got := id.TransformRect(r); got != r {
			t.Errorf("Identity().TransformRect(%v) = %v", r, got)
		}
	}
}

func TestTranslationComposition(t *testing.T) {
	var tr Transform
	tr.Translate(10, 0).Translate(0, 5)

	got := tr.TransformPoint(V2f(0, 0))
	if got != V2f(10, 5) {
		t.Errorf("TransformPoint(0,0) = %v, want (10, 5)", got)
	}
}

func TestInverseLaw(t *testing.T) {
	build := map[string]func(*Transform){
		"translate":        func(tr *Transform) { tr.Translate(12, -7) },
		"rotate":           func(tr *Transform) { tr.Rotate(33) },
		"scale":            func(tr *Transform) { tr.Scale(2, 0.5) },
		"negative scale":   func(tr *Transform) { tr.Scale(-1, 3) },
		"rotate centered":  func(tr *Transform) { tr.RotateWithCenter(120, 5, 5) },
		"scale centered":   func(tr *Transform) { tr.ScaleWithCenter(4, 0.25, -2, 8) },
		"translate rotate": func(tr *Transform) { tr.Translate(3, 4).Rotate(-75).Scale(1.5, 1.5) },
	}
	points := []Vector2f{{0, 0}, {1, 1}, {-4, 2.5}, {10, -10}}

	for name, fn := range build {
		t.Run(name, func(t *testing.T) {
			var tr Transform
			fn(&tr)

			if !tr.IsInvertible() {
				t.Fatalf("%v reported as not invertible", tr)
			}
			round := tr.Mul(tr.Inverse())
			for _, p := range points {
				if got := round.TransformPoint(p); !approxPoint(got, p) {
					t.Errorf("T*T^-1 maps %v to %v", p, got)
				}
				if got := tr.Inverse().TransformPoint(tr.TransformPoint(p)); !approxPoint(got, p) {
					t.Errorf("T^-1(T(p)) maps %v to %v", p, got)
				}
			}
		})
	}
}

func TestInverseDegenerate(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
	}{
		{"scale zero", *new(Transform).Scale(0, 0)},
		{"scale zero x", *new(Transform).Scale(0, 1)},
		{"zero matrix", FromMatrix([9]float32{})},
		{"collinear rows", FromMatrix([9]float32{1, 2, 3, 2, 4, 6, 0, 0, 1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tr.IsInvertible() {
				t.Errorf("%v.IsInvertible() = true, want false", tt.tr)
			}
			if got := tt.tr.Inverse(); got != Identity() {
				t.Errorf("%v.Inverse() = %v, want identity", tt.tr, got)
			}
		})
	}
}

func TestInverseDoesNotModifyReceiver(t *testing.T) {
	var tr Transform
	tr.Translate(5, 6).Scale(2, 3)
	before := tr

	_ = tr.Inverse()

	if tr != before {
		t.Errorf("Inverse modified receiver: %v, was %v", tr, before)
	}
}

func TestInverseGeneralMatrix(t *testing.T) {
	tr := FromMatrix([9]float32{
		2, 1, 0,
		0, 1, 3,
		1, 0, 1,
	})
	got := tr.Mul(tr.Inverse()).Matrix3()
	want := Identity().Matrix3()
	for i := range got {
		if !approx(got[i], want[i]) {
			t.Fatalf("T*T^-1 = %v, want identity", got)
		}
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		angle float32
		in    Vector2f
		want  Vector2f
	}{
		{0, V2f(1, 0), V2f(1, 0)},
		{90, V2f(1, 0), V2f(0, 1)},
		{90, V2f(0, 1), V2f(-1, 0)},
		{180, V2f(2, 3), V2f(-2, -3)},
		{-90, V2f(1, 0), V2f(0, -1)},
		{360, V2f(4, 5), V2f(4, 5)},
	}
	for _, tt := range tests {
		var tr Transform
		tr.Rotate(tt.angle)
		if got := tr.TransformPoint(tt.in); !approxPoint(got, tt.want) {
			t.Errorf("Rotate(%v).TransformPoint(%v) = %v, want %v", tt.angle, tt.in, got, tt.want)
		}
	}
}

func TestRotateWithCenterMatchesComposition(t *testing.T) {
	start := func() Transform {
		var tr Transform
		tr.Translate(3, -2).Scale(1.5, 0.5).Rotate(10)
		return tr
	}
	centers := []Vector2f{{0, 0}, {4, 7}, {-3, 2.5}}
	points := []Vector2f{{0, 0}, {1, 0}, {5, -5}, {4, 7}}

	for _, c := range centers {
		fused := start()
		fused.RotateWithCenter(90, c.X, c.Y)

		composed := start()
		composed.Translate(c.X, c.Y).Rotate(90).Translate(-c.X, -c.Y)

		for _, p := range points {
			got := fused.TransformPoint(p)
			want := composed.TransformPoint(p)
			if !approxPoint(got, want) {
				t.Errorf("center %v: fused maps %v to %v, composed to %v", c, p, got, want)
			}
		}
	}
}

func TestRotateWithCenterMovesAroundCenter(t *testing.T) {
	var tr Transform
	tr.RotateWithCenter(90, 4, 7)

	if got := tr.TransformPoint(V2f(4, 7)); !approxPoint(got, V2f(4, 7)) {
		t.Errorf("center moved to %v", got)
	}
	// (5,7) is one unit right of the center; a quarter turn puts it one unit below.
	if got := tr.TransformPoint(V2f(5, 7)); !approxPoint(got, V2f(4, 8)) {
		t.Errorf("TransformPoint(5,7) = %v, want (4,8)", got)
	}
}

func TestScaleWithCenterMatchesComposition(t *testing.T) {
	fused := NewTransform(1, 0.2, 3, 0.1, 1, -1, 0, 0, 1)
	composed := fused

	fused.ScaleWithCenter(2, -3, 10, 20)
	composed.Translate(10, 20).Scale(2, -3).Translate(-10, -20)

	for _, p := range []Vector2f{{0, 0}, {10, 20}, {-1, 4}, {7.5, 2}} {
		got := fused.TransformPoint(p)
		want := composed.TransformPoint(p)
		if !approxPoint(got, want) {
			t.Errorf("fused maps %v to %v, composed to %v", p, got, want)
		}
	}
}

func TestCombineOrder(t *testing.T) {
	var translateThenScale Transform
	translateThenScale.Translate(10, 0).Scale(2, 2)

	var scaleThenTranslate Transform
	scaleThenTranslate.Scale(2, 2).Translate(10, 0)

	p := V2f(1, 1)
	// The last combined transform is applied to the point first.
	if got := translateThenScale.TransformPoint(p); got != V2f(12, 2) {
		t.Errorf("Translate.Scale maps %v to %v, want (12, 2)", p, got)
	}
	if got := scaleThenTranslate.TransformPoint(p); got != V2f(22, 2) {
		t.Errorf("Scale.Translate maps %v to %v, want (22, 2)", p, got)
	}
}

func TestCombineAssociative(t *testing.T) {
	a := *new(Transform).Translate(1, 2)
	b := *new(Transform).Rotate(30)
	c := *new(Transform).Scale(2, 4)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	for _, p := range []Vector2f{{0, 0}, {1, -1}, {3, 5}} {
		if l, r := left.TransformPoint(p), right.TransformPoint(p); !approxPoint(l, r) {
			t.Errorf("(ab)c maps %v to %v, a(bc) to %v", p, l, r)
		}
	}
}

func TestMulDoesNotModifyReceiver(t *testing.T) {
	a := *new(Transform).Translate(1, 2)
	before := a
	_ = a.Mul(*new(Transform).Scale(3, 3))
	if a != before {
		t.Errorf("Mul modified receiver: %v, was %v", a, before)
	}
}

func TestTransformRectBoundingBox(t *testing.T) {
	var tr Transform
	tr.RotateWithCenter(45, 0.5, 0.5)

	got := tr.TransformRect(Rect(0, 0, 1, 1))
	sqrt2 := float32(math.Sqrt2)
	if !approx(got.Width, sqrt2) || !approx(got.Height, sqrt2) {
		t.Errorf("size = %vx%v, want %vx%v", got.Width, got.Height, sqrt2, sqrt2)
	}
	if c := got.Center(); !approxPoint(c, V2f(0.5, 0.5)) {
		t.Errorf("center = %v, want (0.5, 0.5)", c)
	}
}

func TestTransformRectNegativeScale(t *testing.T) {
	var tr Transform
	tr.Scale(-2, -1)

	got := tr.TransformRect(Rect(1, 2, 3, 4))
	want := Rect(-8, -6, 6, 4)
	if got != want {
		t.Errorf("TransformRect = %v, want %v", got, want)
	}
	if got.Width < 0 || got.Height < 0 {
		t.Errorf("TransformRect produced negative size %v", got)
	}
}

func TestMatrixRoundTrip(t *testing.T) {
	m := [9]float32{
		1.5, -2, 3.25,
		4, 0.125, -6,
		7, 8, 9,
	}
	tr := FromMatrix(m)
	if got := tr.Matrix3(); got != m {
		t.Errorf("Matrix3() = %v, want %v", got, m)
	}

	want := [16]float32{
		1.5, 4, 0, 7,
		-2, 0.125, 0, 8,
		0, 0, 1, 0,
		3.25, -6, 0, 9,
	}
	if got := tr.Matrix(); got != want {
		t.Errorf("Matrix() = %v, want %v", got, want)
	}
}

func TestNewTransformMatchesFromMatrix(t *testing.T) {
	a := NewTransform(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := FromMatrix([9]float32{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if !a.Equal(b) {
		t.Errorf("NewTransform = %v, FromMatrix = %v", a, b)
	}
}

func TestTransformPointIgnoresBottomRow(t *testing.T) {
	tr := FromMatrix([9]float32{
		1, 0, 2,
		0, 1, 3,
		5, 5, 5,
	})
	if got := tr.TransformPoint(V2f(1, 1)); got != V2f(3, 4) {
		t.Errorf("TransformPoint(1,1) = %v, want (3, 4)", got)
	}
}

func TestEqual(t *testing.T) {
	var built Transform
	built.Translate(0, 0)

	if !built.Equal(Identity()) {
		t.Errorf("Translate(0,0) is not Equal to Identity(): %v", built)
	}
	if !built.IsIdentity() {
		t.Error("Translate(0,0).IsIdentity() = false")
	}
	if built.Equal(*new(Transform).Translate(1, 0)) {
		t.Error("different transforms reported Equal")
	}
}

func TestString(t *testing.T) {
	got := Identity().String()
	want := "Transform[1 0 0; 0 1 0; 0 0 1]"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func BenchmarkTransformPoint(b *testing.B) {
	var tr Transform
	tr.Translate(10, 20).Rotate(30).Scale(2, 2)
	p := V2f(3, 4)
	b.ReportAllocs()
	for b.Loop() {
		p = tr.TransformPoint(p)
	}
	_ = p
}

func BenchmarkRotateWithCenter(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var tr Transform
		tr.RotateWithCenter(45, 100, 100)
	}
}

func BenchmarkInverse(b *testing.B) {
	var tr Transform
	tr.Translate(10, 20).Rotate(30).Scale(2, 2)
	b.ReportAllocs()
	for b.Loop() {
		_ = tr.Inverse()
	}
}
