package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestNormalizeIdempotent(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"unit x", V3(1, 0, 0)},
		{"diagonal", V3(1, 1, 1)},
		{"long", V3(100, -200, 300)},
		{"tiny", V3(0.001, 0.002, -0.003)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			once := tc.v.Normalize()
			twice := once.Normalize()
			if !vecNear(once, twice) {
				t.Errorf("normalize not idempotent: %v vs %v", once, twice)
			}
			if math.Abs(once.Len()-1) > eps {
				t.Errorf("normalized length = %v, want 1", once.Len())
			}
		})
	}
}

func TestNormalizeZero(t *testing.T) {
	z := Zero3().Normalize()
	if !vecNear(z, Zero3()) {
		t.Errorf("normalize(0) = %v, want zero vector", z)
	}
}

func TestCrossOrthogonal(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 5, 6)
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > eps || math.Abs(c.Dot(b)) > eps {
		t.Errorf("cross product not orthogonal: %v", c)
	}
}

func TestIdentityTransform(t *testing.T) {
	vs := []Vec3{V3(0, 0, 0), V3(1, 2, 3), V3(-5, 0.5, 100)}
	id := Identity()
	for _, v := range vs {
		if got := id.MulVec3(v); !vecNear(got, v) {
			t.Errorf("identity.MulVec3(%v) = %v", v, got)
		}
	}
}

func TestViewportCorners(t *testing.T) {
	const w, h = 800, 600
	vp := Viewport(0, 0, w, h)

	tests := []struct {
		name string
		ndc  Vec3
		want Vec3
	}{
		{"bottom-left NDC to bottom-left pixel", V3(-1, -1, 0), V3(0, h, 0)},
		{"top-right NDC to top-right pixel", V3(1, 1, 0), V3(w, 0, 0)},
		{"center", V3(0, 0, 0), V3(w/2, h/2, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := vp.MulVec3(tc.ndc); !vecNear(got, tc.want) {
				t.Errorf("viewport(%v) = %v, want %v", tc.ndc, got, tc.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(V3(1, 2, 3))
	if got := m.MulVec3(V3(10, 20, 30)); !vecNear(got, V3(11, 22, 33)) {
		t.Errorf("translate = %v", got)
	}
	// Directions ignore translation.
	if got := m.MulVec3Dir(V3(10, 20, 30)); !vecNear(got, V3(10, 20, 30)) {
		t.Errorf("translate dir = %v", got)
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	m := RotateY(math.Pi / 2)
	got := m.MulVec3(V3(1, 0, 0))
	if !vecNear(got, V3(0, 0, 1)) {
		t.Errorf("rotateY(pi/2) * x = %v, want (0,0,1)", got)
	}
}

func TestMulAssociatesWithVector(t *testing.T) {
	// (A*B)*v must equal A*(B*v) for affine transforms.
	a := Translate(V3(1, 2, 3))
	b := RotateY(0.7)
	v := V3(4, 5, 6)

	left := a.Mul(b).MulVec3(v)
	right := a.MulVec3(b.MulVec3(v))
	if !vecNear(left, right) {
		t.Errorf("(A*B)v = %v, A(Bv) = %v", left, right)
	}
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	eye := V3(3, 4, 5)
	m := LookAt(eye, Zero3(), Up())
	if got := m.MulVec3(eye); !vecNear(got, Zero3()) {
		t.Errorf("lookAt maps eye to %v, want origin", got)
	}
}

func TestPerspectiveDepthOrdering(t *testing.T) {
	p := Perspective(math.Pi/4, 1, 0.1, 100)

	near := p.MulVec3(V3(0, 0, -1))
	far := p.MulVec3(V3(0, 0, -50))
	if near.Z >= far.Z {
		t.Errorf("near z %v should be less than far z %v", near.Z, far.Z)
	}
}

func TestMulVec3NearZeroW(t *testing.T) {
	p := Perspective(math.Pi/4, 1, 0.1, 100)
	// A point at the camera plane has w ~ 0; the undivided result must
	// come back finite.
	got := p.MulVec3(V3(0.5, 0.5, 0))
	if math.IsNaN(got.X) || math.IsInf(got.X, 0) ||
		math.IsNaN(got.Y) || math.IsInf(got.Y, 0) {
		t.Errorf("w~0 transform produced non-finite result: %v", got)
	}
}

func TestVec4PerspectiveDivide(t *testing.T) {
	v := V4(2, 4, 6, 2)
	if got := v.PerspectiveDivide(); !vecNear(got, V3(1, 2, 3)) {
		t.Errorf("perspective divide = %v", got)
	}
	zw := V4(1, 2, 3, 0)
	if got := zw.PerspectiveDivide(); !vecNear(got, V3(1, 2, 3)) {
		t.Errorf("zero-w divide = %v, want undivided", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := V2(0, 0)
	b := V2(2, 4)
	got := a.Lerp(b, 0.5)
	if math.Abs(got.X-1) > eps || math.Abs(got.Y-2) > eps {
		t.Errorf("lerp = %v, want (1,2)", got)
	}
}

func TestReflect(t *testing.T) {
	// Reflecting a downward vector off a floor flips Y.
	v := V3(1, -1, 0)
	n := Up()
	if got := v.Reflect(n); !vecNear(got, V3(1, 1, 0)) {
		t.Errorf("reflect = %v, want (1,1,0)", got)
	}
}
