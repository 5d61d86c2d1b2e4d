package mathutil

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vecEqual(a, b Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}

func TestAddSub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got := a.Add(b); !vecEqual(got, Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); !vecEqual(got, Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v", got)
	}
}

func TestScale(t *testing.T) {
	if got := (Vec3{1, -2, 3}).Scale(2); !vecEqual(got, Vec3{2, -4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
}

func TestDot(t *testing.T) {
	if got := (Vec3{1, 2, 3}).Dot(Vec3{4, 5, 6}); !almostEqual(got, 32) {
		t.Errorf("Dot: got %v, want 32", got)
	}
}

func TestLen(t *testing.T) {
	if got := (Vec3{3, 4, 0}).Len(); !almostEqual(got, 5) {
		t.Errorf("Len: got %v, want 5", got)
	}
}

func TestNormalize(t *testing.T) {
	n := Vec3{0, 3, 4}.Normalize()
	if !vecEqual(n, Vec3{0, 0.6, 0.8}) {
		t.Errorf("Normalize: got %v", n)
	}
	if !almostEqual(n.Len(), 1) {
		t.Errorf("Normalize length: got %v", n.Len())
	}
}

func TestNormalizeZero(t *testing.T) {
	n := Vec3{}.Normalize()
	for i, c := range n {
		if math.IsNaN(c) || c != 0 {
			t.Errorf("Normalize zero vector: component %d = %v", i, c)
		}
	}
}
