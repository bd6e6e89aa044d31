package core

import (
	"math"
	"testing"
)

const testEpsilon = 1e-9

func vecEquals(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < testEpsilon &&
		math.Abs(a.Y-b.Y) < testEpsilon &&
		math.Abs(a.Z-b.Z) < testEpsilon
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); !vecEquals(got, NewVec3(5, -3, 9)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Subtract(b); !vecEquals(got, NewVec3(-3, 7, -3)) {
		t.Errorf("Subtract = %v", got)
	}
	if got := a.Multiply(2); !vecEquals(got, NewVec3(2, 4, 6)) {
		t.Errorf("Multiply = %v", got)
	}
	if got := a.MultiplyVec(b); !vecEquals(got, NewVec3(4, -10, 18)) {
		t.Errorf("MultiplyVec = %v", got)
	}
	if got := a.Dot(b); math.Abs(got-12) > testEpsilon {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	z := NewVec3(0, 0, 1)

	if got := x.Cross(y); !vecEquals(got, z) {
		t.Errorf("x cross y = %v, want z", got)
	}
	if got := y.Cross(x); !vecEquals(got, z.Negate()) {
		t.Errorf("y cross x = %v, want -z", got)
	}
	if got := x.Cross(x); !vecEquals(got, NewVec3(0, 0, 0)) {
		t.Errorf("x cross x = %v, want zero", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if !vecEquals(v, NewVec3(0.6, 0.8, 0)) {
		t.Errorf("Normalize = %v", v)
	}
	if math.Abs(v.Length()-1) > testEpsilon {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}

	// Normalizing the zero vector must not produce NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if !vecEquals(zero, NewVec3(0, 0, 0)) {
		t.Errorf("Normalize(zero) = %v, want zero", zero)
	}
}

func TestVec3_NewVec3FromHex(t *testing.T) {
	tests := []struct {
		name string
		hex  uint32
		want Vec3
	}{
		{"white", 0xffffff, NewVec3(1, 1, 1)},
		{"black", 0x000000, NewVec3(0, 0, 0)},
		{"red", 0xff0000, NewVec3(1, 0, 0)},
		{"green", 0x00ff00, NewVec3(0, 1, 0)},
		{"blue", 0x0000ff, NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewVec3FromHex(tt.hex); !vecEquals(got, tt.want) {
				t.Errorf("NewVec3FromHex(%#x) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 6)

	if got := a.Lerp(b, 0); !vecEquals(got, a) {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := a.Lerp(b, 1); !vecEquals(got, b) {
		t.Errorf("Lerp(1) = %v", got)
	}
	if got := a.Lerp(b, 0.5); !vecEquals(got, NewVec3(1, 2, 3)) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for i, want := range []float64{1, 2, 3} {
		if got := v.Axis(Axes[i]); got != want {
			t.Errorf("Axis(%v) = %v, want %v", Axes[i], got, want)
		}
	}
}
