package core

import "math"

// ONB is an orthonormal basis built around a reference vector, usually a
// surface normal. W is the normalized reference vector.
type ONB struct {
	U, V, W Vec3
}

// NewONB constructs an orthonormal basis from a reference vector
func NewONB(w Vec3) ONB {
	w = w.Normalize()

	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return ONB{U: u, V: v, W: w}
}

// Transform maps a vector from basis coordinates to world space
func (o ONB) Transform(vec Vec3) Vec3 {
	return o.U.Multiply(vec.X).Add(o.V.Multiply(vec.Y)).Add(o.W.Multiply(vec.Z))
}
