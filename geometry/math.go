// Package geometry provides the scalar and vector math used by the
// panel derivation and dimension-annotation code.
package geometry

import "math"

// Epsilon is the tolerance used for degeneracy checks.
const Epsilon = 1e-9

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the normalized range [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Vec3 represents a point or direction in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns the component-wise difference of v and w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v multiplied by the scalar s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < Epsilon {
		return v
	}
	return v.Scale(1 / l)
}

// Distance returns the Euclidean distance between v and w.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// Mid returns the midpoint between v and w.
func (v Vec3) Mid(w Vec3) Vec3 {
	return v.Add(w).Scale(0.5)
}

// PerpendicularXY returns a unit vector perpendicular to v within the
// XY plane (v rotated 90 degrees). When v has no usable XY projection
// the rotation is ill-defined and a fixed (1,0,0) is returned instead.
func PerpendicularXY(v Vec3) Vec3 {
	if math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon {
		return Vec3{X: 1}
	}
	return Vec3{-v.Y, v.X, 0}.Normalize()
}

// RotateInPlane rotates the unit vector dir by angle radians within
// the plane spanned by dir and perp. perp must be a unit vector
// perpendicular to dir.
func RotateInPlane(dir, perp Vec3, angle float64) Vec3 {
	return dir.Scale(math.Cos(angle)).Add(perp.Scale(math.Sin(angle)))
}
