package vmath

import "math"

// Vec is a 2D vector in screen space: +X right, +Y down.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(other Vec) Vec {
	return Vec{v.X + other.X, v.Y + other.Y}
}

func (v Vec) Sub(other Vec) Vec {
	return Vec{v.X - other.X, v.Y - other.Y}
}

func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

func (v Vec) Mult(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec) LengthSq() float64 {
	return v.Dot(v)
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the zero vector unchanged rather than dividing by zero,
// so callers never see NaN components.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return v.Mult(1.0 / l)
}

func (v Vec) Lerp(other Vec, t float64) Vec {
	return v.Mult(1.0 - t).Add(other.Mult(t))
}

func (v Vec) Distance(other Vec) float64 {
	return v.Sub(other).Length()
}

func (v Vec) DistanceSq(other Vec) float64 {
	return v.Sub(other).LengthSq()
}

func Clamp(f, min, max float64) float64 {
	return math.Min(math.Max(f, min), max)
}

func Clamp01(f float64) float64 {
	return math.Max(0, math.Min(f, 1))
}

func Lerp(f1, f2, t float64) float64 {
	return f1*(1.0-t) + f2*t
}
