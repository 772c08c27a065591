package sphgeom

import "math"

// Angle is a finite angular value measured in radians. It has no implicit
// range restriction; NormalizedAngle below is the wrapped variant.
type Angle float64

// AngleFromRadians builds an Angle directly from a radian value.
func AngleFromRadians(rad float64) Angle {
	return Angle(rad)
}

// AngleFromDegrees builds an Angle from a degree value.
func AngleFromDegrees(deg float64) Angle {
	return Angle(deg * math.Pi / 180.0)
}

// Radians returns the angle's value in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle's value in degrees.
func (a Angle) Degrees() float64 { return float64(a) * 180.0 / math.Pi }

// IsNaN reports whether the angle holds a NaN value.
func (a Angle) IsNaN() bool { return math.IsNaN(float64(a)) }

func (a Angle) String() string {
	return formatFloat(float64(a)) + "r"
}

// Add returns a + b.
func (a Angle) Add(b Angle) Angle { return a + b }

// Sub returns a - b.
func (a Angle) Sub(b Angle) Angle { return a - b }

// Neg returns -a.
func (a Angle) Neg() Angle { return -a }

// Mul returns a * s.
func (a Angle) Mul(s float64) Angle { return Angle(float64(a) * s) }

// Div returns a / s.
func (a Angle) Div(s float64) Angle { return Angle(float64(a) / s) }

// Less reports whether a < b.
func (a Angle) Less(b Angle) bool { return a < b }

// LessEqual reports whether a <= b.
func (a Angle) LessEqual(b Angle) bool { return a <= b }

// NormalizedAngle is an Angle normalized to the half-open range [0, 2*pi).
type NormalizedAngle float64

const twoPi = 2 * math.Pi

// NormalizedAngleFromRadians wraps rad into [0, 2*pi).
func NormalizedAngleFromRadians(rad float64) NormalizedAngle {
	return NormalizedAngle(wrapTwoPi(rad))
}

// NormalizedAngleFromDegrees wraps deg (given in degrees) into [0, 2*pi).
func NormalizedAngleFromDegrees(deg float64) NormalizedAngle {
	return NormalizedAngleFromRadians(deg * math.Pi / 180.0)
}

// wrapTwoPi reduces x (radians) into [0, 2*pi), handling negative inputs and
// values that are already extremely close to a multiple of 2*pi so that the
// result never lands exactly on 2*pi due to floating point rounding.
func wrapTwoPi(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	r := math.Mod(x, twoPi)
	if r < 0 {
		r += twoPi
	}
	if r >= twoPi {
		r -= twoPi
	}
	return r
}

// NormalizedAngleFromTwoPoints returns the unsigned angular separation
// between two points on the sphere, specified as (lon, lat) pairs. Uses a
// half-angle / cross-product formulation rather than the naive spherical
// law of cosines so that the result stays accurate near both 0 and pi.
func NormalizedAngleFromTwoPoints(a, b LonLat) NormalizedAngle {
	return NormalizedAngleFromRadians(UnitVector3dFromLonLat(a).angleTo(UnitVector3dFromLonLat(b)))
}

// Radians returns the value in radians.
func (a NormalizedAngle) Radians() float64 { return float64(a) }

// Degrees returns the value in degrees.
func (a NormalizedAngle) Degrees() float64 { return float64(a) * 180.0 / math.Pi }

func (a NormalizedAngle) String() string {
	return formatFloat(float64(a)) + "r"
}

// Angle widens a to an unrestricted Angle.
func (a NormalizedAngle) Angle() Angle { return Angle(a) }

// Less reports whether a < b. Note this compares the wrapped values
// directly; it is not a "closer on the circle" comparison.
func (a NormalizedAngle) Less(b NormalizedAngle) bool { return a < b }
