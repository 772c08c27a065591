package sphgeom

import "math"

// Vector3d is a 3-tuple of finite doubles. It carries no normalization
// invariant; UnitVector3d below does.
type Vector3d struct {
	X, Y, Z float64
}

// NewVector3d builds a Vector3d from its components.
func NewVector3d(x, y, z float64) Vector3d { return Vector3d{x, y, z} }

// Dot returns the dot product of v and w.
func (v Vector3d) Dot(w Vector3d) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v x w.
func (v Vector3d) Cross(w Vector3d) Vector3d {
	return Vector3d{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Add returns v + w.
func (v Vector3d) Add(w Vector3d) Vector3d {
	return Vector3d{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector3d) Sub(w Vector3d) Vector3d {
	return Vector3d{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Neg returns -v.
func (v Vector3d) Neg() Vector3d { return Vector3d{-v.X, -v.Y, -v.Z} }

// Scale returns v * s.
func (v Vector3d) Scale(s float64) Vector3d {
	return Vector3d{v.X * s, v.Y * s, v.Z * s}
}

// SquaredNorm returns ||v||^2.
func (v Vector3d) SquaredNorm() float64 { return v.Dot(v) }

// Norm returns ||v||.
func (v Vector3d) Norm() float64 { return math.Sqrt(v.SquaredNorm()) }

// Normalized returns v scaled to unit length as a UnitVector3d. Panics (a
// logic error, not a caller-facing one) if v is the zero vector; callers
// that might pass a zero vector should check SquaredNorm first.
func (v Vector3d) Normalized() UnitVector3d {
	n := v.Norm()
	if n == 0 {
		logicError("cannot normalize the zero vector")
	}
	return UnitVector3d{Vector3d{v.X / n, v.Y / n, v.Z / n}}
}

// IsZero reports whether every component of v is exactly zero.
func (v Vector3d) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// UnitVector3d is a Vector3d guaranteed (within a small tolerance) to have
// unit norm. The zero value is invalid; always construct via one of the
// constructor functions below.
type UnitVector3d struct {
	v Vector3d
}

// unitVectorTolerance is the unit-norm tolerance of spec.md invariant 1
// (1e-14). No constructor checks against it: UnitVector3dFromNormalized
// accepts any vector whose squared norm is within 1e-9 of 1.
const unitVectorTolerance = 1e-14

// NewUnitVector3d normalizes (x, y, z) to a UnitVector3d. Panics via
// logicError if the input is the zero vector.
func NewUnitVector3d(x, y, z float64) UnitVector3d {
	return Vector3d{x, y, z}.Normalized()
}

// UnitVector3dFromNormalized trusts that v already has unit norm to within
// tolerance, skipping the sqrt/divide of Normalized. Used internally where
// the caller has already done the arithmetic (e.g. axis unit vectors).
func UnitVector3dFromNormalized(v Vector3d) UnitVector3d {
	if math.Abs(v.SquaredNorm()-1) > 1e-9 {
		logicError("vector %v is not unit length", v)
	}
	return UnitVector3d{v}
}

// UnitVector3dFromLonLat builds the unit vector corresponding to a point on
// the sphere given in (longitude, latitude) form.
func UnitVector3dFromLonLat(p LonLat) UnitVector3d {
	cosLat := math.Cos(p.Lat.Radians())
	return UnitVector3d{Vector3d{
		X: math.Cos(p.Lon.Radians()) * cosLat,
		Y: math.Sin(p.Lon.Radians()) * cosLat,
		Z: math.Sin(p.Lat.Radians()),
	}}
}

// UnitVector3dFromAngles builds the unit vector for (ra, dec) angles, an
// alias for the (lon, lat) convention used throughout this package.
func UnitVector3dFromAngles(ra NormalizedAngle, dec Angle) UnitVector3d {
	return UnitVector3dFromLonLat(LonLat{Lon: ra, Lat: dec})
}

// Vector returns the plain Vector3d underlying u.
func (u UnitVector3d) Vector() Vector3d { return u.v }

func (u UnitVector3d) X() float64 { return u.v.X }
func (u UnitVector3d) Y() float64 { return u.v.Y }
func (u UnitVector3d) Z() float64 { return u.v.Z }

// Dot returns the dot product of u and w.
func (u UnitVector3d) Dot(w UnitVector3d) float64 { return u.v.Dot(w.v) }

// DotVector returns the dot product of u and a plain vector w.
func (u UnitVector3d) DotVector(w Vector3d) float64 { return u.v.Dot(w) }

// Cross returns u x w as a plain (not necessarily unit) vector.
func (u UnitVector3d) Cross(w UnitVector3d) Vector3d { return u.v.Cross(w.v) }

// Neg returns the antipodal unit vector.
func (u UnitVector3d) Neg() UnitVector3d { return UnitVector3d{u.v.Neg()} }

// angleTo returns the unsigned angle, in radians, between u and w. Uses the
// numerically stable half-angle (2*asin of half the chord) formulation: the
// naive acos(dot) form loses precision badly as the angle approaches 0 or
// pi, which matters near poles and for antipodal tests.
func (u UnitVector3d) angleTo(w UnitVector3d) float64 {
	d := u.v.Sub(w.v)
	s := u.v.Add(w.v)
	// chord length / 2 = |d|/2 ; angle = 2*asin(|d|/2), clamped for safety.
	half := d.Norm() / 2
	if half > 1 {
		half = 1
	}
	angle := 2 * math.Asin(half)
	// When u and w are nearly antipodal, |d| is close to 2 and asin loses
	// precision; fall back to 2*acos(|s|/2) in that regime (|s| is then
	// close to 0, where acos is well-conditioned).
	if d.Norm() > 1.0 {
		halfSum := s.Norm() / 2
		if halfSum > 1 {
			halfSum = 1
		}
		angle = math.Pi - 2*math.Asin(halfSum)
	}
	return angle
}

// AngleTo returns the unsigned angular separation between u and w as a
// NormalizedAngle.
func (u UnitVector3d) AngleTo(w UnitVector3d) NormalizedAngle {
	return NormalizedAngleFromRadians(u.angleTo(w))
}

// SquaredChordLength returns the squared Euclidean distance between u and w
// when both are viewed as points in R^3, i.e. ||u - w||^2. This equals
// 2*(1 - cos(angle)) and is exactly the quantity Circle stores as its
// opening-angle parameter.
func (u UnitVector3d) SquaredChordLength(w UnitVector3d) float64 {
	return u.v.Sub(w.v).SquaredNorm()
}

// LonLat returns the (longitude, latitude) representation of u.
func (u UnitVector3d) LonLat() LonLat {
	lat := AngleFromRadians(math.Asin(clamp(u.v.Z, -1, 1)))
	lon := NormalizedAngleFromRadians(math.Atan2(u.v.Y, u.v.X))
	return LonLat{Lon: lon, Lat: lat}
}

// OrthogonalTo returns a unit vector perpendicular to both u and v: the
// normalized cross product u x v. When u and v are parallel or
// antiparallel it returns a unit vector perpendicular to u alone: u x Z
// normalized, or u x X when |u.Z| > 0.9.
func (u UnitVector3d) OrthogonalTo(v UnitVector3d) UnitVector3d {
	cross := u.Cross(v)
	if !cross.IsZero() {
		return cross.Normalized()
	}
	// u and v are parallel or antiparallel; fall back to any vector
	// orthogonal to u alone.
	return u.anyOrthogonal()
}

func (u UnitVector3d) anyOrthogonal() UnitVector3d {
	axis := Vector3d{0, 0, 1}
	if math.Abs(u.v.Z) > 0.9 {
		axis = Vector3d{1, 0, 0}
	}
	return u.v.Cross(axis).Normalized()
}

// NorthFrom returns the canonical "north" direction at point u: the unit
// vector tangent to the sphere at u that points toward increasing latitude,
// i.e. the component of the north pole (0,0,1) orthogonal to u, renormalized.
func (u UnitVector3d) NorthFrom() UnitVector3d {
	pole := Vector3d{0, 0, 1}
	tangent := pole.Sub(u.v.Scale(u.v.Dot(pole)))
	if tangent.IsZero() {
		// u is a pole itself; any direction is "north" there, take u x X
		// (+Y at the north pole, -Y at the south pole).
		return u.anyOrthogonal()
	}
	return tangent.Normalized()
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
