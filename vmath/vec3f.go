package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world meters, Y up, player forward is -Z
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDist returns euclidean distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FDistXZ returns distance projected on the ground plane
func V3FDistXZ(a, b Vec3F) float64 {
	dx, dz := a.X-b.X, a.Z-b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// V3FLerp interpolates from a to b, t in [0,1]
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FRotateY rotates v around the Y axis by angle radians (counter-clockwise seen from above)
func V3FRotateY(v Vec3F, angle float64) Vec3F {
	s, c := math.Sincos(angle)
	return Vec3F{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// Yaw returns the heading of v on the ground plane, 0 facing -Z
func Yaw(v Vec3F) float64 {
	if v.X == 0 && v.Z == 0 {
		return 0
	}
	return math.Atan2(-v.X, -v.Z)
}

// FromYaw returns the unit ground-plane direction for a heading produced by Yaw
func FromYaw(yaw float64) Vec3F {
	s, c := math.Sincos(yaw)
	return Vec3F{X: -s, Z: -c}
}

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// RayHitsSphere reports whether a ray from origin along unit dir intersects the sphere,
// returning the distance along the ray to the first intersection
func RayHitsSphere(origin, dir, center Vec3F, radius float64) (float64, bool) {
	oc := V3FSub(center, origin)
	t := V3FDot(oc, dir)
	if t < 0 {
		return 0, false
	}
	closestSq := V3FMagSq(oc) - t*t
	r2 := radius * radius
	if closestSq > r2 {
		return 0, false
	}
	return t - math.Sqrt(r2-closestSq), true
}
