package evergreen

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Vec3 is a 3D point or direction. Components are float32 to match the
// renderer-facing attribute arrays this package produces.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Lerp returns the linear interpolation from v to o by t.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// Range is a general-purpose min/max range.
// Used by Config and SparkleConfig for per-particle variation.
type Range struct {
	Min, Max float32
}

// Random returns a random float32 in [Min, Max] drawn from rng.
// The source is explicit so pools stay reproducible by seed.
func (r Range) Random(rng *rand.Rand) float32 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float32()*(r.Max-r.Min)
}

// Category tags a particle for visual variation. The engine assigns colors
// and size ranges per category; renderers may also vary blend modes or
// billboards by it.
type Category uint8

const (
	CategoryNeedle   Category = iota // dense green body of the tree
	CategoryLight                    // warm glowing string lights
	CategoryOrnament                 // large baubles, placed on the lower band
	CategoryStardust                 // faint drifting motes
)

// numCategories is the size of the Category enumeration.
const numCategories = 4

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// clamp01 clamps x to [0, 1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// smoothstep is the cubic Hermite 3x²-2x³, with the argument clamped to
// [0, 1] first. Callers still clamp their own remapped inputs; see Blend.
func smoothstep(x float32) float32 {
	x = clamp01(x)
	return x * x * (3 - 2*x)
}
