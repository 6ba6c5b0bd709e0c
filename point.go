package evergreen

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Shape constants for the formation cone. These are the tree's identity, not
// a tuning surface, so they are fixed rather than configurable.
const (
	// taperExponent makes the cone radius shrink super-linearly toward the
	// apex, giving the silhouette a concave sweep instead of straight sides.
	taperExponent = 1.2
	// rippleLayers and rippleAmplitude modulate the radius sinusoidally with
	// height so the surface reads as stacked boughs rather than smooth rings.
	rippleLayers    = 5
	rippleAmplitude = 0.12
)

// ScatterPoint returns a point uniformly distributed inside a sphere of the
// given radius, centered at the origin.
//
// Radius is sampled as radius*cbrt(u) and direction via polar/azimuthal
// angles; scaling each Cartesian axis independently would cluster points
// toward the center.
func ScatterPoint(rng *rand.Rand, radius float32) Vec3 {
	r := radius * math32.Cbrt(rng.Float32())
	theta := 2 * math32.Pi * rng.Float32()
	phi := math32.Acos(2*rng.Float32() - 1)

	sinPhi := math32.Sin(phi)
	return Vec3{
		X: r * sinPhi * math32.Cos(theta),
		Y: r * math32.Cos(phi),
		Z: r * sinPhi * math32.Sin(theta),
	}
}

// FormationPoint returns a point on the surface of a conical tree shape of
// the given total height and base radius, vertically recentered so the shape
// spans [-height/2, +height/2].
//
// bandMin and bandMax restrict the sampled height to a fraction of the cone:
// FormationPoint(rng, h, r, 0, 0.4) places points only on the bottom 40%.
// Pass 0 and 1 for the full shape. The pair must satisfy
// 0 <= bandMin <= bandMax <= 1; Config.Validate enforces this for pools.
//
// The function is total: height <= 0 degenerates to a ring at y=0 rather
// than crashing, so malformed input is caught by validation, not here.
func FormationPoint(rng *rand.Rand, height, baseRadius, bandMin, bandMax float32) Vec3 {
	u := lerp(bandMin, bandMax, rng.Float32())
	y := u * height

	t := float32(0)
	if height > 0 {
		t = y / height
	}

	r := baseRadius * math32.Pow(1-t, taperExponent)
	r += r * rippleAmplitude * math32.Sin(t*rippleLayers*2*math32.Pi)

	azimuth := 2 * math32.Pi * rng.Float32()
	return Vec3{
		X: r * math32.Cos(azimuth),
		Y: y - height/2,
		Z: r * math32.Sin(azimuth),
	}
}
