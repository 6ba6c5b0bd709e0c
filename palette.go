package evergreen

import (
	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// The scene palette. Blending happens in Lab/HCL space via go-colorful so
// intermediate colors stay perceptually clean instead of drifting through
// muddy RGB midpoints.
var (
	needleDark   = colorful.Color{R: 0.07, G: 0.32, B: 0.15}
	needleBright = colorful.Color{R: 0.18, G: 0.56, B: 0.25}

	lightWarm = colorful.Color{R: 1.00, G: 0.86, B: 0.55}
	lightGold = colorful.Color{R: 1.00, G: 0.70, B: 0.28}

	ornamentColors = [...]colorful.Color{
		{R: 0.85, G: 0.12, B: 0.16}, // red
		{R: 0.95, G: 0.72, B: 0.20}, // gold
		{R: 0.16, G: 0.32, B: 0.78}, // blue
	}

	stardustPale = colorful.Color{R: 0.78, G: 0.86, B: 1.00}

	// scatterTint is the cool desaturated color every particle wears while
	// dispersed; category color fades in as the tree forms.
	scatterTint = colorful.Color{R: 0.45, G: 0.52, B: 0.62}
)

// CategoryColor returns the fully-formed color for a particle, varied within
// the category's palette by the particle's stable seed.
func CategoryColor(cat Category, seed float32) colorful.Color {
	switch cat {
	case CategoryLight:
		return lightWarm.BlendLab(lightGold, float64(seed)).Clamped()
	case CategoryOrnament:
		return ornamentColors[int(seed*float32(len(ornamentColors)))%len(ornamentColors)]
	case CategoryStardust:
		return stardustPale.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, float64(seed)).Clamped()
	default:
		return needleDark.BlendLab(needleBright, float64(seed)).Clamped()
	}
}

// Tint returns the color a particle should render with at the given
// progress: the shared scatter tint while dispersed, cross-fading to the
// particle's category color as the formation assembles.
func Tint(cat Category, seed, progress float32) colorful.Color {
	target := CategoryColor(cat, seed)
	return scatterTint.BlendHcl(target, float64(smoothstep(progress))).Clamped()
}

// GlowIntensity returns a [0, 1] brightness boost for glowing categories.
// It is zero until progress crosses MostlyFormedThreshold, then ramps in and
// twinkles on a per-particle phase so lights do not pulse in unison.
func GlowIntensity(progress, seed, timeSeconds float32) float32 {
	if progress < MostlyFormedThreshold {
		return 0
	}
	ramp := clamp01((progress - MostlyFormedThreshold) / (1 - MostlyFormedThreshold))
	phase := seed * 2 * math32.Pi
	rate := 0.5 + seed // twinkle frequency in Hz, varied per particle
	twinkle := 0.75 + 0.25*math32.Sin(2*math32.Pi*rate*timeSeconds+phase)
	return ramp * twinkle
}
