package evergreen

import (
	"github.com/tanema/gween/ease"
)

// Blend timing constants. The remap below sends localProgress through
// [-delay, 1+delay] before clamping, so any non-negative constants keep the
// endpoints exact; these values spread the build over roughly the first
// third of the transition.
const (
	// delaySpread scales how much later apex particles start than base
	// particles, producing the bottom-up build.
	delaySpread = 0.35
	// delayBase shifts every particle's window slightly so even the base
	// row eases in rather than snapping.
	delayBase = 0.05
	// delayJitter desynchronizes particles at the same height by their
	// per-particle seed.
	delayJitter = 0.1
)

// formationDelay computes the per-particle start offset from the particle's
// destination height within the formed shape. Particles headed for the apex
// get the largest delay, so the tree assembles bottom-up.
//
// formedY is the particle's formed-position Y in [-h/2, +h/2]; seed is the
// particle's stable random seed in [0, 1).
func formationDelay(formedY, formedHeight, seed float32) float32 {
	h := float32(0)
	if formedHeight > 0 {
		h = clamp01(formedY/formedHeight + 0.5)
	}
	return h*delaySpread + delayBase + seed*delayJitter
}

// Blend returns the position of a particle partway through the morph from
// its scattered home to its formed home, using the default ease-out-cubic
// curve. globalProgress 0 returns scatter exactly; 1 returns formed exactly.
//
// Blend is stateless and safe to call for any particle in any order.
func Blend(scatter, formed Vec3, formedHeight, seed, globalProgress float32) Vec3 {
	return BlendEase(scatter, formed, formedHeight, seed, globalProgress, ease.OutCubic)
}

// BlendEase is Blend with a caller-chosen easing function applied after the
// smoothstep. Any ease.TweenFunc works as long as fn(0,0,1,1)=0 and
// fn(1,0,1,1)=1, which holds for the gween easings.
func BlendEase(scatter, formed Vec3, formedHeight, seed, globalProgress float32, fn ease.TweenFunc) Vec3 {
	p := clamp01(globalProgress)
	delay := formationDelay(formed.Y, formedHeight, seed)

	// Affine remap through the particle's delayed window. At p=0 this is
	// -delay and at p=1 it is 1+delay, so the explicit clamp (not any
	// clamping inside smoothstep) is what guarantees the endpoints.
	local := clamp01(p*(1+delay) - delay*(1-p))
	local = smoothstep(local)
	local = fn(local, 0, 1, 1)

	return scatter.Lerp(formed, local)
}
