// Package evergreen is a procedural point-formation engine: it generates a
// fixed pool of particles with two homes (a scattered cloud and a conical
// "holiday tree" formation) and morphs between them with a height-staggered,
// eased transition advanced once per frame.
//
// The engine is renderer-agnostic. It owns no window, no shader, and no
// texture; it produces positions, sizes, categories, and colors that a host
// render loop turns into pixels.
//
// # Quick start
//
//	scene, err := evergreen.NewTreeScene(evergreen.Config{
//		Count:      4000,
//		TreeHeight: 12,
//		TreeRadius: 4.5,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Each frame, advance the animation and read back positions:
//
//	progress := scene.Tick(dt, formed) // formed toggled by your UI
//	for i := 0; i < scene.Len(); i++ {
//		p := scene.PositionFor(i, progress)
//		// project and draw p
//	}
//
// # Pieces
//
// [ScatterPoint] and [FormationPoint] are the pure generators. [Pool] holds
// the immutable per-particle attributes in parallel arrays. [Blend] is the
// stateless morph between the two homes. [Driver] smooths a binary target
// into continuous progress. [SparkleEmitter] adds twinkle flashes once the
// tree is mostly formed. [TreeScene] wires them together behind the three
// calls a renderer needs: construct once, Tick once per frame, PositionFor
// per particle.
//
// Everything is single-threaded: Tick and PositionFor must be called from
// the one goroutine that owns the render loop.
//
// Easing comes from [gween]; palette math from [go-colorful]. A runnable
// Ebitengine demo lives in examples/treescene.
//
// [gween]: https://github.com/tanema/gween
// [go-colorful]: https://github.com/lucasb-eyer/go-colorful
package evergreen
