// Package spritefx generates, compiles, and caches the shader program
// variants of a 2D sprite renderer.
//
// # Overview
//
// Sprite renderers implement optional visual effects (hue shift, fisheye,
// whirl, pixelate, mosaic, brightness, ghost) as conditionally-compiled
// shader code rather than runtime branches. Every combination of enabled
// effects therefore needs its own compiled GPU program, selected per draw
// by rendering mode and effect set. spritefx owns that variant space: it
// assembles the source text for a requested (draw mode, effect bitmask)
// pair, compiles it through a pluggable backend, and memoizes the result
// so each variant is built at most once per context.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/spritefx"
//	    "github.com/gogpu/spritefx/backend/gl"
//	)
//
//	// Bind a cache to the current GL context.
//	cache, err := spritefx.NewVariantCache(gl.NewCompiler())
//	if err != nil {
//	    // handle error
//	}
//	defer cache.Close()
//
//	// Fetch (and on first use, compile) the variant for a draw.
//	bits := spritefx.EffectWhirl.Mask() | spritefx.EffectGhost.Mask()
//	program, err := cache.GetShader(spritefx.DrawModeDefault, bits)
//
// # Architecture
//
// The package is organized into:
//   - Registries: Effect and DrawMode tables, immutable after construction
//   - Source builder: pure (mode, bitmask) -> GLSL text assembly
//   - VariantCache: two-level memoization keyed by (mode, normalized bitmask)
//   - Backends: backend/gl compiles the generated source on OpenGL 2.1+
//
// # Variants
//
// The generated source is the fixed vertex/fragment template pair prefixed
// with a block of compile-time symbols: one DRAW_MODE_<mode> define plus one
// ENABLE_<effect> define per active effect. Draw modes may ignore effects
// that cannot reach their output (silhouette rendering ignores color and
// brightness); the cache clears those bits before lookup so equivalent
// requests share one compiled program.
package spritefx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
