package spritefx

import (
	"fmt"
	"math/bits"

	"github.com/chewxy/math32"
)

// Effect identifies one optional per-sprite visual effect. Its integer
// value is the effect's bit position within an EffectMask, assigned by the
// registry the effect was constructed with and stable for the life of the
// process.
type Effect int

// The standard effects, in bit-position order. These constants index
// DefaultRegistry; custom registries assign positions in construction order.
const (
	// EffectColor rotates the hue of every sampled pixel.
	EffectColor Effect = iota

	// EffectFisheye warps sample coordinates radially away from the center.
	EffectFisheye

	// EffectWhirl rotates sample coordinates around the center, strongest
	// in the middle.
	EffectWhirl

	// EffectPixelate snaps sample coordinates to a coarse texel grid.
	EffectPixelate

	// EffectMosaic tiles the skin into a grid of shrunken copies.
	EffectMosaic

	// EffectBrightness shifts every color channel up or down uniformly.
	EffectBrightness

	// EffectGhost scales output alpha toward full transparency.
	EffectGhost
)

// Mask returns the single-bit mask for the effect.
func (e Effect) Mask() EffectMask {
	return 1 << uint(e)
}

// String returns the effect's standard-registry name. Positions outside the
// standard table format as "effect(n)".
func (e Effect) String() string {
	if e >= 0 && int(e) < len(standardEffects) {
		return standardEffects[e].Name
	}
	return fmt.Sprintf("effect(%d)", int(e))
}

// EffectMask is a set of effects encoded one bit per effect. OR single-effect
// masks together to request an effect combination.
type EffectMask uint32

// Has reports whether e's bit is set in m.
func (m EffectMask) Has(e Effect) bool {
	return m&e.Mask() != 0
}

// With returns m with e's bit set.
func (m EffectMask) With(e Effect) EffectMask {
	return m | e.Mask()
}

// Without returns m with e's bit cleared.
func (m EffectMask) Without(e Effect) EffectMask {
	return m &^ e.Mask()
}

// Count returns the number of effects set in m.
func (m EffectMask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Converter maps an application-level effect magnitude to the numeric
// domain the shader consumes as a uniform value (a 0..1 fraction, radians,
// or a pixel count, depending on the effect). Converters are pure: they
// never affect which program variant is selected, only the value bound at
// draw time.
type Converter func(float32) float32

// EffectInfo describes one effect for registry construction.
type EffectInfo struct {
	// Name is the unique effect identifier. It appears verbatim in the
	// generated ENABLE_<name> compile-time symbol and the u_<name> uniform,
	// so it must be a plain identifier: ASCII letters, digits, underscores,
	// not starting with a digit.
	Name string

	// Converter maps the application-level magnitude to the shader-domain
	// uniform value. nil passes the magnitude through unchanged.
	Converter Converter

	// ShapeChanges is true when the effect can alter which pixels the
	// sprite covers. The cache does not act on it; callers use it to decide
	// when drawn bounds need recomputing.
	ShapeChanges bool
}

// standardEffects is the built-in effect set in bit-position order.
// Application magnitudes follow the usual sprite-engine ranges: most effects
// take -100..100, ghost takes 0..100.
var standardEffects = []EffectInfo{
	{Name: "color", Converter: convertColor},
	{Name: "fisheye", Converter: convertFisheye, ShapeChanges: true},
	{Name: "whirl", Converter: convertWhirl, ShapeChanges: true},
	{Name: "pixelate", Converter: convertPixelate, ShapeChanges: true},
	{Name: "mosaic", Converter: convertMosaic, ShapeChanges: true},
	{Name: "brightness", Converter: convertBrightness},
	{Name: "ghost", Converter: convertGhost},
}

// StandardEffects returns a copy of the built-in effect table, in
// bit-position order. Mutating the copy does not affect the package.
func StandardEffects() []EffectInfo {
	out := make([]EffectInfo, len(standardEffects))
	copy(out, standardEffects)
	return out
}

// convertColor maps a hue-shift magnitude to a fraction of a full hue
// rotation. 200 is one full turn; the sign is kept, since the shader wraps
// with fract() anyway.
func convertColor(x float32) float32 {
	return math32.Mod(x/200, 1)
}

// convertFisheye maps -100..100 to a 0..2 warp exponent, 1 meaning no warp.
func convertFisheye(x float32) float32 {
	return math32.Max(0, (x+100)/100)
}

// convertWhirl maps degrees to radians, negated so positive magnitudes
// whirl clockwise on screen.
func convertWhirl(x float32) float32 {
	return -x * math32.Pi / 180
}

// convertPixelate maps the magnitude to a pixel block size in texels.
func convertPixelate(x float32) float32 {
	return math32.Abs(x) / 10
}

// convertMosaic maps the magnitude to a whole tile count, clamped to 1..512.
func convertMosaic(x float32) float32 {
	v := math32.Round((math32.Abs(x) + 10) / 10)
	return math32.Max(1, math32.Min(v, 512))
}

// convertBrightness maps -100..100 to a -1..1 channel offset.
func convertBrightness(x float32) float32 {
	return math32.Max(-100, math32.Min(x, 100)) / 100
}

// convertGhost maps 0..100 transparency to a 0..1 alpha multiplier,
// inverted: ghost 0 is fully opaque, ghost 100 fully transparent.
func convertGhost(x float32) float32 {
	return 1 - math32.Max(0, math32.Min(x, 100))/100
}
