package spritefx

// DrawMode selects the rendering strategy for one draw. The set is closed:
// the shader templates carry one conditionally-compiled region per mode, so
// modes cannot be registered at runtime.
type DrawMode int

const (
	// DrawModeDefault draws the textured sprite quad with premultiplied
	// alpha output.
	DrawModeDefault DrawMode = iota

	// DrawModeStraightAlpha un-premultiplies the output color, for readback
	// paths that expect straight alpha.
	DrawModeStraightAlpha

	// DrawModeSilhouette fills every covered pixel with one solid
	// caller-supplied color and discards fully transparent pixels. Hue and
	// brightness never reach the output, so the color and brightness
	// effects are ignored under this mode.
	DrawModeSilhouette

	// DrawModeColorMask discards pixels whose color is farther than a
	// tolerance from a target color.
	DrawModeColorMask

	// DrawModeLine draws an antialiased capped line segment between two pen
	// points instead of a textured quad.
	DrawModeLine

	// numDrawModes is one past the last mode; it sizes the per-mode tables.
	numDrawModes
)

// String returns the mode name as it appears in the generated
// DRAW_MODE_<name> compile-time symbol.
func (m DrawMode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return drawModeInfos[m].name
}

// Valid reports whether m is one of the defined draw modes.
func (m DrawMode) Valid() bool {
	return m >= 0 && m < numDrawModes
}

// DrawModes returns every draw mode in declaration order.
func DrawModes() []DrawMode {
	modes := make([]DrawMode, numDrawModes)
	for i := range modes {
		modes[i] = DrawMode(i)
	}
	return modes
}

// DrawModeByName returns the mode whose name matches name.
func DrawModeByName(name string) (DrawMode, bool) {
	for m := DrawMode(0); m < numDrawModes; m++ {
		if drawModeInfos[m].name == name {
			return m, true
		}
	}
	return 0, false
}

// drawModeInfo carries the per-mode behavior attributes the registry and
// source builder consume.
type drawModeInfo struct {
	// name is the DRAW_MODE_<name> symbol suffix.
	name string

	// ignoredEffects names the effects the mode renders without. Their bits
	// are cleared from every requested mask before cache lookup and source
	// build, so requests differing only in ignored effects share a variant.
	// Resolved against the effect set at registry construction.
	ignoredEffects []string
}

var drawModeInfos = [numDrawModes]drawModeInfo{
	DrawModeDefault:       {name: "default"},
	DrawModeStraightAlpha: {name: "straightAlpha"},
	DrawModeSilhouette:    {name: "silhouette", ignoredEffects: []string{"color", "brightness"}},
	DrawModeColorMask:     {name: "colorMask"},
	DrawModeLine:          {name: "line"},
}
