package spritefx

import (
	"errors"
	"fmt"
)

// Variant identifies one cache entry: a draw mode plus an effect mask.
type Variant struct {
	Mode    DrawMode
	Effects EffectMask
}

// String returns "mode/0xNN" for logs and error messages.
func (v Variant) String() string {
	return fmt.Sprintf("%s/%#x", v.Mode, uint32(v.Effects))
}

// BaseVariants returns the no-effect variant of every draw mode. Warming
// these covers the programs any scene needs before effects come into play.
func BaseVariants() []Variant {
	modes := DrawModes()
	out := make([]Variant, len(modes))
	for i, m := range modes {
		out[i] = Variant{Mode: m}
	}
	return out
}

// SingleEffectVariants returns one variant per registered effect under
// mode, each with exactly that effect's bit set.
func SingleEffectVariants(reg *Registry, mode DrawMode) []Variant {
	out := make([]Variant, reg.EffectCount())
	for i := range out {
		out[i] = Variant{Mode: mode, Effects: Effect(i).Mask()}
	}
	return out
}

// Warm builds the given variants up front so first use does not stall on a
// driver compile. Every variant is attempted even when earlier ones fail;
// failures are joined into the returned error.
//
// Warm is safe to run from a goroutine concurrent with GetShader callers
// as long as the compiler tolerates it; with a GL backend that means the
// context must be current on the warming thread.
func (c *VariantCache) Warm(variants []Variant) error {
	var errs []error
	for _, v := range variants {
		if _, err := c.GetShader(v.Mode, v.Effects); err != nil {
			errs = append(errs, fmt.Errorf("warm %s: %w", v, err))
		}
	}
	if len(errs) > 0 {
		Logger().Warn("shader warm-up finished with failures",
			"requested", len(variants),
			"failed", len(errs))
		return errors.Join(errs...)
	}

	Logger().Debug("shader warm-up complete",
		"requested", len(variants),
		"built", c.Len())
	return nil
}
