package spritefx

import (
	"math"
	"testing"
)

func TestEffectMask(t *testing.T) {
	m := EffectWhirl.Mask() | EffectGhost.Mask()

	if !m.Has(EffectWhirl) {
		t.Error("mask should contain whirl")
	}
	if !m.Has(EffectGhost) {
		t.Error("mask should contain ghost")
	}
	if m.Has(EffectColor) {
		t.Error("mask should not contain color")
	}

	if got := m.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}

	m = m.With(EffectColor)
	if !m.Has(EffectColor) {
		t.Error("With(color) should set the color bit")
	}
	m = m.Without(EffectWhirl)
	if m.Has(EffectWhirl) {
		t.Error("Without(whirl) should clear the whirl bit")
	}
	if got := m.Count(); got != 2 {
		t.Errorf("Count() after With/Without = %d, want 2", got)
	}
}

func TestEffectMaskValues(t *testing.T) {
	// Bit positions are part of the cache key and must stay stable.
	tests := []struct {
		effect Effect
		want   EffectMask
	}{
		{EffectColor, 1 << 0},
		{EffectFisheye, 1 << 1},
		{EffectWhirl, 1 << 2},
		{EffectPixelate, 1 << 3},
		{EffectMosaic, 1 << 4},
		{EffectBrightness, 1 << 5},
		{EffectGhost, 1 << 6},
	}
	for _, tt := range tests {
		t.Run(tt.effect.String(), func(t *testing.T) {
			if got := tt.effect.Mask(); got != tt.want {
				t.Errorf("%v.Mask() = %#x, want %#x", tt.effect, got, tt.want)
			}
		})
	}
}

func TestEffectString(t *testing.T) {
	tests := []struct {
		effect Effect
		want   string
	}{
		{EffectColor, "color"},
		{EffectFisheye, "fisheye"},
		{EffectWhirl, "whirl"},
		{EffectPixelate, "pixelate"},
		{EffectMosaic, "mosaic"},
		{EffectBrightness, "brightness"},
		{EffectGhost, "ghost"},
		{Effect(42), "effect(42)"},
		{Effect(-1), "effect(-1)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.effect.String(); got != tt.want {
				t.Errorf("Effect(%d).String() = %q, want %q", int(tt.effect), got, tt.want)
			}
		})
	}
}

// approxEqual compares float32 converter outputs with a small tolerance.
func approxEqual(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < 1e-5
}

func TestStandardConverters(t *testing.T) {
	tests := []struct {
		name   string
		effect Effect
		in     float32
		want   float32
	}{
		// color: magnitude 200 is one full hue rotation; sign is kept.
		{"color zero", EffectColor, 0, 0},
		{"color half turn", EffectColor, 100, 0.5},
		{"color full turn", EffectColor, 200, 0},
		{"color wraps", EffectColor, 300, 0.5},
		{"color negative", EffectColor, -100, -0.5},

		// fisheye: 0 magnitude is the identity exponent 1.
		{"fisheye zero", EffectFisheye, 0, 1},
		{"fisheye max out", EffectFisheye, 100, 2},
		{"fisheye floor", EffectFisheye, -100, 0},
		{"fisheye clamped floor", EffectFisheye, -250, 0},

		// whirl: degrees to radians, negated.
		{"whirl zero", EffectWhirl, 0, 0},
		{"whirl half turn", EffectWhirl, 180, -math.Pi},
		{"whirl negative", EffectWhirl, -90, math.Pi / 2},

		// pixelate: tenth of the absolute magnitude.
		{"pixelate zero", EffectPixelate, 0, 0},
		{"pixelate positive", EffectPixelate, 50, 5},
		{"pixelate negative", EffectPixelate, -50, 5},

		// mosaic: rounded tile count clamped to 1..512.
		{"mosaic zero", EffectMosaic, 0, 1},
		{"mosaic positive", EffectMosaic, 100, 11},
		{"mosaic negative", EffectMosaic, -100, 11},
		{"mosaic rounds", EffectMosaic, 5, 2},
		{"mosaic ceiling", EffectMosaic, 100000, 512},

		// brightness: clamped to -100..100 then scaled to -1..1.
		{"brightness zero", EffectBrightness, 0, 0},
		{"brightness positive", EffectBrightness, 50, 0.5},
		{"brightness clamp high", EffectBrightness, 250, 1},
		{"brightness clamp low", EffectBrightness, -250, -1},

		// ghost: 0 is opaque, 100 fully transparent.
		{"ghost zero", EffectGhost, 0, 1},
		{"ghost quarter", EffectGhost, 25, 0.75},
		{"ghost full", EffectGhost, 100, 0},
		{"ghost clamp high", EffectGhost, 200, 0},
		{"ghost clamp low", EffectGhost, -50, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := standardEffects[tt.effect].Converter
			if got := conv(tt.in); !approxEqual(got, tt.want) {
				t.Errorf("%v converter(%v) = %v, want %v", tt.effect, tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertersArePure(t *testing.T) {
	// Calling a converter must not depend on or mutate any shared state:
	// repeated calls with one input agree, and the standard table is
	// unchanged afterwards.
	inputs := []float32{-250, -100, -1, 0, 1, 50, 100, 250}
	for _, info := range standardEffects {
		for _, in := range inputs {
			first := info.Converter(in)
			second := info.Converter(in)
			if first != second {
				t.Errorf("%s converter(%v) unstable: %v then %v", info.Name, in, first, second)
			}
		}
	}

	reg := DefaultRegistry()
	if got := reg.EffectCount(); got != len(standardEffects) {
		t.Errorf("registry changed size after converter calls: %d", got)
	}
}

func TestStandardEffectsShapeChanges(t *testing.T) {
	want := map[string]bool{
		"color":      false,
		"fisheye":    true,
		"whirl":      true,
		"pixelate":   true,
		"mosaic":     true,
		"brightness": false,
		"ghost":      false,
	}
	for _, info := range standardEffects {
		if info.ShapeChanges != want[info.Name] {
			t.Errorf("%s ShapeChanges = %v, want %v", info.Name, info.ShapeChanges, want[info.Name])
		}
	}
}

func TestStandardEffectsReturnsCopy(t *testing.T) {
	a := StandardEffects()
	a[0].Name = "mutated"

	b := StandardEffects()
	if b[0].Name != "color" {
		t.Errorf("StandardEffects() shares state: first entry now %q", b[0].Name)
	}
}
