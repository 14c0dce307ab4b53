package spritefx

import (
	"errors"
	"strings"
	"testing"
)

func TestVariantString(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{Variant{Mode: DrawModeDefault}, "default/0x0"},
		{Variant{Mode: DrawModeSilhouette, Effects: EffectWhirl.Mask()}, "silhouette/0x4"},
		{Variant{Mode: DrawModeLine, Effects: 0x7f}, "line/0x7f"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBaseVariants(t *testing.T) {
	got := BaseVariants()
	modes := DrawModes()
	if len(got) != len(modes) {
		t.Fatalf("BaseVariants() has %d entries, want %d", len(got), len(modes))
	}
	for i, v := range got {
		if v.Mode != modes[i] {
			t.Errorf("variant %d mode = %v, want %v", i, v.Mode, modes[i])
		}
		if v.Effects != 0 {
			t.Errorf("variant %d effects = %#x, want none", i, v.Effects)
		}
	}
}

func TestSingleEffectVariants(t *testing.T) {
	reg := DefaultRegistry()
	got := SingleEffectVariants(reg, DrawModeStraightAlpha)
	if len(got) != reg.EffectCount() {
		t.Fatalf("SingleEffectVariants() has %d entries, want %d", len(got), reg.EffectCount())
	}
	for i, v := range got {
		if v.Mode != DrawModeStraightAlpha {
			t.Errorf("variant %d mode = %v, want straightAlpha", i, v.Mode)
		}
		if want := EffectMask(1) << uint(i); v.Effects != want {
			t.Errorf("variant %d effects = %#x, want %#x", i, v.Effects, want)
		}
	}
}

func TestWarm(t *testing.T) {
	mc := &mockCompiler{}
	cache, err := NewVariantCache(mc)
	if err != nil {
		t.Fatalf("NewVariantCache() = %v", err)
	}

	if err := cache.Warm(BaseVariants()); err != nil {
		t.Fatalf("Warm() = %v", err)
	}
	if cache.Len() != len(DrawModes()) {
		t.Errorf("Len() = %d after warm-up, want %d", cache.Len(), len(DrawModes()))
	}
	if mc.calls() != len(DrawModes()) {
		t.Errorf("%d compiles, want %d", mc.calls(), len(DrawModes()))
	}

	// Warming again touches only cached entries.
	if err := cache.Warm(BaseVariants()); err != nil {
		t.Fatalf("second Warm() = %v", err)
	}
	if mc.calls() != len(DrawModes()) {
		t.Errorf("%d compiles after rewarm, want %d", mc.calls(), len(DrawModes()))
	}
	hits, _ := cache.Stats()
	if hits != uint64(len(DrawModes())) {
		t.Errorf("hits = %d after rewarm, want %d", hits, len(DrawModes()))
	}
}

func TestWarmCollectsFailures(t *testing.T) {
	rejection := &CompileError{Stage: StageFragment, Log: "ghost of a parse error"}
	mc := &mockCompiler{
		fail: func(_, fragmentSource string) error {
			if strings.Contains(fragmentSource, "#define ENABLE_ghost\n") {
				return rejection
			}
			return nil
		},
	}
	cache, err := NewVariantCache(mc)
	if err != nil {
		t.Fatalf("NewVariantCache() = %v", err)
	}

	variants := []Variant{
		{Mode: DrawModeDefault},
		{Mode: DrawModeDefault, Effects: EffectGhost.Mask()},
		{Mode: DrawModeLine},
		{Mode: DrawModeColorMask, Effects: EffectGhost.Mask() | EffectColor.Mask()},
	}
	err = cache.Warm(variants)
	if err == nil {
		t.Fatal("Warm() = nil, want the joined failures")
	}
	if !errors.Is(err, rejection) {
		t.Errorf("Warm() error does not wrap the rejection: %v", err)
	}
	if !strings.Contains(err.Error(), "warm default/0x40") {
		t.Errorf("Warm() error does not name the failed variant: %v", err)
	}

	// The healthy variants still landed in the cache.
	if cache.Len() != 2 {
		t.Errorf("Len() = %d after partial warm-up, want 2", cache.Len())
	}
	if _, err := cache.GetShader(DrawModeLine, 0); err != nil {
		t.Errorf("GetShader(line) after warm-up = %v", err)
	}
}
