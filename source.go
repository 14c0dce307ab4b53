package spritefx

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
)

// Variant key validation errors.
var (
	// ErrUnknownDrawMode is returned when a draw mode is outside the
	// defined enumeration.
	ErrUnknownDrawMode = errors.New("spritefx: unknown draw mode")

	// ErrInvalidEffectBits is returned when an effect mask carries bits
	// outside the registered effect range.
	ErrInvalidEffectBits = errors.New("spritefx: effect bits outside registry")
)

// Shader templates. Every conditionally-compiled region is guarded by a
// DRAW_MODE_* or ENABLE_* symbol, and the text carries no #version
// directive, so the generated symbol block can be prepended verbatim.
var (
	//go:embed shaders/sprite.vert
	vertexTemplate string

	//go:embed shaders/sprite.frag
	fragmentTemplate string
)

// DefineHeader returns the compile-time symbol block for (mode, bits): one
// `#define DRAW_MODE_<mode>` line followed by one `#define ENABLE_<effect>`
// line per set bit, in bit-position order. The order is fixed so identical
// inputs always produce byte-identical text.
//
// bits are used exactly as given; callers normalize first (the cache does
// this through Registry.Normalize). Bits outside the registry are rejected
// with ErrInvalidEffectBits rather than ignored.
func DefineHeader(reg *Registry, mode DrawMode, bits EffectMask) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownDrawMode, int(mode))
	}
	if stray := bits &^ reg.all; stray != 0 {
		return "", fmt.Errorf("%w: %#x not covered by registered mask %#x",
			ErrInvalidEffectBits, uint32(bits), uint32(reg.all))
	}

	var b strings.Builder
	b.WriteString("#define DRAW_MODE_")
	b.WriteString(mode.String())
	b.WriteByte('\n')
	for i := range reg.effects {
		if bits.Has(Effect(i)) {
			b.WriteString("#define ENABLE_")
			b.WriteString(reg.effects[i].Name)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// BuildSource materializes the final vertex and fragment source for a
// variant by prepending the symbol block to each template. Pure and
// deterministic: it touches no GPU state, and identical inputs yield
// byte-identical output, which is what lets the cache memoize by
// (mode, bitmask) instead of by source hash.
func BuildSource(reg *Registry, mode DrawMode, bits EffectMask) (vertexSource, fragmentSource string, err error) {
	header, err := DefineHeader(reg, mode, bits)
	if err != nil {
		return "", "", err
	}
	return header + vertexTemplate, header + fragmentTemplate, nil
}
