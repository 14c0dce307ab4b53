package spritefx

import (
	"errors"
	"fmt"
)

// Registry construction and lookup errors.
var (
	// ErrNoEffects is returned when constructing a registry without effects.
	ErrNoEffects = errors.New("spritefx: registry requires at least one effect")

	// ErrTooManyEffects is returned when the effect set exceeds the bitmask
	// capacity.
	ErrTooManyEffects = errors.New("spritefx: too many effects")

	// ErrDuplicateEffect is returned when two effects share a name.
	ErrDuplicateEffect = errors.New("spritefx: duplicate effect name")

	// ErrInvalidEffectName is returned when an effect name cannot appear in
	// a compile-time symbol.
	ErrInvalidEffectName = errors.New("spritefx: invalid effect name")

	// ErrUnknownEffect is returned by name lookups for unregistered effects.
	ErrUnknownEffect = errors.New("spritefx: unknown effect")
)

// maxEffects bounds the registry size. The cache's inner tables are dense
// (1<<effectCount slots per draw mode), so the bound keeps the whole variant
// space small enough to retain forever.
const maxEffects = 16

// Registry is the immutable effect lookup table a cache and its callers
// share. It fixes each effect's bit position, name, converter, and
// shape-change flag, and resolves which effects every draw mode ignores.
//
// A Registry is never mutated after construction and is safe for concurrent
// use. Construct one per effect set and pass it by reference; there is no
// process-global mutable registry.
type Registry struct {
	effects []EffectInfo
	byName  map[string]Effect
	ignored [numDrawModes]EffectMask
	all     EffectMask
}

// NewRegistry builds a registry from the given effects. Bit positions follow
// argument order: effects[0] gets bit 0, and so on. Names must be unique,
// non-empty plain identifiers; at most 16 effects are supported.
func NewRegistry(effects ...EffectInfo) (*Registry, error) {
	if len(effects) == 0 {
		return nil, ErrNoEffects
	}
	if len(effects) > maxEffects {
		return nil, fmt.Errorf("%w: %d exceeds the %d-bit limit", ErrTooManyEffects, len(effects), maxEffects)
	}

	r := &Registry{
		effects: make([]EffectInfo, len(effects)),
		byName:  make(map[string]Effect, len(effects)),
		all:     EffectMask(1)<<uint(len(effects)) - 1,
	}
	copy(r.effects, effects)

	for i, info := range r.effects {
		if !validEffectName(info.Name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEffectName, info.Name)
		}
		if _, dup := r.byName[info.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEffect, info.Name)
		}
		r.byName[info.Name] = Effect(i)
	}

	// Resolve each draw mode's ignored-effect names against this effect
	// set. Names the set does not contain are skipped: the mode rule only
	// covers effects that exist here.
	for m := range drawModeInfos {
		for _, name := range drawModeInfos[m].ignoredEffects {
			if e, ok := r.byName[name]; ok {
				r.ignored[m] |= e.Mask()
			}
		}
	}
	return r, nil
}

// defaultRegistry is built once at startup; Registry is immutable, so one
// shared instance is safe.
var defaultRegistry *Registry

func init() {
	r, err := NewRegistry(standardEffects...)
	if err != nil {
		panic(err)
	}
	defaultRegistry = r
}

// DefaultRegistry returns the shared registry holding the standard seven
// effects at their standard bit positions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// EffectCount returns the number of registered effects.
func (r *Registry) EffectCount() int {
	return len(r.effects)
}

// Effects returns the registered effects in bit-position order. The slice
// is a copy; mutating it does not affect the registry.
func (r *Registry) Effects() []EffectInfo {
	out := make([]EffectInfo, len(r.effects))
	copy(out, r.effects)
	return out
}

// Effect returns the info registered at position e. ok is false when e is
// outside the registered range.
func (r *Registry) Effect(e Effect) (EffectInfo, bool) {
	if e < 0 || int(e) >= len(r.effects) {
		return EffectInfo{}, false
	}
	return r.effects[e], true
}

// EffectByName returns the effect registered under name.
func (r *Registry) EffectByName(name string) (Effect, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// MaskOf builds the mask with the named effects' bits set. Unregistered
// names return ErrUnknownEffect.
func (r *Registry) MaskOf(names ...string) (EffectMask, error) {
	var m EffectMask
	for _, name := range names {
		e, ok := r.byName[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
		}
		m |= e.Mask()
	}
	return m, nil
}

// Convert runs value through e's converter. Effects registered without a
// converter pass the value through unchanged. ok is false when e is outside
// the registered range.
func (r *Registry) Convert(e Effect, value float32) (v float32, ok bool) {
	info, ok := r.Effect(e)
	if !ok {
		return 0, false
	}
	if info.Converter == nil {
		return value, true
	}
	return info.Converter(value), true
}

// UniformName returns the uniform the shader reads e's converted value
// from: "u_" followed by the registered name. ok is false when e is outside
// the registered range.
func (r *Registry) UniformName(e Effect) (string, bool) {
	info, ok := r.Effect(e)
	if !ok {
		return "", false
	}
	return "u_" + info.Name, true
}

// AllMask returns the mask with every registered effect's bit set. Requests
// carrying bits outside this mask are rejected, never coerced.
func (r *Registry) AllMask() EffectMask {
	return r.all
}

// IgnoredEffects returns the mask of effects mode renders without. Invalid
// modes return the empty mask.
func (r *Registry) IgnoredEffects(mode DrawMode) EffectMask {
	if !mode.Valid() {
		return 0
	}
	return r.ignored[mode]
}

// Normalize clears the bits mode ignores from bits, producing the cache and
// build key. No other bits change: out-of-range bits are the caller's error
// and are reported by the cache, not masked away here.
func (r *Registry) Normalize(mode DrawMode, bits EffectMask) EffectMask {
	if !mode.Valid() {
		return bits
	}
	return bits &^ r.ignored[mode]
}

// validEffectName reports whether name can appear verbatim in an
// ENABLE_<name> symbol and a u_<name> uniform: ASCII letters, digits, and
// underscores, not starting with a digit.
func validEffectName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
