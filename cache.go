package spritefx

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Variant cache errors.
var (
	// ErrNilCompiler is returned when creating a cache without a compiler.
	ErrNilCompiler = errors.New("spritefx: compiler is nil")

	// ErrCacheClosed is returned by operations on a closed cache.
	ErrCacheClosed = errors.New("spritefx: cache is closed")
)

// VariantCache maps (draw mode, effect bitmask) to compiled shader
// programs, building each variant at most once.
//
// Program creation is expensive because it involves a driver-side shader
// compile and link (milliseconds). The cache normalizes the requested mask
// per draw-mode rules, addresses variants through a two-level table (outer:
// draw mode, inner: dense slice indexed by the normalized bitmask), and
// keeps every built program until Close. There is no eviction: the variant
// space is bounded by modes x 2^effectCount and small by construction.
//
// Failed builds are never stored. The slot stays empty and the next request
// for the same key compiles again, so one driver rejection cannot poison a
// key for the life of the cache.
//
// Thread Safety:
// VariantCache is safe for concurrent use. It uses RWMutex with
// double-check locking, so a warm-up goroutine and the render path never
// compile the same variant twice.
//
// Usage:
//
//	cache, err := spritefx.NewVariantCache(compiler)
//	if err != nil {
//	    // handle error
//	}
//	program, err := cache.GetShader(spritefx.DrawModeDefault, bits)
//	if err != nil {
//	    // skip the draw or surface the diagnostic
//	}
//
// The cache tracks hit/miss statistics for performance monitoring.
type VariantCache struct {
	compiler Compiler
	reg      *Registry

	// mu protects variants and closed.
	mu sync.RWMutex

	// variants is the two-level variant table. A nil slot means the
	// variant has not been built (or its last build failed).
	variants [numDrawModes][]Program

	closed bool

	// hits counts cache hits (atomic for lock-free reads).
	hits uint64

	// misses counts cache misses (atomic for lock-free reads).
	misses uint64
}

// NewVariantCache creates an empty cache that compiles through compiler.
// Variants are keyed against DefaultRegistry unless WithRegistry substitutes
// another effect set.
//
// The cache shares the compiler's lifetime rules: it must be used from a
// thread where the owning graphics context is current, and Close must run
// before that context is destroyed.
func NewVariantCache(compiler Compiler, opts ...Option) (*VariantCache, error) {
	if compiler == nil {
		return nil, ErrNilCompiler
	}

	o := defaultCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &VariantCache{
		compiler: compiler,
		reg:      o.registry,
	}
	slots := 1 << uint(c.reg.EffectCount())
	for m := range c.variants {
		c.variants[m] = make([]Program, slots)
	}
	return c, nil
}

// Registry returns the registry variants are keyed against.
func (c *VariantCache) Registry() *Registry {
	return c.reg
}

// GetShader returns the compiled program for (mode, bits), building it on
// first use.
//
// bits may include effects the mode ignores; those bits are cleared before
// lookup and build, so, for example, silhouette requests differing only in
// color or brightness resolve to one shared variant. Bits outside the
// registry and modes outside the enumeration are rejected, never coerced
// into a valid-looking key.
//
// This method implements the "get or create" pattern with double-check
// locking:
//  1. Fast path: RLock, check the slot, return if built
//  2. Slow path: Lock, double-check, build if still empty
//
// A compile or link rejection is returned to the caller wrapped around the
// backend's error; the slot stays empty and a later call with the same key
// compiles again.
func (c *VariantCache) GetShader(mode DrawMode, bits EffectMask) (Program, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDrawMode, int(mode))
	}
	if stray := bits &^ c.reg.all; stray != 0 {
		return nil, fmt.Errorf("%w: %#x not covered by registered mask %#x",
			ErrInvalidEffectBits, uint32(bits), uint32(c.reg.all))
	}
	key := c.reg.Normalize(mode, bits)

	// Fast path: read lock
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return nil, ErrCacheClosed
	}
	if p := c.variants[mode][key]; p != nil {
		c.mu.RUnlock()
		atomic.AddUint64(&c.hits, 1)
		return p, nil
	}
	c.mu.RUnlock()

	// Slow path: write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrCacheClosed
	}
	if p := c.variants[mode][key]; p != nil {
		atomic.AddUint64(&c.hits, 1)
		return p, nil
	}

	p, err := c.build(mode, key)
	if err != nil {
		return nil, err
	}

	c.variants[mode][key] = p
	atomic.AddUint64(&c.misses, 1)

	return p, nil
}

// build compiles the variant for an already-normalized key. The caller
// holds the write lock.
func (c *VariantCache) build(mode DrawMode, key EffectMask) (Program, error) {
	vertexSource, fragmentSource, err := BuildSource(c.reg, mode, key)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	p, err := c.compiler.CompileAndLink(vertexSource, fragmentSource)
	if err != nil {
		Logger().Warn("shader variant build failed",
			"mode", mode.String(),
			"bits", uint32(key),
			"err", err)
		return nil, fmt.Errorf("spritefx: build variant %s/%#x: %w", mode, uint32(key), err)
	}

	Logger().Debug("shader variant built",
		"mode", mode.String(),
		"bits", uint32(key),
		"effects", key.Count(),
		"dur", time.Since(start))
	return p, nil
}

// Stats returns cache statistics.
//
// Returns the number of cache hits and misses. These values are read
// atomically and may not be perfectly synchronized with each other.
func (c *VariantCache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}

// HitRate returns the cache hit rate as a fraction (0.0 to 1.0).
//
// Returns 0.0 if no requests have been made.
func (c *VariantCache) HitRate() float64 {
	hits := atomic.LoadUint64(&c.hits)
	misses := atomic.LoadUint64(&c.misses)
	total := hits + misses
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total)
}

// Len returns the number of variants built so far.
func (c *VariantCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for m := range c.variants {
		for _, p := range c.variants[m] {
			if p != nil {
				n++
			}
		}
	}
	return n
}

// MaxVariants returns the size of the variant space: one slot per draw mode
// per effect combination. Len can never exceed it.
func (c *VariantCache) MaxVariants() int {
	return int(numDrawModes) * (1 << uint(c.reg.EffectCount()))
}

// Close releases every cached program and poisons the cache; subsequent
// GetShader calls return ErrCacheClosed. Close is idempotent.
//
// The owning graphics context must still be current when Close runs, since
// releasing a program is a GPU call. After Close no caller may use a
// program previously returned by this cache.
func (c *VariantCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	for m := range c.variants {
		for i, p := range c.variants[m] {
			if p != nil {
				p.Release()
				c.variants[m][i] = nil
			}
		}
	}
}
