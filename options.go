package spritefx

// Option configures a VariantCache during creation.
// Use functional options to customize cache behavior.
//
// Example:
//
//	// Standard seven-effect registry
//	cache, err := spritefx.NewVariantCache(compiler)
//
//	// Substitute effect set (dependency injection for tests and tools)
//	cache, err := spritefx.NewVariantCache(compiler, spritefx.WithRegistry(reg))
type Option func(*cacheOptions)

// cacheOptions holds optional configuration for cache creation.
type cacheOptions struct {
	registry *Registry
}

// defaultCacheOptions returns the default cache options.
func defaultCacheOptions() cacheOptions {
	return cacheOptions{
		registry: DefaultRegistry(),
	}
}

// WithRegistry keys the cache against reg instead of DefaultRegistry.
// Use this to substitute a smaller effect set in tests, or a custom one in
// tools. nil leaves the default in place.
//
// Example:
//
//	reg, err := spritefx.NewRegistry(spritefx.StandardEffects()[:3]...)
//	if err != nil {
//	    // handle error
//	}
//	cache, err := spritefx.NewVariantCache(compiler, spritefx.WithRegistry(reg))
func WithRegistry(reg *Registry) Option {
	return func(o *cacheOptions) {
		if reg != nil {
			o.registry = reg
		}
	}
}
