package spritefx

// EffectValues holds one draw's application-level effect magnitudes, keyed
// by effect. Entries with magnitude zero are treated as disabled for
// variant selection but still convert, so a caller can bind a complete
// uniform set against a variant that was compiled with more effects than
// the current draw uses.
type EffectValues map[Effect]float32

// Bits returns the mask with one bit set per entry whose magnitude is
// nonzero. The mask is derived from the entries alone; the cache validates
// it against its registry on lookup.
func (v EffectValues) Bits() EffectMask {
	var m EffectMask
	for e, val := range v {
		if val != 0 && e >= 0 {
			m |= e.Mask()
		}
	}
	return m
}

// Uniforms converts every entry through its registered converter and keys
// the results by uniform name ("u_" plus the effect name). Entries the
// registry does not cover are dropped.
func (v EffectValues) Uniforms(reg *Registry) map[string]float32 {
	out := make(map[string]float32, len(v))
	for e, val := range v {
		info, ok := reg.Effect(e)
		if !ok {
			continue
		}
		if info.Converter != nil {
			val = info.Converter(val)
		}
		out["u_"+info.Name] = val
	}
	return out
}

// ShapeChanges reports whether any active entry belongs to an effect that
// can alter which pixels the sprite covers. Callers use this to decide when
// drawn bounds need recomputing.
func (v EffectValues) ShapeChanges(reg *Registry) bool {
	for e, val := range v {
		if val == 0 {
			continue
		}
		if info, ok := reg.Effect(e); ok && info.ShapeChanges {
			return true
		}
	}
	return false
}
