package patch

// Apply overwrites *dst when src is set. Used for partial (PUT with omitted fields) updates.
func Apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
