package util

// Ptr returns a pointer to the value.
func Ptr[T any](v T) *T {
	return &v
}

// Deref safely dereferences a pointer, returning the zero value if nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// EnabledLabels returns the labels whose flag is set, in input order.
// Used for the footer's view-flag summary; keeps flag display as a
// typed label list instead of ad-hoc truthiness filtering.
func EnabledLabels(flags []Flag) []string {
	var out []string
	for _, f := range flags {
		if f.Enabled {
			out = append(out, f.Label)
		}
	}
	return out
}

// Flag pairs a display label with an on/off state.
type Flag struct {
	Label   string
	Enabled bool
}
