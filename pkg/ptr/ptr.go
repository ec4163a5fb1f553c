package ptr

// Ptr returns a pointer to v. Mostly used to pass optional filter values.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or def if p is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
