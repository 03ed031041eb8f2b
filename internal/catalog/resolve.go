package catalog

// Identified is anything listed in the catalog under a string ID.
type Identified interface {
	Key() string
}

// Resolve returns the option whose ID equals id. Unknown or stale IDs fall
// back to the first option, so callers never see a missing option. An empty
// list yields the zero value; Validate rejects such catalogs.
func Resolve[T Identified](options []T, id string) T {
	for _, o := range options {
		if o.Key() == id {
			return o
		}
	}
	if len(options) == 0 {
		var zero T
		return zero
	}
	return options[0]
}
