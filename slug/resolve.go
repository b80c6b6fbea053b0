package slug

// Resolve finds the item a URL slug refers to. Stored slugs win: the list is
// first scanned for a non-empty stored slug equal to candidate, and only then
// for a derived slug equal to candidate. The first match in list order is
// returned; ok is false when nothing matches.
func Resolve[T any](items []T, candidate string, stored, derived func(T) string) (match T, ok bool) {
	if candidate == "" {
		return match, false
	}

	for _, item := range items {
		if s := stored(item); s != "" && s == candidate {
			return item, true
		}
	}

	for _, item := range items {
		if derived(item) == candidate {
			return item, true
		}
	}

	return match, false
}
