package usecase

// NormalizeIDs drops blank identifiers and removes duplicates, keeping the
// first occurrence of each value in its original position. Identifiers are
// compared and returned verbatim. The result is never nil.
func NormalizeIDs(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))

	for _, id := range raw {
		if isBlank(id) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
