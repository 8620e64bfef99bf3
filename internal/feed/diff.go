package feed

// Diff returns the items of current that do not appear in previous, in
// current's order. Comparison is whole-item equality, so changing any
// field of an entry makes it new again. Items that only exist in
// previous are never reported.
func Diff(current, previous *Document) []Item {
	seen := make(map[Item]struct{}, len(previous.Items))
	for _, item := range previous.Items {
		seen[item] = struct{}{}
	}

	var fresh []Item
	for _, item := range current.Items {
		if _, ok := seen[item]; !ok {
			fresh = append(fresh, item)
		}
	}
	return fresh
}
