// Package paging slices filtered, ordered in-memory collections into
// fixed-size pages. Page numbers are 1-based and out-of-range requests
// clamp instead of erroring, so a stale page number after a filter
// change still renders something sensible.
package paging

// Clamp normalizes a requested page against the collection size.
// Requesting past the end lands on the last page; an empty collection
// is always page 1.
func Clamp(page, size, total int) int {
	if page < 1 {
		page = 1
	}
	if size < 1 || total == 0 {
		return 1
	}
	last := (total + size - 1) / size
	if page > last {
		return last
	}
	return page
}

// Slice returns the window [(page-1)*size, page*size) of items, clamped
// to the collection bounds. Concatenating Slice for pages 1..ceil(N/size)
// reconstructs items exactly.
func Slice[T any](items []T, page, size int) []T {
	if size < 1 {
		size = 1
	}
	page = Clamp(page, size, len(items))

	start := (page - 1) * size
	if start > len(items) {
		start = len(items)
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
