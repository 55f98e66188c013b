package bplus

// lowerBound returns the smallest index i with keys[i] >= target, or
// len(keys) if no such index. Used on leaves; equality at i is checked
// by the caller.
func lowerBound[K any](keys []K, target K, cmp CompareFunc[K]) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(keys[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the smallest index i with target < keys[i], or
// len(keys). On internal nodes this is the child index to descend: ties
// with a separator go right, matching separator-equals-right-min.
func upperBound[K any](keys []K, target K, cmp CompareFunc[K]) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(keys[mid], target) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// insert inserts elem at index i in slice.
func insert[T any](slice []T, i int, elem T) []T {
	slice = append(slice, elem) // grow by 1
	copy(slice[i+1:], slice[i:])
	slice[i] = elem
	return slice
}

// remove removes element at index i from slice.
func remove[T any](slice []T, i int) []T {
	return append(slice[:i], slice[i+1:]...)
}
