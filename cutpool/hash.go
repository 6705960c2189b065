package cutpool

// supportHash computes an order-dependent hash-combine over a row's
// column-index sequence. Because rows are always stored with strictly
// ascending indices, two rows sharing a support hash a genuine candidate
// for the exact-sequence comparison the duplicate screen performs next;
// permutations of the same set never occur since there is only one sorted
// order to begin with.
//
// This is an FNV-1a-style combine: fast, stable across runs, and with no
// dependency on map iteration order.
func supportHash(idx []int32) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for _, c := range idx {
		h ^= uint64(uint32(c))
		h *= prime64
	}
	return h
}

// sameSupport reports whether two strictly-ascending column-index
// sequences are identical.
func sameSupport(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
