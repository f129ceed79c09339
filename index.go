package transtable

import "math/bits"

// clusterIndex maps a 64-bit position key onto [0, clusterCount) using a
// fixed-point multiply-high ("fastrange") instead of a modulo, so the
// table is not restricted to power-of-two cluster counts. This is the
// same technique the wider example pack reaches for when hashing into an
// arbitrary-sized bucket array: multiply the key by the bucket count as
// a 128-bit product and take the high 64 bits.
//
//go:nosplit
//go:inline
func clusterIndex(key uint64, clusterCount uint64) uint64 {
	hi, _ := bits.Mul64(key, clusterCount)
	return hi
}
