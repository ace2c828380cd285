package kerr

import "hash/fnv"

// moduleHash computes the initial module identity for a name: the 32-bit FNV-1a hash of the name, xor-folded to 16
// bits.
func moduleHash(name string) uint16 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	sum := h.Sum32()
	return uint16(sum>>16) ^ uint16(sum)
}
