// Package hash derives the 64-bit keys used to index coefficient tables.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a coefficient name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
