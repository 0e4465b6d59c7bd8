package common

import "github.com/nspcc-dev/neo-go/pkg/interop"

// zeroHash160 is an all-zero script hash, the null account identifier.
const zeroHash160 = "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"

// IsNullAddress returns true if addr is not a valid script hash or consists
// of zero bytes only.
func IsNullAddress(addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		return true
	}

	return addr.Equals(zeroHash160)
}
