// Package hasher derives content-addressed processing keys. Identical inputs
// always produce identical keys; changing any single parameter changes the
// key. Keys exist only for memoization, they carry no domain meaning.
package hasher

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to the given length. 16 hex chars (64 bits) is collision-safe
// for practical image counts.
func ContentHash(data []byte, hexLen int) string {
	h := xxhash.Sum64(data)
	full := hex.EncodeToString(uint64ToBytes(h))
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}

// Key hashes a pixel buffer together with the serialized processing
// parameters into one processing key. The parameter strings are length-
// prefixed into the digest so adjacent parts can never alias each other.
func Key(pix []byte, params ...string) string {
	d := xxhash.New()
	_, _ = d.Write(pix)
	var lenBuf [8]byte
	for _, p := range params {
		putUint64(lenBuf[:], uint64(len(p)))
		_, _ = d.Write(lenBuf[:])
		_, _ = d.WriteString(p)
	}
	return hex.EncodeToString(uint64ToBytes(d.Sum64()))
}

func uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	putUint64(b, v)
	return b
}

func putUint64(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}
