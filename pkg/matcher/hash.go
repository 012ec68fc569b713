package matcher

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// hashTagged hashes a variant tag followed by its key.
func hashTagged(k Kind, key string) uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(k)})
	_, _ = d.WriteString(key)
	return d.Sum64()
}

// Combine folds a sequence of hashes into one, order sensitive.
func Combine(hashes ...uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, h := range hashes {
		binary.LittleEndian.PutUint64(buf[:], h)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
