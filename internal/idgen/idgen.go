// Package idgen issues post identifiers independent of the store's
// auto-increment sequence. IDs are 63-bit values composed of a millisecond
// timestamp and random low bits, so an ID is never reused even after its row
// is hard-deleted.
package idgen

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

const randomBits = 20

// NewID returns a new unique identifier. IDs issued later sort higher, which
// keeps time-ordered scans cheap without exposing an insertion counter.
func NewID() uint64 {
	var buf [8]byte
	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(buf[:])
	random := binary.BigEndian.Uint64(buf[:]) & (1<<randomBits - 1)

	millis := uint64(time.Now().UnixMilli())
	return (millis<<randomBits | random) & (1<<63 - 1)
}
