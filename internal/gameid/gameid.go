// Package gameid generates short, sortable identifiers for individual games,
// used to correlate log lines and simulation results. IDs are UUIDv7 values
// encoded as 26 characters of Crockford base32, so lexicographic order
// follows creation time.
package gameid

import (
	"crypto/rand"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Generate returns a new game id
func Generate() string {
	return encodeBase32(newUUIDv7())
}

// newUUIDv7 builds a 128-bit UUIDv7: 48 bits of millisecond timestamp, then
// version and variant bits over random data.
func newUUIDv7() [16]byte {
	var uuid [16]byte
	now := time.Now().UnixMilli()
	uuid[0] = byte(now >> 40)
	uuid[1] = byte(now >> 32)
	uuid[2] = byte(now >> 24)
	uuid[3] = byte(now >> 16)
	uuid[4] = byte(now >> 8)
	uuid[5] = byte(now)

	if _, err := rand.Read(uuid[6:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	uuid[6] = (uuid[6] & 0x0f) | 0x70 // version 7
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // variant 10

	return uuid
}

// encodeBase32 packs 16 bytes into 26 base32 characters, most significant
// bits first; the trailing 3 bits pad the last character.
func encodeBase32(src [16]byte) string {
	dst := make([]byte, 26)
	acc, bits, out := uint64(0), 0, 0
	for _, b := range src {
		acc = acc<<8 | uint64(b)
		bits += 8
		for bits >= 5 && out < 25 {
			bits -= 5
			dst[out] = alphabet[(acc>>uint(bits))&0x1f]
			out++
		}
	}
	// 128 bits = 25*5 + 3: the final character carries the trailing 3 bits.
	dst[25] = alphabet[(acc<<uint(5-bits))&0x1f]
	return string(dst)
}
