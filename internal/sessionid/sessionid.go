// Package sessionid mints identifiers for practice sessions: a UUIDv7
// encoded as 26 characters of Crockford base32. IDs sort by creation time
// and are easy to quote when reporting a problem session.
package sessionid

import (
	cryptorand "crypto/rand"
	"fmt"
	rand "math/rand/v2"
	"strings"
	"time"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// New mints a session ID. A nil rng draws the random bits from crypto/rand;
// tests pass a seeded source instead.
func New(rng *rand.Rand) string {
	return encodeBase32(newUUIDv7(rng))
}

// newUUIDv7 builds a 128-bit UUIDv7: a 48-bit millisecond timestamp, the
// version and variant bits, and random fill for the rest.
func newUUIDv7(rng *rand.Rand) [16]byte {
	var uuid [16]byte

	now := time.Now().UnixMilli()
	uuid[0] = byte(now >> 40)
	uuid[1] = byte(now >> 32)
	uuid[2] = byte(now >> 24)
	uuid[3] = byte(now >> 16)
	uuid[4] = byte(now >> 8)
	uuid[5] = byte(now)

	if rng != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(rng.IntN(256))
		}
	} else {
		if _, err := cryptorand.Read(uuid[6:]); err != nil {
			panic("failed to generate random bytes: " + err.Error())
		}
	}

	// Version 7, variant 10
	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid
}

// encodeBase32 packs the 128 bits into 26 characters, five bits at a time
func encodeBase32(data [16]byte) string {
	result := make([]byte, 26)

	for i := 0; i < 26; i++ {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8
		if byteIndex < 16 {
			if bitIndex <= 3 {
				// All 5 bits are in the same byte
				value = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
			} else {
				// Bits span two bytes
				value = (data[byteIndex] << (bitIndex - 3)) & 0x1f
				if byteIndex+1 < 16 {
					value |= data[byteIndex+1] >> (11 - bitIndex)
				}
			}
		}
		result[i] = alphabet[value]
	}

	return string(result)
}

// Validate checks that an ID is 26 valid base32 characters. The first
// character caps at '7' so the value fits in 128 bits.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("session ID must be exactly 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
