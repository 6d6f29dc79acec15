// Package daily derives a root word index from the calendar date, so every
// player gets the same root word on a given UTC day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Picker returns a root word picker keyed on now()'s UTC date.
// It satisfies game.Picker.
func Picker(now func() time.Time, salt string) func(n int) int {
	if now == nil {
		now = time.Now
	}
	return func(n int) int { return WordIndex(now(), salt, n) }
}
