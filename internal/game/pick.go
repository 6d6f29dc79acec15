// internal/game/pick.go
//
// Root word selection.
// Responsibilities:
//   - Crypto-random picks for normal play.
//   - Seeded and fixed picks for tests and replays.
package game

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Picker returns an index in [0, n). n is always > 0.
type Picker func(n int) int

// RandomPicker picks uniformly using crypto/rand.
func RandomPicker() Picker {
	return func(n int) int {
		v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
		if err != nil {
			return 0
		}
		return int(v.Int64())
	}
}

// SeededPicker returns a deterministic picker; the same seed replays the
// same sequence of picks.
func SeededPicker(seed uint64) Picker {
	var mu sync.Mutex
	r := mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		return r.IntN(n)
	}
}

// FixedPicker always returns i, clamped into range. Useful in tests.
func FixedPicker(i int) Picker {
	return func(n int) int {
		switch {
		case i < 0:
			return 0
		case i >= n:
			return n - 1
		}
		return i
	}
}
