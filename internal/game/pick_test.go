package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededPicker_Replays(t *testing.T) {
	t.Parallel()

	a, b := SeededPicker(42), SeededPicker(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a(1000), b(1000))
	}
}

func TestPickers_StayInRange(t *testing.T) {
	t.Parallel()

	for name, p := range map[string]Picker{
		"random": RandomPicker(),
		"seeded": SeededPicker(7),
	} {
		for i := 0; i < 200; i++ {
			v := p(3)
			assert.GreaterOrEqual(t, v, 0, name)
			assert.Less(t, v, 3, name)
		}
	}
}

func TestFixedPicker_Clamps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, FixedPicker(-1)(5))
	assert.Equal(t, 2, FixedPicker(2)(5))
	assert.Equal(t, 4, FixedPicker(9)(5))
}
