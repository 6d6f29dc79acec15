package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExample(t *testing.T) {
	t.Parallel()

	c := Example()
	assert.NotEmpty(t, c.Prompt)
	assert.Equal(t, "Jodie Whittaker", c.Answer)
}
