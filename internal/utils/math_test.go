package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomInt(t *testing.T) {
	t.Run("stays within inclusive bounds", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v := RandomInt(3, 7)
			assert.GreaterOrEqual(t, v, 3)
			assert.LessOrEqual(t, v, 7)
		}
	})

	t.Run("returns min when min equals max", func(t *testing.T) {
		assert.Equal(t, 5, RandomInt(5, 5))
	})

	t.Run("returns min when min exceeds max", func(t *testing.T) {
		assert.Equal(t, 10, RandomInt(10, 2))
	})
}

func TestClampMin(t *testing.T) {
	assert.Equal(t, 1, ClampMin(0, 1))
	assert.Equal(t, 1, ClampMin(-50, 1))
	assert.Equal(t, 7, ClampMin(7, 1))
}
