package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantityStepper(t *testing.T) {
	s := DefaultStepper()

	assert.Equal(t, 2, s.Increment(1))
	assert.Equal(t, 99, s.Increment(98))
	assert.Equal(t, 99, s.Increment(99))

	assert.Equal(t, 1, s.Decrement(2))
	assert.Equal(t, 1, s.Decrement(1))

	assert.Equal(t, 1, s.Clamp(-3))
	assert.Equal(t, 99, s.Clamp(250))
	assert.Equal(t, 40, s.Clamp(40))
}

func TestQuantityStepper_OutOfRangeInput(t *testing.T) {
	s := QuantityStepper{Min: 1, Max: 5}

	assert.Equal(t, 5, s.Increment(12))
	assert.Equal(t, 1, s.Decrement(0))
}
