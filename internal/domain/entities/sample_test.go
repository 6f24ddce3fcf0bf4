package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessingConditions_Normalized(t *testing.T) {
	t.Run("clamps pH into range", func(t *testing.T) {
		c := ProcessingConditions{Temperature: 25, PH: 15.2, Duration: 30, IonicStrength: 0.15}
		n := c.Normalized()
		assert.Equal(t, 14.0, n.PH)

		c.PH = -1.0
		n = c.Normalized()
		assert.Equal(t, 0.0, n.PH)
	})

	t.Run("negative duration becomes zero", func(t *testing.T) {
		c := ProcessingConditions{Temperature: 25, PH: 7, Duration: -10, IonicStrength: 0.15}
		assert.Equal(t, 0.0, c.Normalized().Duration)
	})

	t.Run("non-positive ionic strength gets the physiological default", func(t *testing.T) {
		c := ProcessingConditions{Temperature: 25, PH: 7, Duration: 30, IonicStrength: -0.2}
		assert.Equal(t, 0.15, c.Normalized().IonicStrength)
	})

	t.Run("in-range values pass through unchanged", func(t *testing.T) {
		c := ProcessingConditions{Temperature: 72, PH: 6.5, Duration: 15, IonicStrength: 0.1}
		assert.Equal(t, c, c.Normalized())
	})
}
