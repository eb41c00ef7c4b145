package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobMaskOpen(t *testing.T) {
	t.Parallel()

	t.Run("every known bit set means an unrestricted slot", func(t *testing.T) {
		m := allJobBits
		assert.True(t, m.Open())
		assert.Empty(t, m.Decode(), "an open mask must not decode into a role list")
		assert.False(t, m.HasTank())
		assert.False(t, m.HasHealer())
		assert.False(t, m.HasDPS())
	})

	t.Run("unknown bits on top of a full mask still read as open", func(t *testing.T) {
		m := allJobBits | 1<<63
		assert.True(t, m.Open())
		assert.Empty(t, m.Decode())
	})

	t.Run("almost-full mask is not open", func(t *testing.T) {
		m := allJobBits &^ (1 << 8) // drop PLD
		assert.False(t, m.Open())
		assert.NotEmpty(t, m.Decode())
	})
}

func TestJobMaskDecode(t *testing.T) {
	t.Parallel()

	t.Run("decodes in wire bit order", func(t *testing.T) {
		m := JobMask(1<<8 | 1<<13 | 1<<11) // PLD, WHM, DRG
		jobs := m.Decode()
		if assert.Len(t, jobs, 3) {
			assert.Equal(t, uint8(19), jobs[0].Code)
			assert.Equal(t, uint8(22), jobs[1].Code)
			assert.Equal(t, uint8(24), jobs[2].Code)
		}
	})

	t.Run("unknown bits are silently ignored", func(t *testing.T) {
		m := JobMask(1<<8 | 1<<40)
		jobs := m.Decode()
		if assert.Len(t, jobs, 1) {
			assert.Equal(t, uint8(19), jobs[0].Code)
		}
	})

	t.Run("role predicates", func(t *testing.T) {
		m := JobMask(1<<8 | 1<<13) // PLD, WHM
		assert.True(t, m.HasTank())
		assert.True(t, m.HasHealer())
		assert.False(t, m.HasDPS())
	})
}
