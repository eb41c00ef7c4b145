package sestring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "Hello, world", Decode([]byte("Hello, world")))
	})

	t.Run("payload spans are stripped", func(t *testing.T) {
		b := []byte{'A', 0x02, 0x10, 0x01, 0xFF, 0x03, 'B'}
		assert.Equal(t, "AB", Decode(b))
	})

	t.Run("adjacent spans", func(t *testing.T) {
		b := []byte{0x02, 0x10, 0x01, 0xFF, 0x03, 0x02, 0x12, 0x00, 0x03, 'x'}
		assert.Equal(t, "x", Decode(b))
	})

	t.Run("truncated span swallows the remainder", func(t *testing.T) {
		b := []byte{'A', 0x02, 0x10}
		assert.Equal(t, "A", Decode(b))
	})

	t.Run("missing terminator swallows the remainder", func(t *testing.T) {
		b := []byte{'A', 0x02, 0x10, 0x02, 0xFF, 0x03, 'B'}
		assert.Equal(t, "A", Decode(b))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Decode(nil))
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte("Party for fun"), Encode("Party for fun"))
	assert.Equal(t, "roundtrip", Decode(Encode("roundtrip")))
}
