package pgwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorBoundedReads(t *testing.T) {
	t.Parallel()

	buf := cursor{src: []byte{0x01, 0x02, 0x03, 0x04, 0x05}}

	n16, ok := buf.uint16()
	require.True(t, ok)
	assert.Equal(t, uint16(0x0102), n16)

	_, ok = buf.uint32()
	assert.False(t, ok, "uint32 past the boundary must fail")
	assert.Equal(t, 3, buf.remaining(), "failed read must not consume")

	b, ok := buf.next(3)
	require.True(t, ok)
	assert.Equal(t, []byte{0x03, 0x04, 0x05}, b)
	assert.Equal(t, 0, buf.remaining())

	_, ok = buf.byte()
	assert.False(t, ok)
}

func TestCursorNextNeverAliasesBeyondBoundary(t *testing.T) {
	t.Parallel()

	backing := []byte{1, 2, 3, 4, 5, 6}
	buf := cursor{src: backing[:4]}

	b, ok := buf.next(4)
	require.True(t, ok)
	assert.Equal(t, 4, cap(b), "returned span must not expose bytes past the body")
}

func TestCursorNextNegative(t *testing.T) {
	t.Parallel()

	buf := cursor{src: []byte{1, 2, 3}}
	_, ok := buf.next(-1)
	assert.False(t, ok)
}

func TestCursorCString(t *testing.T) {
	t.Parallel()

	buf := cursor{src: []byte("abc\x00def")}

	s, ok := buf.cstring()
	require.True(t, ok)
	assert.Equal(t, "abc", s)

	_, ok = buf.cstring()
	assert.False(t, ok, "unterminated string must fail")
	assert.Equal(t, 3, buf.remaining(), "failed cstring must not consume")
}
