package xenon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameStart(t *testing.T) {
	valid := []rune{'a', 'z', 'A', 'Z', '_', ':', 'é', 'ß', 'あ', '漢', 0x10000}
	invalid := []rune{'-', '.', '1', ' ', '<', '>', 0xB7, 0x2000}

	for _, r := range valid {
		require.True(t, isNameStart(r), "%q should be a name start", r)
	}
	for _, r := range invalid {
		require.False(t, isNameStart(r), "%q should not be a name start", r)
	}
}

func TestNameChar(t *testing.T) {
	valid := []rune{'a', '0', '9', '-', '.', ':', '_', 0xB7, 0x300, 0x203F, 'あ'}
	invalid := []rune{' ', '\t', '<', '>', '=', '"', '/'}

	for _, r := range valid {
		require.True(t, isNameChar(r), "%q should be a name char", r)
	}
	for _, r := range invalid {
		require.False(t, isNameChar(r), "%q should not be a name char", r)
	}
}

func TestUTF8Width(t *testing.T) {
	data := map[rune]int{
		'a':     1,
		0x7F:    1,
		'é':     2,
		0x7FF:   2,
		'あ':     3,
		0xFFFD:  3,
		0x10000: 4,
		0x1F600: 4,
	}
	for r, w := range data {
		require.Equal(t, w, utf8Width(r), "width of %#x", r)
	}
}
