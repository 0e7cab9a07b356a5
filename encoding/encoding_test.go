package encoding

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func TestDetect(t *testing.T) {
	data := map[string][][]byte{
		UTF16BE: {{0xFE, 0xFF}, {0x00, 0x3C, 0x00, 0x3F}},
		UTF16LE: {{0xFF, 0xFE}, {0x3C, 0x00, 0x3F, 0x00}},
		UTF8:    {{0xEF, 0xBB, 0xBF}},
		"":      {{0x3C, 0x3F, 0x78, 0x6D}, {}},
	}

	for expected, inputs := range data {
		for i, input := range inputs {
			t.Logf("checking %q (%d)", expected, i)
			require.Equal(t, expected, Detect(input), "Detect returns as expected for %#v", input)
		}
	}
}

func TestLoad(t *testing.T) {
	for _, name := range []string{"utf-8", "utf-16be", "utf-16le", "euc-jp", "shift_jis", "iso-8859-1", "big5"} {
		require.NotNil(t, Load(name), "Load should resolve %q", name)
	}
	require.Nil(t, Load("no-such-encoding"), "unknown names resolve to nil")
}

func TestNewReader(t *testing.T) {
	const doc = `<?xml version="1.0"?><root/>`

	be := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	raw, err := be.NewEncoder().Bytes([]byte(doc))
	require.NoError(t, err, "encoding to UTF-16BE should succeed")

	r, err := NewReader(bytes.NewReader(raw), "utf-16be")
	require.NoError(t, err, "NewReader should accept utf-16be")

	decoded, err := io.ReadAll(r)
	require.NoError(t, err, "reading through the decoder should succeed")
	require.Equal(t, doc, string(decoded), "round trip matches")

	_, err = NewReader(bytes.NewReader(raw), "no-such-encoding")
	require.Error(t, err, "unknown encoding should be rejected")
}

func TestNewAutoReader(t *testing.T) {
	const doc = `<root/>`

	le := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	raw, err := le.NewEncoder().Bytes([]byte(doc))
	require.NoError(t, err, "encoding to UTF-16LE should succeed")

	decoded, err := io.ReadAll(NewAutoReader(bytes.NewReader(raw)))
	require.NoError(t, err, "auto reader should transcode BOM-marked input")
	require.Equal(t, doc, string(decoded), "round trip matches")

	// plain UTF-8 passes through
	decoded, err = io.ReadAll(NewAutoReader(bytes.NewReader([]byte(doc))))
	require.NoError(t, err, "auto reader should pass UTF-8 through")
	require.Equal(t, doc, string(decoded), "pass-through matches")
}
