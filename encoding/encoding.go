// Package encoding is the transcoding step that runs upstream of the
// tokenizer. The tokenizer itself only consumes UTF-8 and refuses
// UTF-16 input outright, so callers with UTF-16 or legacy 8-bit
// documents wrap their input here first. It is a thin layer over
// golang.org/x/text/encoding; the wrapper also keeps names like
// "unicode" from clashing with the stdlib at call sites.
package encoding

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Canonical names returned by Detect.
const (
	UTF8    = "utf-8"
	UTF16BE = "utf-16be"
	UTF16LE = "utf-16le"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}

	// "<?" in UTF-16 without a BOM
	patUTF16BEDecl = []byte{0x00, 0x3C, 0x00, 0x3F}
	patUTF16LEDecl = []byte{0x3C, 0x00, 0x3F, 0x00}
)

func hasPrefix(b, pat []byte) bool {
	if len(b) < len(pat) {
		return false
	}
	for i, c := range pat {
		if b[i] != c {
			return false
		}
	}
	return true
}

// Detect sniffs the encoding from the leading bytes of a document,
// using the byte order mark or the pattern of the XML declaration.
// It returns the empty string when nothing can be concluded; callers
// should then assume UTF-8.
func Detect(b []byte) string {
	switch {
	case hasPrefix(b, patUTF16BEDecl):
		return UTF16BE
	case hasPrefix(b, patUTF16LEDecl):
		return UTF16LE
	case hasPrefix(b, bomUTF8):
		return UTF8
	case hasPrefix(b, bomUTF16BE):
		return UTF16BE
	case hasPrefix(b, bomUTF16LE):
		return UTF16LE
	}
	return ""
}

// Load resolves an encoding name, as found in an XML declaration or
// returned by Detect, to its x/text implementation. Returns nil for
// unknown names.
func Load(name string) enc.Encoding {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return unicode.UTF8
	case "utf16be", "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "utf16le", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "euc-jp":
		return japanese.EUCJP
	case "shift_jis", "shift-jis", "shiftjis", "cp932":
		return japanese.ShiftJIS
	case "jis", "iso-2022-jp":
		return japanese.ISO2022JP
	case "euc-kr":
		return korean.EUCKR
	case "big5":
		return traditionalchinese.Big5
	case "gb18030":
		return simplifiedchinese.GB18030
	case "hz-gb2312":
		return simplifiedchinese.HZGB2312
	case "iso-8859-1", "windows1252":
		return charmap.Windows1252
	case "iso-8859-2":
		return charmap.ISO8859_2
	case "iso-8859-5":
		return charmap.ISO8859_5
	case "iso-8859-7":
		return charmap.ISO8859_7
	case "iso-8859-15":
		return charmap.ISO8859_15
	case "koi8r":
		return charmap.KOI8R
	case "windows1251":
		return charmap.Windows1251
	}
	return nil
}

// NewReader wraps r so that its content, in the named encoding, is
// delivered as UTF-8.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	e := Load(name)
	if e == nil {
		return nil, errors.Errorf(`unsupported encoding %q`, name)
	}
	return transform.NewReader(r, e.NewDecoder()), nil
}

// NewAutoReader wraps r so that UTF-16 input, detected through its
// byte order mark, is transcoded to UTF-8 transparently. Input
// without a BOM passes through untouched.
func NewAutoReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
