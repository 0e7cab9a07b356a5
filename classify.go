package xenon

// Character classification for the XML 1.0 Name production
// (NameStartChar / NameChar). The single-byte variants are the fast
// path used by the name scanner; the rune variants cover the full
// Unicode ranges.

func isNameStartByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '_' || c == ':'
}

func isNameByte(c byte) bool {
	return isNameStartByte(c) ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '.'
}

func isNameStart(r rune) bool {
	if r < 0x80 {
		return isNameStartByte(byte(r))
	}
	switch {
	case r >= 0xC0 && r <= 0xD6,
		r >= 0xD8 && r <= 0xF6,
		r >= 0xF8 && r <= 0x2FF,
		r >= 0x370 && r <= 0x37D,
		r >= 0x37F && r <= 0x1FFF,
		r >= 0x200C && r <= 0x200D,
		r >= 0x2070 && r <= 0x218F,
		r >= 0x2C00 && r <= 0x2FEF,
		r >= 0x3001 && r <= 0xD7FF,
		r >= 0xF900 && r <= 0xFDCF,
		r >= 0xFDF0 && r <= 0xFFFD,
		r >= 0x10000 && r <= 0xEFFFF:
		return true
	}
	return false
}

func isNameChar(r rune) bool {
	if r < 0x80 {
		return isNameByte(byte(r))
	}
	if isNameStart(r) {
		return true
	}
	switch {
	case r == 0xB7,
		r >= 0x300 && r <= 0x36F,
		r >= 0x203F && r <= 0x2040:
		return true
	}
	return false
}

// utf8Width returns the number of bytes the codepoint occupies in
// UTF-8. Used to advance buffer offsets without re-encoding.
func utf8Width(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
