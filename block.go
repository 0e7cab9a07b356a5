package xenon

import (
	"bytes"
	"unicode/utf8"

	"github.com/lestrrat-go/pdebug"
)

// State is the continuation carried between block parser calls. It is
// owned by the stream driver between calls and replaced wholesale by
// each call's result.
type State struct {
	Line      int
	LineStart int64
	AbsPos    int64
	Depth     int
}

type blockResult struct {
	events []Event
	state  State

	// incomplete marks a block that ended mid-construct; resumeAt is
	// the buffer offset at which the unconsumed tail begins.
	incomplete bool
	resumeAt   int

	// fatal marks a stream-terminal error event in events.
	fatal bool
}

// mark is a resumable position within the current buffer.
type mark struct {
	pos       int
	line      int
	lineStart int64
}

type blockParser struct {
	buf    []byte
	pos    int
	absOff int64 // absolute offset of buf[0]

	line      int
	lineStart int64 // absolute
	depth     int

	events []Event

	incomplete bool
	resumeAt   int
	fatal      bool
}

// parseBlock tokenizes one buffer. Events confirmed before an
// incomplete construct are kept; the returned state describes either
// the end of the buffer or, when incomplete, the start of the
// retained construct.
func parseBlock(buf []byte, st State) blockResult {
	if pdebug.Enabled {
		g := pdebug.Marker("xenon.parseBlock abs=%d len=%d depth=%d", st.AbsPos, len(buf), st.Depth)
		defer g.End()
	}

	if st.Line == 0 {
		st.Line = 1
	}
	p := blockParser{
		buf:       buf,
		absOff:    st.AbsPos,
		line:      st.Line,
		lineStart: st.LineStart,
		depth:     st.Depth,
	}
	p.parseContent()

	res := blockResult{
		events:     p.events,
		incomplete: p.incomplete,
		resumeAt:   p.resumeAt,
		fatal:      p.fatal,
	}
	end := p.pos
	if p.incomplete {
		end = p.resumeAt
	}
	res.state = State{
		Line:      p.line,
		LineStart: p.lineStart,
		AbsPos:    p.absOff + int64(end),
		Depth:     p.depth,
	}
	return res
}

func (p *blockParser) abs() int64 {
	return p.absOff + int64(p.pos)
}

func (p *blockParser) mark() mark {
	return mark{pos: p.pos, line: p.line, lineStart: p.lineStart}
}

// incompleteAt rewinds the line bookkeeping to the construct start
// and flags the block incomplete from there.
func (p *blockParser) incompleteAt(m mark) {
	p.incomplete = true
	p.resumeAt = m.pos
	p.line = m.line
	p.lineStart = m.lineStart
}

func (p *blockParser) at(ev Event, m mark) Event {
	ev.Line = m.line
	ev.LineStart = m.lineStart
	ev.AbsPos = p.absOff + int64(m.pos)
	return ev
}

func (p *blockParser) emit(ev Event, m mark) {
	p.events = append(p.events, p.at(ev, m))
}

func (p *blockParser) fatalAt(kind ErrorKind, m mark) {
	p.emit(Event{Type: EventError, Kind: kind}, m)
	p.fatal = true
}

// parseContent is the top level dispatch loop.
func (p *blockParser) parseContent() {
	if p.absOff == 0 && p.pos == 0 && p.guardUTF16() {
		return
	}
	for !p.incomplete && !p.fatal {
		if p.pos >= len(p.buf) {
			if p.depth > 0 {
				p.incompleteAt(p.mark())
			}
			return
		}
		if p.buf[p.pos] == '<' {
			p.parseMarkup()
		} else {
			p.parseText()
		}
	}
}

// parseMarkup routes on the byte(s) after '<'. Any truncated prefix
// at the end of the buffer is incomplete, retained from the '<'; a
// byte that cannot begin any construct is a hard syntax error.
func (p *blockParser) parseMarkup() {
	m := p.mark()
	if p.pos+1 >= len(p.buf) {
		p.incompleteAt(m)
		return
	}
	switch c := p.buf[p.pos+1]; c {
	case '/':
		p.parseEndTag(m)
	case '?':
		if p.absOff == 0 && p.pos == 0 {
			p.parsePrologOrPI(m)
		} else {
			p.parsePI(m)
		}
	case '!':
		p.parseBang(m)
	default:
		r, ok := p.decodeRune(p.pos + 1)
		if !ok {
			p.incompleteAt(m)
			return
		}
		if !isNameStart(r) {
			p.fatalAt(KindInvalidElement, m)
			return
		}
		p.parseStartTag(m)
	}
}

var (
	patComment = []byte("<!--")
	patCDATA   = []byte("<![CDATA[")
	patDoctype = []byte("<!DOCTYPE")
	patProlog  = []byte("<?xml")
)

// matchPrefix reports whether b begins with pat, or b ends (at the
// buffer boundary) while still a proper prefix of pat.
func matchPrefix(b, pat []byte) (match, partial bool) {
	if len(b) >= len(pat) {
		return bytes.HasPrefix(b, pat), false
	}
	return false, bytes.HasPrefix(pat, b)
}

func (p *blockParser) parseBang(m mark) {
	rest := p.buf[p.pos:]

	if match, partial := matchPrefix(rest, patComment); match {
		p.pos += len(patComment)
		p.parseComment(m)
		return
	} else if partial {
		p.incompleteAt(m)
		return
	}

	if match, partial := matchPrefix(rest, patCDATA); match {
		p.pos += len(patCDATA)
		p.parseCDATA(m)
		return
	} else if partial {
		p.incompleteAt(m)
		return
	}

	if match, partial := matchPrefix(rest, patDoctype); match {
		p.pos += len(patDoctype)
		p.parseDoctype(m)
		return
	} else if partial {
		p.incompleteAt(m)
		return
	}

	p.fatalAt(KindInvalidElement, m)
}

var (
	patUTF16BE = []byte{0xFE, 0xFF}
	patUTF16LE = []byte{0xFF, 0xFE}
)

// guardUTF16 checks the first two bytes of the document for a UTF-16
// byte order mark. This layer does not transcode; it only refuses the
// input so an upstream collaborator can. Returns true when it has
// taken over handling of the block.
func (p *blockParser) guardUTF16() bool {
	if len(p.buf) == 0 {
		return false
	}
	if b := p.buf[0]; b != 0xFE && b != 0xFF {
		return false
	}
	if len(p.buf) < 2 {
		// hold until both BOM bytes are visible
		p.incompleteAt(p.mark())
		return true
	}
	b := p.buf[:2]
	if bytes.Equal(b, patUTF16BE) || bytes.Equal(b, patUTF16LE) {
		p.fatalAt(KindUTF16Detected, p.mark())
		return true
	}
	return false
}

// decodeRune decodes the codepoint at off. ok is false when the
// encoding is truncated by the end of the buffer.
func (p *blockParser) decodeRune(off int) (rune, bool) {
	if c := p.buf[off]; c < utf8.RuneSelf {
		return rune(c), true
	}
	if !utf8.FullRune(p.buf[off:]) {
		return 0, false
	}
	r, _ := utf8.DecodeRune(p.buf[off:])
	return r, true
}

// skipSpace advances over whitespace, counting lines. Returns false
// when the buffer is exhausted.
func (p *blockParser) skipSpace() bool {
	for p.pos < len(p.buf) {
		switch p.buf[p.pos] {
		case ' ', '\t':
			p.pos++
		case '\n':
			p.pos++
			p.line++
			p.lineStart = p.abs()
		case '\r':
			p.pos++
			if p.pos < len(p.buf) && p.buf[p.pos] == '\n' {
				p.pos++
			}
			p.line++
			p.lineStart = p.abs()
		default:
			return true
		}
	}
	return false
}

// scanName consumes an XML Name. ASCII name bytes are taken on the
// fast path; anything else falls through to full rune decoding. ok is
// false when the name runs into the end of the buffer (it may
// continue in the next chunk). A leading non-name byte yields an
// empty name with ok true.
func (p *blockParser) scanName() (string, bool) {
	start := p.pos
	first := true
	for p.pos < len(p.buf) {
		c := p.buf[p.pos]
		if c < utf8.RuneSelf {
			if first && !isNameStartByte(c) || !first && !isNameByte(c) {
				return string(p.buf[start:p.pos]), true
			}
			p.pos++
			first = false
			continue
		}
		if !utf8.FullRune(p.buf[p.pos:]) {
			return "", false
		}
		r, _ := utf8.DecodeRune(p.buf[p.pos:])
		if first && !isNameStart(r) || !first && !isNameChar(r) {
			return string(p.buf[start:p.pos]), true
		}
		p.pos += utf8Width(r)
		first = false
	}
	return "", false
}

// scanQuoted consumes a quoted literal up to the closing quote
// character, counting embedded line endings. ok is false at end of
// buffer. The closing quote is consumed.
func (p *blockParser) scanQuoted(q byte) (string, bool) {
	start := p.pos
	for {
		if p.pos >= len(p.buf) {
			return "", false
		}
		switch c := p.buf[p.pos]; c {
		case q:
			v := string(p.buf[start:p.pos])
			p.pos++
			return v, true
		case '\n':
			p.pos++
			p.line++
			p.lineStart = p.abs()
		case '\r':
			p.pos++
			if p.pos < len(p.buf) && p.buf[p.pos] == '\n' {
				p.pos++
			}
			p.line++
			p.lineStart = p.abs()
		default:
			p.pos++
		}
	}
}
