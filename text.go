package xenon

// parseText accumulates a character data run up to the next '<' or
// the end of the buffer, tracking line endings and whether the run is
// pure whitespace. The event location is the start of the run.
func (p *blockParser) parseText() {
	m := p.mark()
	allSpace := true
	for p.pos < len(p.buf) {
		switch c := p.buf[p.pos]; c {
		case '<':
			p.emitText(m, allSpace)
			return
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
			allSpace = false
			p.pos++
		}
	}
	// Ran into the end of the buffer. Inside an element the run may
	// continue in the next chunk, so retain it; at the top level it
	// is trailing text and can be flushed as is.
	if p.depth > 0 {
		p.incompleteAt(m)
		return
	}
	p.emitText(m, allSpace)
}

func (p *blockParser) emitText(m mark, allSpace bool) {
	if p.pos == m.pos {
		return
	}
	typ := EventCharacters
	if allSpace {
		typ = EventSpace
	}
	p.emit(Event{Type: typ, Text: string(p.buf[m.pos:p.pos])}, m)
}
