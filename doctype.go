package xenon

// parseDoctype captures a DOCTYPE declaration verbatim. m sits on the
// "<!DOCTYPE"; p.pos is just past it. The internal subset may contain
// nested markup declarations each closed by their own '>', so a
// separate depth counter pairs every '<' with a '>' and only the one
// returning it to zero ends the declaration. The payload runs from
// just after "<!" to just before that '>'; semantic DTD parsing is a
// downstream concern.
func (p *blockParser) parseDoctype(m mark) {
	depth := 1
	for {
		if p.pos >= len(p.buf) {
			p.incompleteAt(m)
			return
		}
		switch p.buf[p.pos] {
		case '<':
			depth++
			p.pos++
		case '>':
			depth--
			if depth == 0 {
				text := string(p.buf[m.pos+2 : p.pos])
				p.pos++
				p.emit(Event{Type: EventDoctype, Text: text}, m)
				return
			}
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
			p.pos++
		}
	}
}
