package xenon

// parseCDATA scans for the CDATA terminator "]]>". m sits on the
// opening "<![CDATA["; p.pos is just past it. End of buffer at "]" or
// "]]" is incomplete rather than a false termination, retained from
// the section start.
func (p *blockParser) parseCDATA(m mark) {
	start := p.pos
	for {
		if p.pos >= len(p.buf) {
			p.incompleteAt(m)
			return
		}
		switch p.buf[p.pos] {
		case ']':
			if p.pos+1 >= len(p.buf) {
				p.incompleteAt(m)
				return
			}
			if p.buf[p.pos+1] != ']' {
				p.pos++
				continue
			}
			if p.pos+2 >= len(p.buf) {
				p.incompleteAt(m)
				return
			}
			if p.buf[p.pos+2] == '>' {
				text := string(p.buf[start:p.pos])
				p.pos += 3
				p.emit(Event{Type: EventCData, Text: text}, m)
				return
			}
			// "]]" not closing the section, as in "]]]>"
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
