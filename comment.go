package xenon

// parseComment scans for the comment terminator "-->". m sits on the
// opening "<!--"; p.pos is just past it. A "--" not followed by '>'
// violates the comment WFC but does not discard the comment: the
// comment event is emitted, accompanied by a non-terminal error at
// the offending position.
func (p *blockParser) parseComment(m mark) {
	start := p.pos
	var sawDoubleHyphen bool
	var dh mark
	for {
		if p.pos >= len(p.buf) {
			p.incompleteAt(m)
			return
		}
		switch p.buf[p.pos] {
		case '-':
			if p.pos+1 >= len(p.buf) {
				p.incompleteAt(m)
				return
			}
			if p.buf[p.pos+1] != '-' {
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
				p.emit(Event{Type: EventComment, Text: text}, m)
				if sawDoubleHyphen {
					p.emit(Event{Type: EventError, Kind: KindInvalidComment}, dh)
				}
				return
			}
			if !sawDoubleHyphen {
				sawDoubleHyphen = true
				dh = p.mark()
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
