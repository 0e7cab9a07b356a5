package xenon

// parsePrologOrPI decides between the XML declaration and an
// ordinary processing instruction. Only ever called with the '<' at
// absolute offset 0. Until enough bytes are visible to rule the
// "<?xml " prefix in or out, the block is incomplete.
func (p *blockParser) parsePrologOrPI(m mark) {
	rest := p.buf[p.pos:]
	if len(rest) < len(patProlog)+1 {
		if match, partial := matchPrefix(rest, patProlog); match || partial {
			p.incompleteAt(m)
			return
		}
		p.parsePI(m)
		return
	}
	if match, _ := matchPrefix(rest, patProlog); match {
		switch rest[len(patProlog)] {
		case ' ', '\t', '\n', '\r':
			p.parseProlog(m)
			return
		}
	}
	p.parsePI(m)
}

// parseProlog consumes the XML declaration as an ordered list of
// name="value" pairs up to "?>". The pairs are not deduplicated;
// declaration attribute order checks happen downstream.
func (p *blockParser) parseProlog(m mark) {
	p.pos += len(patProlog)
	var attrs []Attribute
	for {
		if !p.skipSpace() {
			p.incompleteAt(m)
			return
		}
		if p.buf[p.pos] == '?' {
			if p.pos+1 >= len(p.buf) {
				p.incompleteAt(m)
				return
			}
			if p.buf[p.pos+1] != '>' {
				p.fatalAt(KindExpectedGreaterThan, p.mark())
				return
			}
			p.pos += 2
			p.emit(Event{Type: EventProlog, Name: "xml", Attributes: attrs}, m)
			return
		}

		name, ok := p.scanName()
		if !ok {
			p.incompleteAt(m)
			return
		}
		if name == "" {
			p.fatalAt(KindInvalidElement, p.mark())
			return
		}
		if !p.skipSpace() {
			p.incompleteAt(m)
			return
		}
		if p.buf[p.pos] != '=' {
			p.fatalAt(KindExpectedEquals, p.mark())
			return
		}
		p.pos++
		if !p.skipSpace() {
			p.incompleteAt(m)
			return
		}
		q := p.buf[p.pos]
		if q != '"' && q != '\'' {
			p.fatalAt(KindExpectedQuote, p.mark())
			return
		}
		p.pos++
		value, ok := p.scanQuoted(q)
		if !ok {
			p.incompleteAt(m)
			return
		}
		attrs = append(attrs, Attribute{Name: name, Value: value})
	}
}

// parsePI consumes a processing instruction: a target name followed
// by raw data up to "?>". m sits on the '<'.
func (p *blockParser) parsePI(m mark) {
	p.pos += 2 // "<?"
	target, ok := p.scanName()
	if !ok {
		p.incompleteAt(m)
		return
	}
	if target == "" {
		p.fatalAt(KindInvalidElement, m)
		return
	}
	if !p.skipSpace() {
		p.incompleteAt(m)
		return
	}
	start := p.pos
	for {
		if p.pos >= len(p.buf) {
			p.incompleteAt(m)
			return
		}
		switch p.buf[p.pos] {
		case '?':
			if p.pos+1 >= len(p.buf) {
				p.incompleteAt(m)
				return
			}
			if p.buf[p.pos+1] == '>' {
				data := string(p.buf[start:p.pos])
				p.pos += 2
				p.emit(Event{Type: EventProcessingInstruction, Name: target, Text: data}, m)
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
