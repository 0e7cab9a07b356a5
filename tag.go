package xenon

import "github.com/lestrrat-go/pdebug"

// parseStartTag consumes an open tag including its attributes. m sits
// on the '<'. On any end-of-buffer inside the tag the retained offset
// backs up to the '<' so the rejoined buffer re-derives the tag name
// and all attributes from scratch; no partial attribute state crosses
// the join.
func (p *blockParser) parseStartTag(m mark) {
	p.pos++ // '<'
	name, ok := p.scanName()
	if !ok {
		p.incompleteAt(m)
		return
	}
	if pdebug.Enabled {
		pdebug.Printf("start tag <%s at line %d", name, m.line)
	}

	var attrs []Attribute
	var warns []Event
	for {
		if !p.skipSpace() {
			p.incompleteAt(m)
			return
		}
		switch c := p.buf[p.pos]; c {
		case '>':
			p.pos++
			p.emit(Event{Type: EventStartElement, Name: name, Attributes: attrs}, m)
			p.depth++
			p.events = append(p.events, warns...)
			return
		case '/':
			if p.pos+1 >= len(p.buf) {
				p.incompleteAt(m)
				return
			}
			if p.buf[p.pos+1] != '>' {
				p.fatalAt(KindExpectedGreaterThan, p.mark())
				return
			}
			p.pos += 2
			// self-closing: both events at the tag location, depth
			// untouched
			p.emit(Event{Type: EventStartElement, Name: name, Attributes: attrs}, m)
			p.emit(Event{Type: EventEndElement, Name: name}, m)
			p.events = append(p.events, warns...)
			return
		default:
			attr, warn, ok := p.parseAttribute(attrs)
			if !ok {
				p.incompleteAt(m)
				return
			}
			if p.fatal {
				return
			}
			if warn != nil {
				warns = append(warns, *warn)
			}
			attrs = append(attrs, attr)
		}
	}
}

// parseAttribute consumes one name="value" unit. ok is false at end
// of buffer; syntax violations set the fatal flag. A duplicate name
// within the same tag produces a warning event but the attribute is
// still returned, letting the caller decide tolerance.
func (p *blockParser) parseAttribute(seen []Attribute) (Attribute, *Event, bool) {
	am := p.mark()
	name, ok := p.scanName()
	if !ok {
		return Attribute{}, nil, false
	}
	if name == "" {
		p.fatalAt(KindInvalidElement, am)
		return Attribute{}, nil, true
	}
	if !p.skipSpace() {
		return Attribute{}, nil, false
	}
	if p.buf[p.pos] != '=' {
		p.fatalAt(KindExpectedEquals, p.mark())
		return Attribute{}, nil, true
	}
	p.pos++
	if !p.skipSpace() {
		return Attribute{}, nil, false
	}
	q := p.buf[p.pos]
	if q != '"' && q != '\'' {
		p.fatalAt(KindExpectedQuote, p.mark())
		return Attribute{}, nil, true
	}
	p.pos++
	value, ok := p.scanQuoted(q)
	if !ok {
		return Attribute{}, nil, false
	}

	// Linear scan: attribute counts per tag are small enough that a
	// set is not worth its overhead.
	var warn *Event
	for _, a := range seen {
		if a.Name == name {
			ev := p.at(Event{Type: EventError, Kind: KindDuplicateAttribute}, am)
			warn = &ev
			break
		}
	}
	return Attribute{Name: name, Value: value}, warn, true
}

// parseEndTag consumes a close tag. m sits on the '<', followed by
// '/'. End of buffer before the '>' is incomplete, retained from the
// '</'.
func (p *blockParser) parseEndTag(m mark) {
	p.pos += 2 // '</'
	name, ok := p.scanName()
	if !ok {
		p.incompleteAt(m)
		return
	}
	if name == "" {
		p.fatalAt(KindInvalidElement, m)
		return
	}
	if !p.skipSpace() {
		p.incompleteAt(m)
		return
	}
	if p.buf[p.pos] != '>' {
		p.fatalAt(KindExpectedGreaterThan, p.mark())
		return
	}
	p.pos++
	p.emit(Event{Type: EventEndElement, Name: name}, m)
	p.depth--
}
