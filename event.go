package xenon

import "strconv"

// EventType tags an Event with the construct that produced it.
type EventType int

const (
	EventNone EventType = iota
	EventStartElement
	EventEndElement
	EventCharacters
	EventSpace
	EventComment
	EventCData
	EventDoctype
	EventProcessingInstruction
	EventProlog
	EventError
)

func (t EventType) String() string {
	switch t {
	case EventStartElement:
		return "StartElement"
	case EventEndElement:
		return "EndElement"
	case EventCharacters:
		return "Characters"
	case EventSpace:
		return "Space"
	case EventComment:
		return "Comment"
	case EventCData:
		return "CData"
	case EventDoctype:
		return "Doctype"
	case EventProcessingInstruction:
		return "ProcessingInstruction"
	case EventProlog:
		return "Prolog"
	case EventError:
		return "Error"
	default:
		return "EventType(" + strconv.Itoa(int(t)) + ")"
	}
}

// ErrorKind identifies the failure carried by an EventError event.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindExpectedEquals
	KindExpectedQuote
	KindExpectedGreaterThan
	KindInvalidElement
	KindUTF16Detected
	KindMaxChunkSpanExceeded
	KindUnexpectedEOF
	KindDuplicateAttribute
	KindInvalidComment
)

func (k ErrorKind) String() string {
	switch k {
	case KindExpectedEquals:
		return "expected '='"
	case KindExpectedQuote:
		return "expected quote character"
	case KindExpectedGreaterThan:
		return "expected '>'"
	case KindInvalidElement:
		return "invalid element"
	case KindUTF16Detected:
		return "UTF-16 input detected"
	case KindMaxChunkSpanExceeded:
		return "construct spans too many chunks"
	case KindUnexpectedEOF:
		return "unexpected end of input"
	case KindDuplicateAttribute:
		return "duplicate attribute"
	case KindInvalidComment:
		return "'--' is not allowed within comments"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Terminal reports whether the kind ends the stream. Non-terminal
// kinds accompany an otherwise valid event and leave the stream
// running; callers wanting strict conformance treat every kind as
// fatal.
func (k ErrorKind) Terminal() bool {
	switch k {
	case KindDuplicateAttribute, KindInvalidComment:
		return false
	}
	return true
}

// Attribute is a single name/value pair from a start tag or the XML
// declaration. The value is the literal text between the quotes;
// entity references are not resolved.
type Attribute struct {
	Name  string
	Value string
}

// Event is one structural XML event. Type selects which of the
// payload fields are meaningful:
//
//	StartElement           Name, Attributes
//	EndElement             Name
//	Characters, Space      Text
//	Comment, CData         Text
//	Doctype                Text (raw declaration, internal subset included)
//	ProcessingInstruction  Name (target), Text (data)
//	Prolog                 Name ("xml"), Attributes (declaration order)
//	Error                  Kind
//
// Every event carries its source location: Line starts at 1,
// LineStart and AbsPos are absolute byte offsets, and the column is
// AbsPos - LineStart.
type Event struct {
	Type EventType

	Name       string
	Attributes []Attribute
	Text       string
	Kind       ErrorKind

	Line      int
	LineStart int64
	AbsPos    int64
}

// Column returns the zero-based byte column of the event on its line.
func (e Event) Column() int {
	return int(e.AbsPos - e.LineStart)
}

// Err converts an EventError event into an error value carrying the
// event's location. It returns nil for every other event type.
func (e Event) Err() error {
	if e.Type != EventError {
		return nil
	}
	return ErrParseError{
		Kind:     e.Kind,
		Line:     e.Line,
		Column:   e.Column(),
		Location: e.AbsPos,
	}
}
