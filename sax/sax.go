package sax

import (
	"io"

	"github.com/nixlet/xenon"
)

// SAX is a Handler whose callbacks are individually optional: a nil
// field means the event is silently accepted.
type SAX struct {
	StartDocumentHandler         StartDocumentFunc
	EndDocumentHandler           EndDocumentFunc
	StartElementHandler          StartElementFunc
	EndElementHandler            EndElementFunc
	CharactersHandler            CharactersFunc
	IgnorableWhitespaceHandler   IgnorableWhitespaceFunc
	CommentHandler               CommentFunc
	CDATABlockHandler            CDATABlockFunc
	DoctypeHandler               DoctypeFunc
	ProcessingInstructionHandler ProcessingInstructionFunc
	XMLDeclHandler               XMLDeclFunc
	ErrorHandler                 ErrorFunc
}

func New() *SAX {
	return &SAX{}
}

func (s *SAX) StartDocument(ctx interface{}) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX) EndDocument(ctx interface{}) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX) StartElement(ctx interface{}, name string, attrs []xenon.Attribute) error {
	if h := s.StartElementHandler; h != nil {
		return h(ctx, name, attrs)
	}
	return nil
}

func (s *SAX) EndElement(ctx interface{}, name string) error {
	if h := s.EndElementHandler; h != nil {
		return h(ctx, name)
	}
	return nil
}

func (s *SAX) Characters(ctx interface{}, data string) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}

func (s *SAX) IgnorableWhitespace(ctx interface{}, data string) error {
	if h := s.IgnorableWhitespaceHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}

func (s *SAX) Comment(ctx interface{}, data string) error {
	if h := s.CommentHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}

func (s *SAX) CDATABlock(ctx interface{}, data string) error {
	if h := s.CDATABlockHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}

func (s *SAX) Doctype(ctx interface{}, data string) error {
	if h := s.DoctypeHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}

func (s *SAX) ProcessingInstruction(ctx interface{}, target, data string) error {
	if h := s.ProcessingInstructionHandler; h != nil {
		return h(ctx, target, data)
	}
	return nil
}

func (s *SAX) XMLDecl(ctx interface{}, attrs []xenon.Attribute) error {
	if h := s.XMLDeclHandler; h != nil {
		return h(ctx, attrs)
	}
	return nil
}

func (s *SAX) Error(ctx interface{}, ev xenon.Event) error {
	if h := s.ErrorHandler; h != nil {
		return h(ctx, ev)
	}
	return nil
}

// Walk drives the stream to completion, dispatching every event to
// h. ctx is the opaque user context handed to each callback. A
// terminal error event ends the walk with the event's error after the
// Error callback has seen it; EndDocument fires only when the input
// was consumed cleanly.
func Walk(s *xenon.Stream, h Handler, ctx interface{}) error {
	if err := h.StartDocument(ctx); err != nil {
		return err
	}
	for {
		batch, err := s.Next()
		if err == io.EOF {
			return h.EndDocument(ctx)
		}
		if err != nil {
			return err
		}
		for _, ev := range batch {
			if err := dispatch(h, ctx, ev); err != nil {
				return err
			}
			if ev.Type == xenon.EventError && ev.Kind.Terminal() {
				return ev.Err()
			}
		}
	}
}

func dispatch(h Handler, ctx interface{}, ev xenon.Event) error {
	switch ev.Type {
	case xenon.EventStartElement:
		return h.StartElement(ctx, ev.Name, ev.Attributes)
	case xenon.EventEndElement:
		return h.EndElement(ctx, ev.Name)
	case xenon.EventCharacters:
		return h.Characters(ctx, ev.Text)
	case xenon.EventSpace:
		return h.IgnorableWhitespace(ctx, ev.Text)
	case xenon.EventComment:
		return h.Comment(ctx, ev.Text)
	case xenon.EventCData:
		return h.CDATABlock(ctx, ev.Text)
	case xenon.EventDoctype:
		return h.Doctype(ctx, ev.Text)
	case xenon.EventProcessingInstruction:
		return h.ProcessingInstruction(ctx, ev.Name, ev.Text)
	case xenon.EventProlog:
		return h.XMLDecl(ctx, ev.Attributes)
	case xenon.EventError:
		return h.Error(ctx, ev)
	}
	return nil
}
