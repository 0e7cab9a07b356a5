package sax_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/nixlet/xenon"
	"github.com/nixlet/xenon/sax"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	data []byte
	done bool
}

func (s *sliceSource) NextChunk() ([]byte, error) {
	if s.done {
		return nil, io.EOF
	}
	s.done = true
	return s.data, nil
}

func stream(data string) *xenon.Stream {
	return xenon.NewStream(&sliceSource{data: []byte(data)})
}

func TestWalk(t *testing.T) {
	const doc = `<?xml version="1.0"?><root a="1"><!--c--><child>text</child> <![CDATA[cd]]><?pi data?></root>`

	var trail []string
	h := sax.New()
	h.StartDocumentHandler = func(ctx interface{}) error {
		trail = append(trail, "start-document")
		return nil
	}
	h.EndDocumentHandler = func(ctx interface{}) error {
		trail = append(trail, "end-document")
		return nil
	}
	h.XMLDeclHandler = func(ctx interface{}, attrs []xenon.Attribute) error {
		trail = append(trail, fmt.Sprintf("xml-decl %s=%s", attrs[0].Name, attrs[0].Value))
		return nil
	}
	h.StartElementHandler = func(ctx interface{}, name string, attrs []xenon.Attribute) error {
		trail = append(trail, "start "+name)
		return nil
	}
	h.EndElementHandler = func(ctx interface{}, name string) error {
		trail = append(trail, "end "+name)
		return nil
	}
	h.CharactersHandler = func(ctx interface{}, data string) error {
		trail = append(trail, "chars "+data)
		return nil
	}
	h.IgnorableWhitespaceHandler = func(ctx interface{}, data string) error {
		trail = append(trail, "space")
		return nil
	}
	h.CommentHandler = func(ctx interface{}, data string) error {
		trail = append(trail, "comment "+data)
		return nil
	}
	h.CDATABlockHandler = func(ctx interface{}, data string) error {
		trail = append(trail, "cdata "+data)
		return nil
	}
	h.ProcessingInstructionHandler = func(ctx interface{}, target, data string) error {
		trail = append(trail, fmt.Sprintf("pi %s %s", target, data))
		return nil
	}

	require.NoError(t, sax.Walk(stream(doc), h, nil), "Walk should succeed")

	require.Equal(t, []string{
		"start-document",
		"xml-decl version=1.0",
		"start root",
		"comment c",
		"start child",
		"chars text",
		"end child",
		"space",
		"cdata cd",
		"pi pi data",
		"end root",
		"end-document",
	}, trail, "callbacks fire in document order")
}

func TestWalkUserContext(t *testing.T) {
	type counter struct{ elements int }

	h := sax.New()
	h.StartElementHandler = func(ctx interface{}, name string, attrs []xenon.Attribute) error {
		ctx.(*counter).elements++
		return nil
	}

	c := &counter{}
	require.NoError(t, sax.Walk(stream(`<a><b/><c/></a>`), h, c), "Walk should succeed")
	require.Equal(t, 3, c.elements, "user context is passed to every callback")
}

func TestWalkTerminalError(t *testing.T) {
	var ended bool
	var seen []xenon.ErrorKind

	h := sax.New()
	h.EndDocumentHandler = func(ctx interface{}) error {
		ended = true
		return nil
	}
	h.ErrorHandler = func(ctx interface{}, ev xenon.Event) error {
		seen = append(seen, ev.Kind)
		return nil
	}

	err := sax.Walk(stream(`<a><b>`), h, nil)
	require.Error(t, err, "an unterminated document fails the walk")
	require.Equal(t, []xenon.ErrorKind{xenon.KindUnexpectedEOF}, seen, "the handler sees the error first")
	require.False(t, ended, "EndDocument does not fire on a failed walk")

	var perr xenon.ErrParseError
	require.ErrorAs(t, err, &perr, "the walk error carries the parse location")
	require.Equal(t, xenon.KindUnexpectedEOF, perr.Kind, "error kind")
}

func TestWalkToleratesNonTerminal(t *testing.T) {
	var kinds []xenon.ErrorKind

	h := sax.New()
	h.ErrorHandler = func(ctx interface{}, ev xenon.Event) error {
		kinds = append(kinds, ev.Kind)
		return nil
	}

	require.NoError(t, sax.Walk(stream(`<a x="1" x="2"><!--a--b--></a>`), h, nil),
		"non-terminal errors do not stop the walk")
	require.Equal(t, []xenon.ErrorKind{
		xenon.KindDuplicateAttribute,
		xenon.KindInvalidComment,
	}, kinds, "both warnings delivered in order")
}

func TestWalkHandlerAbort(t *testing.T) {
	boom := fmt.Errorf("enough")
	h := sax.New()
	h.StartElementHandler = func(ctx interface{}, name string, attrs []xenon.Attribute) error {
		if name == "b" {
			return boom
		}
		return nil
	}

	err := sax.Walk(stream(`<a><b/></a>`), h, nil)
	require.Equal(t, boom, err, "a handler error stops the walk and is returned")
}
