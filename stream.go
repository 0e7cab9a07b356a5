package xenon

import (
	"io"

	"github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"
)

const (
	// DefaultMaxSpans is the default bound on chunk boundaries a
	// single construct may cross.
	DefaultMaxSpans = 10

	// DefaultChunkSize is the default read size for NewStreamReader.
	DefaultChunkSize = 4096
)

// ChunkSource supplies the input one buffer at a time. Chunk sizes
// are arbitrary and unrelated to document structure; empty chunks are
// permitted. NextChunk returns io.EOF once the input is exhausted.
type ChunkSource interface {
	NextChunk() ([]byte, error)
}

type readerSource struct {
	r    io.Reader
	size int
	err  error
}

func (s *readerSource) NextChunk() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	buf := make([]byte, s.size)
	n, err := s.r.Read(buf)
	if err != nil {
		s.err = err
	}
	if n > 0 {
		return buf[:n], nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

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

type streamPhase int

const (
	phaseStreaming streamPhase = iota
	phaseJoining
	phaseDone
)

// Stream drives the block parser over a ChunkSource, producing a
// lazily consumed sequence of event batches. It never reads more
// than one chunk ahead of what it has emitted, and owns nothing but
// the continuation state and the current leftover tail between
// calls. Stream is not safe for concurrent use.
type Stream struct {
	src      ChunkSource
	state    State
	phase    streamPhase
	leftover []byte
	pending  bool
	spans    int
	maxSpans int
}

// NewStream creates a Stream over src.
func NewStream(src ChunkSource, options ...Option) *Stream {
	s := &Stream{
		src:      src,
		maxSpans: DefaultMaxSpans,
	}
	for _, o := range options {
		switch o.Ident().(type) {
		case identMaxSpans:
			s.maxSpans = o.Value().(int)
		}
	}
	return s
}

// NewStreamReader creates a Stream that pulls fixed-size chunks from
// r. The chunk size can be set with WithChunkSize.
func NewStreamReader(r io.Reader, options ...Option) *Stream {
	size := DefaultChunkSize
	for _, o := range options {
		switch o.Ident().(type) {
		case identChunkSize:
			size = o.Value().(int)
		}
	}
	return NewStream(&readerSource{r: r, size: size}, options...)
}

// Next returns the next non-empty batch of events in document order.
// Error events are part of the stream, interleaved where they occur;
// a terminal error event ends the stream. Once the input is fully
// consumed Next returns io.EOF. Any other returned error is a chunk
// source failure.
func (s *Stream) Next() ([]Event, error) {
	if pdebug.Enabled {
		g := pdebug.Marker("xenon.Stream.Next")
		defer g.End()
	}

	for {
		if s.phase == phaseDone {
			return nil, io.EOF
		}

		chunk, err := s.src.NextChunk()
		if err == io.EOF {
			return s.finish()
		}
		if err != nil {
			s.phase = phaseDone
			return nil, errors.Wrap(err, `failed to read next chunk`)
		}
		if len(chunk) == 0 {
			// nothing new arrived; no construct crossed a boundary
			continue
		}

		buf := chunk
		if s.pending {
			s.phase = phaseJoining
			buf = append(s.leftover, chunk...)
		}

		res := parseBlock(buf, s.state)
		if res.fatal {
			s.phase = phaseDone
			s.drop()
			return res.events, nil
		}
		if !res.incomplete {
			s.phase = phaseStreaming
			s.spans = 0
			s.drop()
			s.state = res.state
			if len(res.events) > 0 {
				return res.events, nil
			}
			continue
		}

		// The cap bounds boundary crossings by a single construct.
		// A block that consumed bytes or produced events made
		// progress, so its tail is a construct newly cut at this
		// boundary; only a block that did neither is the same
		// construct growing chunk after chunk.
		if s.pending && res.resumeAt == 0 && len(res.events) == 0 {
			s.spans++
		} else {
			s.spans = 1
		}
		if s.spans > s.maxSpans {
			s.phase = phaseDone
			s.drop()
			events := append(res.events, errorEvent(KindMaxChunkSpanExceeded, res.state))
			return events, nil
		}
		if pdebug.Enabled {
			pdebug.Printf("incomplete construct at abs %d, carrying %d bytes (span %d)", res.state.AbsPos, len(buf)-res.resumeAt, s.spans)
		}
		// copy only the unconsumed suffix; the confirmed part of the
		// buffer is done with
		s.leftover = append(s.leftover[:0:0], buf[res.resumeAt:]...)
		s.pending = true
		s.state = res.state
		if len(res.events) > 0 {
			return res.events, nil
		}
	}
}

// finish handles end of input: a remaining leftover gets one final
// parse with no further data; if it is still incomplete the document
// ended inside a construct.
func (s *Stream) finish() ([]Event, error) {
	if !s.pending {
		s.phase = phaseDone
		return nil, io.EOF
	}

	res := parseBlock(s.leftover, s.state)
	s.phase = phaseDone
	s.drop()
	events := res.events
	if res.incomplete {
		events = append(events, errorEvent(KindUnexpectedEOF, res.state))
	} else {
		s.state = res.state
	}
	if len(events) == 0 {
		return nil, io.EOF
	}
	return events, nil
}

func (s *Stream) drop() {
	s.pending = false
	s.leftover = nil
}

func errorEvent(kind ErrorKind, st State) Event {
	return Event{
		Type:      EventError,
		Kind:      kind,
		Line:      st.Line,
		LineStart: st.LineStart,
		AbsPos:    st.AbsPos,
	}
}

// Parse tokenizes data as a single chunk and returns all events.
func Parse(data []byte, options ...Option) ([]Event, error) {
	s := NewStream(&sliceSource{data: data}, options...)
	var events []Event
	for {
		batch, err := s.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return nil, err
		}
		events = append(events, batch...)
	}
}
