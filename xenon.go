// Package xenon implements a chunked, resumable XML tokenizer.
//
// The tokenizer consumes XML input in arbitrarily sized byte chunks
// and produces a stream of structural events (start/end elements,
// text, comments, CDATA sections, DOCTYPE declarations, processing
// instructions) in document order. A construct that runs past the end
// of a chunk is carried over as a small continuation value and
// re-joined with the next chunk, so memory use stays O(1) with
// respect to document size.
//
// xenon does not resolve entities, does not validate against a
// schema, and does not perform namespace resolution. Those concerns
// belong to downstream consumers of the event stream; see the sax
// subpackage for a callback-style consumer.
package xenon

// Version is the library version, reported by command line tools
// built on top of xenon.
const Version = "0.1.0"
