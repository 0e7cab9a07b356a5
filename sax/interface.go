// Package sax delivers the xenon event stream to callback handlers.
// It is a consumer of the tokenizer, not part of it: events arrive in
// document order exactly as the stream produced them, including
// non-terminal error events.
package sax

import "github.com/nixlet/xenon"

type StartDocumentFunc func(interface{}) error
type EndDocumentFunc func(interface{}) error
type StartElementFunc func(interface{}, string, []xenon.Attribute) error
type EndElementFunc func(interface{}, string) error
type CharactersFunc func(interface{}, string) error
type IgnorableWhitespaceFunc func(interface{}, string) error
type CommentFunc func(interface{}, string) error
type CDATABlockFunc func(interface{}, string) error
type DoctypeFunc func(interface{}, string) error
type ProcessingInstructionFunc func(interface{}, string, string) error
type XMLDeclFunc func(interface{}, []xenon.Attribute) error
type ErrorFunc func(interface{}, xenon.Event) error

// Handler is the callback interface driven by Walk. The first
// argument is always an opaque user context value passed through
// from the Walk call.
type Handler interface {
	StartDocument(interface{}) error
	EndDocument(interface{}) error
	StartElement(interface{}, string, []xenon.Attribute) error
	EndElement(interface{}, string) error
	Characters(interface{}, string) error
	IgnorableWhitespace(interface{}, string) error
	Comment(interface{}, string) error
	CDATABlock(interface{}, string) error
	Doctype(interface{}, string) error
	ProcessingInstruction(interface{}, string, string) error
	XMLDecl(interface{}, []xenon.Attribute) error

	// Error receives every error event. Returning a non-nil error
	// stops the walk; returning nil tolerates non-terminal errors.
	Error(interface{}, xenon.Event) error
}
