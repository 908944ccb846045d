package musicxml

import (
	"errors"
	"fmt"
)

// Errors reported when a <note> element does not carry exactly one of
// <pitch>, <rest> and <unpitched>.
var (
	ErrMissingNoteContent   = errors.New("musicxml: note has none of pitch, rest or unpitched")
	ErrAmbiguousNoteContent = errors.New("musicxml: note has more than one of pitch, rest and unpitched")
)

// An UnsupportedDocumentError is returned by Parse when the root element of
// a document is not <score-partwise>.
type UnsupportedDocumentError struct {
	Root string // tag of the root element actually found
}

func (e *UnsupportedDocumentError) Error() string {
	return fmt.Sprintf("musicxml: unsupported document kind <%s>, want <score-partwise>", e.Root)
}

// A MissingFieldError reports a required child element or attribute that
// was absent during extraction.
type MissingFieldError struct {
	Element string // tag of the element being extracted
	Field   string // tag of the missing child, or name of the missing attribute
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("musicxml: <%s> is missing required field %q", e.Element, e.Field)
}

// A ValueError reports element text that did not parse as its declared type.
type ValueError struct {
	Element string
	Field   string
	Value   string
	Err     error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("musicxml: <%s> field %q has malformed value %q: %v", e.Element, e.Field, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }
