package musicxml

import (
	"fmt"

	"github.com/subchen/go-xmldom"
)

// Parse reads a MusicXML score-partwise document from UTF-8 text and
// extracts it into a Score.
//
// Extraction is one strict top-down pass over the tree: errors are reported
// at the point of failure and propagate unchanged, with no partial result.
func Parse(data []byte, opts ...Option) (*Score, error) {
	o := options{}
	if err := o.apply(opts); err != nil {
		return nil, err
	}
	doc, err := xmldom.ParseXML(string(data))
	if err != nil {
		return nil, fmt.Errorf("musicxml: %w", err)
	}
	return parseScore(doc.Root, &o)
}

// ParseFile reads and parses the MusicXML document at path.
func ParseFile(path string, opts ...Option) (*Score, error) {
	o := options{}
	if err := o.apply(opts); err != nil {
		return nil, err
	}
	doc, err := xmldom.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("musicxml: %w", err)
	}
	return parseScore(doc.Root, &o)
}

// Marshal renders the score as MusicXML text, indented unless the Compact
// option is given.
func Marshal(s *Score, opts ...Option) ([]byte, error) {
	o := options{}
	if err := o.apply(opts); err != nil {
		return nil, err
	}
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	if o.compact {
		return []byte(doc.XML()), nil
	}
	return []byte(doc.XMLPretty()), nil
}
