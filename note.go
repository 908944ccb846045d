package musicxml

import (
	"fmt"
	"strconv"

	"github.com/subchen/go-xmldom"
)

// NoteContent is the payload variant of a Note: exactly one of Pitch, Rest
// or Unpitched. The variant is decided once, at construction, and cannot
// disagree with itself afterwards.
type NoteContent interface {
	contentTag() string
	attach(parent *xmldom.Node)
}

// A NoteType names the graphical length of a note.
type NoteType string

const (
	Whole        NoteType = "whole"
	Half         NoteType = "half"
	Quarter      NoteType = "quarter"
	Eighth       NoteType = "eighth"
	Sixteenth    NoteType = "16th"
	ThirtySecond NoteType = "32nd"
	SixtyFourth  NoteType = "64th"
)

// An Accidental names the printed accidental of a note.
type Accidental string

const (
	Sharp       Accidental = "sharp"
	Flat        Accidental = "flat"
	Natural     Accidental = "natural"
	DoubleSharp Accidental = "double-sharp"
	FlatFlat    Accidental = "flat-flat"
)

// A Note is one sounding (or silent) event in a measure. Duration is
// counted in the divisions unit established by the measure attributes in
// effect. Type and Accidental are optional and empty when absent.
type Note struct {
	Content    NoteContent
	Duration   int
	Type       NoteType
	Accidental Accidental
}

// NewNote builds a note from its content variant and a duration in
// divisions units. A nil content reports ErrMissingNoteContent; a negative
// duration is rejected.
func NewNote(content NoteContent, duration int) (*Note, error) {
	if content == nil {
		return nil, ErrMissingNoteContent
	}
	if duration < 0 {
		return nil, fmt.Errorf("musicxml: negative note duration %d", duration)
	}
	return &Note{Content: content, Duration: duration}, nil
}

func (n *Note) node(parent *xmldom.Node) error {
	if n.Content == nil {
		return ErrMissingNoteContent
	}
	nn := parent.CreateNode("note")
	n.Content.attach(nn)
	textChild(nn, "duration", n.Duration)
	if n.Type != "" {
		textChild(nn, "type", string(n.Type))
	}
	if n.Accidental != "" {
		textChild(nn, "accidental", string(n.Accidental))
	}
	return nil
}

func parseNote(n *xmldom.Node) (*Note, error) {
	var content NoteContent
	var found int
	if c := child(n, "pitch"); c != nil {
		p, err := parsePitch(c)
		if err != nil {
			return nil, err
		}
		content = p
		found++
	}
	if child(n, "rest") != nil {
		content = Rest{}
		found++
	}
	if child(n, "unpitched") != nil {
		content = Unpitched{}
		found++
	}
	switch {
	case found == 0:
		return nil, ErrMissingNoteContent
	case found > 1:
		return nil, ErrAmbiguousNoteContent
	}

	duration, err := requiredInt(n, "duration")
	if err != nil {
		return nil, err
	}
	if duration < 0 {
		return nil, &ValueError{Element: n.Name, Field: "duration", Value: strconv.Itoa(duration),
			Err: fmt.Errorf("duration must not be negative")}
	}
	note := &Note{Content: content, Duration: duration}
	if s, ok := childText(n, "type"); ok {
		note.Type = NoteType(s)
	}
	if s, ok := childText(n, "accidental"); ok {
		note.Accidental = Accidental(s)
	}
	return note, nil
}
