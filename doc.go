/*
Package musicxml reads and writes MusicXML "score-partwise" documents,
mapping between an XML tree and a typed in-memory model of a musical score.

The package offers two directions of travel:

1. Extraction

Parse and ParseFile turn MusicXML text into a *Score, walking the document
top-down through its part list, parts, measures and notes. Extraction is
strict: a missing required element or a value that does not parse as its
declared type stops the walk and reports a typed error.

	score, err := musicxml.ParseFile("prelude.xml")
	if err != nil {
		// handle error
	}
	first := score.Parts[0].Measures[0].Notes[0]

2. Serialization

A Score built from plain values marshals back to well-formed MusicXML.
Every type is a pure record; its XML form is produced on demand and never
cached, so records can be composed and reused freely.

	pitch := musicxml.NewPitchFromMIDI(60) // middle C
	note, err := musicxml.NewNote(pitch, 1)
	if err != nil {
		// handle error
	}
	// ... assemble measures, parts and a part list ...
	out, err := musicxml.Marshal(score)

Only the score-partwise subset described in the README is understood:
a part-list of score-part entries, then parts of measures, each measure
holding optional leading attributes and a run of notes. Documents with a
different root element are rejected with an UnsupportedDocumentError.

A parsed Score can also be rendered to a Standard MIDI File with
Score.SMF, using the score's divisions value as the tick resolution.

Behaviour is customized with functional options such as InheritAttributes
and Compact.
*/
package musicxml
