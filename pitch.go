package musicxml

import (
	"fmt"

	"github.com/subchen/go-xmldom"

	"github.com/pmoller/go-musicxml/internal/midinote"
)

// A Step is a diatonic note letter, A through G.
type Step string

const (
	StepA Step = "A"
	StepB Step = "B"
	StepC Step = "C"
	StepD Step = "D"
	StepE Step = "E"
	StepF Step = "F"
	StepG Step = "G"
)

func validStep(s Step) bool {
	switch s {
	case StepA, StepB, StepC, StepD, StepE, StepF, StepG:
		return true
	}
	return false
}

// A Pitch is the pitched content of a note: a step letter, a signed
// semitone alteration and an octave. Octave 4 starts at middle C.
type Pitch struct {
	Step   Step
	Alter  int
	Octave int
}

// NewPitchFromMIDI spells a MIDI key number as a Pitch, always choosing the
// sharp spelling for black keys. Key 60 is middle C.
func NewPitchFromMIDI(key int) Pitch {
	step, alter, octave := midinote.Name(key)
	return Pitch{Step: Step(step), Alter: alter, Octave: octave}
}

// MIDIKey maps the pitch back to a MIDI key number.
func (p Pitch) MIDIKey() int {
	return midinote.Key(string(p.Step), p.Alter, p.Octave)
}

func (p Pitch) contentTag() string { return "pitch" }

func (p Pitch) attach(parent *xmldom.Node) {
	n := parent.CreateNode("pitch")
	textChild(n, "step", string(p.Step))
	if p.Alter != 0 {
		textChild(n, "alter", p.Alter)
	}
	textChild(n, "octave", p.Octave)
}

func parsePitch(n *xmldom.Node) (Pitch, error) {
	step, err := requiredText(n, "step")
	if err != nil {
		return Pitch{}, err
	}
	if !validStep(Step(step)) {
		return Pitch{}, &ValueError{Element: n.Name, Field: "step", Value: step,
			Err: fmt.Errorf("step must be a letter A through G")}
	}
	alter, _, err := optionalInt(n, "alter")
	if err != nil {
		return Pitch{}, err
	}
	octave, err := requiredInt(n, "octave")
	if err != nil {
		return Pitch{}, err
	}
	return Pitch{Step: Step(step), Alter: alter, Octave: octave}, nil
}

// A Rest marks a note as a silence.
type Rest struct{}

func (Rest) contentTag() string { return "rest" }

func (Rest) attach(parent *xmldom.Node) { parent.CreateNode("rest") }

// An Unpitched marks a note with indeterminate pitch, such as unpitched
// percussion.
type Unpitched struct{}

func (Unpitched) contentTag() string { return "unpitched" }

func (Unpitched) attach(parent *xmldom.Node) { parent.CreateNode("unpitched") }
