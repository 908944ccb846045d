package musicxml

import (
	"github.com/subchen/go-xmldom"
)

// A Key is a key signature given as a signed circle-of-fifths count:
// positive for sharps, negative for flats. Mode is optional ("major",
// "minor", ...) and empty when absent.
type Key struct {
	Fifths int
	Mode   string
}

func (k Key) node(parent *xmldom.Node) {
	n := parent.CreateNode("key")
	textChild(n, "fifths", k.Fifths)
	if k.Mode != "" {
		textChild(n, "mode", k.Mode)
	}
}

func parseKey(n *xmldom.Node) (Key, error) {
	fifths, err := requiredInt(n, "fifths")
	if err != nil {
		return Key{}, err
	}
	mode, _ := childText(n, "mode")
	return Key{Fifths: fifths, Mode: mode}, nil
}

// A Time is a time signature: beats per measure over the beat unit.
type Time struct {
	Beats    int
	BeatType int
}

// CommonTime is 4/4, the default when attributes carry a zero Time.
var CommonTime = Time{Beats: 4, BeatType: 4}

func (t Time) node(parent *xmldom.Node) {
	n := parent.CreateNode("time")
	textChild(n, "beats", t.Beats)
	textChild(n, "beat-type", t.BeatType)
}

func parseTime(n *xmldom.Node) (Time, error) {
	beats, err := requiredInt(n, "beats")
	if err != nil {
		return Time{}, err
	}
	beatType, err := requiredInt(n, "beat-type")
	if err != nil {
		return Time{}, err
	}
	return Time{Beats: beats, BeatType: beatType}, nil
}

// A ClefSign names the symbol of a clef.
type ClefSign string

const (
	ClefG          ClefSign = "G"
	ClefF          ClefSign = "F"
	ClefC          ClefSign = "C"
	ClefPercussion ClefSign = "percussion"
	ClefTAB        ClefSign = "TAB"
	ClefJianpu     ClefSign = "jianpu"
	ClefNone       ClefSign = "none"
)

// A Clef places a clef sign on a staff line (1, the bottom line, through 5).
// Line 0 means the sign carries no line, as with percussion clefs.
type Clef struct {
	Sign ClefSign
	Line int
}

func (c Clef) node(parent *xmldom.Node) {
	n := parent.CreateNode("clef")
	textChild(n, "sign", string(c.Sign))
	if c.Line != 0 {
		textChild(n, "line", c.Line)
	}
}

func parseClef(n *xmldom.Node) (Clef, error) {
	sign, err := requiredText(n, "sign")
	if err != nil {
		return Clef{}, err
	}
	line, _, err := optionalInt(n, "line")
	if err != nil {
		return Clef{}, err
	}
	return Clef{Sign: ClefSign(sign), Line: line}, nil
}

// A Transpose describes the interval between written and sounding pitch for
// a transposing instrument. OctaveChange shifts by whole octaves; Double
// marks the part as doubled an octave below written.
type Transpose struct {
	Diatonic     int
	Chromatic    int
	OctaveChange int
	Double       bool
}

func (t Transpose) node(parent *xmldom.Node) {
	n := parent.CreateNode("transpose")
	textChild(n, "diatonic", t.Diatonic)
	textChild(n, "chromatic", t.Chromatic)
	if t.OctaveChange != 0 {
		textChild(n, "octave-change", t.OctaveChange)
	}
	if t.Double {
		n.CreateNode("double")
	}
}

func parseTranspose(n *xmldom.Node) (Transpose, error) {
	diatonic, err := requiredInt(n, "diatonic")
	if err != nil {
		return Transpose{}, err
	}
	chromatic, err := requiredInt(n, "chromatic")
	if err != nil {
		return Transpose{}, err
	}
	octaveChange, _, err := optionalInt(n, "octave-change")
	if err != nil {
		return Transpose{}, err
	}
	return Transpose{
		Diatonic:     diatonic,
		Chromatic:    chromatic,
		OctaveChange: octaveChange,
		Double:       child(n, "double") != nil,
	}, nil
}

// Attributes carries the notation state that takes effect at the start of a
// measure and applies until overridden: the divisions unit, key and time
// signatures and, optionally, staff count, instrument count, clef and
// transposition. Staves and Instruments are 0 when absent.
type Attributes struct {
	Divisions   int
	Key         Key
	Time        Time
	Staves      int
	Instruments int
	Clef        *Clef
	Transpose   *Transpose
}

// Child elements are emitted in the schema order divisions, key, time,
// staves, instruments, clef, transpose. A zero Time is written as 4/4.
func (a *Attributes) node(parent *xmldom.Node) {
	n := parent.CreateNode("attributes")
	textChild(n, "divisions", a.Divisions)
	a.Key.node(n)
	t := a.Time
	if t == (Time{}) {
		t = CommonTime
	}
	t.node(n)
	if a.Staves != 0 {
		textChild(n, "staves", a.Staves)
	}
	if a.Instruments != 0 {
		textChild(n, "instruments", a.Instruments)
	}
	if a.Clef != nil {
		a.Clef.node(n)
	}
	if a.Transpose != nil {
		a.Transpose.node(n)
	}
}

func parseAttributes(n *xmldom.Node) (*Attributes, error) {
	divisions, err := requiredInt(n, "divisions")
	if err != nil {
		return nil, err
	}
	kn := child(n, "key")
	if kn == nil {
		return nil, &MissingFieldError{Element: n.Name, Field: "key"}
	}
	key, err := parseKey(kn)
	if err != nil {
		return nil, err
	}
	tn := child(n, "time")
	if tn == nil {
		return nil, &MissingFieldError{Element: n.Name, Field: "time"}
	}
	time, err := parseTime(tn)
	if err != nil {
		return nil, err
	}

	a := &Attributes{Divisions: divisions, Key: key, Time: time}
	if a.Staves, _, err = optionalInt(n, "staves"); err != nil {
		return nil, err
	}
	if a.Instruments, _, err = optionalInt(n, "instruments"); err != nil {
		return nil, err
	}
	if cn := child(n, "clef"); cn != nil {
		clef, err := parseClef(cn)
		if err != nil {
			return nil, err
		}
		a.Clef = &clef
	}
	if trn := child(n, "transpose"); trn != nil {
		tr, err := parseTranspose(trn)
		if err != nil {
			return nil, err
		}
		a.Transpose = &tr
	}
	return a, nil
}
