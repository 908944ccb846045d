package musicxml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/subchen/go-xmldom"
)

// An IDPolicy derives the id attribute of per-part instrument metadata from
// the owning part's id, and recovers the part id on the way back. The
// default policies below follow the widespread "{part}-I1" convention; a
// caller emitting or consuming differently suffixed documents can swap in
// its own policy.
type IDPolicy struct {
	Suffix string
}

// Format returns the derived element id for a part.
func (p IDPolicy) Format(partID string) string { return partID + p.Suffix }

// Parse recovers the part id from a derived element id.
func (p IDPolicy) Parse(id string) (string, error) {
	base, ok := strings.CutSuffix(id, p.Suffix)
	if !ok || base == "" {
		return "", fmt.Errorf("musicxml: id %q does not have suffix %q", id, p.Suffix)
	}
	return base, nil
}

// The id policies used for the three instrument elements. MusicXML ties all
// three to the part's first instrument, so they share a suffix.
var (
	ScoreInstrumentIDs = IDPolicy{Suffix: "-I1"}
	MidiDeviceIDs      = IDPolicy{Suffix: "-I1"}
	MidiInstrumentIDs  = IDPolicy{Suffix: "-I1"}
)

// A ScoreInstrument names the sound a part is played with.
type ScoreInstrument struct {
	PartID string
	Name   string
}

func (si *ScoreInstrument) node(parent *xmldom.Node) {
	n := parent.CreateNode("score-instrument")
	n.SetAttributeValue("id", ScoreInstrumentIDs.Format(si.PartID))
	textChild(n, "instrument-name", si.Name)
}

func parseScoreInstrument(n *xmldom.Node) (*ScoreInstrument, error) {
	id, err := requiredAttr(n, "id")
	if err != nil {
		return nil, err
	}
	partID, err := ScoreInstrumentIDs.Parse(id)
	if err != nil {
		return nil, &ValueError{Element: n.Name, Field: "id", Value: id, Err: err}
	}
	name, err := requiredText(n, "instrument-name")
	if err != nil {
		return nil, err
	}
	return &ScoreInstrument{PartID: partID, Name: name}, nil
}

// A MidiDevice assigns a part's instrument to a MIDI port.
type MidiDevice struct {
	PartID string
	Port   int
}

func (d *MidiDevice) node(parent *xmldom.Node) {
	n := parent.CreateNode("midi-device")
	n.SetAttributeValue("id", MidiDeviceIDs.Format(d.PartID))
	if d.Port != 0 {
		n.SetAttributeValue("port", fmt.Sprint(d.Port))
	}
}

func parseMidiDevice(n *xmldom.Node) (*MidiDevice, error) {
	id, err := requiredAttr(n, "id")
	if err != nil {
		return nil, err
	}
	partID, err := MidiDeviceIDs.Parse(id)
	if err != nil {
		return nil, &ValueError{Element: n.Name, Field: "id", Value: id, Err: err}
	}
	d := &MidiDevice{PartID: partID}
	if s := n.GetAttributeValue("port"); s != "" {
		port, err := strconv.Atoi(s)
		if err != nil {
			return nil, &ValueError{Element: n.Name, Field: "port", Value: s, Err: err}
		}
		d.Port = port
	}
	return d, nil
}

// A MidiInstrument carries MIDI playback setup for a part. Channel is
// 0-based (0-15) in the model and written 1-based on the wire, matching the
// MusicXML schema. Volume is a percentage and Pan a degree angle, -180
// through 180, with 0 straight ahead.
type MidiInstrument struct {
	PartID  string
	Channel int
	Program int
	Volume  int
	Pan     int
}

// NewMidiInstrument validates the MIDI ranges: channel 0-15, program 0-127,
// volume 0-100, pan -180 through 180.
func NewMidiInstrument(partID string, channel, program, volume, pan int) (*MidiInstrument, error) {
	if channel < 0 || channel > 15 {
		return nil, fmt.Errorf("musicxml: midi channel %d out of range 0-15", channel)
	}
	if program < 0 || program > 127 {
		return nil, fmt.Errorf("musicxml: midi program %d out of range 0-127", program)
	}
	if volume < 0 || volume > 100 {
		return nil, fmt.Errorf("musicxml: midi volume %d out of range 0-100", volume)
	}
	if pan < -180 || pan > 180 {
		return nil, fmt.Errorf("musicxml: midi pan %d out of range -180-180", pan)
	}
	return &MidiInstrument{PartID: partID, Channel: channel, Program: program, Volume: volume, Pan: pan}, nil
}

func (mi *MidiInstrument) node(parent *xmldom.Node) {
	n := parent.CreateNode("midi-instrument")
	n.SetAttributeValue("id", MidiInstrumentIDs.Format(mi.PartID))
	textChild(n, "midi-channel", mi.Channel+1)
	textChild(n, "midi-program", mi.Program)
	textChild(n, "volume", mi.Volume)
	textChild(n, "pan", mi.Pan)
}

func parseMidiInstrument(n *xmldom.Node) (*MidiInstrument, error) {
	id, err := requiredAttr(n, "id")
	if err != nil {
		return nil, err
	}
	partID, err := MidiInstrumentIDs.Parse(id)
	if err != nil {
		return nil, &ValueError{Element: n.Name, Field: "id", Value: id, Err: err}
	}
	channel, err := requiredInt(n, "midi-channel")
	if err != nil {
		return nil, err
	}
	program, err := requiredInt(n, "midi-program")
	if err != nil {
		return nil, err
	}
	volume, _, err := optionalInt(n, "volume")
	if err != nil {
		return nil, err
	}
	pan, _, err := optionalInt(n, "pan")
	if err != nil {
		return nil, err
	}
	return NewMidiInstrument(partID, channel-1, program, volume, pan)
}

// A ScorePart is one entry of the part list: the part's id, display name
// and optional instrument metadata.
type ScorePart struct {
	ID         string
	Name       string
	Instrument *ScoreInstrument
	Device     *MidiDevice
	Midi       *MidiInstrument
}

// NewScorePart builds a part-list entry with the required MIDI playback
// setup bound to the part's id.
func NewScorePart(id, name string, midi MidiInstrument) *ScorePart {
	midi.PartID = id
	return &ScorePart{ID: id, Name: name, Midi: &midi}
}

func (sp *ScorePart) node(parent *xmldom.Node) {
	n := parent.CreateNode("score-part")
	n.SetAttributeValue("id", sp.ID)
	textChild(n, "part-name", sp.Name)
	if sp.Instrument != nil {
		sp.Instrument.node(n)
	}
	if sp.Device != nil {
		sp.Device.node(n)
	}
	if sp.Midi != nil {
		sp.Midi.node(n)
	}
}

func parseScorePart(n *xmldom.Node) (*ScorePart, error) {
	id, err := requiredAttr(n, "id")
	if err != nil {
		return nil, err
	}
	name, err := requiredText(n, "part-name")
	if err != nil {
		return nil, err
	}
	sp := &ScorePart{ID: id, Name: name}
	if c := child(n, "score-instrument"); c != nil {
		if sp.Instrument, err = parseScoreInstrument(c); err != nil {
			return nil, err
		}
	}
	if c := child(n, "midi-device"); c != nil {
		if sp.Device, err = parseMidiDevice(c); err != nil {
			return nil, err
		}
	}
	if c := child(n, "midi-instrument"); c != nil {
		if sp.Midi, err = parseMidiInstrument(c); err != nil {
			return nil, err
		}
	}
	return sp, nil
}

// A PartList is the ordered list of score-part entries that opens a
// score-partwise document.
type PartList []*ScorePart

// ByID returns the entry with the given part id, or nil.
func (pl PartList) ByID(id string) *ScorePart {
	for _, sp := range pl {
		if sp.ID == id {
			return sp
		}
	}
	return nil
}

func (pl PartList) node(parent *xmldom.Node) {
	n := parent.CreateNode("part-list")
	for _, sp := range pl {
		sp.node(n)
	}
}

func parsePartList(n *xmldom.Node) (PartList, error) {
	var pl PartList
	for _, c := range children(n, "score-part") {
		sp, err := parseScorePart(c)
		if err != nil {
			return nil, err
		}
		pl = append(pl, sp)
	}
	return pl, nil
}
