package musicxml

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	smfVelocity = 90

	ccVolume uint8 = 7
	ccPan    uint8 = 10
)

// SMF renders the score as a Standard MIDI File with one track per part.
//
// The file's tick resolution is the score's divisions value, so note
// durations carry over directly: a note of duration d spans d ticks.
// Pitched notes become NoteOn/NoteOff pairs, rests and unpitched notes
// advance time silently. A part's MidiInstrument entry, when present,
// contributes its channel and opening program, volume and pan messages.
func (s *Score) SMF() (*smf.SMF, error) {
	divisions := s.divisions()
	if divisions <= 0 {
		return nil, fmt.Errorf("musicxml: score carries no divisions, cannot derive a tick resolution")
	}

	var file smf.SMF
	file.TimeFormat = smf.MetricTicks(divisions)
	for _, p := range s.Parts {
		tr, err := partTrack(p, s.PartList.ByID(p.ID))
		if err != nil {
			return nil, err
		}
		file.Tracks = append(file.Tracks, tr)
	}
	return &file, nil
}

// divisions returns the first divisions value declared in the score, or 0.
func (s *Score) divisions() int {
	for _, p := range s.Parts {
		for _, m := range p.Measures {
			if m.Attributes != nil && m.Attributes.Divisions != 0 {
				return m.Attributes.Divisions
			}
		}
	}
	return 0
}

func partTrack(p *Part, sp *ScorePart) (smf.Track, error) {
	var tr smf.Track
	ch := uint8(0)
	if sp != nil {
		tr.Add(0, smf.MetaInstrument(sp.Name))
		if sp.Midi != nil {
			ch = uint8(sp.Midi.Channel)
			tr.Add(0, midi.ProgramChange(ch, uint8(sp.Midi.Program)))
			tr.Add(0, midi.ControlChange(ch, ccVolume, volumeCC(sp.Midi.Volume)))
			tr.Add(0, midi.ControlChange(ch, ccPan, panCC(sp.Midi.Pan)))
		}
	}
	if len(p.Measures) > 0 && p.Measures[0].Attributes != nil {
		t := p.Measures[0].Attributes.Time
		if t == (Time{}) {
			t = CommonTime
		}
		tr.Add(0, smf.MetaMeter(uint8(t.Beats), uint8(t.BeatType)))
	}

	var delta uint32
	for _, m := range p.Measures {
		for _, n := range m.Notes {
			pitch, ok := n.Content.(Pitch)
			if !ok {
				// Rests and unpitched notes just advance time.
				delta += uint32(n.Duration)
				continue
			}
			key := pitch.MIDIKey()
			if key < 0 || key > 127 {
				return nil, fmt.Errorf("musicxml: pitch %s%d is outside the MIDI key range", pitch.Step, pitch.Octave)
			}
			tr.Add(delta, midi.NoteOn(ch, uint8(key), smfVelocity))
			tr.Add(uint32(n.Duration), midi.NoteOff(ch, uint8(key)))
			delta = 0
		}
	}
	tr.Close(delta)
	return tr, nil
}

// volumeCC maps a MusicXML percent volume to a controller value.
func volumeCC(v int) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 100 {
		return 127
	}
	return uint8(v * 127 / 100)
}

// panCC maps a MusicXML pan angle (-180 through 180, 0 straight ahead) to a
// controller value with 64 as center. Angles behind the listener clamp to
// full left or right.
func panCC(deg int) uint8 {
	if deg < -90 {
		deg = -90
	}
	if deg > 90 {
		deg = 90
	}
	return uint8(64 + deg*63/90)
}
