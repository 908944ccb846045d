package musicxml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmoller/go-musicxml"
)

func TestNewPitchFromMIDI(t *testing.T) {
	tests := []struct {
		key  int
		want musicxml.Pitch
	}{
		{60, musicxml.Pitch{Step: musicxml.StepC, Alter: 0, Octave: 4}},
		{61, musicxml.Pitch{Step: musicxml.StepC, Alter: 1, Octave: 4}},
		{0, musicxml.Pitch{Step: musicxml.StepC, Alter: 0, Octave: -1}},
		{69, musicxml.Pitch{Step: musicxml.StepA, Alter: 0, Octave: 4}},
		{70, musicxml.Pitch{Step: musicxml.StepA, Alter: 1, Octave: 4}},
		{127, musicxml.Pitch{Step: musicxml.StepG, Alter: 0, Octave: 9}},
		{-1, musicxml.Pitch{Step: musicxml.StepB, Alter: 0, Octave: -2}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, musicxml.NewPitchFromMIDI(tt.key), "key %d", tt.key)
	}

	t.Run("sharp spelling only", func(t *testing.T) {
		for key := 0; key < 128; key++ {
			p := musicxml.NewPitchFromMIDI(key)
			require.GreaterOrEqual(t, p.Alter, 0, "key %d must not be spelled flat", key)
			require.LessOrEqual(t, p.Alter, 1, "key %d", key)
		}
	})

	t.Run("octave steps every twelve keys", func(t *testing.T) {
		for key := -36; key < 132; key++ {
			require.Equal(t,
				musicxml.NewPitchFromMIDI(key).Octave+1,
				musicxml.NewPitchFromMIDI(key+12).Octave,
				"key %d", key)
		}
	})
}

func TestPitchMIDIKey(t *testing.T) {
	// MIDIKey inverts NewPitchFromMIDI across the whole MIDI range.
	for key := 0; key < 128; key++ {
		require.Equal(t, key, musicxml.NewPitchFromMIDI(key).MIDIKey())
	}

	middleC := musicxml.Pitch{Step: musicxml.StepC, Octave: 4}
	require.Equal(t, 60, middleC.MIDIKey())

	bFlat := musicxml.Pitch{Step: musicxml.StepB, Alter: -1, Octave: 3}
	require.Equal(t, 58, bFlat.MIDIKey(), "flat spellings map to the same key as their sharp twin")
}
