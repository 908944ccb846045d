// Package midinote spells MIDI key numbers as note names.
package midinote

// The chromatic scale with sharp spellings. Black keys never get the flat
// name; callers wanting flats must respell afterwards.
var names = [12]struct {
	Step  string
	Alter int
}{
	{"C", 0}, {"C", 1}, {"D", 0}, {"D", 1}, {"E", 0}, {"F", 0},
	{"F", 1}, {"G", 0}, {"G", 1}, {"A", 0}, {"A", 1}, {"B", 0},
}

// Name spells a MIDI key number as a step letter, a sharp count and an
// octave. Key 60 is middle C: step "C", alter 0, octave 4. Total for any
// integer, including keys outside the 0-127 MIDI range.
func Name(key int) (step string, alter int, octave int) {
	rem := key % 12
	if rem < 0 {
		rem += 12
	}
	n := names[rem]
	return n.Step, n.Alter, (key-rem)/12 - 1
}

// Key is the inverse of Name for any in-scale spelling: it maps a step
// letter, alteration and octave back to a MIDI key number. Unknown step
// letters map to C.
func Key(step string, alter, octave int) int {
	return semitones[step] + (octave+1)*12 + alter
}

var semitones = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}
