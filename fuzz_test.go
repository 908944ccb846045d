//go:build go1.18

package musicxml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pmoller/go-musicxml"
)

func FuzzParse(f *testing.F) {
	// Seed the corpus with the valid scores from the testdata directory.
	seedFiles, err := filepath.Glob("testdata/*.xml")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	// And some structurally interesting fragments.
	f.Add([]byte(`<score-partwise/>`))
	f.Add([]byte(`<score-timewise/>`))
	f.Add([]byte(`<score-partwise><part-list/></score-partwise>`))
	f.Add([]byte(`<note><rest/><duration>1</duration></note>`))
	f.Add([]byte(``))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Parse must never panic. When it succeeds, the result must
		// survive a marshal and re-parse cycle.
		score, err := musicxml.Parse(data)
		if err != nil {
			return
		}
		out, err := musicxml.Marshal(score)
		if err != nil {
			t.Fatalf("marshal of parsed score failed: %v", err)
		}
		if _, err := musicxml.Parse(out); err != nil {
			t.Fatalf("re-parse of marshaled score failed: %v", err)
		}
	})
}
