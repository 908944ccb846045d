package musicxml_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/subchen/go-xmldom"

	"github.com/pmoller/go-musicxml"
)

func attributesNode(t *testing.T, a *musicxml.Attributes) *xmldom.Node {
	t.Helper()
	score := &musicxml.Score{
		PartList: musicxml.PartList{&musicxml.ScorePart{ID: "P1", Name: "One"}},
		Parts: []*musicxml.Part{
			{ID: "P1", Measures: []*musicxml.Measure{{Number: 1, Attributes: a}}},
		},
	}
	doc, err := score.Document()
	require.NoError(t, err)
	n := doc.Root.FindOneByName("attributes")
	require.NotNil(t, n)
	return n
}

func TestAttributesSerialization(t *testing.T) {
	t.Run("optional children are absent when unset", func(t *testing.T) {
		n := attributesNode(t, &musicxml.Attributes{
			Divisions: 4,
			Key:       musicxml.Key{Fifths: 0},
			Time:      musicxml.Time{Beats: 4, BeatType: 4},
		})

		var tags []string
		for _, c := range n.Children {
			tags = append(tags, c.Name)
		}
		require.Equal(t, []string{"divisions", "key", "time"}, tags)
	})

	t.Run("children follow schema order", func(t *testing.T) {
		clef := musicxml.Clef{Sign: musicxml.ClefG, Line: 2}
		transpose := musicxml.Transpose{Diatonic: -1, Chromatic: -2}
		n := attributesNode(t, &musicxml.Attributes{
			Divisions:   8,
			Key:         musicxml.Key{Fifths: 3, Mode: "minor"},
			Time:        musicxml.Time{Beats: 6, BeatType: 8},
			Staves:      2,
			Instruments: 1,
			Clef:        &clef,
			Transpose:   &transpose,
		})

		var tags []string
		for _, c := range n.Children {
			tags = append(tags, c.Name)
		}
		require.Equal(t, []string{"divisions", "key", "time", "staves", "instruments", "clef", "transpose"}, tags)
	})

	t.Run("zero time defaults to common time", func(t *testing.T) {
		n := attributesNode(t, &musicxml.Attributes{
			Divisions: 1,
			Key:       musicxml.Key{Fifths: 0},
		})
		tn := n.FindOneByName("time")
		require.NotNil(t, tn)
		beats := tn.GetChild("beats")
		require.NotNil(t, beats)
		require.Equal(t, "4", beats.Text)
		beatType := tn.GetChild("beat-type")
		require.NotNil(t, beatType)
		require.Equal(t, "4", beatType.Text)
	})
}

func TestAttributesExtraction(t *testing.T) {
	parse := func(t *testing.T, attrs string) (*musicxml.Attributes, error) {
		t.Helper()
		doc := `<score-partwise version="3.0">
  <part-list>
    <score-part id="P1"><part-name>One</part-name></score-part>
  </part-list>
  <part id="P1">
    <measure number="1"><attributes>` + attrs + `</attributes></measure>
  </part>
</score-partwise>`
		score, err := musicxml.Parse([]byte(doc))
		if err != nil {
			return nil, err
		}
		return score.Parts[0].Measures[0].Attributes, nil
	}

	t.Run("optional fields stay unset", func(t *testing.T) {
		a, err := parse(t, `<divisions>4</divisions><key><fifths>-2</fifths></key><time><beats>2</beats><beat-type>2</beat-type></time>`)
		require.NoError(t, err)
		require.Equal(t, 4, a.Divisions)
		require.Equal(t, musicxml.Key{Fifths: -2}, a.Key)
		require.Equal(t, musicxml.Time{Beats: 2, BeatType: 2}, a.Time)
		require.Zero(t, a.Staves)
		require.Zero(t, a.Instruments)
		require.Nil(t, a.Clef)
		require.Nil(t, a.Transpose)
	})

	t.Run("all fields", func(t *testing.T) {
		a, err := parse(t, `<divisions>8</divisions>`+
			`<key><fifths>3</fifths><mode>minor</mode></key>`+
			`<time><beats>6</beats><beat-type>8</beat-type></time>`+
			`<staves>2</staves><instruments>1</instruments>`+
			`<clef><sign>F</sign><line>4</line></clef>`+
			`<transpose><diatonic>-1</diatonic><chromatic>-2</chromatic><octave-change>-1</octave-change><double/></transpose>`)
		require.NoError(t, err)
		require.Equal(t, 2, a.Staves)
		require.Equal(t, 1, a.Instruments)
		require.Equal(t, &musicxml.Clef{Sign: musicxml.ClefF, Line: 4}, a.Clef)
		require.Equal(t, &musicxml.Transpose{Diatonic: -1, Chromatic: -2, OctaveChange: -1, Double: true}, a.Transpose)
	})

	t.Run("missing divisions", func(t *testing.T) {
		_, err := parse(t, `<key><fifths>0</fifths></key><time><beats>4</beats><beat-type>4</beat-type></time>`)
		var missing *musicxml.MissingFieldError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, "divisions", missing.Field)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := parse(t, `<divisions>1</divisions><time><beats>4</beats><beat-type>4</beat-type></time>`)
		var missing *musicxml.MissingFieldError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, "key", missing.Field)
	})

	t.Run("malformed fifths", func(t *testing.T) {
		_, err := parse(t, `<divisions>1</divisions><key><fifths>sharpish</fifths></key><time><beats>4</beats><beat-type>4</beat-type></time>`)
		var value *musicxml.ValueError
		require.ErrorAs(t, err, &value)
		require.Equal(t, "fifths", value.Field)
	})
}
