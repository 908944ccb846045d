package musicxml

import (
	"fmt"
	"strconv"

	"github.com/subchen/go-xmldom"
)

// A Measure is one numbered time span of a part: optional leading
// attributes and an ordered run of notes. A nil Attributes field means the
// attributes in effect from earlier measures still apply; see
// InheritAttributes for resolving that eagerly at parse time.
type Measure struct {
	Number     int
	Attributes *Attributes
	Notes      []*Note
}

func (m *Measure) node(parent *xmldom.Node) error {
	n := parent.CreateNode("measure")
	n.SetAttributeValue("number", strconv.Itoa(m.Number))
	if m.Attributes != nil {
		m.Attributes.node(n)
	}
	for _, note := range m.Notes {
		if err := note.node(n); err != nil {
			return err
		}
	}
	return nil
}

func parseMeasure(n *xmldom.Node) (*Measure, error) {
	number, err := intAttr(n, "number")
	if err != nil {
		return nil, err
	}
	m := &Measure{Number: number}
	if c := child(n, "attributes"); c != nil {
		if m.Attributes, err = parseAttributes(c); err != nil {
			return nil, err
		}
	}
	for _, c := range children(n, "note") {
		note, err := parseNote(c)
		if err != nil {
			return nil, err
		}
		m.Notes = append(m.Notes, note)
	}
	return m, nil
}

// A Part is one instrumental or vocal line: an id referring to a score-part
// entry and an ordered sequence of measures.
type Part struct {
	ID       string
	Measures []*Measure
}

func (p *Part) node(parent *xmldom.Node) error {
	n := parent.CreateNode("part")
	n.SetAttributeValue("id", p.ID)
	for _, m := range p.Measures {
		if err := m.node(n); err != nil {
			return err
		}
	}
	return nil
}

func parsePart(n *xmldom.Node) (*Part, error) {
	id, err := requiredAttr(n, "id")
	if err != nil {
		return nil, err
	}
	p := &Part{ID: id}
	for _, c := range children(n, "measure") {
		m, err := parseMeasure(c)
		if err != nil {
			return nil, err
		}
		p.Measures = append(p.Measures, m)
	}
	return p, nil
}

// A Score is the root aggregate of a score-partwise document: the part list
// followed by the parts themselves, in document order.
type Score struct {
	PartList PartList
	Parts    []*Part
}

const (
	rootTag = "score-partwise"

	doctype = `<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 3.0 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">`
)

// Document renders the score as a fresh XML document tree. The tree is a
// derived artifact: it holds no reference back to the score and a later
// change to the score is reflected only by rendering again.
func (s *Score) Document() (*xmldom.Document, error) {
	doc := xmldom.NewDocument(rootTag)
	doc.Directives = append(doc.Directives, doctype)
	doc.Root.SetAttributeValue("version", "3.0")
	s.PartList.node(doc.Root)
	for _, p := range s.Parts {
		if err := p.node(doc.Root); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Validate checks the cross-references the extractor deliberately leaves
// alone: score-part ids must be unique, and every part id must name a
// part-list entry.
func (s *Score) Validate() error {
	seen := make(map[string]bool, len(s.PartList))
	for _, sp := range s.PartList {
		if seen[sp.ID] {
			return fmt.Errorf("musicxml: duplicate score-part id %q", sp.ID)
		}
		seen[sp.ID] = true
	}
	for _, p := range s.Parts {
		if !seen[p.ID] {
			return fmt.Errorf("musicxml: part id %q has no score-part entry", p.ID)
		}
	}
	return nil
}

func parseScore(root *xmldom.Node, o *options) (*Score, error) {
	if root == nil {
		return nil, &UnsupportedDocumentError{Root: ""}
	}
	if root.Name != rootTag {
		return nil, &UnsupportedDocumentError{Root: root.Name}
	}
	pln := child(root, "part-list")
	if pln == nil {
		return nil, &MissingFieldError{Element: root.Name, Field: "part-list"}
	}
	pl, err := parsePartList(pln)
	if err != nil {
		return nil, err
	}
	s := &Score{PartList: pl}
	for _, c := range children(root, "part") {
		p, err := parsePart(c)
		if err != nil {
			return nil, err
		}
		s.Parts = append(s.Parts, p)
	}
	if o.inheritAttributes {
		s.resolveAttributes()
	}
	return s, nil
}

// resolveAttributes copies the attributes in effect into every measure that
// has none. Copies keep the measures independent of each other.
func (s *Score) resolveAttributes() {
	for _, p := range s.Parts {
		var current *Attributes
		for _, m := range p.Measures {
			if m.Attributes != nil {
				current = m.Attributes
				continue
			}
			if current != nil {
				inherited := *current
				m.Attributes = &inherited
			}
		}
	}
}
