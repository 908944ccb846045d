package musicxml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/subchen/go-xmldom"
)

// Helpers shared by the per-type node builders and extractors. Child lookup
// is exactly one level deep and takes the first match, in document order.

func child(n *xmldom.Node, tag string) *xmldom.Node {
	for _, c := range n.Children {
		if c.Name == tag {
			return c
		}
	}
	return nil
}

func children(n *xmldom.Node, tag string) []*xmldom.Node {
	var out []*xmldom.Node
	for _, c := range n.Children {
		if c.Name == tag {
			out = append(out, c)
		}
	}
	return out
}

func childText(n *xmldom.Node, tag string) (string, bool) {
	c := child(n, tag)
	if c == nil {
		return "", false
	}
	return strings.TrimSpace(c.Text), true
}

func requiredText(n *xmldom.Node, tag string) (string, error) {
	s, ok := childText(n, tag)
	if !ok {
		return "", &MissingFieldError{Element: n.Name, Field: tag}
	}
	return s, nil
}

func requiredInt(n *xmldom.Node, tag string) (int, error) {
	s, err := requiredText(n, tag)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValueError{Element: n.Name, Field: tag, Value: s, Err: err}
	}
	return v, nil
}

// optionalInt returns the parsed child value and whether the child exists.
// A present child with unparseable text is still an error.
func optionalInt(n *xmldom.Node, tag string) (int, bool, error) {
	s, ok := childText(n, tag)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, &ValueError{Element: n.Name, Field: tag, Value: s, Err: err}
	}
	return v, true, nil
}

func requiredAttr(n *xmldom.Node, name string) (string, error) {
	a := n.GetAttribute(name)
	if a == nil {
		return "", &MissingFieldError{Element: n.Name, Field: name}
	}
	if a.Value == "" {
		return "", &ValueError{Element: n.Name, Field: name, Value: "",
			Err: fmt.Errorf("attribute must not be empty")}
	}
	return a.Value, nil
}

func intAttr(n *xmldom.Node, name string) (int, error) {
	s, err := requiredAttr(n, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValueError{Element: n.Name, Field: name, Value: s, Err: err}
	}
	return v, nil
}

// textChild appends a child element holding the string form of v.
func textChild(parent *xmldom.Node, tag string, v any) *xmldom.Node {
	c := parent.CreateNode(tag)
	c.Text = fmt.Sprint(v)
	return c
}
