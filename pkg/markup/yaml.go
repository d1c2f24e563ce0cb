package markup

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/livenative/pkg/node"
)

// Fixture is the YAML form of a descriptor tree:
//
//	tag: column
//	attrs:
//	  - [padding, "8"]
//	children:
//	  - tag: text
//	    text: Hello
//
// Attributes are a list of pairs so their order and repeated names survive.
type Fixture struct {
	Tag      string      `yaml:"tag"`
	Attrs    [][2]string `yaml:"attrs,omitempty"`
	Text     string      `yaml:"text,omitempty"`
	Children []Fixture   `yaml:"children,omitempty"`
}

// Descriptor converts the fixture to a node descriptor.
func (f Fixture) Descriptor() node.NodeDescriptor {
	attrs := make([]node.Attribute, len(f.Attrs))
	for i, a := range f.Attrs {
		attrs[i] = node.Attribute{Name: a[0], Value: a[1]}
	}
	d := node.NodeDescriptor{
		Tag:        f.Tag,
		Attributes: node.NewAttributeSet(attrs),
		Text:       f.Text,
	}
	for _, c := range f.Children {
		d.Children = append(d.Children, c.Descriptor())
	}
	return d
}

// FixtureOf converts a descriptor back to its YAML form.
func FixtureOf(d node.NodeDescriptor) Fixture {
	f := Fixture{Tag: d.Tag, Text: d.Text}
	for _, a := range d.Attributes.All() {
		f.Attrs = append(f.Attrs, [2]string{a.Name, a.Value})
	}
	for _, c := range d.Children {
		f.Children = append(f.Children, FixtureOf(c))
	}
	return f
}

// DecodeYAML reads a YAML fixture tree from r and validates it.
func DecodeYAML(r io.Reader) (node.NodeDescriptor, error) {
	var f Fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return node.NodeDescriptor{}, fmt.Errorf("failed to parse fixture: %w", err)
	}
	d := f.Descriptor()
	if err := d.Validate(); err != nil {
		return node.NodeDescriptor{}, err
	}
	return d, nil
}

// EncodeYAML writes d as a YAML fixture.
func EncodeYAML(w io.Writer, d node.NodeDescriptor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FixtureOf(d)); err != nil {
		return err
	}
	return enc.Close()
}
