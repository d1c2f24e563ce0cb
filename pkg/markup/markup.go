// Package markup parses server markup into node descriptors.
//
// Markup is an HTML-like tree of tags whose attributes are untyped strings:
//
//	<livenative version="1.0.0">
//	  <column padding="8">
//	    <text>Hello</text>
//	    <button phx-click="inc">+</button>
//	  </column>
//	</livenative>
//
// The optional livenative root carries the protocol version. Tag and
// attribute names are lowercased by the tokenizer. Character data directly
// inside an element is collapsed into NodeDescriptor.Text. Every element
// parses its content as markup, including tags HTML treats as raw text such
// as textarea, title, style and script.
package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/livenative/pkg/errors"
	"github.com/go-drift/livenative/pkg/node"
)

// RootTag is the optional document element carrying the protocol version.
const RootTag = "livenative"

// Document is a parsed markup document.
type Document struct {
	// Version is the protocol version from the root element, or "".
	Version string
	// Nodes are the top-level elements in document order.
	Nodes []node.NodeDescriptor
}

// Root returns the single top-level element.
func (d *Document) Root() (node.NodeDescriptor, error) {
	switch len(d.Nodes) {
	case 1:
		return d.Nodes[0], nil
	case 0:
		return node.NodeDescriptor{}, structural("", "document has no elements")
	default:
		return node.NodeDescriptor{}, structural("", fmt.Sprintf("document has %d top-level elements, want 1", len(d.Nodes)))
	}
}

// ParseString parses markup held in a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads markup from r. Unbalanced tags are reported as structural
// errors; comments, doctypes and whitespace between elements are ignored.
func Parse(r io.Reader) (*Document, error) {
	z := html.NewTokenizer(r)
	p := &parser{}
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, &errors.RenderError{Op: "markup.Parse", Kind: errors.KindStructural, Err: err}
			}
			return p.finish()
		case html.StartTagToken, html.SelfClosingTagToken:
			z.NextIsNotRawText()
			name, hasAttr := z.TagName()
			el := &element{desc: node.NodeDescriptor{Tag: string(name)}}
			var attrs []node.Attribute
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				attrs = append(attrs, node.Attribute{Name: string(key), Value: string(val)})
			}
			el.desc.Attributes = node.NewAttributeSet(attrs)
			p.open(el)
			if tt == html.SelfClosingTagToken {
				if err := p.close(el.desc.Tag); err != nil {
					return nil, err
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if err := p.close(string(name)); err != nil {
				return nil, err
			}
		case html.TextToken:
			p.text(string(z.Text()))
		}
	}
}

type element struct {
	desc     node.NodeDescriptor
	text     []string
	children []node.NodeDescriptor
}

type parser struct {
	stack   []*element
	version string
	hasRoot bool
	rootEnd bool
	nodes   []node.NodeDescriptor
}

func (p *parser) open(el *element) {
	if el.desc.Tag == RootTag && len(p.stack) == 0 && !p.hasRoot && len(p.nodes) == 0 {
		p.hasRoot = true
		p.version = strings.TrimSpace(el.desc.Attributes.Value("version"))
		return
	}
	p.stack = append(p.stack, el)
}

func (p *parser) close(tag string) error {
	if len(p.stack) == 0 {
		if tag == RootTag && p.hasRoot && !p.rootEnd {
			p.rootEnd = true
			return nil
		}
		return structural(tag, fmt.Sprintf("unexpected end tag </%s>", tag))
	}
	top := p.stack[len(p.stack)-1]
	if top.desc.Tag != tag {
		return structural(tag, fmt.Sprintf("end tag </%s> does not match <%s>", tag, top.desc.Tag))
	}
	p.stack = p.stack[:len(p.stack)-1]
	top.desc.Text = strings.Join(top.text, " ")
	top.desc.Children = top.children
	if len(p.stack) == 0 {
		p.nodes = append(p.nodes, top.desc)
	} else {
		parent := p.stack[len(p.stack)-1]
		parent.children = append(parent.children, top.desc)
	}
	return nil
}

func (p *parser) text(s string) {
	if len(p.stack) == 0 {
		return
	}
	if f := strings.Fields(s); len(f) > 0 {
		top := p.stack[len(p.stack)-1]
		top.text = append(top.text, strings.Join(f, " "))
	}
}

func (p *parser) finish() (*Document, error) {
	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		return nil, structural(top.desc.Tag, fmt.Sprintf("unclosed <%s>", top.desc.Tag))
	}
	if p.hasRoot && !p.rootEnd {
		return nil, structural(RootTag, fmt.Sprintf("unclosed <%s>", RootTag))
	}
	return &Document{Version: p.version, Nodes: p.nodes}, nil
}

func structural(tag, msg string) error {
	return &errors.RenderError{
		Op:   "markup.Parse",
		Kind: errors.KindStructural,
		Tag:  tag,
		Err:  errors.New(msg),
	}
}
