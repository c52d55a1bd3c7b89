// Package doc models a Markdown document as an ordered sequence of top-level
// nodes that can be mutated and rendered back.
//
// Parsing keeps the original text of every top-level block, so rendering an
// unmodified document reproduces its source. Nodes created by callers
// (headings, paragraphs, lists) are rendered as Markdown and separated from
// their neighbours by blank lines.
package doc

import "github.com/ezerfernandes/ripper/internal/mdcode"

// Node is one top-level block of a document.
type Node interface {
	isNode()
}

// Heading is an ATX heading with optional classes, rendered as {.class}.
type Heading struct {
	Level   int
	Text    string
	Classes []string
}

type Paragraph struct {
	Text string
}

// Link is an inline link used as a list item.
type Link struct {
	Text   string
	Target string
}

// List is a bullet list of links.
type List struct {
	Items []Link
}

// Container is a fenced div (::: {#id}) or an HTML <div id="id"> block.
type Container struct {
	ID     string
	Source string
}

// Raw is a top-level block kept verbatim from the source.
type Raw struct {
	Source string
}

func (Heading) isNode()   {}
func (Paragraph) isNode() {}
func (List) isNode()      {}
func (Container) isNode() {}
func (Raw) isNode()       {}

// CodeBlock is a fenced code block of the document. Text has no trailing
// newline. MetaErr is set when the attributes of the info string were
// malformed and dropped.
type CodeBlock struct {
	Lang      string
	Text      string
	Meta      mdcode.Meta
	MetaErr   error
	StartLine int
	EndLine   int
}

// Document is a parsed Markdown document.
type Document struct {
	FrontMatter string
	Meta        Meta
	Blocks      []Node
	CodeBlocks  []CodeBlock
}

// Index returns the position of the first top-level container with the
// given id, or -1.
func (d *Document) Index(id string) int {
	for i, node := range d.Blocks {
		if c, ok := node.(Container); ok && c.ID == id {
			return i
		}
	}

	return -1
}
