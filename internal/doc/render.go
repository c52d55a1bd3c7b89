package doc

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAttribute(), parser.WithAutoHeadingID()),
)

// RenderMarkdown writes the front matter followed by every block.
func (d *Document) RenderMarkdown(w io.Writer) error {
	var buf bytes.Buffer

	buf.WriteString(d.FrontMatter)
	d.renderBlocks(&buf)

	_, err := w.Write(buf.Bytes())

	return err
}

// RenderHTML converts the document body, without front matter, to HTML.
func (d *Document) RenderHTML(w io.Writer) error {
	var buf bytes.Buffer

	d.renderBlocks(&buf)

	return converter.Convert(buf.Bytes(), w)
}

func (d *Document) renderBlocks(buf *bytes.Buffer) {
	prevGenerated := false

	for _, node := range d.Blocks {
		source, generated := markdown(node)

		if generated || prevGenerated {
			blankLine(buf)
		}

		buf.WriteString(source)

		prevGenerated = generated
	}
}

func blankLine(buf *bytes.Buffer) {
	if buf.Len() == 0 {
		return
	}

	data := buf.Bytes()

	switch {
	case bytes.HasSuffix(data, []byte("\n\n")):
	case bytes.HasSuffix(data, []byte("\n")):
		buf.WriteByte('\n')
	default:
		buf.WriteString("\n\n")
	}
}

func markdown(node Node) (string, bool) {
	switch n := node.(type) {
	case Raw:
		return n.Source, false
	case Container:
		return n.Source, false
	case Heading:
		return heading(n), true
	case Paragraph:
		return n.Text + "\n", true
	case List:
		var sb strings.Builder

		for _, item := range n.Items {
			fmt.Fprintf(&sb, "- [%s](%s)\n", escapeText(item.Text), linkTarget(item.Target))
		}

		return sb.String(), true
	}

	return "", false
}

func heading(h Heading) string {
	level := h.Level
	if level < 1 {
		level = 1
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat("#", level))
	sb.WriteByte(' ')
	sb.WriteString(h.Text)

	if len(h.Classes) != 0 {
		sb.WriteString(" {")

		for i, class := range h.Classes {
			if i > 0 {
				sb.WriteByte(' ')
			}

			sb.WriteString("." + class)
		}

		sb.WriteByte('}')
	}

	sb.WriteByte('\n')

	return sb.String()
}

var textEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func linkTarget(target string) string {
	if strings.ContainsAny(target, " ()<>") {
		return "<" + strings.NewReplacer("<", "%3C", ">", "%3E").Replace(target) + ">"
	}

	return target
}
