package doc

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ezerfernandes/ripper/internal/mdcode"
	"github.com/google/shlex"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// ErrFrontMatter is returned when the YAML front matter cannot be decoded.
var ErrFrontMatter = errors.New("invalid front matter")

var (
	reFrontMatter = regexp.MustCompile(`\A---[ \t]*\r?\n((?s:.*?)\r?\n)?(?:---|\.\.\.)[ \t]*(?:\r?\n|\z)`)
	reDiv         = regexp.MustCompile(`^\s*:{3,}[ \t]*\{([^}]*)\}[ \t]*\r?\n(?s:.*?)\n?[ \t]*:{3,}\s*$`)
	reDivOpen     = regexp.MustCompile(`^\s*:{3,}[ \t]*\{([^}]*)\}\s*$`)
	reDivClose    = regexp.MustCompile(`^\s*:{3,}\s*$`)
	reHTMLDiv     = regexp.MustCompile(`(?is)^\s*<div\b([^>]*)>.*</div>\s*$`)
	reHTMLID      = regexp.MustCompile(`(?i)\bid\s*=\s*["']([^"']*)["']`)
)

// Parse splits source into front matter and top-level blocks and collects
// its fenced code blocks.
func Parse(source []byte) (*Document, error) {
	d := &Document{Meta: Meta{}}

	body := source

	if loc := reFrontMatter.FindSubmatchIndex(source); loc != nil {
		d.FrontMatter = string(source[:loc[1]])
		body = source[loc[1]:]

		if loc[2] >= 0 {
			if err := yaml.Unmarshal(source[loc[2]:loc[3]], &d.Meta); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
			}
		}

		if d.Meta == nil {
			d.Meta = Meta{}
		}
	}

	blocks, err := mdcode.Unfence(body)
	if err != nil {
		return nil, err
	}

	offset := strings.Count(d.FrontMatter, "\n")

	for _, block := range blocks {
		d.CodeBlocks = append(d.CodeBlocks, CodeBlock{
			Lang:      block.Lang,
			Text:      strings.TrimSuffix(string(block.Code), "\n"),
			Meta:      block.Meta,
			MetaErr:   block.MetaErr,
			StartLine: block.StartLine + offset,
			EndLine:   block.EndLine + offset,
		})
	}

	d.Blocks = segment(body)

	return d, nil
}

func segment(source []byte) []Node {
	if len(source) == 0 {
		return nil
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var starts []int

	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		off := startOffset(child, source)
		if off < 0 {
			continue
		}

		off = lineStart(source, off)

		switch {
		case len(starts) == 0:
			starts = append(starts, 0)
		case off > starts[len(starts)-1]:
			starts = append(starts, off)
		}
	}

	if len(starts) == 0 {
		starts = append(starts, 0)
	}

	chunks := make([]string, len(starts))

	for i, start := range starts {
		end := len(source)
		if i+1 < len(starts) {
			end = starts[i+1]
		}

		chunks[i] = string(source[start:end])
	}

	return classify(chunks)
}

func startOffset(node ast.Node, source []byte) int {
	if fcb, ok := node.(*ast.FencedCodeBlock); ok {
		if fcb.Info != nil {
			return fcb.Info.Segment.Start
		}

		if lines := fcb.Lines(); lines.Len() > 0 {
			return lineStart(source, lines.At(0).Start) - 1
		}

		return -1
	}

	if t, ok := node.(*ast.Text); ok {
		return t.Segment.Start
	}

	if node.Type() != ast.TypeInline {
		if lines := node.Lines(); lines != nil && lines.Len() > 0 {
			return lines.At(0).Start
		}
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if off := startOffset(child, source); off >= 0 {
			return off
		}
	}

	return -1
}

func lineStart(source []byte, offset int) int {
	if offset <= 0 {
		return 0
	}

	return bytes.LastIndexByte(source[:offset], '\n') + 1
}

func classify(chunks []string) []Node {
	nodes := make([]Node, 0, len(chunks))

	for i := 0; i < len(chunks); i++ {
		chunk := chunks[i]

		if id, ok := containerID(chunk); ok {
			nodes = append(nodes, Container{ID: id, Source: chunk})

			continue
		}

		if subs := reDivOpen.FindStringSubmatch(chunk); subs != nil {
			if end := closingDiv(chunks, i+1); end >= 0 {
				nodes = append(nodes, Container{
					ID:     attributeID(subs[1]),
					Source: strings.Join(chunks[i:end+1], ""),
				})
				i = end

				continue
			}
		}

		nodes = append(nodes, Raw{Source: chunk})
	}

	return nodes
}

func closingDiv(chunks []string, from int) int {
	for i := from; i < len(chunks); i++ {
		if reDivClose.MatchString(chunks[i]) {
			return i
		}
	}

	return -1
}

func containerID(chunk string) (string, bool) {
	if subs := reDiv.FindStringSubmatch(chunk); subs != nil {
		return attributeID(subs[1]), true
	}

	if subs := reHTMLDiv.FindStringSubmatch(chunk); subs != nil {
		if id := reHTMLID.FindStringSubmatch(subs[1]); id != nil {
			return id[1], true
		}

		return "", true
	}

	return "", false
}

func attributeID(attrs string) string {
	words, err := shlex.Split(attrs)
	if err != nil {
		return ""
	}

	for _, word := range words {
		if strings.HasPrefix(word, "#") {
			return word[1:]
		}
	}

	return ""
}
