package mdcode

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`^\s*([^\s{]+)\s*(.*?)\s*$`)

// Walker is a callback invoked for each fenced code block found in a Markdown
// document. Returning an error stops the walk.
type Walker func(block *Block) error

// Walk parses a Markdown document and calls walker for every fenced code
// block, including blocks nested in lists and block quotes, in document order.
// Malformed attributes do not stop the walk; they are reported in
// Block.MetaErr.
func Walk(source []byte, walker Walker) error {
	parser := goldmark.DefaultParser()
	reader := text.NewReader(source)
	root := parser.Parse(reader).OwnerDocument()

	return ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb := asFencedCodeBlock(node, entering)
		if fcb == nil {
			return ast.WalkContinue, nil
		}

		if err := walker(extractBlock(fcb, source)); err != nil {
			return ast.WalkStop, err
		}

		return ast.WalkContinue, nil
	})
}

func asFencedCodeBlock(node ast.Node, entering bool) *ast.FencedCodeBlock {
	if entering || node.Kind() != ast.KindFencedCodeBlock {
		return nil
	}

	if fcb, ok := node.(*ast.FencedCodeBlock); ok {
		return fcb
	}

	return nil
}

func extractBlock(fcb *ast.FencedCodeBlock, source []byte) *Block {
	lang, meta, err := extractInfo(fcb, source)
	if err != nil {
		meta = Meta{}
	}

	block := &Block{Lang: lang, Meta: meta, MetaErr: err, Code: extractCode(fcb, source)}
	block.StartLine, block.EndLine = extractLines(fcb, source)

	return block
}

func extractLines(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	var startLine, endLine int

	lines := fcb.Lines()

	if fcb.Info != nil {
		startLine = lineAt(source, fcb.Info.Segment.Start)
	} else if lines.Len() > 0 {
		startLine = lineAt(source, lines.At(0).Start) - 1
	}

	if lines.Len() > 0 {
		endLine = lineAt(source, lines.At(lines.Len()-1).Stop-1)
	} else if startLine > 0 {
		endLine = startLine + 1
	}

	return startLine, endLine
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}

	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

func extractCode(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)

		buff.Write(seg.Value(source))
	}

	return buff.Bytes()
}

func extractInfo(fcb *ast.FencedCodeBlock, source []byte) (string, Meta, error) {
	if fcb.Info == nil {
		return "", nil, nil
	}

	return parseInfo(fcb.Info.Text(source))
}

func parseInfo(text []byte) (string, Meta, error) {
	if subs := reBrackets.FindSubmatch(text); subs != nil {
		return parseAttributes(subs[1])
	}

	all := reInfo.FindSubmatch(text)
	if all == nil {
		return "", nil, nil
	}

	meta, err := parseMeta(all[2])
	if err != nil {
		return string(all[1]), nil, err
	}

	return string(all[1]), meta, nil
}
