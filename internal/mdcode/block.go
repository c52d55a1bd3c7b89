package mdcode

// Block is a fenced code block found in a Markdown document. MetaErr holds
// the error of an info string whose attributes could not be parsed; Meta is
// empty in that case.
type Block struct {
	Lang      string
	Meta      Meta
	MetaErr   error
	Code      []byte
	StartLine int
	EndLine   int
}

type Blocks []*Block

// Unfence parses a Markdown document and returns all fenced code blocks
// in document order.
func Unfence(source []byte) (Blocks, error) {
	var blocks Blocks

	err := Walk(source, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}
