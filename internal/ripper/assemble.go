package ripper

import (
	"strings"

	"github.com/ezerfernandes/ripper/internal/doc"
	"github.com/ezerfernandes/ripper/internal/lang"
)

// headerFields are the metadata keys copied into the header, in order.
var headerFields = []string{"title", "author", "date", "format"}

// Assemble builds the content of the script file for langID: the optional
// metadata header, the blocks separated by a blank line and a single
// trailing newline. Trailing newlines of each block are dropped.
func Assemble(langID string, blocks []string, meta doc.Meta, cfg Config) string {
	var sb strings.Builder

	if cfg.IncludeMetadata {
		writeHeader(&sb, lang.CommentPrefix(langID), meta)
	}

	for i, block := range blocks {
		if i > 0 {
			sb.WriteString("\n\n")
		}

		sb.WriteString(strings.TrimRight(block, "\n"))
	}

	sb.WriteByte('\n')

	return sb.String()
}

func writeHeader(sb *strings.Builder, prefix string, meta doc.Meta) {
	line := func(s string) {
		sb.WriteString(prefix)
		sb.WriteByte(' ')
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	line("---")

	for _, key := range headerFields {
		if value, ok := meta.Text(key); ok {
			line(key + ": " + strings.ReplaceAll(value, "\n", " "))
		}
	}

	line("---")
	line("")
	sb.WriteByte('\n')
}
