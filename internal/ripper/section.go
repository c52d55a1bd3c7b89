package ripper

import (
	"strings"

	"github.com/ezerfernandes/ripper/internal/doc"
)

// MarkerID identifies the container replaced by the section when the
// position is Custom.
const MarkerID = "ripper-links"

const (
	headingSingular    = "Script file"
	headingPlural      = "Script files"
	sectionDescription = "Code from this document was extracted into the following files:"
	slideClass         = "scrollable"
)

var slideFormats = map[string]bool{
	"revealjs": true,
	"beamer":   true,
	"pptx":     true,
	"slidy":    true,
	"slideous": true,
	"dzslides": true,
	"s5":       true,
}

// IsSlideFormat reports whether format renders to slides. Pandoc style
// extension suffixes (revealjs+smart) are ignored.
func IsSlideFormat(format string) bool {
	format = strings.ToLower(strings.TrimSpace(format))
	if idx := strings.IndexAny(format, "+-"); idx >= 0 {
		format = format[:idx]
	}

	return slideFormats[format]
}

// BuildSection returns the heading, description and link list for files,
// or nil when there is nothing to insert.
func BuildSection(files []EmittedFile, pos Position, slides bool) []doc.Node {
	if pos == None || len(files) == 0 {
		return nil
	}

	heading := doc.Heading{Level: 1, Text: headingPlural}
	if len(files) == 1 {
		heading.Text = headingSingular
	}

	if slides {
		heading.Level = 2
		heading.Classes = []string{slideClass}
	}

	links := make([]doc.Link, 0, len(files))
	for _, file := range files {
		links = append(links, doc.Link{Text: file.Filename, Target: file.Filename})
	}

	return []doc.Node{
		heading,
		doc.Paragraph{Text: sectionDescription},
		doc.List{Items: links},
	}
}
