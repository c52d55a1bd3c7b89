package ripper

import (
	"github.com/ezerfernandes/ripper/internal/doc"
	"github.com/rs/zerolog"
)

// Place inserts section into the document at pos. With Custom the marker
// container is replaced; when it is missing the section goes to the top.
func Place(d *doc.Document, section []doc.Node, pos Position, log zerolog.Logger) {
	if len(section) == 0 || pos == None {
		return
	}

	switch pos {
	case Bottom:
		d.Blocks = append(d.Blocks, section...)

		return
	case Custom:
		if idx := d.Index(MarkerID); idx >= 0 {
			d.Blocks = splice(d.Blocks, idx, 1, section)

			return
		}

		log.Warn().Str("marker", MarkerID).Msg("custom marker not found, inserting script links at the top")
	}

	d.Blocks = splice(d.Blocks, 0, 0, section)
}

func splice(blocks []doc.Node, at, remove int, insert []doc.Node) []doc.Node {
	res := make([]doc.Node, 0, len(blocks)-remove+len(insert))

	res = append(res, blocks[:at]...)
	res = append(res, insert...)
	res = append(res, blocks[at+remove:]...)

	return res
}
