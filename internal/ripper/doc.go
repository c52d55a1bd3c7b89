// Package ripper extracts the code blocks of a document into one script file
// per language and links the generated files from the document.
//
// A Session holds the state of one document run. The host calls OnMeta once,
// OnCodeBlock for every code block in document order and Finish at the end of
// the document:
//
//	s := ripper.NewSession(ripper.WithLogger(log), ripper.WithFormat("html"))
//	s.OnMeta(d.Meta)
//	for _, block := range d.CodeBlocks {
//		s.OnCodeBlock(block.Lang, block.Text)
//	}
//	files := s.Finish(d, "report")
//
// Process runs the three steps for a parsed document. Write failures are
// logged and skipped; no step returns an error to the host.
package ripper
