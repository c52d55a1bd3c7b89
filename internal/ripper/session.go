package ripper

import (
	"path/filepath"

	"github.com/ezerfernandes/ripper/internal/doc"
	"github.com/rs/zerolog"
)

// Session is the state of one document run. It is not safe for concurrent
// use; separate documents use separate sessions.
type Session struct {
	cfg       Config
	overrides []func(*Config)
	meta      doc.Meta
	store     *Store
	fs        FS
	log       zerolog.Logger
	format    string
	linkDir   string
	accept    func(langID string) bool
}

type Option func(*Session)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithFS sets the filesystem script files are written to.
func WithFS(fsys FS) Option {
	return func(s *Session) {
		s.fs = fsys
	}
}

// WithFormat sets the render target, used to style the section for slides.
func WithFormat(format string) Option {
	return func(s *Session) {
		s.format = format
	}
}

// WithOverride applies fn to the configuration after it is resolved from
// the document metadata.
func WithOverride(fn func(*Config)) Option {
	return func(s *Session) {
		s.overrides = append(s.overrides, fn)
	}
}

// WithLinkDir makes the section links relative to dir, the directory the
// rendered document is written to.
func WithLinkDir(dir string) Option {
	return func(s *Session) {
		s.linkDir = dir
	}
}

// WithLanguageFilter restricts collection to languages accepted by fn.
func WithLanguageFilter(fn func(langID string) bool) Option {
	return func(s *Session) {
		s.accept = fn
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		meta:  doc.Meta{},
		store: NewStore(),
		fs:    OSFS{},
		log:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.cfg = s.resolve(nil)

	return s
}

// Config returns the configuration currently in effect.
func (s *Session) Config() Config {
	return s.cfg
}

// OnMeta resolves the configuration from the document metadata.
func (s *Session) OnMeta(meta doc.Meta) Config {
	if meta == nil {
		meta = doc.Meta{}
	}

	s.meta = meta
	s.cfg = s.resolve(meta)

	// A logger quieted below info by the host stays quiet.
	if s.cfg.Verbose && s.log.GetLevel() <= zerolog.InfoLevel {
		s.log = s.log.Level(zerolog.DebugLevel)
	}

	s.log.Debug().
		Bool(KeyIncludeYAML, s.cfg.IncludeMetadata).
		Stringer(KeyPosition, s.cfg.Position).
		Str(KeyOutputName, s.cfg.OutputName).
		Str("format", s.format).
		Msg("resolved configuration")

	return s.cfg
}

func (s *Session) resolve(meta doc.Meta) Config {
	cfg := Resolve(meta)

	for _, fn := range s.overrides {
		fn(&cfg)
	}

	return cfg
}

// OnCodeBlock collects the code of one block. It reports whether the block
// was kept.
func (s *Session) OnCodeBlock(langID, text string) bool {
	if s.accept != nil && !s.accept(langID) {
		return false
	}

	if !s.store.Add(langID, text) {
		return false
	}

	s.log.Debug().Str("lang", langID).Int("bytes", len(text)).Msg("collected code block")

	return true
}

// Finish writes one script file per collected language and inserts the
// section into d. outputName is the base name derived from the host output
// file; the configured output name takes precedence. Files that could not
// be written are left out of the result.
func (s *Session) Finish(d *doc.Document, outputName string) []EmittedFile {
	base := outputName
	if len(s.cfg.OutputName) != 0 {
		base = s.cfg.OutputName
	}

	emitter := NewEmitter(s.fs, s.log)

	var files []EmittedFile

	for _, langID := range s.store.Languages() {
		content := Assemble(langID, s.store.Blocks(langID), s.meta, s.cfg)

		file, err := emitter.Emit(base, langID, content)
		if err != nil {
			continue
		}

		files = append(files, file)
	}

	if d == nil {
		return files
	}

	section := BuildSection(s.links(files), s.cfg.Position, IsSlideFormat(s.format))
	Place(d, section, s.cfg.Position, s.log)

	return files
}

// links returns files with names relative to the link directory. Names that
// cannot be made relative are kept as written.
func (s *Session) links(files []EmittedFile) []EmittedFile {
	if len(s.linkDir) == 0 {
		return files
	}

	dir, err := filepath.Abs(s.linkDir)
	if err != nil {
		return files
	}

	linked := make([]EmittedFile, len(files))

	for i, file := range files {
		linked[i] = file

		abs, err := filepath.Abs(file.Filename)
		if err != nil {
			continue
		}

		if rel, err := filepath.Rel(dir, abs); err == nil {
			linked[i].Filename = filepath.ToSlash(rel)
		}
	}

	return linked
}

// Process runs a whole pass over a parsed document.
func (s *Session) Process(d *doc.Document, outputName string) []EmittedFile {
	s.OnMeta(d.Meta)

	for _, block := range d.CodeBlocks {
		if block.MetaErr != nil {
			s.log.Warn().Err(block.MetaErr).Str("lang", block.Lang).Int("line", block.StartLine).
				Msg("ignored malformed code block attributes")
		}

		if !s.OnCodeBlock(block.Lang, block.Text) {
			s.log.Debug().Str("lang", block.Lang).Int("line", block.StartLine).Msg("skipped code block")
		}
	}

	return s.Finish(d, outputName)
}
