package ripper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ezerfernandes/ripper/internal/lang"
	"github.com/rs/zerolog"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

var (
	// ErrWrite wraps the failure to write a script file.
	ErrWrite = errors.New("cannot write script file")
	// ErrUnsupported is returned for languages missing from the registry.
	ErrUnsupported = errors.New("unsupported language")
)

// FS is the filesystem script files are written to.
type FS interface {
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// OSFS writes to the local filesystem.
type OSFS struct{}

func (OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// EmittedFile is a script file written by the Emitter.
type EmittedFile struct {
	Filename string
	Language string
}

// Emitter writes assembled script files.
type Emitter struct {
	fs  FS
	log zerolog.Logger
}

func NewEmitter(fsys FS, log zerolog.Logger) *Emitter {
	if fsys == nil {
		fsys = OSFS{}
	}

	return &Emitter{fs: fsys, log: log}
}

// Emit writes content to base plus the extension of langID, replacing any
// existing file. Failures are logged and returned; nothing is retried.
func (e *Emitter) Emit(base, langID, content string) (EmittedFile, error) {
	spec, ok := lang.Lookup(langID)
	if !ok {
		return EmittedFile{}, fmt.Errorf("%w: %q", ErrUnsupported, langID)
	}

	filename := base + spec.Extension

	if err := e.write(filename, []byte(content)); err != nil {
		e.log.Error().Err(err).Str("file", filename).Str("lang", langID).Msg("failed to write script file")

		return EmittedFile{}, fmt.Errorf("%w %s: %w", ErrWrite, filename, err)
	}

	e.log.Info().Str("file", filename).Str("lang", langID).Msg("created script file")

	return EmittedFile{Filename: filename, Language: langID}, nil
}

func (e *Emitter) write(filename string, data []byte) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := e.fs.MkdirAll(dir, dirMode); err != nil {
			return err
		}
	}

	return e.fs.WriteFile(filename, data, fileMode)
}
