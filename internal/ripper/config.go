package ripper

import (
	"strconv"
	"strings"

	"github.com/ezerfernandes/ripper/internal/doc"
)

// Position selects where the script files section is inserted.
type Position int

const (
	Bottom Position = iota
	Top
	Custom
	None
)

var positionNames = map[Position]string{
	Bottom: "bottom",
	Top:    "top",
	Custom: "custom",
	None:   "none",
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}

	return "Position(" + strconv.Itoa(int(p)) + ")"
}

// ParsePosition parses top, bottom, custom or none, ignoring case and
// surrounding blanks.
func ParsePosition(s string) (Position, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	for pos, name := range positionNames {
		if name == s {
			return pos, true
		}
	}

	return Bottom, false
}

// Option keys read from the extensions.ripper map of the document metadata.
const (
	KeyIncludeYAML = "include-yaml"
	KeyPosition    = "script-links-position"
	KeyOutputName  = "output-name"
	KeyDebug       = "debug"
)

var optionsPath = []string{"extensions", "ripper"}

// Config is the resolved configuration of one run.
type Config struct {
	IncludeMetadata bool
	Position        Position
	// OutputName overrides the base name derived from the host output file.
	OutputName string
	Verbose    bool
}

func DefaultConfig() Config {
	return Config{IncludeMetadata: true, Position: Bottom}
}

// Resolve builds the configuration from the document metadata. A key
// overrides its default whenever it is present, even with a false value.
// Values that cannot be interpreted keep the default.
func Resolve(meta doc.Meta) Config {
	cfg := DefaultConfig()

	raw, ok := meta.Lookup(optionsPath...)
	if !ok {
		return cfg
	}

	var opts map[string]any

	switch v := raw.(type) {
	case map[string]any:
		opts = v
	case doc.Meta:
		opts = v
	default:
		return cfg
	}

	if v, ok := boolOption(opts, KeyIncludeYAML); ok {
		cfg.IncludeMetadata = v
	}

	if v, ok := opts[KeyPosition]; ok && v != nil {
		if pos, ok := ParsePosition(doc.Stringify(v)); ok {
			cfg.Position = pos
		}
	}

	if v, ok := opts[KeyOutputName]; ok && v != nil {
		if name := strings.TrimSpace(doc.Stringify(v)); len(name) != 0 {
			cfg.OutputName = name
		}
	}

	if v, ok := boolOption(opts, KeyDebug); ok {
		cfg.Verbose = v
	}

	return cfg
}

func boolOption(opts map[string]any, key string) (bool, bool) {
	switch v := opts[key].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))

		return b, err == nil
	}

	return false, false
}
