package mdcode

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value metadata parsed from a fenced code block's info string.
// Class words (.name) are collected under MetaClass and an #id word under MetaID.
type Meta map[string]interface{}

const (
	MetaClass = "class"
	MetaID    = "id"
)

// Get returns the metadata value for the given key as a string.
// It returns an empty string if the key is missing or the Meta is nil.
func (m Meta) Get(name string) string {
	if m == nil {
		return ""
	}

	value, has := m[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

// Classes returns the class words of the block, without the leading dot.
func (m Meta) Classes() []string {
	classes := strings.Fields(m.Get(MetaClass))
	if len(classes) == 0 {
		return nil
	}

	return classes
}

var (
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}\s*$`)
)

func parseMeta(input []byte) (Meta, error) {
	if len(input) == 0 {
		return Meta{}, nil
	}

	if reJSON.Match(input) {
		var meta Meta

		err := json.Unmarshal(input, &meta)
		if err != nil {
			return nil, err
		}

		return meta, nil
	}

	if subs := reBrackets.FindSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(string(input))
	if err != nil {
		return nil, err
	}

	dict := make(Meta)

	for _, word := range words {
		addWord(dict, word)
	}

	return dict, nil
}

// parseAttributes handles the braced info string forms {python},
// {.python .numberLines} and {r echo=false}. The first bare or class word
// names the language.
func parseAttributes(input []byte) (string, Meta, error) {
	words, err := shlex.Split(string(input))
	if err != nil {
		return fallbackLang(input), nil, err
	}

	var lang string

	dict := make(Meta)

	for _, word := range words {
		if len(lang) == 0 && !strings.ContainsRune(word, '=') && !strings.HasPrefix(word, "#") {
			lang = strings.TrimPrefix(word, ".")

			continue
		}

		addWord(dict, word)
	}

	return lang, dict, nil
}

// fallbackLang takes the first word of attributes that shlex rejects.
func fallbackLang(input []byte) string {
	fields := strings.Fields(string(input))
	if len(fields) == 0 || strings.ContainsRune(fields[0], '=') || strings.HasPrefix(fields[0], "#") {
		return ""
	}

	return strings.Trim(strings.TrimPrefix(fields[0], "."), `"'`)
}

func addWord(dict Meta, word string) {
	switch {
	case strings.HasPrefix(word, ".") && len(word) > 1:
		if prev := dict.Get(MetaClass); len(prev) != 0 {
			dict[MetaClass] = prev + " " + word[1:]
		} else {
			dict[MetaClass] = word[1:]
		}
	case strings.HasPrefix(word, "#") && len(word) > 1:
		dict[MetaID] = word[1:]
	default:
		idx := strings.IndexRune(word, '=')
		if idx > 0 {
			dict[word[:idx]] = word[idx+1:]
		}
	}
}
