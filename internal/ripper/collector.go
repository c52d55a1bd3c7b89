package ripper

import "github.com/ezerfernandes/ripper/internal/lang"

// Store keeps the collected code of each language in document order.
// Languages are listed in the order they were first seen.
type Store struct {
	order  []string
	blocks map[string][]string
}

func NewStore() *Store {
	return &Store{blocks: make(map[string][]string)}
}

// Add appends text to the blocks of langID. Aliases of a language (r and R)
// share one sequence under the registry id. Unsupported languages are
// ignored and reported with false.
func (s *Store) Add(langID, text string) bool {
	spec, ok := lang.Lookup(langID)
	if !ok {
		return false
	}

	id := spec.ID

	if _, seen := s.blocks[id]; !seen {
		s.order = append(s.order, id)
	}

	s.blocks[id] = append(s.blocks[id], text)

	return true
}

func (s *Store) Languages() []string {
	langs := make([]string, len(s.order))
	copy(langs, s.order)

	return langs
}

func (s *Store) Blocks(langID string) []string {
	return s.blocks[langID]
}

func (s *Store) Len() int {
	return len(s.order)
}
