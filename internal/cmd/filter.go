package cmd

import (
	"fmt"

	"github.com/gobwas/glob"
)

type filterFunc func(lang string) bool

// filter builds a language filter from glob patterns. No patterns means no
// filtering and a nil filter.
func filter(patterns []string) (filterFunc, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid language pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return func(lang string) bool {
		for _, g := range globs {
			if g.Match(lang) {
				return true
			}
		}

		return false
	}, nil
}
