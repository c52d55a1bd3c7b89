package ripper_test

import (
	"testing"

	"github.com/ezerfernandes/ripper/internal/doc"
	"github.com/ezerfernandes/ripper/internal/ripper"
	"github.com/stretchr/testify/assert"
)

func options(opts map[string]any) doc.Meta {
	return doc.Meta{"extensions": map[string]any{"ripper": opts}}
}

func TestResolveDefaults(t *testing.T) {
	want := ripper.Config{IncludeMetadata: true, Position: ripper.Bottom}

	assert.Equal(t, want, ripper.Resolve(nil))
	assert.Equal(t, want, ripper.Resolve(doc.Meta{"title": "x"}))
	assert.Equal(t, want, ripper.Resolve(doc.Meta{"extensions": "not a map"}))
	assert.Equal(t, want, ripper.Resolve(options(map[string]any{"unknown": 1})))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]any
		want ripper.Config
	}{
		{
			name: "explicit false overrides default",
			opts: map[string]any{"include-yaml": false},
			want: ripper.Config{IncludeMetadata: false, Position: ripper.Bottom},
		},
		{
			name: "all options",
			opts: map[string]any{
				"include-yaml":          true,
				"script-links-position": "custom",
				"output-name":           "custom",
				"debug":                 true,
			},
			want: ripper.Config{IncludeMetadata: true, Position: ripper.Custom, OutputName: "custom", Verbose: true},
		},
		{
			name: "position is case insensitive",
			opts: map[string]any{"script-links-position": " TOP "},
			want: ripper.Config{IncludeMetadata: true, Position: ripper.Top},
		},
		{
			name: "none position",
			opts: map[string]any{"script-links-position": "none"},
			want: ripper.Config{IncludeMetadata: true, Position: ripper.None},
		},
		{
			name: "unknown position keeps default",
			opts: map[string]any{"script-links-position": "left"},
			want: ripper.Config{IncludeMetadata: true, Position: ripper.Bottom},
		},
		{
			name: "string booleans",
			opts: map[string]any{"include-yaml": "false", "debug": "true"},
			want: ripper.Config{IncludeMetadata: false, Position: ripper.Bottom, Verbose: true},
		},
		{
			name: "malformed values keep defaults",
			opts: map[string]any{"include-yaml": "maybe", "debug": 3, "output-name": "  "},
			want: ripper.Config{IncludeMetadata: true, Position: ripper.Bottom},
		},
		{
			name: "null values are absent",
			opts: map[string]any{"include-yaml": nil, "script-links-position": nil, "output-name": nil},
			want: ripper.Config{IncludeMetadata: true, Position: ripper.Bottom},
		},
		{
			name: "output name is stringified",
			opts: map[string]any{"output-name": 2024},
			want: ripper.Config{IncludeMetadata: true, Position: ripper.Bottom, OutputName: "2024"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ripper.Resolve(options(tt.opts)))
		})
	}
}

func TestResolveDoesNotMutateMetadata(t *testing.T) {
	opts := map[string]any{"include-yaml": false}
	meta := options(opts)

	ripper.Resolve(meta)

	assert.Equal(t, map[string]any{"include-yaml": false}, opts)
	assert.Len(t, meta, 1)
}

func TestParsePosition(t *testing.T) {
	for _, pos := range []ripper.Position{ripper.Top, ripper.Bottom, ripper.Custom, ripper.None} {
		parsed, ok := ripper.ParsePosition(pos.String())
		assert.True(t, ok)
		assert.Equal(t, pos, parsed)
	}

	_, ok := ripper.ParsePosition("middle")
	assert.False(t, ok)
	assert.Equal(t, "Position(9)", ripper.Position(9).String())
}
