// Package lang holds the fixed registry of script languages that can be
// extracted from a document.
package lang

// DefaultCommentPrefix is used for header lines when a language has no
// registered prefix.
const DefaultCommentPrefix = "#'"

// Spec describes how code of one language is written to disk.
type Spec struct {
	ID            string
	Extension     string
	CommentPrefix string
}

var registry = []Spec{
	{ID: "r", Extension: ".R", CommentPrefix: "#'"},
	{ID: "python", Extension: ".py", CommentPrefix: "#'"},
	{ID: "julia", Extension: ".jl", CommentPrefix: "#'"},
	{ID: "bash", Extension: ".sh", CommentPrefix: "#"},
	{ID: "javascript", Extension: ".js", CommentPrefix: "//"},
	{ID: "typescript", Extension: ".ts", CommentPrefix: "//"},
	{ID: "sql", Extension: ".sql", CommentPrefix: "--"},
	{ID: "rust", Extension: ".rs", CommentPrefix: "//"},
	{ID: "go", Extension: ".go", CommentPrefix: "//"},
	{ID: "cpp", Extension: ".cpp", CommentPrefix: "//"},
	{ID: "c", Extension: ".c", CommentPrefix: "//"},
	{ID: "java", Extension: ".java", CommentPrefix: "//"},
	{ID: "scala", Extension: ".scala", CommentPrefix: "//"},
	{ID: "ruby", Extension: ".rb", CommentPrefix: "#"},
	{ID: "perl", Extension: ".pl", CommentPrefix: "#"},
	{ID: "php", Extension: ".php", CommentPrefix: "//"},
}

var byID = func() map[string]Spec {
	m := make(map[string]Spec, len(registry)+1)

	for _, spec := range registry {
		m[spec.ID] = spec
	}

	m["R"] = m["r"]

	return m
}()

// Lookup returns the Spec registered for id.
func Lookup(id string) (Spec, bool) {
	spec, ok := byID[id]

	return spec, ok
}

// Supported reports whether code tagged with id is extracted at all.
func Supported(id string) bool {
	_, ok := byID[id]

	return ok
}

// CommentPrefix returns the comment prefix for id, or DefaultCommentPrefix.
func CommentPrefix(id string) string {
	if spec, ok := byID[id]; ok && len(spec.CommentPrefix) != 0 {
		return spec.CommentPrefix
	}

	return DefaultCommentPrefix
}

// All returns a copy of the registry in its declaration order.
func All() []Spec {
	all := make([]Spec, len(registry))
	copy(all, registry)

	return all
}
