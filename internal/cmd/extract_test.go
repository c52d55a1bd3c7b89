package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ezerfernandes/ripper/internal/doc"
	"github.com/ezerfernandes/ripper/internal/ripper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const report = "---\n" +
	"title: Report\n" +
	"author: Ann\n" +
	"---\n" +
	"\n" +
	"# Analysis\n" +
	"\n" +
	"```python\n" +
	"print(1)\n" +
	"```\n" +
	"\n" +
	"```{r}\n" +
	"x <- 1\n" +
	"```\n" +
	"\n" +
	"```haskell\n" +
	"main = pure ()\n" +
	"```\n" +
	"\n" +
	"```{.python}\n" +
	"print(2)\n" +
	"```\n"

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := rootCmd()

	var stdout, stderr bytes.Buffer

	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, content string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	input := filepath.Join(dir, "report.md")

	require.NoError(t, os.WriteFile(input, []byte(content), 0o600))

	return dir, input
}

func readString(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(name)
	require.NoError(t, err)

	return string(data)
}

func TestExtractToFile(t *testing.T) {
	dir, input := writeInput(t, report)
	output := filepath.Join(dir, "out.md")

	stdout, stderr, err := execute(t, "", "extract", input, "-o", output)
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "created script file")

	assert.Equal(t, "#' ---\n#' title: Report\n#' author: Ann\n#' ---\n#' \n\nprint(1)\n\nprint(2)\n",
		readString(t, filepath.Join(dir, "out.py")))
	assert.Equal(t, "#' ---\n#' title: Report\n#' author: Ann\n#' ---\n#' \n\nx <- 1\n",
		readString(t, filepath.Join(dir, "out.R")))

	_, err = os.Stat(filepath.Join(dir, "out.hs"))
	assert.True(t, os.IsNotExist(err))

	rendered := readString(t, output)
	assert.True(t, strings.HasPrefix(rendered, report))
	assert.Contains(t, rendered, "\n# Script files\n")
	assert.Contains(t, rendered, "- [out.py](out.py)\n")
	assert.Contains(t, rendered, "- [out.R](out.R)\n")
}

func TestExtractLinksRelativeToOutput(t *testing.T) {
	dir, input := writeInput(t, report)
	site := filepath.Join(dir, "site")
	require.NoError(t, os.Mkdir(site, 0o700))

	_, _, err := execute(t, "", "extract", input, "-q", "-o", filepath.Join(site, "page.md"))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(site, "page.py"))

	rendered := readString(t, filepath.Join(site, "page.md"))
	assert.Contains(t, rendered, "- [page.py](page.py)\n")
	assert.NotContains(t, rendered, site)
}

func TestExtractBaseNameFromInput(t *testing.T) {
	dir, input := writeInput(t, report)

	stdout, _, err := execute(t, "", "extract", input, "--quiet")
	require.NoError(t, err)

	assert.Contains(t, stdout, "# Script files")
	assert.FileExists(t, filepath.Join(dir, "report.py"))
	assert.FileExists(t, filepath.Join(dir, "report.R"))
}

func TestExtractStdin(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "x")

	stdout, _, err := execute(t, "```python\nprint(1)\n```\n",
		"x", "--output-name", name, "--position", "top", "--include-yaml=false")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "# Script file\n"), stdout)
	assert.True(t, strings.HasSuffix(stdout, "```python\nprint(1)\n```\n"), stdout)
	assert.Equal(t, "print(1)\n", readString(t, name+".py"))
}

func TestExtractFlagsOverrideFrontMatter(t *testing.T) {
	dir, input := writeInput(t, "---\nextensions:\n  ripper:\n    script-links-position: none\n    include-yaml: false\n---\n\n```go\npackage main\n```\n")

	stdout, _, err := execute(t, "", "extract", input, "--position", "bottom", "--include-yaml")
	require.NoError(t, err)

	assert.Contains(t, stdout, "# Script file\n")
	assert.True(t, strings.HasPrefix(readString(t, filepath.Join(dir, "report.go")), "// ---\n"))
}

func TestExtractFormatFromFrontMatter(t *testing.T) {
	_, input := writeInput(t, "---\nformat:\n  revealjs:\n    theme: dark\n---\n\n## Slide\n\n```javascript\nlet a = 1\n```\n")

	stdout, _, err := execute(t, "", "extract", input, "-q")
	require.NoError(t, err)

	assert.Contains(t, stdout, "## Script file {.scrollable}\n")
}

func TestExtractHTML(t *testing.T) {
	dir, input := writeInput(t, report)
	output := filepath.Join(dir, "out.html")

	_, _, err := execute(t, "", "extract", input, "-t", "html", "-o", output, "--position", "top")
	require.NoError(t, err)

	html := readString(t, output)
	assert.True(t, strings.HasPrefix(html, "<h1"), html)
	assert.Contains(t, html, `href="out.py"`)
	assert.NotContains(t, html, dir)
	assert.NotContains(t, html, "title: Report")
}

func TestExtractLangFilter(t *testing.T) {
	dir, input := writeInput(t, report)

	_, _, err := execute(t, "", "extract", input, "--lang", "py*", "-q")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "report.py"))
	assert.NoFileExists(t, filepath.Join(dir, "report.R"))
}

func TestExtractDebug(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := execute(t, "```sql\nselect 1;\n```\n", "extract", "--debug", "--output-name", filepath.Join(dir, "q"))
	require.NoError(t, err)

	assert.Contains(t, stderr, "resolved configuration")
	assert.Contains(t, stderr, "collected code block")
}

func TestExtractQuietWinsOverFrontMatterDebug(t *testing.T) {
	_, input := writeInput(t, "---\nextensions:\n  ripper:\n    debug: true\n---\n\n```sql\nselect 1;\n```\n")

	_, stderr, err := execute(t, "", "extract", input, "-q")
	require.NoError(t, err)

	assert.NotContains(t, stderr, "collected code block")
	assert.NotContains(t, stderr, "created script file")
}

func TestExtractHook(t *testing.T) {
	dir, input := writeInput(t, report)

	stdout, _, err := execute(t, "", "extract", input, "-o", filepath.Join(dir, "out.md"), "--", "echo", "{index}", "{lang}", "{}")
	require.NoError(t, err)

	assert.Equal(t,
		"0 python "+filepath.Join(dir, "out.py")+"\n"+
			"1 r "+filepath.Join(dir, "out.R")+"\n",
		stdout)
}

func TestExtractHookFailure(t *testing.T) {
	dir, input := writeInput(t, report)

	_, _, err := execute(t, "", "extract", input, "-o", filepath.Join(dir, "out.md"), "-q", "--", "exit", "3")
	require.Error(t, err)
	assert.Equal(t, "2 file(s) failed", err.Error())
}

func TestExtractErrors(t *testing.T) {
	dir, input := writeInput(t, report)

	_, _, err := execute(t, "", "extract", input, "--position", "middle")
	assert.ErrorIs(t, err, errInvalidPosition)

	_, _, err = execute(t, "", "extract", input, "--lang", "[")
	assert.Error(t, err)

	_, _, err = execute(t, "", "extract", input, input)
	assert.ErrorIs(t, err, errTooManyFiles)

	_, _, err = execute(t, "", "extract", filepath.Join(dir, "missing.md"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "---\n[broken\n---\n", "extract", "--output-name", filepath.Join(dir, "x"))
	assert.ErrorIs(t, err, doc.ErrFrontMatter)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "out/report", baseName("report.md", "out/report.html"))
	assert.Equal(t, "docs/report", baseName("docs/report.md", ""))
	assert.Equal(t, "docs/report", baseName("docs/report.md", "-"))
	assert.Equal(t, "README", baseName("README", ""))
	assert.Equal(t, defaultBaseName, baseName("-", ""))
}

func TestMetaFormat(t *testing.T) {
	assert.Equal(t, "html", metaFormat(doc.Meta{"format": "html"}))
	assert.Equal(t, "revealjs", metaFormat(doc.Meta{"format": map[string]any{"revealjs": nil}}))
	assert.Equal(t, "", metaFormat(doc.Meta{"format": map[string]any{"html": nil, "pdf": nil}}))
	assert.Equal(t, "", metaFormat(doc.Meta{}))
}

func TestExpandCommand(t *testing.T) {
	file := ripper.EmittedFile{Filename: "doc.py", Language: "python"}

	assert.Equal(t, "black doc.py # python 2", expandCommand("black {} # {lang} {index}", file, 2))
}
