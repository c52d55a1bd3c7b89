package cmd

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezerfernandes/ripper/internal/doc"
	"github.com/ezerfernandes/ripper/internal/ripper"
	"github.com/spf13/cobra"
)

//go:embed help/extract.md
var extractHelp string

type extractOptions struct {
	output      string
	to          string
	outputName  string
	position    string
	includeYAML bool
}

func extractCmd(opts *options) *cobra.Command {
	xopts := new(extractOptions)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "extract [flags] [filename] [-- command]",
		Aliases: []string{"x"},
		Short:   "Extract code blocks into one script file per language",
		Long:    extractHelp,
		Args:    checkargs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createLogger(cmd.ErrOrStderr())

			var err error

			opts.filter, err = filter(opts.lang)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, args := script(cmd, args)

			overrides, err := xopts.overrides(cmd, opts)
			if err != nil {
				return err
			}

			return extractRun(cmd, source(args), opts, xopts, overrides, scr)
		},

		DisableAutoGenTag: true,
	}

	langFlag(cmd, opts)

	cmd.Flags().StringVarP(&xopts.output, "output", "o", "", "write the document to this file instead of stdout")
	cmd.Flags().StringVarP(&xopts.to, "to", "t", "", "render target format (html, revealjs, pdf, ...)")
	cmd.Flags().StringVar(&xopts.outputName, "output-name", "", "base name of the script files")
	cmd.Flags().StringVar(&xopts.position, "position", "", "where to insert the script links: top, bottom, custom or none")
	cmd.Flags().BoolVar(&xopts.includeYAML, "include-yaml", true, "prefix script files with a commented metadata header")

	return cmd
}

func (xopts *extractOptions) overrides(cmd *cobra.Command, opts *options) ([]ripper.Option, error) {
	var res []ripper.Option

	if cmd.Flag("include-yaml").Changed {
		include := xopts.includeYAML

		res = append(res, ripper.WithOverride(func(cfg *ripper.Config) { cfg.IncludeMetadata = include }))
	}

	if cmd.Flag("position").Changed {
		pos, ok := ripper.ParsePosition(xopts.position)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errInvalidPosition, xopts.position)
		}

		res = append(res, ripper.WithOverride(func(cfg *ripper.Config) { cfg.Position = pos }))
	}

	if cmd.Flag("output-name").Changed && len(xopts.outputName) != 0 {
		name := xopts.outputName

		res = append(res, ripper.WithOverride(func(cfg *ripper.Config) { cfg.OutputName = name }))
	}

	if opts.debug {
		res = append(res, ripper.WithOverride(func(cfg *ripper.Config) { cfg.Verbose = true }))
	}

	return res, nil
}

func extractRun(
	cmd *cobra.Command,
	filename string,
	opts *options,
	xopts *extractOptions,
	overrides []ripper.Option,
	scr string,
) error {
	src, err := readSource(cmd.InOrStdin(), filename)
	if err != nil {
		return err
	}

	d, err := doc.Parse(src)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	format := xopts.to
	if !cmd.Flag("to").Changed {
		format = metaFormat(d.Meta)
	}

	sopts := append([]ripper.Option{
		ripper.WithLogger(opts.log),
		ripper.WithFormat(format),
		ripper.WithLanguageFilter(opts.filter),
	}, overrides...)

	base := baseName(filename, xopts.output)
	sopts = append(sopts, ripper.WithLinkDir(filepath.Dir(base)))

	files := ripper.NewSession(sopts...).Process(d, base)

	if err := writeDocument(cmd.OutOrStdout(), d, xopts.output, format); err != nil {
		return err
	}

	if len(scr) == 0 {
		return nil
	}

	hookOut := cmd.ErrOrStderr()
	if toFile(xopts.output) {
		hookOut = cmd.OutOrStdout()
	}

	return runHooks(files, scr, hookOut, cmd.ErrOrStderr(), opts)
}

func readSource(stdin io.Reader, filename string) ([]byte, error) {
	if filename == stdinName {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(filename)
}

func writeDocument(stdout io.Writer, d *doc.Document, output, format string) error {
	var buf bytes.Buffer

	render := d.RenderMarkdown
	if isHTML(format) {
		render = d.RenderHTML
	}

	if err := render(&buf); err != nil {
		return err
	}

	if toFile(output) {
		return os.WriteFile(output, buf.Bytes(), fileMode)
	}

	_, err := stdout.Write(buf.Bytes())

	return err
}

// baseName derives the script base name from the document output path, or
// the input path when the document goes to stdout.
func baseName(input, output string) string {
	name := output
	if !toFile(name) {
		name = input
	}

	if !toFile(name) {
		return defaultBaseName
	}

	return strings.TrimSuffix(name, filepath.Ext(name))
}

func toFile(name string) bool {
	return len(name) != 0 && name != stdinName
}

// metaFormat returns the format named in the front matter, either as a
// string or as the single key of a format map.
func metaFormat(meta doc.Meta) string {
	switch v := meta["format"].(type) {
	case string:
		return v
	case map[string]any:
		if len(v) == 1 {
			for name := range v {
				return name
			}
		}
	}

	return ""
}

func isHTML(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "html", "html4", "html5":
		return true
	}

	return false
}

func checkargs(cmd *cobra.Command, args []string) error {
	n := len(args)
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		n = dash
	}

	if n > 1 {
		return fmt.Errorf("%w: received %d", errTooManyFiles, n)
	}

	return nil
}

func source(args []string) string {
	if len(args) == 0 || len(args[0]) == 0 {
		return stdinName
	}

	return args[0]
}

func script(cmd *cobra.Command, args []string) (string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return "", args
	}

	return strings.Join(args[dash:], " "), args[:dash]
}

var (
	errInvalidPosition = errors.New("invalid position, expected top, bottom, custom or none")
	errTooManyFiles    = errors.New("accepts at most one filename")
)
