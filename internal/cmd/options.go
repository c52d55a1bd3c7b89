package cmd

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	fileMode = 0o644

	stdinName       = "-"
	defaultBaseName = "output"
)

type options struct {
	lang   []string
	filter filterFunc
	quiet  bool
	debug  bool
	log    zerolog.Logger
}

func (opts *options) createLogger(out io.Writer) {
	level := zerolog.InfoLevel

	switch {
	case opts.debug:
		level = zerolog.DebugLevel
	case opts.quiet:
		level = zerolog.WarnLevel
	}

	writer := zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:          out,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	opts.log = zerolog.New(writer).Level(level)
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only report warnings and errors")
}

func debugFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log every collected code block and the resolved configuration")
}

func langFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringArrayVarP(&opts.lang, "lang", "l", nil, "only extract languages matching these glob patterns")
}
