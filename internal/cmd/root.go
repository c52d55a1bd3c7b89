// Package cmd implements the ripper command line.
package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

// Execute runs the command line with args and exits with status 1 on error.
func Execute(args []string, stdout, stderr io.Writer) {
	root := rootCmd()

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "ripper: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := new(options)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:           "ripper",
		Short:         "Extract the code blocks of a Markdown document into script files",
		Long:          rootHelp,
		SilenceUsage:  true,
		SilenceErrors: true,

		DisableAutoGenTag: true,
	}

	quietFlag(cmd, opts)
	debugFlag(cmd, opts)

	cmd.AddCommand(extractCmd(opts), langsCmd())

	return cmd
}
