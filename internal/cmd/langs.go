package cmd

import (
	"io"

	"github.com/ezerfernandes/ripper/internal/lang"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func langsCmd() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:     "langs",
		Aliases: []string{"l"},
		Short:   "List the languages that can be extracted",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printLangs(cmd.OutOrStdout())

			return nil
		},

		DisableAutoGenTag: true,
	}
}

func printLangs(out io.Writer) {
	tbl := table.New("LANGUAGE", "EXTENSION", "COMMENT").WithWriter(out)

	for _, spec := range lang.All() {
		tbl.AddRow(spec.ID, spec.Extension, spec.CommentPrefix)
	}

	tbl.Print()
}
