package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ezerfernandes/ripper/internal/ripper"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// runHooks runs scr once for every emitted file. A failing command does not
// stop the remaining ones; the failures are reported together.
func runHooks(files []ripper.EmittedFile, scr string, stdout, stderr io.Writer, opts *options) error {
	var failures int

	for index, file := range files {
		expanded := expandCommand(scr, file, index)

		opts.log.Debug().Str("file", file.Filename).Str("command", expanded).Msg("running command")

		exitCode, err := runCommand(expanded, stdout, stderr)
		if err != nil {
			return err
		}

		if exitCode != 0 {
			failures++

			opts.log.Warn().Str("file", file.Filename).Int("exit", exitCode).Msg("command failed")
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d file(s) failed", failures)
	}

	return nil
}

func expandCommand(scr string, file ripper.EmittedFile, index int) string {
	expanded := strings.ReplaceAll(scr, "{}", file.Filename)
	expanded = strings.ReplaceAll(expanded, "{lang}", file.Language)
	expanded = strings.ReplaceAll(expanded, "{index}", fmt.Sprint(index))

	return expanded
}

func runCommand(command string, stdout, stderr io.Writer) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, err
	}

	runner, err := interp.New(interp.StdIO(os.Stdin, stdout, stderr))
	if err != nil {
		return -1, err
	}

	err = runner.Run(context.TODO(), file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}
