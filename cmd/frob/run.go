package main

import (
	"github.com/sghaida/frob/examples"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [example...]",
		Short: "Assert the named examples (default: config, then all)",
		Long: `Assert the named examples in the order given and print a report.

Examples: static, dynamic, collection. With no arguments the examples listed
in the config are run, or all of them if the config names none. The first
failed check stops the run and is reported on stderr.`,
		ValidArgs: examples.Names(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runExamples(args)
		},
	}
}

// runExamples runs the selected examples and renders the report, including
// when a check fails.
func (a *app) runExamples(names []string) error {
	if len(names) == 0 {
		names = a.cfg.Examples
	}
	exs, err := examples.Select(names)
	if err != nil {
		return err
	}

	report, runErr := examples.Run(a.log, exs...)
	if err := examples.Render(a.stdout, report, a.cfg.Output); err != nil {
		return err
	}
	return runErr
}
