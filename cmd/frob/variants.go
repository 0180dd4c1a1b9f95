package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sghaida/frob/examples"
	"github.com/sghaida/frob/frob"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// unknownVariantError is returned when a name is not in the registry.
type unknownVariantError struct {
	name  string
	known []string
}

func (e unknownVariantError) Error() string {
	return "unknown variant " + strconv.Quote(e.name) + " (known: " + strings.Join(e.known, ", ") + ")"
}

// resolve builds one value per name through the registry.
func (a *app) resolve(names []string) ([]frob.Frobber, error) {
	out := make([]frob.Frobber, 0, len(names))
	for _, name := range names {
		f, ok, err := a.registry.Resolve(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, unknownVariantError{name: name, known: a.registry.Names()}
		}
		a.log.Debug("resolved variant", zap.String("variant", name), zap.String("type", fmt.Sprintf("%T", f)))
		out = append(out, f)
	}
	return out, nil
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <variant>...",
		Short: "Print each variant's frob text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fs, err := a.resolve(args)
			if err != nil {
				return err
			}
			for _, f := range fs {
				if _, err := fmt.Fprintln(a.stdout, frob.FrobItDynamic(f)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newJoinCmd(a *app) *cobra.Command {
	var owned bool

	cmd := &cobra.Command{
		Use:   "join <variant>...",
		Short: "Join the frob text of the variants with ';'",
		Long: `Join the frob text of the variants in the order given.

By default the values are joined as a sequence of references (JoinRefs).
With --owned each value is boxed and the sequence is consumed (JoinOwned).`,
		RunE: func(_ *cobra.Command, args []string) error {
			fs, err := a.resolve(args)
			if err != nil {
				return err
			}

			var joined string
			if owned {
				boxes := make([]*frob.Owned, 0, len(fs))
				for _, f := range fs {
					boxes = append(boxes, frob.Own(f))
				}
				joined = frob.JoinOwned(boxes)
			} else {
				joined = frob.JoinRefs(fs)
			}

			_, err = fmt.Fprintln(a.stdout, joined)
			return err
		},
	}
	cmd.Flags().BoolVar(&owned, "owned", false, "box each value and consume the sequence")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List variants and examples",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			var b strings.Builder
			b.WriteString("variants:\n")
			for _, name := range a.registry.Names() {
				fmt.Fprintf(&b, "  %s\n", name)
			}
			b.WriteString("examples:\n")
			for _, ex := range examples.All() {
				fmt.Fprintf(&b, "  %-12s %s\n", ex.Name, ex.Summary)
			}
			_, err := fmt.Fprint(a.stdout, b.String())
			return err
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintln(a.stdout, "frob "+version)
			return err
		},
	}
}
