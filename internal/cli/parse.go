package cli

import (
	"fmt"

	"intervalparser/internal/core/normalize"
	"intervalparser/internal/core/parser"

	"github.com/spf13/cobra"
)

func (a *app) parseCmd() *cobra.Command {
	var std bool
	cmd := &cobra.Command{
		Use:   "parse [TEXT...]",
		Short: "Parse a bare interval and print it as an ISO-8601 duration",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			d, err := parser.New().Parse(input)
			if err != nil {
				return err
			}
			a.log.Debug().Str("input", input).Stringer("duration", d).Msg("parsed")
			if !std {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), d)
				return err
			}
			sd, err := d.Std()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sd)
			return err
		},
	}
	cmd.Flags().BoolVar(&std, "std", false, "Print as a Go duration (fails when months are present)")
	return cmd
}

func (a *app) normalizeCmd() *cobra.Command {
	var fold bool
	cmd := &cobra.Command{
		Use:   "normalize [TEXT...]",
		Short: "Spell out abbreviated time parts, e.g. 9w8d becomes 9 weeks 8 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			var opts []normalize.Option
			if fold {
				opts = append(opts, normalize.WithWidthFold())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), normalize.New(opts...).Normalize(input))
			return err
		},
	}
	cmd.Flags().BoolVar(&fold, "width-fold", false, "Fold fullwidth and compatibility forms first")
	return cmd
}
