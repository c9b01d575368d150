package cli

import (
	"encoding/json"
	"io"
	"strconv"

	"intervalparser/internal/core/duration"
	"intervalparser/internal/core/finder"
	pstrings "intervalparser/internal/platform/strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type findOptions struct {
	leading  bool
	trailing bool
	multiple bool
	json     bool
}

func (o findOptions) flags() finder.Flags {
	var f finder.Flags
	if o.leading {
		f |= finder.RequireLeading
	}
	if o.trailing {
		f |= finder.RequireTrailing
	}
	if o.multiple {
		f |= finder.MultipleIntervals
	}
	return f
}

// resultView is the printed shape of a TimeInterval; absent context is null
type resultView struct {
	Interval string            `json:"interval"`
	Duration duration.Duration `json:"duration"`
	Offset   int               `json:"offset"`
	Length   int               `json:"length"`
	Leading  *string           `json:"leading"`
	Trailing *string           `json:"trailing"`
}

func newResultView(ti finder.TimeInterval) resultView {
	return resultView{
		Interval: ti.Interval.String(),
		Duration: ti.Interval,
		Offset:   ti.Offset,
		Length:   ti.Length,
		Leading:  pstrings.Ptr(ti.Leading),
		Trailing: pstrings.Ptr(ti.Trailing),
	}
}

func (a *app) findCmd() *cobra.Command {
	var o findOptions
	cmd := &cobra.Command{
		Use:   "find [TEXT...]",
		Short: "Find an interval in text (stdin when no TEXT is given)",
		Example: `  intervalfind find 9w8d7h6m5s
  intervalfind find --leading "remind me in 2h"
  intervalfind find --trailing "3d4h bazinga!"
  intervalfind find --multiple "foo in 5m, bar in 3h"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := o.flags()
			if err := flags.Validate(); err != nil {
				return err
			}
			input, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			f, err := finder.New(a.settings, finder.WithLogger(a.log))
			if err != nil {
				return err
			}

			var found []finder.TimeInterval
			if flags == finder.MultipleIntervals {
				found = f.FindMultiple(input)
			} else {
				ti, err := f.Find(input, flags)
				if err != nil {
					return err
				}
				found = append(found, ti)
			}

			views := make([]resultView, 0, len(found))
			for _, ti := range found {
				views = append(views, newResultView(ti))
			}
			if o.json {
				return writeJSON(cmd.OutOrStdout(), views)
			}
			writeTable(cmd.OutOrStdout(), views)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&o.leading, "leading", "l", false, "Require leading text before a separator word")
	cmd.Flags().BoolVarP(&o.trailing, "trailing", "t", false, "Require (with --leading: allow) trailing text")
	cmd.Flags().BoolVarP(&o.multiple, "multiple", "m", false, "Find one interval per separated segment")
	cmd.Flags().BoolVar(&o.json, "json", false, "Print JSON instead of a table")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, views []resultView) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"INTERVAL", "OFFSET", "LENGTH", "LEADING", "TRAILING"})
	table.SetAutoWrapText(false)
	for _, v := range views {
		table.Append([]string{
			v.Interval,
			strconv.Itoa(v.Offset),
			strconv.Itoa(v.Length),
			quoted(v.Leading),
			quoted(v.Trailing),
		})
	}
	table.Render()
}

// quoted shows surrounding spaces in context strings, empty when absent
func quoted(s *string) string {
	if s == nil {
		return ""
	}
	return strconv.Quote(pstrings.Deref(s))
}
