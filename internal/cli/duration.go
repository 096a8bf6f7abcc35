package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/clipperhouse/hifi"
	"github.com/spf13/cobra"
)

func newDurationCmd(_ *app) *cobra.Command {
	var (
		unit  string
		round string
	)

	cmd := &cobra.Command{
		Use:   "duration EXPR",
		Short: "Parse and break down a duration",
		Example: `  hifi duration 1 day 2 h 30.5 min
  hifi duration -- -05:30
  hifi duration 3 weeks --unit s`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := hifi.ParseDuration(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if round != "" {
				u, err := hifi.ParseUnit(round)
				if err != nil {
					return err
				}
				d = d.Round(u.Duration())
			}

			out := cmd.OutOrStdout()
			if unit != "" {
				u, err := hifi.ParseUnit(unit)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%v %s\n", d.ToUnit(u), u)
				return err
			}

			c, ns := d.Parts()
			p := d.Decompose()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "duration\t%s\n", d)
			fmt.Fprintf(tw, "approx\t%s\n", d.Approx())
			fmt.Fprintf(tw, "seconds\t%v\n", d.ToSeconds())
			fmt.Fprintf(tw, "parts\t%d centuries, %d ns\n", c, ns)
			fmt.Fprintf(tw, "sign\t%d\n", p.Sign)
			fmt.Fprintf(tw, "days\t%d\n", p.Days)
			fmt.Fprintf(tw, "h:min:s\t%02d:%02d:%02d\n", p.Hours, p.Minutes, p.Seconds)
			fmt.Fprintf(tw, "ms μs ns\t%d %d %d\n", p.Milliseconds, p.Microseconds, p.Nanoseconds)
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "", "print only the duration in this unit")
	cmd.Flags().StringVar(&round, "round", "", "round to the nearest multiple of this unit first")
	return cmd
}
