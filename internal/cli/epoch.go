package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/clipperhouse/hifi"
	"github.com/spf13/cobra"
)

// parseEpochArgs joins args, so that "2017-01-14 00:31:55 UTC" needs no quotes.
func parseEpochArgs(args []string) (hifi.Epoch, error) {
	return hifi.ParseEpoch(strings.Join(args, " "))
}

func parseScales(names []string) ([]hifi.TimeScale, error) {
	if len(names) == 0 {
		return hifi.TimeScales, nil
	}
	scales := make([]hifi.TimeScale, 0, len(names))
	for _, name := range names {
		ts, err := hifi.ParseTimeScale(name)
		if err != nil {
			return nil, err
		}
		scales = append(scales, ts)
	}
	return scales, nil
}

// writeScales prints one row per scale.
func writeScales(w io.Writer, c hifi.Converter, e hifi.Epoch, scales []hifi.TimeScale) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCALE\tGREGORIAN\tSECONDS\tMJD\tWEEKDAY")
	for _, ts := range scales {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			ts,
			c.ToGregorianIn(e, ts),
			strconv.FormatFloat(c.DurationIn(e, ts).ToSeconds(), 'f', 9, 64),
			strconv.FormatFloat(c.ToMJDDays(e, ts), 'f', 9, 64),
			c.WeekdayIn(e, ts),
		)
	}
	return tw.Flush()
}

func newNowCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current instant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := hifi.Now()
			c := a.converter()
			if all {
				return writeScales(cmd.OutOrStdout(), c, now, hifi.TimeScales)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), c.ToGregorianIn(now, a.cfg.Scale))
			return err
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "print the instant in every time scale")
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		to     []string
		format string
	)

	cmd := &cobra.Command{
		Use:   "convert EPOCH",
		Short: "Express an epoch in other time scales",
		Example: `  hifi convert 2017-01-14T00:31:55 UTC
  hifi convert JD 2457767.5 TDB --to TAI,GPST
  hifi convert 2015-06-30T23:59:60 UTC --format unix`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEpochArgs(args)
			if err != nil {
				return err
			}
			scales, err := parseScales(to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				return writeScales(out, a.converter(), e, scales)
			case "iso":
				for _, ts := range scales {
					fmt.Fprintln(out, e.ToTimeScale(ts).ISO8601())
				}
			case "rfc3339":
				fmt.Fprintln(out, e.RFC3339())
			case "unix":
				fmt.Fprintln(out, strconv.FormatFloat(e.ToUnixSeconds(), 'f', 9, 64))
			case "week":
				for _, ts := range scales {
					week, ns := e.ToTimeScale(ts).ToTimeOfWeek()
					fmt.Fprintf(out, "%s week %d, %d ns\n", ts, week, ns)
				}
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "time scales to convert to (default all)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, iso, rfc3339, unix or week")
	return cmd
}

func newSeriesCmd(a *app) *cobra.Command {
	var (
		start, end, step string
		inclusive        bool
		reverse          bool
	)

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print evenly spaced epochs",
		Example: `  hifi series --start 2015-06-30T23:59:58 --end 2015-07-01T00:00:02 --step "1 s" --inclusive`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := hifi.ParseEpoch(start)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			e, err := hifi.ParseEpoch(end)
			if err != nil {
				return fmt.Errorf("end: %w", err)
			}
			d, err := hifi.ParseDuration(step)
			if err != nil {
				return fmt.Errorf("step: %w", err)
			}

			var ts *hifi.TimeSeries
			if inclusive {
				ts = hifi.Inclusive(s, e, d)
			} else {
				ts = hifi.Exclusive(s, e, d)
			}

			seq := ts.All()
			if reverse {
				seq = ts.Backward()
			}
			c := a.converter()
			out := cmd.OutOrStdout()
			for epoch := range seq {
				fmt.Fprintln(out, c.ToGregorianIn(epoch, a.cfg.Scale))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&start, "start", "", "first epoch")
	flags.StringVar(&end, "end", "", "epoch the series runs toward")
	flags.StringVar(&step, "step", "", "duration between epochs, e.g. \"1 h 30 min\"")
	flags.BoolVar(&inclusive, "inclusive", false, "include the end epoch when it falls on a step")
	flags.BoolVar(&reverse, "reverse", false, "print from the last epoch to the first")
	for _, name := range []string{"start", "end", "step"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
