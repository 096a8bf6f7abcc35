package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/clipperhouse/hifi"
	"github.com/clipperhouse/hifi/eop"
	"github.com/clipperhouse/hifi/internal/config"
	"github.com/clipperhouse/hifi/leapfile"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newLeapCmd(a *app) *cobra.Command {
	var iersOnly bool

	cmd := &cobra.Command{
		Use:   "leap [EPOCH]",
		Short: "Print the leap second table, or TAI - UTC at an epoch",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			c := a.converter()

			if len(args) > 0 {
				e, err := parseEpochArgs(args)
				if err != nil {
					return err
				}
				delta, ok := c.LeapSeconds(e, iersOnly)
				if !ok {
					return fmt.Errorf("%s: %w", e, hifi.ErrLeapSecondDataUnavailable)
				}
				_, err = fmt.Fprintf(out, "TAI - UTC = %s s\n", strconv.FormatFloat(delta, 'f', -1, 64))
				return err
			}

			var records []hifi.LeapSecond
			if a.leaps != nil {
				records = a.leaps.LeapSeconds()
			} else {
				records = hifi.LatestLeapSeconds
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FROM (UTC)\tTAI - UTC\tIERS")
			for _, r := range records {
				if iersOnly && !r.AnnouncedByIERS {
					continue
				}
				from := hifi.FromUTCSeconds(r.TimestampTAISeconds).ToGregorianUTC()
				fmt.Fprintf(tw, "%s\t%s\t%t\n", from, strconv.FormatFloat(r.DeltaAT, 'f', -1, 64), r.AnnouncedByIERS)
			}
			if a.leaps != nil && !a.leaps.Expires.ToTAIDuration().IsZero() {
				fmt.Fprintf(tw, "expires\t%s\t\n", a.leaps.Expires)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&iersOnly, "iers-only", false, "ignore the pre-1972 SOFA records")
	return cmd
}

// loadTables reads the configured leap seconds file and UT1 data concurrently.
func (a *app) loadTables(ctx context.Context, fetch bool) (*leapfile.File, hifi.UT1Table, error) {
	var (
		leaps *leapfile.File
		ut1   hifi.UT1Table
	)

	g, ctx := errgroup.WithContext(ctx)
	if path := a.cfg.LeapSecondsFile; path != "" {
		g.Go(func() error {
			f, err := leapFiles.Load(path)
			leaps = f
			return err
		})
	}
	g.Go(func() error {
		var err error
		ut1, err = a.loadUT1(ctx, fetch)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return leaps, ut1, nil
}

func (a *app) loadUT1(ctx context.Context, fetch bool) (hifi.UT1Table, error) {
	eopCfg := a.cfg.EOP
	if len(eopCfg.Files) > 0 && !fetch {
		return eop.LoadFiles(ctx, eopCfg.Files...)
	}

	f := eop.NewFetcher(
		eop.WithBaseURL(eopCfg.BaseURL),
		eop.WithTTL(eopCfg.CacheTTL.ToStd()),
		eop.WithClient(newHTTPClient(eopCfg)),
		eop.WithRateLimit(eopCfg.MinInterval.ToStd(), eopCfg.Burst),
		eop.WithLogger(a.logger),
	)
	return f.Fetch(ctx, eopCfg.File)
}

func newUT1Cmd(a *app) *cobra.Command {
	var fetch bool

	cmd := &cobra.Command{
		Use:   "ut1 EPOCH",
		Short: "Express an epoch in UT1",
		Long: "ut1 looks up TAI - UT1 in the EOP2 files of the config, or downloads the " +
			"latest file from JPL when none is configured.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEpochArgs(args)
			if err != nil {
				return err
			}

			leaps, table, err := a.loadTables(cmd.Context(), fetch)
			if err != nil {
				return err
			}
			c := a.converter()
			if leaps != nil {
				c = hifi.NewConverter(leaps)
			}
			offset, ok := e.UT1Offset(table)
			if !ok {
				first, last, _ := eop.Span(table)
				return fmt.Errorf("no UT1 data for %s, the table covers %s to %s", e, first, last)
			}
			a.logger.Debug("UT1 table loaded", slog.Int("records", len(table)))

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "epoch\t%s\n", e)
			fmt.Fprintf(tw, "TAI - UT1\t%s\n", offset)
			if delta, ok := c.LeapSeconds(e, true); ok {
				fmt.Fprintf(tw, "UT1 - UTC\t%s\n", hifi.FromSeconds(delta).Sub(offset))
			}
			fmt.Fprintf(tw, "UT1\t%s\n", e.ToUT1(table).ISO8601())
			fmt.Fprintf(tw, "UT1 seconds\t%s\n", strconv.FormatFloat(e.ToUT1Duration(table).ToSeconds(), 'f', 6, 64))
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&fetch, "fetch", false, "download from JPL even when EOP files are configured")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow changes to the leap seconds file until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.LeapSecondsFile
			if path == "" {
				return fmt.Errorf("watch: no leap seconds file, set --leap-seconds or leap_seconds_file")
			}

			w, err := leapfile.NewWatcher(path, a.logger)
			if err != nil {
				return err
			}
			defer w.Stop()
			if err := w.Start(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "watching %s, TAI - UTC = %v s\n", w.Path, w.Current().Latest().DeltaAT)
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case f, ok := <-w.Updates:
					if !ok {
						return nil
					}
					leapFiles.Forget(path)
					fmt.Fprintf(out, "reloaded %d records, TAI - UTC = %v s\n", len(f.Records), f.Latest().DeltaAT)
				}
			}
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s exists, use --force to overwrite", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}

			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := config.WriteTOML(f, config.Default()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.WriteTOML(cmd.OutOrStdout(), a.cfg)
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func newHTTPClient(cfg config.EOPConfig) *http.Client {
	return &http.Client{Timeout: max(cfg.Timeout.ToStd(), time.Second)}
}
