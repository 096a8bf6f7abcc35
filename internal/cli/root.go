package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/clipperhouse/hifi"
	"github.com/clipperhouse/hifi/internal/config"
	"github.com/clipperhouse/hifi/internal/logzer"
	"github.com/clipperhouse/hifi/leapfile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// leapFiles is shared by every command tree of the process.
var leapFiles leapfile.Cache

// app is the state commands share once flags and config are resolved.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	leaps  *leapfile.File // nil selects the built-in table
}

func (a *app) converter() hifi.Converter {
	if a.leaps == nil {
		return hifi.NewConverter(nil)
	}
	return hifi.NewConverter(a.leaps)
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"scale":        "scale",
	"leap-seconds": "leap_seconds_file",
	"log-level":    "log.level",
	"log-format":   "log.format",
}

// NewRootCmd returns the hifi command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "hifi",
		Short: "Precise time scale conversions",
		Long: "hifi converts instants between TAI, TT, ET, TDB, UTC and the GNSS time scales " +
			"with nanosecond precision, and does exact duration arithmetic.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default "+config.FileName+")")
	flags.StringP("scale", "s", "", "time scale epochs are printed in")
	flags.String("leap-seconds", "", "IERS leap-seconds.list file to use instead of the built-in table")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: console or json")

	rootCmd.AddCommand(
		newNowCmd(a),
		newConvertCmd(a),
		newDurationCmd(a),
		newSeriesCmd(a),
		newLeapCmd(a),
		newUT1Cmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command, cfgFile string) error {
	if err := config.Init(cfgFile); err != nil {
		return err
	}
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(name)); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = logzer.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	if cfg.LeapSecondsFile == "" {
		return nil
	}
	f, err := leapFiles.Load(cfg.LeapSecondsFile)
	if err != nil {
		return fmt.Errorf("leap seconds: %w", err)
	}
	if f.Expired(hifi.Now()) {
		a.logger.Warn("leap seconds file has expired", slog.String("path", cfg.LeapSecondsFile), slog.Any("expires", f.Expires))
	}
	a.leaps = f
	a.logger.Debug("using leap seconds file", slog.String("path", cfg.LeapSecondsFile), slog.Int("records", len(f.Records)))
	return nil
}

// Execute runs the hifi command tree, stopping on interrupt.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
