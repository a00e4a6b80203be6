// zfmt prints the human-readable forms the web interface shows for byte
// sizes, transfer rates, durations, angles and timestamps.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lucciano/zentyal/internal/config"
	"github.com/lucciano/zentyal/internal/format"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "zfmt",
		Short: "Format sizes, rates, durations, angles and timestamps for display",
		Long: `zfmt renders numbers the way the web interface displays them.

Examples:
  zfmt bytes 1536                 # 1.5 KB
  zfmt bytes --long 1572864       # 1.5 Megabytes
  zfmt rate 1572864               # 1.5 MB/s
  zfmt duration 90000             # 1.5 min
  zfmt datetime 1700000000`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")

	root.AddCommand(
		a.bytesCmd(),
		numberCmd("rate", "Format bytes per second", format.BytesPerSecond),
		numberCmd("duration", "Format a span given in milliseconds", format.Duration),
		numberCmd("degrees", "Append a degree sign", format.Degrees),
		a.clockCmd("time", "Format epoch seconds as a time of day", (*format.Clock).TimeOfDay),
		a.clockCmd("date", "Format epoch seconds as a date", (*format.Clock).Date),
		a.clockCmd("datetime", "Format epoch seconds as date and time", (*format.Clock).FullDateTime),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "zfmt", version)
			},
		},
	)

	return root
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	setupLogging(level)

	slog.Debug("config loaded",
		"locale", cfg.Display.Locale,
		"timezone", cfg.Display.Timezone,
		"precision", cfg.Bytes.Precision,
	)
	return nil
}

func (a *app) bytesCmd() *cobra.Command {
	var (
		precision  int
		long       bool
		commercial bool
	)

	cmd := &cobra.Command{
		Use:   "bytes SIZE...",
		Short: "Format byte counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.ByteOptions()
			if cmd.Flags().Changed("precision") {
				opts.Precision = precision
			}
			if cmd.Flags().Changed("long") {
				opts.LongName = long
			}
			if cmd.Flags().Changed("commercial") {
				opts.Commercial = commercial
			}
			return printEach(cmd, args, func(v float64) string {
				return format.BytesWith(v, opts)
			})
		},
	}

	cmd.Flags().IntVar(&precision, "precision", 0, "decimal places (default: config value)")
	cmd.Flags().BoolVar(&long, "long", false, "spell out unit names (Megabytes)")
	cmd.Flags().BoolVar(&commercial, "commercial", false, "use base 1000 instead of 1024")
	return cmd
}

func numberCmd(use, short string, fn func(float64) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " VALUE...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEach(cmd, args, fn)
		},
	}
}

func (a *app) clockCmd(use, short string, fn func(*format.Clock, float64) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " EPOCH_SECONDS...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := a.cfg.Clock()
			if err != nil {
				return err
			}
			return printEach(cmd, args, func(v float64) string {
				return fn(clock, v)
			})
		},
	}
}

func printEach(cmd *cobra.Command, args []string, fn func(float64) string) error {
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", arg, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), fn(v))
	}
	return nil
}

func setupLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
