package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	figma2css "github.com/kataras/figma2css"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		red := color.New(color.FgRed)
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			red.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "figma2css [file-url-or-key]",
		Short:         "Generate CSS and HTML from Figma components",
		Long:          "A tool to turn the components and component sets of a Figma file into plain CSS stylesheets, HTML markup and a shared theme stylesheet of design tokens",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := rootCmd.Flags()
	flags.StringP("token", "t", "", "Figma Personal Access Token (or FIGMA_TOKEN)")
	flags.Bool("cache", false, "Read the cached file instead of calling the Figma API")
	flags.String("cache-file", figma2css.DefaultCacheFile, "Cache file location")
	flags.StringP("output", "o", figma2css.DefaultOutputDir, "Output directory")
	flags.String("report", "", "Also write a markdown report to this file")
	flags.String("log-format", logFormatPretty, "Log format: pretty or json")
	flags.BoolP("verbose", "v", false, "Log per-node diagnostics")
	flags.Int("concurrency", 0, "Components generated in parallel (0 = number of CPUs)")
	flags.String("config", "", "Config file (default ./.figma2css.yaml)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "figma2css version %s\n", figma2css.Version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags(), args)
	if err != nil {
		return err
	}

	logger, trace, err := newLoggers(cfg)
	if err != nil {
		return err
	}
	defer trace.Sync()

	pretty := cfg.LogFormat == logFormatPretty
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	if pretty {
		cyan.Println("\n🎨 Figma to CSS")
		cyan.Println("================")
		cyan.Println()
	}

	result, err := figma2css.Run(cmd.Context(), figma2css.Options{
		AccessToken: cfg.Token,
		File:        cfg.File,
		UseCache:    cfg.Cache,
		CacheFile:   cfg.CacheFile,
		Concurrency: cfg.Concurrency,
		Logger:      logger,
		Trace:       trace,
	})
	if err != nil {
		return err
	}

	written, writeErr := result.WriteFiles(cfg.Output)

	if cfg.Report != "" {
		if err := os.WriteFile(cfg.Report, []byte(result.Report()), 0o644); err != nil {
			logger.Errorf("Could not write report: %v", err)
		} else {
			written = append(written, cfg.Report)
		}
	}

	if !pretty {
		logger.Infof("Wrote %d file(s) for %d component(s) and %d token(s) to %s",
			len(written), len(result.Components), result.Tokens.Len(), cfg.Output)
		return writeErr
	}

	cyan.Println("\n📊 Summary:")
	fmt.Printf("  • File: %s\n", result.FileName)
	fmt.Printf("  • Components: %d\n", len(result.Components))
	fmt.Printf("  • Design Tokens: %d\n", result.Tokens.Len())
	fmt.Printf("  • Files Written: %d\n", len(written))

	if writeErr != nil {
		return writeErr
	}
	green.Printf("\n✨ Successfully generated styles in %s\n\n", cfg.Output)
	return nil
}

// newLoggers returns the progress logger and the diagnostics logger for the chosen
// log format.
func newLoggers(cfg *config) (figma2css.Logger, *zap.Logger, error) {
	if cfg.LogFormat == logFormatJSON {
		zc := zap.NewProductionConfig()
		if cfg.Verbose {
			zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		z, err := zc.Build()
		if err != nil {
			return nil, nil, err
		}
		return z.Sugar(), z, nil
	}

	trace := zap.NewNop()
	if cfg.Verbose {
		z, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, err
		}
		trace = z
	}
	return &cliLogger{}, trace, nil
}

// cliLogger implements figma2css.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
