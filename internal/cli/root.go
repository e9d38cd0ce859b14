package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dash-ajou/dashgen/internal/branding"
	"github.com/Dash-ajou/dashgen/internal/config"
	dlog "github.com/Dash-ajou/dashgen/internal/log"
	"github.com/Dash-ajou/dashgen/internal/scaffold"
	"github.com/Dash-ajou/dashgen/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Global flags.
var (
	configFile string
	verbose    bool
	logLevel   string
	noColor    bool
)

// Set up by the root command before any subcommand runs.
var (
	logger  = zap.NewNop()
	printer *ui.Printer
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Scaffold manifest to read (default ./"+branding.ManifestFile()+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Print every path and enable debug logging")
	pf.StringVar(&logLevel, "log-level", dlog.DefaultLevel, "Log level for stderr diagnostics (debug, info, warn, error)")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output (also honors NO_COLOR)")

	pf.String(config.KeyRoot, "", "Project root directory (default "+config.DefaultRoot+")")
	pf.String(config.KeyServices, "", "Comma-separated service names (env "+branding.EnvVar(config.KeyServices)+")")
	pf.String(config.KeyLibs, "", "Comma-separated shared library names (env "+branding.EnvVar(config.KeyLibs)+")")
	pf.String(config.KeyEcosystem, "", "Naming profile for generated files (default python)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the directory skeleton of the Project Dash monorepo:
one subtree per service under services/ and one package per shared library
under libs/, filled with empty placeholder files.

Settings come from defaults, ./` + branding.ManifestFile() + `, ` + branding.EnvPrefix() + `_* environment
variables, and flags, in increasing order of precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		color := !noColor && os.Getenv("NO_COLOR") == ""
		printer = ui.NewPrinter(cmd.OutOrStdout(), color)

		l, err := dlog.New(dlog.Options{Level: logLevel, Verbose: verbose})
		if err != nil {
			return err
		}
		logger = l.With(zap.String("command", cmd.Name()))
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
// SIGINT and SIGTERM cancel the command context, which halts a running
// scaffold between filesystem operations.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	_ = dlog.Sync(logger)
	return err
}

// loadConfig resolves the effective configuration for cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(config.Options{File: configFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration resolved",
		zap.String("root", cfg.Root),
		zap.Strings("services", cfg.Services),
		zap.Strings("libs", cfg.Libs),
		zap.String("manifest", cfg.Manifest))
	return cfg, nil
}

func newGenerator() *scaffold.Generator {
	return scaffold.New(scaffold.Options{Printer: printer, Logger: logger, Verbose: verbose})
}
