package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/highton/config"
	"github.com/s0up4200/highton/filter"
	"github.com/s0up4200/highton/highrise"
)

var (
	cfgFile       string
	cfg           *config.Config
	logger        zerolog.Logger
	client        highrise.API
	presets       *filter.Manager
	outputFormat  string
	dryRun        bool
	version       = "dev"
	buildTime     = "unknown"
	newHighriseFn = newHighriseClient

	// Command flags
	filterExpr string
	preset     string
	sinceFlag  string
	noConfirm  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "highton",
	Short: "A command line client for the Highrise CRM",
	Long: `highton talks to the Highrise XML API. It lists, creates, updates and
deletes people and companies, shows task and deal categories, and filters
contacts with expressions on tags, emails and dates.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records the build information reported by version and update.
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "show changes without sending them")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads the configuration and creates the Highrise client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging, os.Stderr)
	if cfg.File != "" {
		logger.Debug().Str("file", cfg.File).Msg("Loaded config")
	}

	// Command line flags win over the config file
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}
	if outputFormat != "" {
		if !isValidOutput(outputFormat) {
			return fmt.Errorf("invalid output format: %s (must be table, json or yaml)", outputFormat)
		}
		cfg.Output.Format = outputFormat
	}

	presets = filter.NewManager()
	if err := presets.RegisterFilters(cfg.Filter.Expressions()); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	client, err = newHighriseFn(cfg.Highrise, logger)
	if err != nil {
		return fmt.Errorf("failed to create Highrise client: %w", err)
	}

	return nil
}

func newHighriseClient(hc config.HighriseConfig, logger zerolog.Logger) (highrise.API, error) {
	c, err := highrise.NewClient(hc.User, hc.APIKey, logger,
		highrise.WithBaseURL(hc.BaseURL),
		highrise.WithTimeout(hc.Timeout),
		highrise.WithUserAgent(hc.UserAgent),
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// getFilterExpression determines the filter expression to use.
// Priority: command line filter > preset > default. An empty result matches
// everything.
func getFilterExpression() (string, error) {
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if p, ok := cfg.Filter.Presets[preset]; ok {
			return p.Expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.Default, nil
}

// resolveFilter returns the compiled filter for the current flags. Presets
// come precompiled from the manager.
func resolveFilter() (filter.Filter, error) {
	if filterExpr == "" && preset != "" {
		if f, ok := presets.GetFilter(preset); ok {
			return f, nil
		}
	}

	expr, err := getFilterExpression()
	if err != nil {
		return nil, err
	}

	f, err := filter.ParseAndCreateFilter(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

// confirm asks a yes/no question unless confirmation is disabled.
func confirm(cmd *cobra.Command, question string) bool {
	if !cfg.Safety.ConfirmDelete || noConfirm {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	return readYes(cmd.InOrStdin())
}

func readYes(r io.Reader) bool {
	response, _ := bufio.NewReader(r).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:               "test",
	Short:             "Test connection to Highrise",
	Long:              `Test the credentials against your Highrise account and show the authenticated user.`,
	PersistentPreRunE: initializeApp,
	RunE:              runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to Highrise account %s...\n", cfg.Highrise.User)

	user, err := client.Me(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to connect to Highrise: %w", err)
	}

	fmt.Fprintln(out, "✓ Connection successful!")
	fmt.Fprintf(out, "- User: %s (ID: %d)\n", user.Name, user.ID)
	if user.EmailAddress != "" {
		fmt.Fprintf(out, "- Email: %s\n", user.EmailAddress)
	}
	if names := presets.ListFilters(); len(names) > 0 {
		fmt.Fprintf(out, "- Filter presets: %s\n", strings.Join(names, ", "))
	}

	return nil
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "highton %s (built %s)\n", version, buildTime)
	},
}
