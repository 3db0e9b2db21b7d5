// Package main provides the gs CLI entry point.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/matsen/gramschmidt/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// Version is set at build time via ldflags
var Version = "dev"

// Persistent flags shared by every command.
var (
	jsonOutput bool
	verbose    bool
	configPath string
)

// Run flags. Only flags the user sets override the file and environment.
var (
	flagLower       int
	flagUpper       int
	flagSeed        uint64
	flagMaxAttempts int
	flagDecimals    int
	flagOutput      string
	flagBrowser     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors is set, so cobra's own errors are printed here.
		exitWithError(exitCodeFor(err), "%v", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gs",
	Short: "Orthogonalize three random vectors with Gram-Schmidt",
	Long: `gs draws three linearly independent integer vectors in R³, runs the
classical Gram-Schmidt procedure on them and shows the result.

The initial, orthogonal and orthonormal vectors are printed to stdout and
rendered as an HTML figure with a 3D view and the XY, XZ and YZ projections.
The figure opens in the browser when stdout is a terminal.

Examples:
  # Draw from the default range [-10, 10]
  gs

  # Reproduce a run
  gs --seed 42

  # Narrow range, JSON output, no figure
  gs --lower -3 --upper 3 --json --no-plot`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runGramSchmidt,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&jsonOutput, "json", false, "Output JSON instead of the text log")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/gs/config.yml)")
	addRunFlags(pf)

	rootCmd.Flags().BoolVar(&noOpen, "no-open", false, "Write the figure without opening it")
	rootCmd.Flags().BoolVar(&noPlot, "no-plot", false, "Skip rendering the figure")

	rootCmd.Version = Version
}

// addRunFlags registers the flags that override configuration values.
func addRunFlags(fs *pflag.FlagSet) {
	fs.IntVar(&flagLower, "lower", config.DefaultLowerBound, "Smallest vector component")
	fs.IntVar(&flagUpper, "upper", config.DefaultUpperBound, "Largest vector component")
	fs.Uint64Var(&flagSeed, "seed", 0, "Random seed (default: a fresh seed per run)")
	fs.IntVar(&flagMaxAttempts, "max-attempts", config.DefaultMaxAttempts, "Draws allowed before giving up on the bounds")
	fs.IntVar(&flagDecimals, "decimals", config.DefaultDecimals, "Decimal places in output")
	fs.StringVarP(&flagOutput, "output", "o", "", "Figure output path (default: a temp file)")
	fs.StringVar(&flagBrowser, "browser", "", "Command that opens the figure (default: system)")
}

// setup loads ./.env and configures the global logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	// A missing .env is the common case.
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
	})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return nil
}

// loadConfig resolves the effective configuration: defaults, then the
// config file, then the environment, then flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("lower") {
		cfg.LowerBound = flagLower
	}
	if flags.Changed("upper") {
		cfg.UpperBound = flagUpper
	}
	if flags.Changed("seed") {
		seed := flagSeed
		cfg.Seed = &seed
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = flagMaxAttempts
	}
	if flags.Changed("decimals") {
		cfg.Decimals = flagDecimals
	}
	if flags.Changed("output") {
		cfg.Output = config.ExpandPath(flagOutput)
	}
	if flags.Changed("browser") {
		cfg.Browser = flagBrowser
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig(cmd *cobra.Command) *config.Config {
	cfg, err := loadConfig(cmd)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}
