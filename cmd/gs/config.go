package main

import (
	"fmt"
	"os"

	"github.com/matsen/gramschmidt/internal/config"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration a run would use after applying the config file,
environment variables and flags.

Examples:
  gs config
  gs config --lower -3 --json
  gs config path
  gs config init`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolvedConfigPath()
		if jsonOutput {
			return outputJSON(StatusResponse{Status: "ok", Path: path})
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

// resolvedConfigPath returns --config if set, otherwise the default path.
func resolvedConfigPath() string {
	if configPath != "" {
		return config.ExpandPath(configPath)
	}
	return config.DefaultPath()
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig(cmd)
	path := resolvedConfigPath()

	if jsonOutput {
		return outputJSON(newConfigResponse(path, cfg))
	}

	fmt.Printf("config:       %s\n", path)
	fmt.Printf("lower_bound:  %d\n", cfg.LowerBound)
	fmt.Printf("upper_bound:  %d\n", cfg.UpperBound)
	if cfg.Seed != nil {
		fmt.Printf("seed:         %d\n", *cfg.Seed)
	} else {
		fmt.Println("seed:         (random)")
	}
	fmt.Printf("max_attempts: %d\n", cfg.MaxAttempts)
	fmt.Printf("decimals:     %d\n", cfg.Decimals)
	fmt.Printf("output:       %s\n", valueOr(cfg.Output, "(temp file)"))
	fmt.Printf("browser:      %s\n", valueOr(cfg.Browser, "system"))
	fmt.Println()
	fmt.Println(config.HelpfulConfigMessage())
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig(cmd)
	path := resolvedConfigPath()
	if path == "" {
		exitWithError(ExitConfigError, "cannot determine config path; pass --config")
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		exitWithError(ExitConfigError, "%s already exists (use --force to overwrite)", path)
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "written", Path: path})
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func newConfigResponse(path string, cfg *config.Config) ConfigResponse {
	return ConfigResponse{
		Path:        path,
		LowerBound:  cfg.LowerBound,
		UpperBound:  cfg.UpperBound,
		Seed:        cfg.Seed,
		MaxAttempts: cfg.MaxAttempts,
		Decimals:    cfg.Decimals,
		Output:      cfg.Output,
		Browser:     cfg.Browser,
	}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
