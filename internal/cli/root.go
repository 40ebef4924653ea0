package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tacogips/jamgen/internal/config"
	"github.com/tacogips/jamgen/internal/debug"
)

// Global flags
var (
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
	globalConfigPath string
)

// loadedConfig is the configuration resolved before any command runs.
var loadedConfig = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jamgen",
	Short: "Generate JAM service projects from templates",
	Long: `jamgen creates new JAM service projects from templates.

Templates are directories with a jamgen.yaml manifest describing the
placeholders to ask for. Files are rendered with Liquid, so names and
contents can use {{ project_name }}, {{ crate_name }} and any declared
placeholder, plus the case filters pascal_case, snake_case, kebab_case,
lower_camel_case and upper_camel_case.

Templates come from the bundled catalog, a local directory or a git
repository:

  jamgen new my-service
  jamgen new my-service --template minimal
  jamgen new my-service --template ./my-template
  jamgen new my-service --git gh:owner/templates --path services/basic`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupGlobals,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, FlagConfig, "", DescConfig+" (default: ~/.config/jamgen/config.yaml)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupGlobals configures logging and loads the configuration file.
func setupGlobals(cmd *cobra.Command, args []string) error {
	debug.SetDebug(globalDebug)

	cfg, err := loadConfig(globalConfigPath)
	if err != nil {
		return err
	}
	loadedConfig = cfg

	if !cfg.Output.Color || !isTerminal(os.Stdout) {
		globalNoColor = true
	}
	debug.SetNoColor(globalNoColor)
	return nil
}

// loadConfig loads the file at path, or the default location when path is
// empty. Only an explicitly named file must exist.
func loadConfig(path string) (*config.Config, error) {
	loader := config.NewLoader()

	var cfg *config.Config
	if path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		cfg, err = loader.Load(expanded)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		cfg, err = loader.LoadOrDefault(config.DefaultConfigPath())
		if err != nil {
			return nil, err
		}
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(stderr, "%s %v\n", paint(errorStyle, "Error:"), err)
}
