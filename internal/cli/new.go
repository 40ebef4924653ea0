package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tacogips/jamgen/internal/app"
	"github.com/tacogips/jamgen/internal/debug"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [NAME]",
	Short: "Create a new project from a template",
	Long: `Create a new project directory from a template.

The project name must start with a lowercase letter and contain only
lowercase letters, digits, '-' and '_'. When NAME is omitted it is asked
for. Placeholders declared by the template are prompted for unless
--defaults is given or stdin is not a terminal, in which case declared
defaults are used. Values given with --define or --values-file are never
prompted for; values from the file win over --define.

After generation the project is initialized as a git repository unless
--no-git is given or git.init_repo is false in the config file.

Examples:
  jamgen new my-service
  jamgen new my-service --defaults -d author="Ada Lovelace"
  jamgen new my-service -t minimal -o ./services/my-service
  jamgen new my-service --values-file values.yaml
  jamgen new my-service --git https://github.com/owner/templates/tree/main/basic
  jamgen new my-service --git gh:owner/templates --branch dev --path basic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

// New command flags
var (
	newTemplate   templateFlags
	newOutput     string
	newDefaults   bool
	newDefines    []string
	newValuesFile string
	newNoGit      bool
	newVerbose    bool
)

func init() {
	newCmd.Flags().StringVarP(&newTemplate.template, FlagTemplate, "t", "", DescTemplate)
	newCmd.Flags().StringVar(&newTemplate.git, FlagGit, "", DescGit)
	newCmd.Flags().StringVar(&newTemplate.branch, FlagBranch, "", DescBranch)
	newCmd.Flags().StringVar(&newTemplate.path, FlagPath, "", DescPath)
	newCmd.Flags().StringVarP(&newOutput, FlagOutput, "o", "", DescOutput)
	newCmd.Flags().BoolVar(&newDefaults, FlagDefaults, false, DescDefaults)
	newCmd.Flags().StringArrayVarP(&newDefines, FlagDefine, "d", nil, DescDefine)
	newCmd.Flags().StringVar(&newValuesFile, FlagValuesFile, "", DescValuesFile)
	newCmd.Flags().BoolVar(&newNoGit, FlagNoGit, false, DescNoGit)
	newCmd.Flags().BoolVarP(&newVerbose, FlagVerbose, "v", false, DescVerbose)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig

	src, err := sourceFromFlags(newTemplate, cfg)
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	}

	interactive := !newDefaults
	if interactive && !isTerminal(os.Stdin) {
		debug.Debug("[cli] stdin is not a terminal, using template defaults")
		interactive = false
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if src.GitURL != "" && cfg.Git.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Git.FetchTimeout())
		defer cancel()
	}

	printProgress(fmt.Sprintf("Using template %s", describeSource(src)))
	printVerbose(newVerbose, fmt.Sprintf("Interactive: %t", interactive))
	if newValuesFile != "" {
		printVerbose(newVerbose, fmt.Sprintf("Values file: %s", newValuesFile))
	}

	result, err := app.NewProject(ctx, app.NewOptions{
		ProjectName: name,
		Source:      src,
		OutputDir:   newOutput,
		Defines:     newDefines,
		ValuesFile:  newValuesFile,
		Interactive: interactive,
		Prompter:    newSurveyPrompter(),
		InitGit:     !newNoGit && cfg.Git.InitRepo,
		InitBranch:  cfg.Git.InitBranch,
	})
	if err != nil {
		if result != nil {
			printWarning(fmt.Sprintf("Project files were written to %s", result.OutputDir))
		}
		return err
	}

	if !globalQuiet {
		writeSummary(stdout, result, newVerbose)
	}
	return nil
}

// writeSummary prints what was generated and how to continue.
func writeSummary(w io.Writer, result *app.NewResult, verbose bool) {
	gen := result.Generate

	fmt.Fprintf(w, "%s Created %s from template %s\n",
		paint(successStyle, "✓"), paint(nameStyle, result.ProjectName), result.TemplateName)
	fmt.Fprintf(w, "\nSummary:\n")
	fmt.Fprintf(w, "  Rendered:    %d files\n", gen.FilesRendered)
	fmt.Fprintf(w, "  Copied:      %d files\n", gen.FilesCopied)
	fmt.Fprintf(w, "  Directories: %d\n", gen.Directories)
	fmt.Fprintf(w, "  Written:     %s\n", humanize.Bytes(uint64(gen.BytesWritten)))
	if result.GitInitialized {
		fmt.Fprintf(w, "  Git:         repository initialized\n")
	}

	if verbose {
		fmt.Fprintf(w, "\nFiles:\n")
		for _, f := range gen.Files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}

	fmt.Fprintf(w, "\nNext steps:\n")
	fmt.Fprintf(w, "  cd %s\n", displayPath(result.OutputDir))
	fmt.Fprintf(w, "  cargo jam build\n")
}

// displayPath shortens dir relative to the working directory when it lies
// below it.
func displayPath(dir string) string {
	wd, err := os.Getwd()
	if err != nil {
		return dir
	}
	rel, err := filepath.Rel(wd, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return dir
	}
	return rel
}
