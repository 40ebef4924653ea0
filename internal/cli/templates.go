package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/jamgen/internal/app"
	"github.com/tacogips/jamgen/internal/template/provider"
)

// templatesCmd represents the templates command
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List bundled templates",
	Long: `List the templates bundled with jamgen, with the description from
their manifests. The template marked as default is used by "jamgen new"
when no --template or --git flag is given.

Examples:
  jamgen templates`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

// templatesCheckCmd represents the templates check command
var templatesCheckCmd = &cobra.Command{
	Use:   "check [PATH]",
	Short: "Validate a local template",
	Long: `Validate a local template directory without generating a project.

The manifest is loaded and every file name and renderable file is rendered
against sample values (placeholder defaults, first choices or stand-ins).
All syntax errors and undefined variables are reported.

If PATH is not specified, the current directory is checked.

Examples:
  jamgen templates check
  jamgen templates check ./my-template`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplatesCheck,
}

func init() {
	templatesCmd.AddCommand(templatesCheckCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	infos, err := provider.DescribeBundled()
	if err != nil {
		return fmt.Errorf("failed to read bundled templates: %w", err)
	}

	printHeader("Bundled templates")
	for _, info := range infos {
		line := "  " + paint(nameStyle, info.Name)
		if info.Version != "" {
			line += " " + info.Version
		}
		if info.Name == loadedConfig.Templates.Default {
			line += paint(verboseStyle, " (default)")
		}
		printInfo(line)
		if info.Description != "" {
			printInfo("      " + info.Description)
		}
	}
	return nil
}

func runTemplatesCheck(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	result, err := app.CheckTemplate(cmd.Context(), app.CheckTemplateOptions{Path: path})
	if err != nil {
		return err
	}

	printInfo(fmt.Sprintf("Checked %d files in template %s", result.FilesChecked, paint(nameStyle, result.TemplateName)))
	if len(result.Errors) == 0 {
		printInfo(paint(successStyle, "✓") + " No problems found")
		return nil
	}

	for _, e := range result.Errors {
		printWarning(fmt.Sprintf("%s: %s", e.File, e.Message))
	}
	return fmt.Errorf("%d of %d files have errors", result.FilesWithErrors, result.FilesChecked)
}
