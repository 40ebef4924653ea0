package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/jamgen/internal/build"
	"github.com/tacogips/jamgen/internal/template/provider"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and bundled templates",
	Long: `Display the jamgen build and the templates compiled into it.

Examples:
  jamgen version
  jamgen version --short
  jamgen version -o json
  jamgen version -o yaml`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

// Output formats accepted by version --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	versionShort  bool
	versionFormat string
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show version number only")
	versionCmd.Flags().StringVarP(&versionFormat, "output", "o", formatText, "Output format: text, json or yaml")
}

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version   string   `json:"version" yaml:"version"`
	Commit    string   `json:"commit" yaml:"commit"`
	BuildDate string   `json:"build_date" yaml:"build_date"`
	GoVersion string   `json:"go_version" yaml:"go_version"`
	Platform  string   `json:"platform" yaml:"platform"`
	Templates []string `json:"bundled_templates" yaml:"bundled_templates"`
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("jamgen %s (%s, %s)", v.Version, v.Commit, v.Platform)
}

func currentVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   build.Version(),
		Commit:    build.GitCommit(),
		BuildDate: build.BuildDate(),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Templates: provider.ListBundled(),
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := currentVersionInfo()
	if versionShort {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Version)
		return err
	}
	return writeVersion(cmd.OutOrStdout(), info, versionFormat)
}

// writeVersion renders info in the requested format.
func writeVersion(w io.Writer, info VersionInfo, format string) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()

	case formatText, "":
		fmt.Fprintln(w, paint(headerStyle, info.String()))
		rows := [][2]string{
			{"Build date", info.BuildDate},
			{"Go", info.GoVersion},
			{"Templates", strings.Join(info.Templates, ", ")},
		}
		for _, row := range rows {
			fmt.Fprintf(w, "  %s %s\n", paint(nameStyle, fmt.Sprintf("%-11s", row[0]+":")), row[1])
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, formatText, formatJSON, formatYAML)
	}
}
