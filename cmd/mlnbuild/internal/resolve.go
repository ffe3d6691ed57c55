package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acalcutt/maplibre-native-from-source/internal/platform"
)

var resolveSource string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the build configuration for the host without building",
	Long: `Resolve prints the preset, build tool, build directory and extra
arguments the build command would use, without touching the filesystem
or invoking cmake.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveSource, "source", "", "Path to the maplibre-native checkout")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	dir, _, err := pickSourceDir(resolveSource)
	if err != nil {
		return fmt.Errorf("failed to locate source dir: %w", err)
	}

	res, err := resolveForHost(platform.Detect(), dir)
	if err != nil {
		return err
	}

	fmt.Printf("preset:     %s\n", res.Preset)
	fmt.Printf("tool:       %s\n", res.Tool)
	fmt.Printf("build dir:  %s (%s)\n", res.BuildDir, res.DirSource)
	fmt.Printf("build type: %s\n", res.BuildType)
	if len(res.ExtraArgs) > 0 {
		fmt.Printf("extra args: %s\n", strings.Join(res.ExtraArgs, " "))
	}
	return nil
}
