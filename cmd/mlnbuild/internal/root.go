package internal

import (
	"errors"
	"os"
	"os/exec"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mlnbuild",
	Short: "mlnbuild compiles maplibre-native for the host platform",
	Long: `mlnbuild resolves the CMake configure preset matching the host
operating system and CPU architecture, then shells out to cmake to
configure and build the vendored maplibre-native source tree.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// An external tool's failure is our failure, exit code included.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		log.Fatal(err)
	}
}
