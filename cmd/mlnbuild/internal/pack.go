package internal

import (
	"github.com/spf13/cobra"

	"github.com/acalcutt/maplibre-native-from-source/internal/npmignore"
)

var packDir string

var prepackCmd = &cobra.Command{
	Use:   "prepack",
	Short: "Hide .npmignore before npm pack",
	Long: `Prepack renames .npmignore out of the way so npm pack honors the
files allowlist instead. A no-op when the file is already hidden.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return npmignore.Hide(packDir)
	},
}

var postpackCmd = &cobra.Command{
	Use:   "postpack",
	Short: "Restore .npmignore after npm pack",
	Long:  `Postpack undoes prepack. A no-op when there is nothing to restore.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return npmignore.Restore(packDir)
	},
}

func init() {
	for _, c := range []*cobra.Command{prepackCmd, postpackCmd} {
		c.Flags().StringVar(&packDir, "dir", ".", "Package directory")
		rootCmd.AddCommand(c)
	}
}
