package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X github.com/kiesman99/imgsplit/cmd.version=..."
var version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the imgsplit version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "imgsplit %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
