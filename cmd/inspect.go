package cmd

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kiesman99/imgsplit/internal/splitter"
	"github.com/kiesman99/imgsplit/pkg/imagefmt"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive.zip>",
	Short: "List the slices inside a split archive",
	Long: `List the entries of an archive written by imgsplit in natural order
(split_2 before split_10) together with their format and dimensions.

Examples:
  imgsplit inspect photo_splits.zip`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	entries, err := splitter.ReadArchive(data)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tFORMAT\tSIZE\tBYTES")
	for _, e := range entries {
		format := imagefmt.Sniff(e.Data)
		size := "-"
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(e.Data)); err == nil {
			size = fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", e.Name, format, size, len(e.Data))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d entries in %s\n", len(entries), args[0])
	return nil
}
