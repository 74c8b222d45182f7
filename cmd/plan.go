package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kiesman99/imgsplit/internal/config"
	"github.com/kiesman99/imgsplit/internal/splitter"
	"github.com/kiesman99/imgsplit/pkg/imagefmt"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the rectangles a split would produce",
	Long: `Print the rectangles a split of a width x height image would produce,
without reading any image. Counts are checked against the same limits as a
real split.

Examples:
  imgsplit plan --width 1000 --height 333 -d horizontal -n 3
  imgsplit plan --width 1920 --height 1080 -d vertical -n 7 -f webp`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().Int("width", 0, "image width in pixels (required)")
	planCmd.Flags().Int("height", 0, "image height in pixels (required)")
	planCmd.MarkFlagRequired("width")
	planCmd.MarkFlagRequired("height")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	opts, err := splitOptions()
	if err != nil {
		return err
	}

	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	rects, err := cfg.Splitter().Plan(width, height, opts)
	if err != nil {
		return err
	}

	format := opts.Format
	if format == imagefmt.Unknown {
		format = imagefmt.PNG
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tX0\tY0\tX1\tY1\tSIZE")
	for i, r := range rects {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%dx%d\n",
			splitter.Name(i, format), r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, r.Dx(), r.Dy())
	}
	return tw.Flush()
}
