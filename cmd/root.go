package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kiesman99/imgsplit/internal/config"
	"github.com/kiesman99/imgsplit/internal/export"
	"github.com/kiesman99/imgsplit/internal/fetch"
	"github.com/kiesman99/imgsplit/internal/splitter"
	"github.com/kiesman99/imgsplit/pkg/imagefmt"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "imgsplit <image>",
	Short: "Split an image into horizontal bands or vertical columns",
	Long: `imgsplit cuts an image into N contiguous slices of equal size along one
axis. Any remainder goes to the last slice, so the slices always tile the
image exactly. Slices are named split_1.<ext>, split_2.<ext>, ... and can be
bundled into <name>_splits.zip.

The image can be a local file, an http(s) URL, or "-" for standard input.

Examples:
  # Three horizontal bands written to the current directory
  imgsplit photo.png -d horizontal -n 3

  # Four columns as JPEG, zipped into ./out/photo_splits.zip
  imgsplit photo.png -d vertical -n 4 -f jpeg --zip -o out

  # Split a remote image and stream the archive to another program
  imgsplit https://example.com/banner.png -n 5 --zip -o - > banner.zip

  # Show the rectangles without touching any pixels
  imgsplit plan --width 1920 --height 1080 -d vertical -n 7

  # Start HTTP server
  imgsplit serve --port 8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no args, show help
		if len(args) == 0 {
			return cmd.Help()
		}
		return runSplit(cmd, args[0])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.imgsplit.yaml)")

	// Split parameters, shared with plan
	rootCmd.PersistentFlags().StringP("direction", "d", "horizontal", "split direction (horizontal|vertical)")
	rootCmd.PersistentFlags().IntP("count", "n", 2, "number of slices")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format (png|jpeg|gif|bmp|tiff|webp), default keeps the source format")

	// Output options
	rootCmd.Flags().StringP("output", "o", ".", "output directory, or - to stream the zip to stdout")
	rootCmd.Flags().BoolP("zip", "z", false, "bundle the slices into <name>_splits.zip")
	rootCmd.Flags().BoolP("verbose", "v", false, "print one line per slice")

	// Source options
	rootCmd.Flags().String("user-agent", fetch.DefaultUserAgent, "HTTP User-Agent header for remote images")
	rootCmd.Flags().Int64("max-source-bytes", 0, "refuse sources larger than this many bytes (0 = no limit)")
	rootCmd.Flags().StringArrayP("header", "H", nil, "extra HTTP header for remote images as 'Key: Value' (repeatable)")

	// Bind flags to viper
	viper.BindPFlag("direction", rootCmd.PersistentFlags().Lookup("direction"))
	viper.BindPFlag("count", rootCmd.PersistentFlags().Lookup("count"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("zip", rootCmd.Flags().Lookup("zip"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	viper.BindPFlag("user-agent", rootCmd.Flags().Lookup("user-agent"))
	viper.BindPFlag("max-source-bytes", rootCmd.Flags().Lookup("max-source-bytes"))
	viper.BindPFlag("header", rootCmd.Flags().Lookup("header"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".imgsplit" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".imgsplit")
	}

	config.BindEnv(viper.GetViper())

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// splitOptions reads the shared split flags
func splitOptions() (splitter.Options, error) {
	dir, err := splitter.ParseDirection(viper.GetString("direction"))
	if err != nil {
		return splitter.Options{}, err
	}

	opts := splitter.Options{
		Direction: dir,
		Count:     viper.GetInt("count"),
	}

	if f := viper.GetString("format"); f != "" {
		format, err := imagefmt.Parse(f)
		if err != nil {
			return splitter.Options{}, err
		}
		opts.Format = format
	}

	return opts, nil
}

// parseHeader splits a "Key: Value" header flag
func parseHeader(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, ":")
	key = strings.TrimSpace(key)
	if !ok || key == "" || strings.ContainsAny(key, " \t") {
		return "", "", fmt.Errorf("invalid header %q, expected 'Key: Value'", s)
	}
	return key, strings.TrimSpace(value), nil
}

func runSplit(cmd *cobra.Command, ref string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	opts, err := splitOptions()
	if err != nil {
		return err
	}

	output := viper.GetString("output")
	zipOutput := viper.GetBool("zip")
	if output == export.Stdout {
		if !zipOutput {
			return fmt.Errorf("streaming to stdout requires --zip")
		}
		if export.IsTerminal(os.Stdout) {
			return export.ErrTerminal
		}
	}

	fetcher := fetch.New(viper.GetString("user-agent"), cfg.Server.Timeout, viper.GetInt64("max-source-bytes"))
	fetcher.Stdin = cmd.InOrStdin()
	for _, h := range viper.GetStringSlice("header") {
		key, value, err := parseHeader(h)
		if err != nil {
			return err
		}
		fetcher.SetHeader(key, value)
	}

	name, data, err := fetcher.Fetch(cmd.Context(), ref)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ref, err)
	}

	src, err := splitter.Load(name, data, cfg.Accepted())
	if err != nil {
		return err
	}

	s := cfg.Splitter()
	fmt.Fprintf(cmd.ErrOrStderr(), "Loaded %s: %dx%d %s (%d bytes)\n",
		src.Name, src.Width(), src.Height(), src.Format, src.Size)

	result, err := s.Split(cmd.Context(), src, opts)
	if err != nil {
		return err
	}

	if viper.GetBool("verbose") {
		for _, sl := range result.Slices {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %v %dx%d, %d bytes\n",
				sl.Filename, sl.Bounds, sl.Bounds.Dx(), sl.Bounds.Dy(), len(sl.Data))
		}
	}

	switch {
	case output == export.Stdout:
		if err := export.Stream(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to write archive: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d %s slices to stdout\n", len(result.Slices), result.Format)

	case zipOutput:
		path, err := export.Zip(output, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d %s slices to %s\n", len(result.Slices), result.Format, path)

	default:
		paths, err := export.Files(output, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d %s slices to %s\n", len(paths), result.Format, output)
	}

	return nil
}
