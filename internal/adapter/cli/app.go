package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ppc-optimizer/internal/config"
	"ppc-optimizer/internal/core/bidding"
	"ppc-optimizer/internal/core/domain"
	"ppc-optimizer/internal/core/port"
)

// Output formats accepted by --format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// CLIApp is the ppcctl command-line interface.
type CLIApp struct {
	rootCmd *cobra.Command
	svc     port.PPCUseCase
	version string
}

// options are the resolved settings of one invocation: built-in defaults,
// overridden by the config file, overridden by explicit flags.
type options struct {
	format     string
	export     string
	exportDir  string
	targetACOS float64
}

// NewCLIApp builds the command tree around svc.
func NewCLIApp(svc port.PPCUseCase, version string) *CLIApp {
	app := &CLIApp{svc: svc, version: version}

	rootCmd := &cobra.Command{
		Use:           "ppcctl",
		Short:         "Bid suggestions for sponsored-ads campaign exports",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				pterm.DisableStyling()
				color.NoColor = true
			}
		},
	}
	rootCmd.SetVersionTemplate(`{{printf "ppcctl version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("format", "f", FormatTable, "Output format: table, json, yaml")
	rootCmd.PersistentFlags().StringP("export", "o", "", "Also write the result to a .xlsx, .csv or .pdf file")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory for relative export paths (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	suggestCmd := &cobra.Command{
		Use:   "suggest <file>",
		Short: "Suggest new bids from ACOS for every campaign row",
		Args:  cobra.ExactArgs(1),
		RunE:  app.runSuggest,
	}

	maxBidsCmd := &cobra.Command{
		Use:   "max-bids <file>",
		Short: "Compute the max bid that moves each row toward a target ACOS",
		Args:  cobra.ExactArgs(1),
		RunE:  app.runMaxBids,
	}
	maxBidsCmd.Flags().Float64P("target-acos", "t", bidding.DefaultTargetACOS, "Target ACOS in percent")

	brandShareCmd := &cobra.Command{
		Use:   "brand-share <file>",
		Short: "List search queries whose cart-add share beats impression and click share",
		Args:  cobra.ExactArgs(1),
		RunE:  app.runBrandShare,
	}

	rootCmd.AddCommand(suggestCmd, maxBidsCmd, brandShareCmd)
	app.rootCmd = rootCmd
	return app
}

// Command exposes the root command, mainly so callers can set arguments
// and output streams.
func (app *CLIApp) Command() *cobra.Command {
	return app.rootCmd
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseOptions resolves the settings for cmd.
func (app *CLIApp) parseOptions(cmd *cobra.Command) (options, error) {
	opts := options{
		format:     FormatTable,
		targetACOS: bidding.DefaultTargetACOS,
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		defaults, err := config.LoadFile(path)
		if err != nil {
			return opts, err
		}
		if defaults.Format != "" {
			opts.format = defaults.Format
		}
		if defaults.TargetACOS != 0 {
			opts.targetACOS = defaults.TargetACOS
		}
		opts.exportDir = defaults.ExportDir
	}

	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		opts.format = f.Value.String()
	}
	if f := cmd.Flags().Lookup("target-acos"); f != nil && f.Changed {
		opts.targetACOS, _ = cmd.Flags().GetFloat64("target-acos")
	}
	if f := cmd.Flags().Lookup("dir"); f != nil && f.Changed {
		opts.exportDir = f.Value.String()
	}
	opts.export, _ = cmd.Flags().GetString("export")

	opts.format = strings.ToLower(strings.TrimSpace(opts.format))
	switch opts.format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return opts, fmt.Errorf("unknown format %q (want table, json or yaml)", opts.format)
	}

	if opts.exportDir != "" {
		abs, err := filepath.Abs(opts.exportDir)
		if err != nil {
			return opts, err
		}
		opts.exportDir = abs
	}
	return opts, nil
}

func (app *CLIApp) runSuggest(cmd *cobra.Command, args []string) error {
	opts, err := app.parseOptions(cmd)
	if err != nil {
		return err
	}
	upload, closeFn, err := openUpload(args[0])
	if err != nil {
		return err
	}
	defer closeFn()

	records, err := app.svc.SuggestBids(cmd.Context(), upload)
	if err != nil {
		return err
	}
	return app.render(cmd, opts, suggestView(records))
}

func (app *CLIApp) runMaxBids(cmd *cobra.Command, args []string) error {
	opts, err := app.parseOptions(cmd)
	if err != nil {
		return err
	}
	upload, closeFn, err := openUpload(args[0])
	if err != nil {
		return err
	}
	defer closeFn()

	records, err := app.svc.MaxBids(cmd.Context(), upload, opts.targetACOS)
	if err != nil {
		return err
	}
	return app.render(cmd, opts, maxBidsView(records))
}

func (app *CLIApp) runBrandShare(cmd *cobra.Command, args []string) error {
	opts, err := app.parseOptions(cmd)
	if err != nil {
		return err
	}
	upload, closeFn, err := openUpload(args[0])
	if err != nil {
		return err
	}
	defer closeFn()

	rows, err := app.svc.BrandShare(cmd.Context(), upload)
	if err != nil {
		return err
	}
	return app.render(cmd, opts, brandShareView(rows))
}

// openUpload opens path as an upload named after its base name.
func openUpload(path string) (domain.Upload, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Upload{}, nil, fmt.Errorf("open input: %w", err)
	}
	upload := domain.Upload{Filename: filepath.Base(path), Body: f}
	return upload, func() { _ = f.Close() }, nil
}
