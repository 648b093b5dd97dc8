package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/nestlancer/rnav"
	"github.com/nestlancer/rnav/config"
	"github.com/nestlancer/rnav/consts"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	routesFile string
	format     string
	verbose    bool

	logger *zap.Logger
)

var formats = []string{consts.FormatJSON, consts.FormatYAML, consts.FormatText, consts.FormatHTML}

var rootCmd = &cobra.Command{
	Use:   "rnav",
	Short: "NestLancer route templating and navigation metadata",
	Long: `rnav fills and matches NestLancer route templates and derives the
breadcrumbs, title and icon the layout shows for a path.

Routes come from the built-in table unless --routes names a YAML file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return serr.Wrap(err, "failed to initialize logger")
		}

		if !slices.Contains(formats, format) {
			return serr.New("unsupported --format", "format", format)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&routesFile, "routes", "", "YAML route file (default: built-in NestLancer routes)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", consts.FormatText, "output format: json, yaml, text or html")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(generateCmd, pathCmd, paramsCmd, matchCmd, crumbsCmd, titleCmd, iconCmd, describeCmd, routesCmd)
}

// loadNavigator builds the navigator from --routes or the built-in table.
func loadNavigator() (*rnav.Navigator, error) {
	if routesFile == "" {
		table, err := rnav.DefaultRoutes()
		if err != nil {
			return nil, err
		}
		logger.Debug("using built-in routes", zap.Int("count", table.Len()))
		return rnav.NewNavigator(table), nil
	}

	cfg, err := config.Load(routesFile)
	if err != nil {
		return nil, err
	}
	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded routes", zap.String("file", routesFile), zap.Int("count", table.Len()))
	return rnav.NewNavigator(table), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
