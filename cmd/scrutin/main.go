package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scrutin/internal/config"
	"scrutin/internal/logging"
	"scrutin/internal/pipeline"
	"scrutin/internal/report"
)

var (
	// Global flags
	cfgPath string
	dataDir string
	mapPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd runs the whole pipeline: results table on stdout, map on disk.
var rootCmd = &cobra.Command{
	Use:   "scrutin",
	Short: "Per-region referendum results and choropleth map",
	Long: `scrutin merges the referendum, regions and departments tables,
aggregates vote counts per region and renders a choropleth of the
choice-A share over the region boundaries.

Inputs are read from the data directory (default "data"):
  referendum.csv   semicolon-delimited vote counts per department
  regions.csv      region codes and names
  departments.csv  department codes, names and owning regions
  regions.geojson  one polygon per region with a "nom" property

Run without arguments to print the results table and write the map.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.FromEnv()
		}
		if dataDir != "" {
			cfg.Data.Dir = dataDir
		}
		if mapPath != "" {
			cfg.Output.MapPath = mapPath
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := pipeline.Run(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		if err := report.Fprint(os.Stdout, res.Results); err != nil {
			return err
		}
		return pipeline.RenderMap(res, cfg, logger)
	},
}

// resultsCmd prints the aggregated table without rendering the map.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print the per-region results table without rendering the map",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := pipeline.Run(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		return report.Fprint(os.Stdout, res.Results)
	},
}

// mapCmd renders the choropleth without printing the table.
var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Render the choropleth without printing the table",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := pipeline.Run(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		return pipeline.RenderMap(res, cfg, logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the input files (default \"data\")")
	rootCmd.PersistentFlags().StringVar(&mapPath, "out", "", "path of the rendered map (default \"referendum_map.png\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(mapCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
