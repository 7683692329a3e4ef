// Package pipeline wires the load, merge, aggregate and map stages into one
// linear run.
package pipeline

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"scrutin/internal/aggregate"
	"scrutin/internal/config"
	"scrutin/internal/dataset"
	"scrutin/internal/geomap"
	"scrutin/internal/merge"
)

// BoundariesFile is the region boundary file inside the data directory.
const BoundariesFile = "regions.geojson"

// Result holds the outputs of one pipeline run.
type Result struct {
	// Results has one row per region, ordered by region code.
	Results []aggregate.RegionResult

	// Map is Results joined with boundary geometry and the choice-A share.
	Map []geomap.RegionMap
}

// Run executes the whole pipeline: load the three tables, merge regions and
// departments, merge the referendum onto the areas, aggregate per region and
// join the aggregated results to the boundary polygons. The first error
// aborts the run.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	referendum, regions, departments, err := dataset.Load(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}
	log.Debug("tables loaded",
		zap.Int("referendum_rows", referendum.Len()),
		zap.Int("region_rows", regions.Len()),
		zap.Int("department_rows", departments.Len()))

	areas, err := merge.RegionsAndDepartments(regions, departments)
	if err != nil {
		return nil, err
	}
	log.Debug("area table built", zap.Int("rows", len(areas)))

	rows, err := merge.ReferendumAndAreas(referendum, areas)
	if err != nil {
		return nil, err
	}
	log.Debug("referendum merged", zap.Int("rows", len(rows)))

	results := aggregate.ByRegion(rows)
	log.Info("results aggregated", zap.Int("regions", len(results)))

	boundaries, err := geomap.LoadRegions(filepath.Join(cfg.Data.Dir, BoundariesFile))
	if err != nil {
		return nil, err
	}
	joined := geomap.JoinResults(results, boundaries)
	log.Debug("geometry joined",
		zap.Int("boundaries", len(boundaries)),
		zap.Int("joined", len(joined)))

	return &Result{Results: results, Map: joined}, nil
}

// RenderMap writes the choropleth of res to the configured map path.
func RenderMap(res *Result, cfg *config.Config, log *zap.Logger) error {
	width := vg.Length(cfg.Output.WidthCM) * vg.Centimeter
	height := vg.Length(cfg.Output.HeightCM) * vg.Centimeter
	if err := geomap.Render(res.Map, cfg.Output.MapPath, width, height); err != nil {
		return err
	}
	log.Info("map rendered", zap.String("path", cfg.Output.MapPath), zap.Int("regions", len(res.Map)))
	return nil
}
