package geomap

import (
	"fmt"
	"image/color"
	"math"

	"github.com/twpayne/go-geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	borderColor  = color.Gray{Y: 0x50}
	missingColor = color.Gray{Y: 0xc8}
)

// Render draws the choropleth and writes it to path as a PNG. Each region is
// filled with a color from a continuous blue-red map scaled over the ratio
// range; regions with a NaN ratio are filled neutral gray.
func Render(entries []RegionMap, path string, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = "Choice A share by region"
	p.HideAxes()

	cm := moreland.SmoothBlueRed()
	lo, hi := ratioRange(entries)
	cm.SetMin(lo)
	cm.SetMax(hi)

	for _, e := range entries {
		fill := color.Color(missingColor)
		if !math.IsNaN(e.Ratio) {
			c, err := cm.At(e.Ratio)
			if err != nil {
				return fmt.Errorf("color for region %s: %w", e.RegionName, err)
			}
			fill = c
		}
		if err := addGeometry(p, e.Geometry, fill); err != nil {
			return fmt.Errorf("region %s: %w", e.RegionName, err)
		}
	}

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save map: %w", err)
	}
	return nil
}

// addGeometry adds the exterior ring of every polygon in g to the plot.
func addGeometry(p *plot.Plot, g geom.T, fill color.Color) error {
	switch g := g.(type) {
	case *geom.Polygon:
		return addRing(p, g.Coords(), fill)
	case *geom.MultiPolygon:
		for _, polygon := range g.Coords() {
			if err := addRing(p, polygon, fill); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported geometry type %T", g)
	}
}

func addRing(p *plot.Plot, rings [][]geom.Coord, fill color.Color) error {
	if len(rings) == 0 {
		return nil
	}
	exterior := rings[0]
	xys := make(plotter.XYs, len(exterior))
	for i, c := range exterior {
		xys[i].X = c.X()
		xys[i].Y = c.Y()
	}
	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return err
	}
	poly.Color = fill
	poly.LineStyle = draw.LineStyle{Color: borderColor, Width: vg.Points(0.5)}
	p.Add(poly)
	return nil
}

// ratioRange returns the min and max finite ratios, padded to a non-empty
// interval so the color map always has a valid scale.
func ratioRange(entries []RegionMap) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, e := range entries {
		if math.IsNaN(e.Ratio) {
			continue
		}
		lo = math.Min(lo, e.Ratio)
		hi = math.Max(hi, e.Ratio)
	}
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}
