// Package geomap joins aggregated referendum results to region boundary
// polygons and renders the choropleth.
package geomap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// nameProperty is the GeoJSON feature property carrying the region name.
const nameProperty = "nom"

// Region is one boundary feature: a region name and its polygon geometry.
type Region struct {
	Name     string
	Geometry geom.T
}

// LoadRegions reads a GeoJSON FeatureCollection with one Polygon or
// MultiPolygon feature per region. Features without a name property keep an
// empty name and fall out of the later join.
func LoadRegions(path string) ([]Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	regions := make([]Region, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		name, _ := f.Properties[nameProperty].(string)
		regions = append(regions, Region{Name: name, Geometry: f.Geometry})
	}
	return regions, nil
}
