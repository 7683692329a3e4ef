package geomap

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"gonum.org/v1/plot/vg"

	"scrutin/internal/aggregate"
)

func TestRender_WritesPNG(t *testing.T) {
	multi := geom.NewMultiPolygon(geom.XY).MustSetCoords([][][]geom.Coord{
		{{{2, 0}, {3, 0}, {3, 1}, {2, 1}, {2, 0}}},
		{{{2, 2}, {3, 2}, {3, 3}, {2, 3}, {2, 2}}},
	})
	entries := []RegionMap{
		{RegionResult: aggregate.RegionResult{RegionName: "A"}, Ratio: 0.4, Geometry: square(0, 0)},
		{RegionResult: aggregate.RegionResult{RegionName: "B"}, Ratio: 0.7, Geometry: multi},
		{RegionResult: aggregate.RegionResult{RegionName: "C"}, Ratio: math.NaN(), Geometry: square(4, 0)},
	}

	path := filepath.Join(t.TempDir(), "map.png")
	err := Render(entries, path, 10*vg.Centimeter, 10*vg.Centimeter)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRender_SingleRatioStillScales(t *testing.T) {
	entries := []RegionMap{
		{RegionResult: aggregate.RegionResult{RegionName: "A"}, Ratio: 0.5, Geometry: square(0, 0)},
	}
	path := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, Render(entries, path, 5*vg.Centimeter, 5*vg.Centimeter))
}

func TestRatioRange(t *testing.T) {
	lo, hi := ratioRange([]RegionMap{{Ratio: 0.2}, {Ratio: 0.8}, {Ratio: math.NaN()}})
	assert.Equal(t, 0.2, lo)
	assert.Equal(t, 0.8, hi)

	lo, hi = ratioRange([]RegionMap{{Ratio: math.NaN()}})
	assert.Less(t, lo, hi)

	lo, hi = ratioRange(nil)
	assert.Less(t, lo, hi)
}
