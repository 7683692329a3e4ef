package geomap

import (
	"github.com/twpayne/go-geom"

	"scrutin/internal/aggregate"
)

// RegionMap is an aggregated result joined with its boundary geometry and
// the derived choice-A share.
type RegionMap struct {
	aggregate.RegionResult
	Ratio    float64
	Geometry geom.T
}

// JoinResults inner-joins aggregated results to boundary regions by exact
// region-name match and computes ratio = ChoiceA / (ChoiceA + ChoiceB) for
// each joined row. A zero denominator yields NaN; a name present on only one
// side silently drops that region. Result order is preserved.
func JoinResults(results []aggregate.RegionResult, regions []Region) []RegionMap {
	byName := make(map[string]geom.T, len(regions))
	for _, r := range regions {
		if _, ok := byName[r.Name]; !ok {
			byName[r.Name] = r.Geometry
		}
	}

	var joined []RegionMap
	for _, res := range results {
		g, ok := byName[res.RegionName]
		if !ok {
			continue
		}
		joined = append(joined, RegionMap{
			RegionResult: res,
			Ratio:        Ratio(res),
			Geometry:     g,
		})
	}
	return joined
}

// Ratio returns the choice-A share of expressed ballots. NaN when no ballot
// expressed either choice.
func Ratio(res aggregate.RegionResult) float64 {
	return float64(res.ChoiceA) / float64(res.ChoiceA+res.ChoiceB)
}
