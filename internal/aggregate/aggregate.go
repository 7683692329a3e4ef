// Package aggregate reduces merged referendum rows to one result per region.
package aggregate

import (
	"sort"

	"scrutin/internal/merge"
)

// RegionResult holds the summed vote counts for one region.
type RegionResult struct {
	RegionCode  string
	RegionName  string
	Registered  int
	Abstentions int
	NullBallots int
	ChoiceA     int
	ChoiceB     int
}

// ByRegion groups rows by (region code, region name) and sums the vote-count
// columns. Rows that never matched a region carry empty keys and are
// excluded from grouping. The output is ordered by region code.
func ByRegion(rows []merge.Row) []RegionResult {
	byCode := make(map[string]*RegionResult)
	for _, row := range rows {
		if row.RegionCode == "" {
			continue
		}
		r, ok := byCode[row.RegionCode]
		if !ok {
			r = &RegionResult{
				RegionCode: row.RegionCode,
				RegionName: row.RegionName,
			}
			byCode[row.RegionCode] = r
		}
		r.Registered += row.Registered
		r.Abstentions += row.Abstentions
		r.NullBallots += row.NullBallots
		r.ChoiceA += row.ChoiceA
		r.ChoiceB += row.ChoiceB
	}

	results := make([]RegionResult, 0, len(byCode))
	for _, r := range byCode {
		results = append(results, *r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].RegionCode < results[j].RegionCode
	})
	return results
}
