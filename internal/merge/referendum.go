package merge

import (
	"fmt"
	"strconv"
	"unicode"

	"scrutin/internal/dataset"
)

// Corsica departments have alphanumeric codes that bypass the numeric
// filtering applied to the rest of mainland France.
const (
	CorsicaSouth = "2A"
	CorsicaNorth = "2B"
)

// Referendum column names expected in referendum.csv.
var referendumColumns = []string{
	"Department code",
	"Registered",
	"Abstentions",
	"Null",
	"Choice A",
	"Choice B",
}

// Row is one referendum record joined with its area. Region fields are empty
// when the department code matched nothing (left-join null semantics).
type Row struct {
	DepartmentCode string
	DepartmentName string
	RegionCode     string
	RegionName     string
	Registered     int
	Abstentions    int
	NullBallots    int
	ChoiceA        int
	ChoiceB        int
}

// ReferendumAndAreas filters the referendum table to mainland+Corsica
// departments and left-joins it onto the area table.
//
// Referendum rows are kept when their department code is purely numeric or
// one of the Corsica codes. On the area side, Corsica rows pass through
// unchanged while the rest drop codes numerically >= 100 (DOM-TOM-COM) and
// strip leading zeros ("01" becomes "1"). Numeric referendum codes get the
// same zero-strip round-trip so both sides share one code format.
func ReferendumAndAreas(referendum *dataset.Table, areas []Area) ([]Row, error) {
	idx := make(map[string]int, len(referendumColumns))
	for _, name := range referendumColumns {
		col := referendum.Column(name)
		if col < 0 {
			return nil, fmt.Errorf("referendum table: missing column %q", name)
		}
		idx[name] = col
	}

	areaByCode := make(map[string]Area, len(areas))
	for _, a := range areas {
		code := a.DepartmentCode
		if code != CorsicaSouth && code != CorsicaNorth {
			n, err := strconv.Atoi(code)
			if err != nil || n >= 100 {
				continue
			}
			code = strconv.Itoa(n)
		}
		if _, ok := areaByCode[code]; !ok {
			a.DepartmentCode = code
			areaByCode[code] = a
		}
	}

	var rows []Row
	for _, rec := range referendum.Rows {
		code := rec[idx["Department code"]]
		if isNumeric(code) {
			n, err := strconv.Atoi(code)
			if err != nil {
				continue
			}
			code = strconv.Itoa(n)
		} else if code != CorsicaSouth && code != CorsicaNorth {
			continue
		}

		counts := make([]int, 5)
		ok := true
		for i, name := range referendumColumns[1:] {
			n, err := strconv.Atoi(rec[idx[name]])
			if err != nil {
				ok = false
				break
			}
			counts[i] = n
		}
		if !ok {
			continue
		}

		row := Row{
			DepartmentCode: code,
			Registered:     counts[0],
			Abstentions:    counts[1],
			NullBallots:    counts[2],
			ChoiceA:        counts[3],
			ChoiceB:        counts[4],
		}
		if a, found := areaByCode[code]; found {
			row.DepartmentName = a.DepartmentName
			row.RegionCode = a.RegionCode
			row.RegionName = a.RegionName
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
