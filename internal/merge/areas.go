// Package merge implements the relational joins of the pipeline: regions
// onto departments, then referendum rows onto the resulting area table.
package merge

import (
	"fmt"

	"scrutin/internal/dataset"
)

// Canonical column schemas applied by position before joining, mirroring the
// source table layouts (id, code, name, slug).
var (
	regionColumns     = []string{"id", "code_reg", "name_reg", "slug"}
	departmentColumns = []string{"id", "code_reg", "code_dep", "name_dep", "slug"}
)

// Area maps one department to its owning region.
type Area struct {
	RegionCode     string
	RegionName     string
	DepartmentCode string
	DepartmentName string
}

// RegionsAndDepartments left-joins the regions table onto the departments
// table by region code. The output has exactly one row per department row;
// departments whose region code has no match keep empty region fields.
func RegionsAndDepartments(regions, departments *dataset.Table) ([]Area, error) {
	if len(regions.Header) < len(regionColumns) {
		return nil, fmt.Errorf("regions table has %d columns, want %d", len(regions.Header), len(regionColumns))
	}
	if len(departments.Header) < len(departmentColumns) {
		return nil, fmt.Errorf("departments table has %d columns, want %d", len(departments.Header), len(departmentColumns))
	}

	// Region codes are unique per code, so the lookup side of the join is a
	// plain map.
	nameByCode := make(map[string]string, regions.Len())
	for _, row := range regions.Rows {
		code := row[1]
		if _, ok := nameByCode[code]; !ok {
			nameByCode[code] = row[2]
		}
	}

	areas := make([]Area, 0, departments.Len())
	for _, row := range departments.Rows {
		areas = append(areas, Area{
			RegionCode:     row[1],
			RegionName:     nameByCode[row[1]],
			DepartmentCode: row[2],
			DepartmentName: row[3],
		})
	}
	return areas, nil
}
