package merge

import (
	"testing"

	"scrutin/internal/dataset"
)

func referendumTable(rows ...[]string) *dataset.Table {
	return &dataset.Table{
		Name: "referendum.csv",
		Header: []string{
			"Department code", "Department name", "Town code", "Town name",
			"Registered", "Abstentions", "Null", "Choice A", "Choice B",
		},
		Rows: rows,
	}
}

func refRow(code string, counts ...string) []string {
	row := []string{code, "name", "1", "town"}
	return append(row, counts...)
}

var testAreas = []Area{
	{RegionCode: "84", RegionName: "Auvergne-Rhône-Alpes", DepartmentCode: "01", DepartmentName: "Ain"},
	{RegionCode: "84", RegionName: "Auvergne-Rhône-Alpes", DepartmentCode: "07", DepartmentName: "Ardèche"},
	{RegionCode: "94", RegionName: "Corse", DepartmentCode: "2A", DepartmentName: "Corse-du-Sud"},
	{RegionCode: "01", RegionName: "Guadeloupe", DepartmentCode: "971", DepartmentName: "Guadeloupe"},
}

func TestReferendumAndAreas_NormalizesLeadingZeros(t *testing.T) {
	table := referendumTable(
		refRow("1", "100", "10", "2", "50", "38"),
	)

	rows, err := ReferendumAndAreas(table, testAreas)
	if err != nil {
		t.Fatalf("ReferendumAndAreas: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	// Area code "01" was normalized to "1" and matched.
	if rows[0].RegionCode != "84" {
		t.Errorf("got region %q, want 84", rows[0].RegionCode)
	}
	if rows[0].DepartmentName != "Ain" {
		t.Errorf("got department %q, want Ain", rows[0].DepartmentName)
	}
}

func TestReferendumAndAreas_CorsicaPassesThrough(t *testing.T) {
	table := referendumTable(
		refRow("2A", "200", "20", "4", "90", "86"),
	)

	rows, err := ReferendumAndAreas(table, testAreas)
	if err != nil {
		t.Fatalf("ReferendumAndAreas: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].DepartmentCode != "2A" || rows[0].RegionCode != "94" {
		t.Errorf("got code %q region %q, want 2A / 94", rows[0].DepartmentCode, rows[0].RegionCode)
	}
}

func TestReferendumAndAreas_DropsNonNumericCodes(t *testing.T) {
	table := referendumTable(
		refRow("ZA", "100", "10", "2", "50", "38"),
		refRow("ZZ", "100", "10", "2", "50", "38"),
		refRow("2B", "100", "10", "2", "50", "38"),
	)

	rows, err := ReferendumAndAreas(table, testAreas)
	if err != nil {
		t.Fatalf("ReferendumAndAreas: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want only the 2B row", len(rows))
	}
	if rows[0].DepartmentCode != "2B" {
		t.Errorf("got code %q, want 2B", rows[0].DepartmentCode)
	}
}

func TestReferendumAndAreas_OverseasAreasNeverMatch(t *testing.T) {
	// Area code 971 is dropped from the lookup side, so a numeric
	// referendum row for it stays unmatched (left join).
	table := referendumTable(
		refRow("971", "100", "10", "2", "50", "38"),
	)

	rows, err := ReferendumAndAreas(table, testAreas)
	if err != nil {
		t.Fatalf("ReferendumAndAreas: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].RegionCode != "" || rows[0].RegionName != "" {
		t.Errorf("overseas row should keep empty region fields, got %q/%q",
			rows[0].RegionCode, rows[0].RegionName)
	}
}

func TestReferendumAndAreas_SkipsUnparsableCounts(t *testing.T) {
	table := referendumTable(
		refRow("1", "100", "10", "2", "50", "38"),
		refRow("7", "n/a", "10", "2", "50", "38"),
	)

	rows, err := ReferendumAndAreas(table, testAreas)
	if err != nil {
		t.Fatalf("ReferendumAndAreas: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].DepartmentCode != "1" {
		t.Errorf("got code %q, want 1", rows[0].DepartmentCode)
	}
}

func TestReferendumAndAreas_MissingColumn(t *testing.T) {
	table := &dataset.Table{
		Header: []string{"Department code", "Registered"},
	}
	if _, err := ReferendumAndAreas(table, testAreas); err == nil {
		t.Error("expected error for missing vote-count columns")
	}
}
