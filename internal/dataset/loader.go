package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Input file names, relative to the data directory.
const (
	ReferendumFile  = "referendum.csv"
	RegionsFile     = "regions.csv"
	DepartmentsFile = "departments.csv"
)

// Load reads the three input tables from dir. referendum.csv is
// semicolon-delimited, regions.csv and departments.csv comma-delimited.
func Load(dir string) (referendum, regions, departments *Table, err error) {
	referendum, err = ReadCSV(filepath.Join(dir, ReferendumFile), ';')
	if err != nil {
		return nil, nil, nil, err
	}
	regions, err = ReadCSV(filepath.Join(dir, RegionsFile), ',')
	if err != nil {
		return nil, nil, nil, err
	}
	departments, err = ReadCSV(filepath.Join(dir, DepartmentsFile), ',')
	if err != nil {
		return nil, nil, nil, err
	}
	return referendum, regions, departments, nil
}

// ReadCSV reads a delimited file into a Table. The first row is the header.
// Rows whose field count differs from the header are skipped silently, as
// are lines the CSV parser cannot tokenize.
func ReadCSV(path string, comma rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	t := &Table{
		Name:   filepath.Base(path),
		Header: header,
	}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed line: skip, do not report.
			continue
		}
		if len(record) != len(header) {
			continue
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}
