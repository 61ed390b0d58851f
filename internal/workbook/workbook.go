// Package workbook runs batch property calculations over spreadsheet
// files. The input sheet has a header row followed by one shape per row:
//
//	name | kind | p1 | p2 | material
//
// where kind is "rectangle" (p1 width, p2 height) or "ring" (p1 outer
// radius, p2 optional inner radius) and material is an optional catalog
// name. Rows that cannot be parsed are skipped and counted.
package workbook

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/runlevel0/cross-section/internal/geometry"
	"github.com/runlevel0/cross-section/internal/material"
	"github.com/runlevel0/cross-section/internal/section"
)

// Entry is the computed record for one input row.
type Entry struct {
	Name     string
	Kind     string
	Props    section.Properties
	Weighted *section.WeightedProperties
}

// Result is the outcome of a batch run.
type Result struct {
	Entries []Entry
	Skipped int
}

// Process computes properties for every row of the first sheet read
// from r.
func Process(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return processSheet(f)
}

// ProcessFile computes properties for every row of the first sheet of a
// workbook file.
func ProcessFile(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return processSheet(f)
}

func processSheet(f *excelize.File) (*Result, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	result := &Result{}
	for i := 1; i < len(rows); i++ {
		entry, err := parseRow(rows[i])
		if err != nil {
			result.Skipped++
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

// parseRow builds the section a row describes and computes its record.
func parseRow(row []string) (Entry, error) {
	if len(row) < 3 {
		return Entry{}, fmt.Errorf("need at least name, kind and one dimension")
	}

	name := strings.TrimSpace(row[0])
	kind := strings.ToLower(strings.TrimSpace(row[1]))

	p1, err := toFloat(row[2])
	if err != nil {
		return Entry{}, err
	}
	p2 := 0.0
	if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
		if p2, err = toFloat(row[3]); err != nil {
			return Entry{}, err
		}
	}

	var s section.Section
	switch kind {
	case "rectangle":
		if p2 <= 0 {
			return Entry{}, fmt.Errorf("rectangle needs a width and a height")
		}
		s, err = section.NewGenericSection(geometry.RectanglePoints(geometry.Point{}, p1, p2))
	case "ring":
		s, err = section.NewRingSection(geometry.Point{}, p1, p2)
	default:
		return Entry{}, fmt.Errorf("unknown kind %q", kind)
	}
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{Name: name, Kind: kind, Props: s.Properties()}
	if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
		m, ok := material.Lookup(strings.TrimSpace(row[4]))
		if !ok {
			return Entry{}, fmt.Errorf("unknown material %q", row[4])
		}
		ms, err := section.NewMaterialisedSection(s, m)
		if err != nil {
			return Entry{}, err
		}
		wp := ms.WeightedProperties()
		entry.Weighted = &wp
	}
	return entry, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// resultHeader is the column layout WriteResults emits.
var resultHeader = []interface{}{
	"Name", "Kind", "Area", "Cx", "Cy", "Ixx", "Iyy", "Ixy", "I1", "I2", "Angle (deg)", "Mass",
}

// WriteResults writes the computed entries to a new workbook file.
func WriteResults(entries []Entry, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &resultHeader); err != nil {
		return err
	}
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			e.Name, e.Kind,
			e.Props.Area, e.Props.Centroid.X, e.Props.Centroid.Y,
			e.Props.Ixx, e.Props.Iyy, e.Props.Ixy,
			e.Props.I1, e.Props.I2, e.Props.Angle * 180 / math.Pi,
		}
		if e.Weighted != nil {
			row = append(row, e.Weighted.Mass)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
