package workbook

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildInput(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []interface{}{"name", "kind", "p1", "p2", "material"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestProcessMixedRows(t *testing.T) {
	buf := buildInput(t,
		[]interface{}{"plate", "rectangle", 4, 2, "steel"},
		[]interface{}{"pipe", "Ring", 2, 1},
		[]interface{}{"bar", "ring", 1.5},
		[]interface{}{"oops", "rectangle", "wide", 2},
		[]interface{}{"hex", "hexagon", 1, 2},
		[]interface{}{"stub"},
	)

	result, err := Process(buf)
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, 3, result.Skipped)

	plate := result.Entries[0]
	assert.Equal(t, "plate", plate.Name)
	assert.Equal(t, "rectangle", plate.Kind)
	assert.InDelta(t, 8.0, plate.Props.Area, 1e-9)
	require.NotNil(t, plate.Weighted)
	assert.InDelta(t, 7850*8.0, plate.Weighted.Mass, 1e-6)

	pipe := result.Entries[1]
	assert.Equal(t, "ring", pipe.Kind)
	assert.InDelta(t, 3*math.Pi, pipe.Props.Area, 1e-9)
	assert.Nil(t, pipe.Weighted)

	bar := result.Entries[2]
	assert.InDelta(t, math.Pi*1.5*1.5, bar.Props.Area, 1e-9)
}

func TestProcessRejectsEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	header := []interface{}{"name", "kind"}
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A1", &header))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = Process(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data rows")
}

func TestProcessRejectsGarbage(t *testing.T) {
	_, err := Process(strings.NewReader("not a spreadsheet"))
	assert.Error(t, err)
}

func TestProcessFileAndWriteResultsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.xlsx")
	outPath := filepath.Join(dir, "out.xlsx")

	buf := buildInput(t,
		[]interface{}{"plate", "rectangle", 4, 2, "steel"},
		[]interface{}{"pipe", "ring", 2, 1},
	)
	require.NoError(t, os.WriteFile(inPath, buf.Bytes(), 0o644))

	result, err := ProcessFile(inPath)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)

	require.NoError(t, WriteResults(result.Entries, outPath))

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "plate", rows[1][0])
	area, err := toFloat(rows[1][2])
	require.NoError(t, err)
	assert.InDelta(t, 8.0, area, 1e-9)
	angle, err := toFloat(rows[1][10])
	require.NoError(t, err)
	assert.InDelta(t, 90.0, angle, 1e-6)
	mass, err := toFloat(rows[1][11])
	require.NoError(t, err)
	assert.InDelta(t, 62800.0, mass, 1e-6)

	// The unmaterialised row has no mass column.
	assert.LessOrEqual(t, len(rows[2]), 11)
}
