package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the placement report
const (
	PlacementsSheet = "Placements"
	ClassesSheet    = "Classes"
	TilesSheet      = "Tiles"
	UnarrangedSheet = "Unarranged"
)

// WriteXLSX writes a spreadsheet with one row per placement plus class, tile
// and unarranged summaries
func WriteXLSX(path string, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), PlacementsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{ClassesSheet, TilesSheet, UnarrangedSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	parents := r.parentOf()
	placements := [][]interface{}{
		{"Shell", "Parent", "Tile", "UDIM", "Target U", "Target V", "Delta U", "Delta V", "Width", "Height"},
	}
	for _, t := range r.Tiles() {
		for _, p := range t.Placements {
			placements = append(placements, []interface{}{
				p.Ref, parents[p.Ref], t.Index, t.UDIM,
				p.Target.U, p.Target.V, p.Delta.U, p.Delta.V,
				p.Rect.W, p.Rect.H,
			})
		}
	}

	classes := [][]interface{}{
		{"Class", "Vertices", "Edges", "Faces", "UV Shells", "UV Area", "Members", "Per Tile", "Tiles", "Arranged"},
	}
	for _, c := range r.Result.Classes {
		classes = append(classes, []interface{}{
			c.Key.String(), c.Key.Vertices, c.Key.Edges, c.Key.Faces, c.Key.UVShells, c.Key.Area,
			len(c.Members), c.Capacity.ShellsPerTile, len(c.Tiles), c.Arranged,
		})
	}

	tiles := [][]interface{}{{"Tile", "UDIM", "Shells"}}
	perTile := r.ShellsPerTile()
	for _, idx := range sortedKeys(perTile) {
		tiles = append(tiles, []interface{}{idx, 1000 + idx, perTile[idx]})
	}

	unarranged := [][]interface{}{{"Parent"}}
	for _, p := range r.Result.Unarranged {
		unarranged = append(unarranged, []interface{}{p})
	}

	for _, sheet := range []struct {
		name string
		rows [][]interface{}
	}{
		{PlacementsSheet, placements},
		{ClassesSheet, classes},
		{TilesSheet, tiles},
		{UnarrangedSheet, unarranged},
	} {
		if err := writeRows(f, sheet.name, sheet.rows, header); err != nil {
			return err
		}
	}

	if err := writeRunInfo(f, r); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to create cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
		}
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return fmt.Errorf("failed to create cell reference: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	return nil
}

// writeRunInfo appends run metadata to the classes sheet, right of the table
func writeRunInfo(f *excelize.File, r *Report) error {
	info := [][2]interface{}{
		{"Run", r.RunID},
		{"Scene", r.Scene},
		{"Created", r.Created.Format("2006-01-02 15:04:05")},
		{"Start tile", r.Params.StartTile},
		{"Spacing", r.Params.Spacing},
		{"Stacking", r.Params.Stacking},
		{"Stack columns", r.Params.StackColumns},
	}
	for i, kv := range info {
		row := i + 1
		if err := f.SetCellValue(ClassesSheet, fmt.Sprintf("L%d", row), kv[0]); err != nil {
			return fmt.Errorf("failed to write run info: %w", err)
		}
		if err := f.SetCellValue(ClassesSheet, fmt.Sprintf("M%d", row), kv[1]); err != nil {
			return fmt.Errorf("failed to write run info: %w", err)
		}
	}
	return nil
}
