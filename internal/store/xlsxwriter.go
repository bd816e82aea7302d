package store

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Analysis"

// writeXLSX lays the bundle out as a two-column sheet, one row per field,
// followed by the provenance rows.
func writeXLSX(path string, v bundleView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	rows := [][2]string{{"Field", "Value"}}
	for _, s := range v.sections {
		rows = append(rows, [2]string{s.Title, s.Text})
	}
	rows = append(rows,
		[2]string{"Source", v.Provenance.Source},
		[2]string{"Reason", v.Provenance.Reason},
		[2]string{"Run ID", v.Provenance.RunID},
		[2]string{"Created At", v.Provenance.CreatedAt.Format(time.RFC3339)},
	)

	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 16); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "B", "B", 100); err != nil {
		return err
	}

	return f.SaveAs(path)
}
