package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/wspwll/risk-radar/internal/services/tabular"
)

const sheetName = "Risks"

// Build lays the table out on a "Risks" sheet with header row, column widths
// and the number formats carried by each column.
func Build(t tabular.Table) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		_ = f.Close()
		return nil, err
	}

	for c, col := range t.Columns {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, name+"1", col.Header); err != nil {
			_ = f.Close()
			return nil, err
		}
		if col.Width > 0 {
			if err := f.SetColWidth(sheetName, name, name, col.Width); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
		if col.Format == "" || len(t.Rows) == 0 {
			continue
		}
		format := col.Format
		style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("number format %q: %w", format, err)
		}
		last := fmt.Sprintf("%s%d", name, len(t.Rows)+1)
		if err := f.SetCellStyle(sheetName, name+"2", last, style); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	for r, values := range t.Rows {
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				_ = f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	}
	return f, nil
}

// WriteFile saves the table as a workbook at path.
func WriteFile(path string, t tabular.Table) error {
	f, err := Build(t)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// Write streams the table as a workbook to w.
func Write(w io.Writer, t tabular.Table) error {
	f, err := Build(t)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}
