// Package xlsx reads and writes the risk workbook.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wspwll/risk-radar/internal/ports"
)

var ErrNoSheets = errors.New("no sheets in workbook")

// Source reads rows from the first sheet of a workbook file. The first row
// holds the headers.
type Source struct {
	Path string
}

var _ ports.RowSource = Source{}

func (s Source) Name() string { return filepath.Base(s.Path) }

func (s Source) Rows(ctx context.Context) ([]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.Path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	// raw values keep dates as serial numbers and numbers unformatted
	grid, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return gridToRows(grid), nil
}

// gridToRows keys each data row by header. Missing cells become "", blank
// rows and unnamed columns are skipped.
func gridToRows(grid [][]string) []map[string]string {
	if len(grid) == 0 {
		return nil
	}
	headers := grid[0]
	var out []map[string]string
	for _, cells := range grid[1:] {
		row := make(map[string]string, len(headers))
		blank := true
		for i, h := range headers {
			if strings.TrimSpace(h) == "" {
				continue
			}
			v := ""
			if i < len(cells) {
				v = cells[i]
			}
			if strings.TrimSpace(v) != "" {
				blank = false
			}
			row[h] = v
		}
		if blank {
			continue
		}
		out = append(out, row)
	}
	return out
}
