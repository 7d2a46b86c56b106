// SPDX-License-Identifier: MIT
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Table is one worksheet worth of tabular data. Cells may hold any value
// excelize can encode; a nil cell stays empty, which is how absent
// statistics are rendered.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]any
}

// WriteXLSX serializes the table as a single-sheet workbook, headers in the
// first row, data rows following in order.
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", t.Sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(t.Sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(t.Sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	return nil
}
