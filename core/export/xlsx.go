package export

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet = "Sheet1"
	// Padding added to the widest cell when fitting a column.
	widthPadding = 2.0
	minColWidth  = 8.0
)

// XLSXOptions controls spreadsheet layout.
type XLSXOptions struct {
	// FreezeRows is the number of top rows kept visible while scrolling.
	FreezeRows int
	// FreezeCols is the number of left columns kept visible while scrolling.
	FreezeCols int
	// TableStyle is the built-in table style name, e.g. TableStyleMedium2.
	TableStyle string
}

// WriteXLSX writes t to path as a workbook with a single sheet holding a
// formatted table. Header cells are bold and centred, and column widths are
// fitted to the longest value in each column.
func WriteXLSX(fs afero.Fs, path string, t Table, opts XLSXOptions) (err error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, t.Sheet); err != nil {
		return fmt.Errorf("failed to name sheet %q: %w", t.Sheet, err)
	}

	headers := t.Headers()
	if err := f.SetSheetRow(t.Sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.Sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(t.Columns))
	if err != nil {
		return fmt.Errorf("invalid column count %d: %w", len(t.Columns), err)
	}
	// A table needs at least one body row.
	lastRow := len(t.Rows) + 1
	if lastRow < 2 {
		lastRow = 2
	}

	if err := f.AddTable(t.Sheet, &excelize.Table{
		Range:     "A1:" + lastCol + strconv.Itoa(lastRow),
		Name:      t.Name,
		StyleName: opts.TableStyle,
	}); err != nil {
		return fmt.Errorf("failed to add table: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(t.Sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	if err := freezePanes(f, t.Sheet, opts.FreezeRows, opts.FreezeCols); err != nil {
		return err
	}

	for i, width := range fitWidths(t) {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(t.Sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}

	out, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func freezePanes(f *excelize.File, sheet string, rows, cols int) error {
	if rows <= 0 && cols <= 0 {
		return nil
	}

	topLeft, err := excelize.CoordinatesToCellName(cols+1, rows+1)
	if err != nil {
		return err
	}

	pane := "bottomRight"
	switch {
	case rows == 0:
		pane = "topRight"
	case cols == 0:
		pane = "bottomLeft"
	}

	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      cols,
		YSplit:      rows,
		TopLeftCell: topLeft,
		ActivePane:  pane,
		Selection: []excelize.Selection{
			{SQRef: topLeft, ActiveCell: topLeft, Pane: pane},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}
	return nil
}

// fitWidths returns one width per column, large enough for its header and
// every cell, clamped to what the format allows.
func fitWidths(t Table) []float64 {
	widths := make([]float64, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = float64(runewidth.StringWidth(c.Header))
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := float64(runewidth.StringWidth(row[i])); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i] += widthPadding
		if widths[i] < minColWidth {
			widths[i] = minColWidth
		}
		if widths[i] > excelize.MaxColumnWidth {
			widths[i] = excelize.MaxColumnWidth
		}
	}
	return widths
}
