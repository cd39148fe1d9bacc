package inventory

import (
	"fmt"
	"path/filepath"
	"time"

	"loanable-inventory/core/export"
	"loanable-inventory/feature/inventory/models"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	// DateLayout formats the report date in file and sheet names.
	DateLayout = "2006-01-02"

	baseNameSuffix = "_Loanable_Inventory"
	tableName      = "Loanable_Inventory"
	tableStyle     = "TableStyleMedium2"
)

// Files holds the paths written by one export.
type Files struct {
	CSV  string
	XLSX string
}

// Paths returns both paths, CSV first.
func (f Files) Paths() []string {
	return []string{f.CSV, f.XLSX}
}

// BaseName returns the report file name without extension, e.g. 2026-10-15_Loanable_Inventory.
func BaseName(date time.Time) string {
	return date.Format(DateLayout) + baseNameSuffix
}

// BuildTable wraps rows in the report schema with a sheet named after date.
func BuildTable(rows []models.Row, date time.Time) export.Table {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Values()
	}
	return export.Table{
		Name:    tableName,
		Sheet:   date.Format(DateLayout),
		Columns: models.Columns,
		Rows:    cells,
	}
}

// Exporter writes the report as CSV and XLSX into one directory.
type Exporter struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

// NewExporter creates an exporter writing into dir on fs.
func NewExporter(fs afero.Fs, dir string, logger *zap.Logger) *Exporter {
	return &Exporter{fs: fs, dir: dir, logger: logger}
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Export writes both report files for date. Either write failing fails the export.
func (e *Exporter) Export(rows []models.Row, date time.Time) (Files, error) {
	if err := e.fs.MkdirAll(e.dir, 0o755); err != nil {
		return Files{}, fmt.Errorf("failed to create output directory %s: %w", e.dir, err)
	}

	base := filepath.Join(e.dir, BaseName(date))
	files := Files{CSV: base + ".csv", XLSX: base + ".xlsx"}
	table := BuildTable(rows, date)

	e.logger.Info("Saving CSV file", zap.String("path", files.CSV))
	if err := export.WriteCSV(e.fs, files.CSV, table); err != nil {
		return Files{}, err
	}

	e.logger.Info("Saving Excel file", zap.String("path", files.XLSX))
	err := export.WriteXLSX(e.fs, files.XLSX, table, export.XLSXOptions{
		FreezeRows: 1,
		FreezeCols: 2,
		TableStyle: tableStyle,
	})
	if err != nil {
		return Files{}, err
	}

	return files, nil
}
