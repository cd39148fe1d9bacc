package export

import (
	"encoding/csv"
	"fmt"

	"github.com/spf13/afero"
)

// WriteCSV writes t to path as comma-separated values. The header row holds
// the column keys and is written even when the table has no rows.
func WriteCSV(fs afero.Fs, path string, t Table) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(t.Keys()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}
