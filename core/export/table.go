package export

// Column describes one column of an exported table.
type Column struct {
	// Key is the machine name, used as the CSV header.
	Key string
	// Header is the human-readable title, used as the spreadsheet header.
	Header string
}

// Table is a rectangular set of string cells with named columns.
type Table struct {
	// Name is the spreadsheet table name. It must start with a letter or
	// underscore and contain no spaces.
	Name string
	// Sheet is the worksheet name.
	Sheet string
	// Columns defines column order and headers.
	Columns []Column
	// Rows holds the cell values; each row has len(Columns) entries.
	Rows [][]string
}

// Keys returns the column keys in order.
func (t Table) Keys() []string {
	keys := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		keys[i] = c.Key
	}
	return keys
}

// Headers returns the human-readable column headers in order.
func (t Table) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Header
	}
	return headers
}
