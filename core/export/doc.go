// Package export writes tabular report data to disk.
//
// A Table carries both a machine key and a human header per column. WriteCSV
// uses the keys as its header row; WriteXLSX uses the headers, wraps the data
// in a styled Excel table, freezes the requested panes and fits column widths
// to the content. Both writers go through an afero.Fs.
package export
