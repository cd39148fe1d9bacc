// Package utils provides conversion helpers for loosely typed JSON values.
//
// LibCal records are decoded into map[string]any with json.Number enabled, so
// fields arrive as strings, json.Number, bools or nil depending on the record.
// ToString, ToInt and ToBool turn those into the Go types the report needs.
package utils
