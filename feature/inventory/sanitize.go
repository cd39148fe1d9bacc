package inventory

import "regexp"

var (
	// tagPattern matches one HTML-style tag: "<", then anything but angle brackets, then ">".
	tagPattern = regexp.MustCompile(`<[^<>]*>`)

	// breakPattern matches a run of carriage returns, line feeds and tabs.
	breakPattern = regexp.MustCompile(`[\r\n\t]+`)
)

// StripTags removes HTML-style tags such as <b> or </p> from s.
// Text between tags is kept.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// CollapseWhitespace replaces every run of CR, LF and TAB characters with a
// single space so a value fits on one spreadsheet line.
func CollapseWhitespace(s string) string {
	return breakPattern.ReplaceAllString(s, " ")
}

// SanitizeNotes applies StripTags then CollapseWhitespace.
func SanitizeNotes(s string) string {
	return CollapseWhitespace(StripTags(s))
}
