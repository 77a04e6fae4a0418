package client

import "regexp"

// keywordPattern detects the server's field:value keyword syntax: a colon
// not preceded by whitespace or a backslash, immediately followed by a
// non-whitespace character, anywhere in the query. The boundary of this
// heuristic is tied to the server's query grammar; it intentionally
// misclassifies free text containing colons (e.g. timestamps) the same way
// the server's own tooling does, so it must not be "improved" here.
var keywordPattern = regexp.MustCompile(`[^\s\\]:\S`)

// IsKeywordQuery reports whether a query string looks like the keyword
// (field:value) syntax rather than free text. Used as the default when the
// caller does not set the keyword flag explicitly.
func IsKeywordQuery(query string) bool {
	return keywordPattern.MatchString(query)
}

// dicomUIDPattern matches dotted-numeric DICOM unique identifiers, e.g.
// "1.2.840.10008.1.1". Components may not be empty.
var dicomUIDPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// IsValidDicomUID reports whether the string is shaped like a DICOM UID.
// This is the only client-side DICOM semantic check the library performs.
func IsValidDicomUID(uid string) bool {
	return dicomUIDPattern.MatchString(uid)
}
