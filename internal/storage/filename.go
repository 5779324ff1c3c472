package storage

import (
	"fmt"
	"strings"
)

// StampLayout is the timestamp layout embedded in archival filenames.
const StampLayout = "2006-01-02T15:04"

// SanitizeUsername makes a username safe to use as a filename component.
// A path separator would otherwise turn the report name into a nested path.
func SanitizeUsername(username string) string {
	return strings.ReplaceAll(username, "/", "(f_slash)")
}

// currentName is the canonical report filename for a sanitized username
func currentName(username string) string {
	return username + ".txt"
}

// archiveName is the archival report filename for a sanitized username and
// a StampLayout timestamp
func archiveName(username, stamp string) string {
	return fmt.Sprintf("old_%s_%s.txt", username, stamp)
}
