package report

import (
	"fmt"
	"regexp"
)

// headerDateRegex matches the generation timestamp a composed report embeds
// in its header line, e.g. "13.06.2024 14:05".
var headerDateRegex = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4}) (\d{2}):(\d{2})`)

// ExtractTimestamp finds the generation timestamp inside rendered report
// text and returns it reformatted for an archival filename
// (YYYY-MM-DDTHH:MM). ok is false when the text holds no timestamp; the
// caller decides what to stamp the archive with instead.
func ExtractTimestamp(text string) (stamp string, ok bool) {
	m := headerDateRegex.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	day, month, year := m[1], m[2], m[3]
	hour, minute := m[4], m[5]
	return fmt.Sprintf("%s-%s-%sT%s:%s", year, month, day, hour, minute), true
}
