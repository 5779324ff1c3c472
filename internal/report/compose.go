package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/balkashynov/taskreport/internal/models"
)

// TimeLayout is the human-readable generation timestamp in the report header.
const TimeLayout = "02.01.2006 15:04"

// maxTitleLen is the widest a task title may render, in characters, before
// it is clipped.
const maxTitleLen = 46

// Compose renders the report text for one user and their tasks.
//
// Tasks are partitioned by the completed flag; a task with an invalid flag
// contributes to neither section nor to the totals. When the user has no
// countable tasks at all, ok is false and nothing must be written to disk.
func Compose(user models.User, tasks []models.Task, now time.Time) (text string, ok bool) {
	var current, completed []string
	for _, task := range tasks {
		switch task.Completed {
		case models.CompletionPending:
			current = append(current, "- "+clipTitle(task.Title))
		case models.CompletionDone:
			completed = append(completed, "- "+clipTitle(task.Title))
		}
	}

	total := len(current) + len(completed)
	if total == 0 {
		return "", false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Report for %s.\n", user.Company.Name)
	fmt.Fprintf(&b, "%s <%s> %s\n", user.Name, user.Email, now.Format(TimeLayout))
	fmt.Fprintf(&b, "Total tasks: %d\n", total)
	fmt.Fprintf(&b, "\n## Current tasks (%d):\n", len(current))
	for _, line := range current {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n## Completed tasks (%d):\n", len(completed))
	for _, line := range completed {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String(), true
}

// clipTitle shortens titles that do not fit the report line width. The
// limit counts characters, not bytes: the service serves Cyrillic titles,
// and a byte cut could split a rune.
func clipTitle(title string) string {
	runes := []rune(title)
	if len(runes) > maxTitleLen {
		return string(runes[:maxTitleLen]) + "..."
	}
	return title
}
