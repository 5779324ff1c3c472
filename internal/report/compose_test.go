package report

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/balkashynov/taskreport/internal/models"
)

var composeUser = models.User{
	ID:       1,
	Username: "jroe",
	Name:     "Jane Roe",
	Email:    "jane@example.com",
	Company:  models.Company{Name: "Umbrella"},
}

func TestComposeFormat(t *testing.T) {
	now := time.Date(2024, 6, 13, 14, 5, 0, 0, time.Local)
	tasks := []models.Task{
		{Title: "buy milk", Completed: models.CompletionPending},
		{Title: "write tests", Completed: models.CompletionPending},
		{Title: "ship release", Completed: models.CompletionDone},
	}

	text, ok := Compose(composeUser, tasks, now)
	if !ok {
		t.Fatal("expected a report, got absence signal")
	}

	want := "# Report for Umbrella.\n" +
		"Jane Roe <jane@example.com> 13.06.2024 14:05\n" +
		"Total tasks: 3\n" +
		"\n## Current tasks (2):\n" +
		"- buy milk\n" +
		"- write tests\n" +
		"\n## Completed tasks (1):\n" +
		"- ship release\n"
	if text != want {
		t.Fatalf("unexpected report text:\ngot:\n%s\nwant:\n%s", text, want)
	}

	if got := strings.Count(text, "\n- "); got != 3 {
		t.Fatalf("expected 3 task lines, got %d", got)
	}
}

func TestComposeZeroTasksSignalsAbsence(t *testing.T) {
	now := time.Now()

	if _, ok := Compose(composeUser, nil, now); ok {
		t.Fatal("expected absence signal for nil task list")
	}

	// Tasks that only carry invalid completion flags count as zero.
	tasks := []models.Task{
		{Title: "limbo", Completed: models.CompletionInvalid},
	}
	if _, ok := Compose(composeUser, tasks, now); ok {
		t.Fatal("expected absence signal when no task has a boolean flag")
	}
}

func TestComposeExcludesInvalidCompletion(t *testing.T) {
	now := time.Date(2024, 6, 13, 14, 5, 0, 0, time.Local)
	tasks := []models.Task{
		{Title: "counted", Completed: models.CompletionPending},
		{Title: "not counted", Completed: models.CompletionInvalid},
	}

	text, ok := Compose(composeUser, tasks, now)
	if !ok {
		t.Fatal("expected a report, got absence signal")
	}
	if !strings.Contains(text, "Total tasks: 1\n") {
		t.Fatalf("invalid task leaked into totals:\n%s", text)
	}
	if strings.Contains(text, "not counted") {
		t.Fatalf("invalid task leaked into a section:\n%s", text)
	}
}

func TestComposeTruncatesLongTitles(t *testing.T) {
	now := time.Date(2024, 6, 13, 14, 5, 0, 0, time.Local)
	long := strings.Repeat("a", 60)
	exact := strings.Repeat("b", 46)
	tasks := []models.Task{
		{Title: long, Completed: models.CompletionPending},
		{Title: exact, Completed: models.CompletionDone},
	}

	text, _ := Compose(composeUser, tasks, now)

	wantLine := "- " + strings.Repeat("a", 46) + "...\n"
	if !strings.Contains(text, wantLine) {
		t.Fatalf("expected truncated line %q in:\n%s", wantLine, text)
	}
	// 46 chars + "..." marker.
	if got := len(strings.Repeat("a", 46) + "..."); got != 49 {
		t.Fatalf("expected truncated title length 49, got %d", got)
	}
	// A title at the limit is rendered verbatim.
	if !strings.Contains(text, "- "+exact+"\n") {
		t.Fatalf("expected untruncated line for 46-char title in:\n%s", text)
	}
	if strings.Contains(text, exact+"...") {
		t.Fatalf("46-char title must not be truncated:\n%s", text)
	}
}

func TestComposeTruncatesMultibyteTitlesByCharacter(t *testing.T) {
	now := time.Date(2024, 6, 13, 14, 5, 0, 0, time.Local)
	// 47 Cyrillic characters (94 bytes): one over the limit.
	long := strings.Repeat("п", 47)
	tasks := []models.Task{
		{Title: long, Completed: models.CompletionPending},
	}

	text, _ := Compose(composeUser, tasks, now)

	wantLine := "- " + strings.Repeat("п", 46) + "...\n"
	if !strings.Contains(text, wantLine) {
		t.Fatalf("expected 46 characters + ellipsis, got:\n%s", text)
	}
	if !utf8.ValidString(text) {
		t.Fatal("truncation produced invalid UTF-8")
	}

	// 46 Cyrillic characters fit and stay verbatim despite being 92 bytes.
	tasks[0].Title = strings.Repeat("п", 46)
	text, _ = Compose(composeUser, tasks, now)
	if !strings.Contains(text, "- "+tasks[0].Title+"\n") {
		t.Fatalf("46-character title must render verbatim:\n%s", text)
	}
	if strings.Contains(text, "...") {
		t.Fatalf("46-character title must not be truncated:\n%s", text)
	}
}
