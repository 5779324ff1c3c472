// Package pipeline drives one report batch: fetch users, build and save a
// report for each of them.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/balkashynov/taskreport/internal/api"
	"github.com/balkashynov/taskreport/internal/models"
	"github.com/balkashynov/taskreport/internal/report"
	"github.com/balkashynov/taskreport/internal/storage"
)

// RecordFunc receives the outcome of one report save. A nil RecordFunc
// disables recording.
type RecordFunc func(username string, res storage.Result)

// Runner holds the collaborators of one batch.
type Runner struct {
	Client *api.Client
	Store  *storage.Store
	Out    io.Writer
	Now    func() time.Time
	Record RecordFunc
}

// Totals summarizes a finished batch.
type Totals struct {
	UsersFetched   int
	UsersSkipped   int
	ReportsWritten int
	RolledBack     int
	Failed         int
}

// Run processes every user sequentially. A transport error aborts the
// batch; anything wrong with a single user or task is logged and skipped.
func (r *Runner) Run() (Totals, error) {
	var totals Totals

	users, err := r.Client.FetchUsers()
	if err != nil {
		return totals, err
	}
	totals.UsersFetched = len(users)

	for _, user := range users {
		if err := report.ValidateUser(user); err != nil {
			fmt.Fprintf(r.Out, "Skipping user %q: %v\n", user.Username, err)
			totals.UsersSkipped++
			continue
		}

		tasks, err := r.Client.FetchTodos(user.ID)
		if err != nil {
			return totals, err
		}

		text, ok := report.Compose(user, r.validTasks(user.Username, tasks), r.Now())
		if !ok {
			fmt.Fprintf(r.Out, "%s doesn't have todos\n", user.Username)
			totals.UsersSkipped++
			continue
		}

		res, err := r.Store.Save(user.Username, text)
		if err != nil {
			fmt.Fprintf(r.Out, "Error saving report for %q: %v\n", user.Username, err)
		}
		switch res.State {
		case storage.StateVerified:
			totals.ReportsWritten++
		case storage.StateRolledBack:
			fmt.Fprintf(r.Out, "Report for %q could not be verified, restored %s\n",
				user.Username, res.RestoredFrom)
			totals.RolledBack++
		case storage.StateFailed:
			fmt.Fprintf(r.Out, "Report for %q is lost: write failed and no archive exists\n",
				user.Username)
			totals.Failed++
		}

		if r.Record != nil {
			r.Record(storage.SanitizeUsername(user.Username), res)
		}
	}

	return totals, nil
}

// validTasks filters out malformed task records, logging one diagnostic per
// rejected record.
func (r *Runner) validTasks(username string, tasks []models.Task) []models.Task {
	var valid []models.Task
	for _, task := range tasks {
		if err := report.ValidateTask(task); err != nil {
			fmt.Fprintf(r.Out, "Skipping task %d for user %q: %v\n", task.ID, username, err)
			continue
		}
		valid = append(valid, task)
	}
	return valid
}
