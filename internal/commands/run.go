package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/taskreport/internal/api"
	"github.com/balkashynov/taskreport/internal/db"
	"github.com/balkashynov/taskreport/internal/models"
	"github.com/balkashynov/taskreport/internal/pipeline"
	"github.com/balkashynov/taskreport/internal/storage"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch users and tasks and write a report per user",
	Long: `Fetch every user and their tasks from the remote service and render a
text report per user under the report directory.

An existing report is archived under a timestamped name before the new one
is written; if the new write cannot be verified, the most recent archive is
restored. One bad user or task never aborts the batch, a transport error
does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL, _ := cmd.Flags().GetString("url")
		dir, _ := cmd.Flags().GetString("dir")
		noLedger, _ := cmd.Flags().GetBool("no-ledger")
		return runBatch(baseURL, dir, !noLedger)
	},
}

func init() {
	runCmd.Flags().String("url", api.DefaultBaseURL, "Base URL of the task service")
	runCmd.Flags().String("dir", "tasks", "Directory to write reports into")
	runCmd.Flags().Bool("no-ledger", false, "Skip recording the run in the history ledger")
}

// runBatch executes one full batch and prints the summary
func runBatch(baseURL, dir string, ledger bool) error {
	store, err := storage.New(dir)
	if err != nil {
		return err
	}

	runner := &pipeline.Runner{
		Client: api.New(baseURL),
		Store:  store,
		Out:    os.Stdout,
		Now:    time.Now,
	}

	var run *models.Run
	if ledger {
		initDB()
		run, err = db.StartRun(baseURL)
		if err != nil {
			return fmt.Errorf("failed to start ledger run: %w", err)
		}
		runner.Record = func(username string, res storage.Result) {
			err := db.RecordSave(run.ID, username, res.State.String(), res.ArchivedAs, res.RestoredFrom)
			if err != nil {
				fmt.Printf("Warning: could not record save for %q: %v\n", username, err)
			}
		}
	}

	totals, runErr := runner.Run()

	if run != nil {
		err := db.FinishRun(run, totals.UsersFetched, totals.UsersSkipped, totals.ReportsWritten)
		if err != nil {
			fmt.Printf("Warning: could not finish ledger run: %v\n", err)
		}
	}

	printSummary(totals)
	return runErr
}

// printSummary prints the end-of-run counters
func printSummary(totals pipeline.Totals) {
	fmt.Printf("%s Users: %d  Reports written: %d  Skipped: %d\n",
		successStyle.Render("✓"),
		totals.UsersFetched, totals.ReportsWritten, totals.UsersSkipped)
	if totals.RolledBack > 0 {
		fmt.Println(warningStyle.Render(fmt.Sprintf("Rolled back to an archived report: %d", totals.RolledBack)))
	}
	if totals.Failed > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Reports lost (no archive to restore): %d", totals.Failed)))
	}
}
