package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/taskreport/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taskreport",
	Short: "Generate per-user task reports from the task service",
	Long: `taskreport fetches users and their tasks from the remote task service,
renders a text report per user, and manages report versioning on disk.
Previous reports are archived by timestamp, and if a new write cannot be
verified the most recent archive is restored.`,
}

// initDB initializes the ledger database and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// withDB wraps a command function to initialize the ledger database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
