package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskreport/internal/db"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist"},
	Short:   "Show recent report save outcomes",
	Long:    "Show the most recent report saves recorded in the ledger, newest first.",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		records, err := db.GetRecentSaves(limit)
		if err != nil {
			fmt.Printf("Error fetching history: %v\n", err)
			return
		}

		if len(records) == 0 {
			fmt.Println("No saves recorded yet. Use 'taskreport run' to generate reports.")
			return
		}

		// Print table header
		fmt.Printf("%-8s %-20s %-12s %-16s %s\n", "RUN", "USERNAME", "OUTCOME", "WHEN", "DETAIL")
		fmt.Println(strings.Repeat("-", 80))

		for _, record := range records {
			detail := record.ArchivedAs
			if record.RestoredFrom != "" {
				detail = "restored " + record.RestoredFrom
			}

			// Truncate username if too long
			username := record.Username
			if len(username) > 18 {
				username = username[:15] + "..."
			}

			fmt.Printf("%-8s %-20s %-12s %-16s %s\n",
				shortRunID(record.RunID),
				username,
				record.Outcome,
				record.CreatedAt.Format("02.01.2006 15:04"),
				detail)
		}
	}),
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of records to show")
}

// shortRunID trims a run ID to a table-friendly prefix. Stored data must
// never be able to panic the printer.
func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
