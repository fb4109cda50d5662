package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/urbanfarm/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent recommendation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := st.Recent(limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No recommendations recorded yet")
			return nil
		}

		fmt.Printf("%-19s  %-12s  %10s  %s\n", "When", "Crop", "Confidence", "Report")
		for _, r := range runs {
			fmt.Printf("%-19s  %-12s  %9.1f%%  %s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.TopCrop, r.Confidence, r.ReportPath)
		}
		fmt.Printf("\n%d runs\n", len(runs))
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to list")
}
