package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		attempts, err := st.AttemptRepo().RecentAttempts(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No quizzes recorded yet.")
			return nil
		}

		var sumPct, sumMinutes float64
		var correct, total int
		for _, a := range attempts {
			sumPct += a.ScorePercentage
			sumMinutes += a.TimeMinutes
			correct += a.CorrectCount
			total += a.TotalQuestions
		}

		fmt.Printf("Quizzes:        %d\n", len(attempts))
		fmt.Printf("Questions:      %d (%d correct)\n", total, correct)
		fmt.Printf("Average score:  %.1f%%\n", sumPct/float64(len(attempts)))
		fmt.Printf("Time practiced: %.0f minutes\n", sumMinutes)

		stats, err := st.AttemptRepo().SubjectStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query subject stats: %w", err)
		}
		if len(stats) == 0 {
			return nil
		}

		subjects := make([]string, 0, len(stats))
		for s := range stats {
			subjects = append(subjects, s)
		}
		sort.Strings(subjects)

		fmt.Println("\nBy subject")
		fmt.Println(strings.Repeat("─", 40))
		for _, subject := range subjects {
			s := stats[subject]
			pct := float64(s.Correct) / float64(s.Total) * 100
			fmt.Printf("%-20s %4d/%-4d %5.1f%%\n", subject, s.Correct, s.Total, pct)
		}
		return nil
	},
}
