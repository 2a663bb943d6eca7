package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studychamp/studychamp/internal/bank"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subjects and topics in the question bank",
	Run: func(cmd *cobra.Command, args []string) {
		bk := bank.Seed()

		byDifficulty := map[bank.Difficulty]int{}
		for _, q := range bk.All() {
			byDifficulty[q.Difficulty]++
		}

		fmt.Println("Subjects:")
		for _, s := range bk.Subjects() {
			fmt.Println("  -", s)
		}
		fmt.Println("\nTopics:")
		for _, t := range bk.Topics() {
			fmt.Println("  -", t)
		}
		fmt.Printf("\n%d questions (%d easy, %d medium, %d hard)\n",
			len(bk.All()),
			byDifficulty[bank.DifficultyEasy],
			byDifficulty[bank.DifficultyMedium],
			byDifficulty[bank.DifficultyHard])
	},
}
