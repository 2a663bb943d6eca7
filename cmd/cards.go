package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studychamp/studychamp/internal/flashcards"
	"github.com/studychamp/studychamp/internal/store"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage flashcards",
}

var cardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored flashcards",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.CardRepo().ListCards(cmd.Context())
		if err != nil {
			return fmt.Errorf("list cards: %w", err)
		}

		cards := make([]flashcards.Card, 0, len(records))
		for _, r := range records {
			cards = append(cards, flashcards.Card{
				ID:       r.ID,
				Topic:    r.Topic,
				Question: r.Question,
				Answer:   r.Answer,
				Status:   flashcards.Status(r.Status),
			})
		}
		if topic != "" {
			cards = flashcards.FilterByTopic(cards, topic)
		}

		if len(cards) == 0 {
			fmt.Println("No flashcards found.")
			return nil
		}

		for _, c := range cards {
			fmt.Printf("[%-8s] %-14s %s\n", c.Status, c.Topic, c.Question)
			fmt.Printf("           %-14s %s\n", "", c.Answer)
		}
		return nil
	},
}

var cardsGenCmd = &cobra.Command{
	Use:   "gen <topic>",
	Short: "Generate flashcards with AI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		topic := strings.Join(args, " ")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := newProvider(cmd, st)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		gen := flashcards.NewGenerator(provider)
		cards, err := gen.Generate(cmd.Context(), topic, count)
		if err != nil {
			return fmt.Errorf("generate cards: %w", err)
		}

		records := make([]store.CardRecord, 0, len(cards))
		for _, c := range cards {
			records = append(records, store.CardRecord{
				ID:        c.ID,
				Topic:     c.Topic,
				Question:  c.Question,
				Answer:    c.Answer,
				Status:    string(c.Status),
				CreatedAt: c.CreatedAt,
			})
		}
		if err := st.CardRepo().SaveCards(cmd.Context(), records); err != nil {
			return fmt.Errorf("save cards: %w", err)
		}

		fmt.Printf("Generated %d cards on %q:\n\n", len(cards), topic)
		for _, c := range cards {
			fmt.Printf("Q: %s\nA: %s\n\n", c.Question, c.Answer)
		}
		return nil
	},
}

func init() {
	cardsListCmd.Flags().StringP("topic", "t", "", "Filter by topic, question, or answer text")
	cardsGenCmd.Flags().IntP("count", "n", 5, "Number of cards to generate")

	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsGenCmd)
}
