package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studychamp/studychamp/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the AI study tutor",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := newProvider(cmd, st)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		tutor := chat.NewTutor(provider)

		fmt.Println("StudyChamp tutor. Ask anything; type 'exit' to leave.")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\nyou> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			reply, err := tutor.Ask(cmd.Context(), line)
			if err != nil {
				fmt.Fprintln(os.Stderr, "tutor:", err)
				continue
			}

			fmt.Println("\ntutor>", reply.Content)

			if len(reply.Suggestions) > 0 {
				fmt.Println("\nSuggestions:")
				for _, s := range reply.Suggestions {
					fmt.Println("  -", s)
				}
			}

			m := reply.Materials
			if len(m.Topics) > 0 {
				fmt.Printf("\nTopics: %s\nDifficulty: %s   Time: %s\n",
					strings.Join(m.Topics, ", "), m.Difficulty, m.EstimatedTime)
			}
		}
		return scanner.Err()
	},
}
