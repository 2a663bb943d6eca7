package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studychamp/studychamp/internal/notes"
	"github.com/studychamp/studychamp/internal/store"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Generate and manage study notes",
}

var notesGenCmd = &cobra.Command{
	Use:   "gen <topic>",
	Short: "Generate a structured study note with AI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		note, err := notes.NewGenerator(provider).Generate(cmd.Context(), topic)
		if err != nil {
			return fmt.Errorf("generate note: %w", err)
		}

		lib, err := openLibrary()
		if err != nil {
			return err
		}
		path, err := lib.Save(note)
		if err != nil {
			return fmt.Errorf("save note: %w", err)
		}

		fmt.Println(note.Markdown())
		fmt.Println("Saved to", path)
		return nil
	},
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}

		entries, err := lib.List()
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No notes saved yet. Generate one with 'studychamp notes gen'.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %s\n", e.ModTime.Format("2006-01-02 15:04"), e.Name)
		}
		return nil
	},
}

var notesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		if err := lib.Delete(args[0]); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func openLibrary() (*notes.Library, error) {
	dir, err := store.DefaultNotesDir()
	if err != nil {
		return nil, fmt.Errorf("resolve notes dir: %w", err)
	}
	lib, err := notes.NewLibrary(dir)
	if err != nil {
		return nil, fmt.Errorf("open notes dir: %w", err)
	}
	return lib, nil
}

func init() {
	notesCmd.AddCommand(notesGenCmd)
	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesRmCmd)
}
