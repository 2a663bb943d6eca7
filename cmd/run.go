package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studychamp/studychamp/internal/app"
	"github.com/studychamp/studychamp/internal/bank"
	"github.com/studychamp/studychamp/internal/llm"
	"github.com/studychamp/studychamp/internal/qgen"
	"github.com/studychamp/studychamp/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bk := bank.Seed()

	// The question generator is optional; without a provider the quiz
	// setup screen offers only the built-in catalogue.
	var generator qgen.Generator
	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		generator = qgen.New(provider, qgen.DefaultConfig())
	}

	return app.Run(st, bk, generator)
}

// newProvider builds the configured LLM provider, with request logging
// wired to the store.
func newProvider(cmd *cobra.Command, st *store.Store) (llm.Provider, error) {
	return llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
}
