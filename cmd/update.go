package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studychamp/studychamp/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(30 * time.Second))

		result, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: version})
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Running a development build; release checks are skipped.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}

		if !result.UpdateAvailable {
			fmt.Printf("Already up to date (%s).\n", result.CurrentVersion)
			return nil
		}

		fmt.Printf("Update available: %s -> %s\n", result.CurrentVersion, result.LatestVersion)
		if result.ReleaseURL != "" {
			fmt.Println("Download:", result.ReleaseURL)
		}
		return nil
	},
}
