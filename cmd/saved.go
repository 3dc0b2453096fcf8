package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/naka-gawa/candidate-search/internal/domain"
	"github.com/naka-gawa/candidate-search/internal/ui"
	"github.com/naka-gawa/candidate-search/internal/usecase"
	"github.com/spf13/cobra"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Lists the accepted candidates",
	Long:  `Lists the accepted candidates in the order they were saved, with follower and repository figures.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cmd, os.Stderr)

		store, err := newStore(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore(store, logger)

		saved := usecase.NewSavedList(store, cfg.Storage.Key, logger)
		if err := saved.Hydrate(cmd.Context()); err != nil {
			return err
		}
		items := saved.Items()
		report := domain.SavedReport{
			Candidates: items,
			Stats:      usecase.Summarize(items),
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if !asJSON {
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSavedReport(report))
			return nil
		}

		// Marshal the report into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal saved candidates to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(savedCmd)
	savedCmd.Flags().Bool("json", false, "Print the saved candidates as JSON")
}
