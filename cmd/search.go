package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/naka-gawa/candidate-search/internal/ui"
	"github.com/naka-gawa/candidate-search/internal/usecase"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Browse candidates and accept or reject them one by one",
	Long: `Loads up to search.max_candidates GitHub users and shows them one at a time.
Accepted candidates are appended to the saved list immediately. When the list
is exhausted, run the command again to get a new set of candidates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		plain, _ := cmd.Flags().GetBool("plain")

		// The terminal UI owns stdout and stderr, so its logs go to a file.
		var logOut io.Writer = os.Stderr
		if !plain {
			logFile, err := openLogFile(cfg.Log.File)
			if err != nil {
				return err
			}
			defer logFile.Close()
			logOut = logFile
		}
		logger := newLogger(cmd, logOut)

		store, err := newStore(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore(store, logger)

		fetcher, err := newFetcher(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}

		resolver := usecase.NewResolver(fetcher, cfg.Search.Concurrency, logger)
		loader := usecase.NewLoader(fetcher, resolver, cfg.Search.MaxCandidates, usecase.Mode(cfg.Search.Mode), logger)
		saved := usecase.NewSavedList(store, cfg.Storage.Key, logger)

		if plain {
			workflow := usecase.NewWorkflow(loader, resolver, saved, logger)
			err := ui.RunPlain(ctx, workflow, cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				// Interrupted by a signal.
				return nil
			}
			return err
		}

		if err := saved.Hydrate(ctx); err != nil {
			return err
		}
		model := ui.NewModel(ctx, usecase.NewSession(saved, logger), loader, resolver)
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run terminal UI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("plain", false, "Use a line-oriented prompt instead of the terminal UI")
}
