package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.releasebot/internal/termfix"

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/attuned.releasebot/internal/board"
	"github.com/wahlandcase/attuned.releasebot/internal/bot"
	"github.com/wahlandcase/attuned.releasebot/internal/config"
	"github.com/wahlandcase/attuned.releasebot/internal/git"
	"github.com/wahlandcase/attuned.releasebot/internal/github"
	"github.com/wahlandcase/attuned.releasebot/internal/issues"
	"github.com/wahlandcase/attuned.releasebot/internal/ui"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "releasebot <event> <pull-request-id> [label]",
		Short: "Drives the release tracking boards from pull request events",
		Long: "releasebot reacts to one pull request lifecycle event per invocation.\n\n" +
			"Events:\n  " + strings.Join(bot.EventNames(), "\n  "),
		Args:          cobra.ArbitraryArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorLine(err.Error()))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("no event name supplied")
	}
	event := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger()
	if cfg.TestMode {
		logger.Info("test mode enabled", "issues_repo", cfg.IssuesRepoName())
	}

	client := github.NewClient(cfg.Token)
	b := bot.New(
		cfg,
		logger,
		client,
		board.NewResolver(cfg, client),
		board.New(client),
		issues.NewFactory(cfg, client),
		git.NewExecutor(cfg),
	)

	if err := b.Dispatch(cmd.Context(), event, args[1:]); err != nil {
		var unknown *bot.UnknownEventError
		if errors.As(err, &unknown) {
			return fmt.Errorf("%w (known events: %s)", unknown, strings.Join(bot.EventNames(), ", "))
		}
		return err
	}

	fmt.Printf("%s %s\n", ui.EventBadge(event), ui.SuccessLine("handled"))
	return nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("RELEASEBOT_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
