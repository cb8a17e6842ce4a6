package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/postdeck/postdeck/internal/client"
	"github.com/postdeck/postdeck/internal/config"
	"github.com/postdeck/postdeck/internal/logging"
	"github.com/postdeck/postdeck/internal/state"
	"github.com/postdeck/postdeck/internal/ui"
)

var (
	flagURL     string
	flagTimeout time.Duration
	flagLog     string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "postdeck",
	Short: "postdeck - browse a remote post feed in the terminal",
	Long: `postdeck fetches a list of posts from a JSON endpoint and renders it
as an interactive list. All state flows through one store: key presses and
the fetch task dispatch actions, pure reducers compute the next state, and
the view re-renders from it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		// flags win over environment
		if cmd.Flags().Changed("url") {
			cfg.URL = flagURL
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Timeout = flagTimeout
		}
		if cmd.Flags().Changed("log") {
			cfg.LogFile = flagLog
		}
		if flagVerbose {
			cfg.Verbose = true
		}
		return run(cfg)
	},
}

func run(cfg config.Config) error {
	logger, err := logging.New(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store := state.New(state.WithObserver(logging.NewStateObserver(logger)))
	c := client.New(cfg.URL, cfg.Timeout)
	fetch := state.FetchPosts(c.Posts)

	p := tea.NewProgram(ui.New(store, fetch), tea.WithAltScreen())

	// Every completed state transition re-enters the UI loop as a message.
	unsub := store.Subscribe(func(s state.State) {
		p.Send(ui.StateMsg(s))
	})
	defer unsub()

	logger.Info("starting", zap.String("url", cfg.URL), zap.Duration("timeout", cfg.Timeout))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagURL, "url", "", "posts endpoint (overrides POSTDECK_URL)")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "fetch timeout (overrides POSTDECK_TIMEOUT)")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "log file path (overrides POSTDECK_LOG)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging, including state transitions")
}
