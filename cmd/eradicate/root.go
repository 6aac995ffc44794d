package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"eradicate/internal/app"
	"eradicate/internal/config"
	"eradicate/internal/log"
	"eradicate/internal/tui"
	"eradicate/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every command
type rootOptions struct {
	cfgFile    string
	logFile    string
	debug      bool
	ignoreCase bool
	pattern    string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "eradicate",
		Short: "Find files by glob and delete them interactively",
		Long: `eradicate lists every path matching a glob pattern, lets you
unmark the ones to keep and deletes the rest in one go.

Press i to type a pattern, enter to run it, enter on an entry to toggle
its mark and d to delete everything still marked.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			closeLog, err := setupLogging(cfg)
			if err != nil {
				return err
			}
			defer closeLog()
			return runTUI(cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/eradicate/config.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (default is eradicate.log in the user cache directory)")
	flags.BoolVarP(&opts.ignoreCase, "ignore-case", "I", false, "match case insensitively")
	rootCmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "pattern to search at startup")

	rootCmd.AddCommand(newMatchCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// loadConfig loads the config file and applies flag overrides.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}
	if o.ignoreCase {
		cfg.Search.CaseSensitive = false
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Search.InitialPattern = o.pattern
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// setupLogging sends log output to the configured file, since the terminal
// belongs to the TUI.
func setupLogging(cfg *config.Config) (func(), error) {
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}

	path := cfg.LogFile()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}

func runTUI(cfg *config.Config) error {
	state := app.New(app.WithCaseSensitive(cfg.Search.CaseSensitive))

	if cfg.Search.InitialPattern != "" {
		state.EnterEdit()
		state.SetInput(cfg.Search.InitialPattern)
		if err := state.CommitSearch(); err != nil {
			return err
		}
	}

	var opts []tui.Option
	if cfg.UI.Watch && cfg.UI.WatchLimit > 0 {
		w, err := watch.New()
		if err != nil {
			log.Warn("file watching disabled", err)
		} else {
			opts = append(opts, tui.WithWatcher(w, cfg.UI.WatchLimit))
		}
	}

	log.Info("starting eradicate %s", version)
	p := tea.NewProgram(tui.New(state, cfg, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
