package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/zenflow/internal/config"
	"github.com/sandeepkv93/zenflow/internal/insight"
	"github.com/sandeepkv93/zenflow/internal/schedule"
	"github.com/sandeepkv93/zenflow/internal/storage"
	"github.com/sandeepkv93/zenflow/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "zenflow failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv()
	cfg.Normalize()

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	engine := schedule.NewEngine(cfg.SchedulerBuffer, schedule.WithInterval(cfg.TickInterval()))
	engine.Start()
	defer engine.Stop()

	var analyzer update.Analyzer
	if cfg.Gemini.APIKey != "" {
		var opts []insight.Option
		if cfg.Gemini.Model != "" {
			opts = append(opts, insight.WithModel(cfg.Gemini.Model))
		}
		analyzer = insight.NewClient(cfg.Gemini.APIKey, opts...)
	}

	model := update.NewModelWithRuntime(update.Runtime{
		Store:          store,
		Engine:         engine,
		Analyzer:       analyzer,
		Notifier:       update.ExecDesktopNotifier{},
		DesktopEnabled: cfg.DesktopNotifications,
	})

	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
