package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"soliddojo/internal/app"
	"soliddojo/internal/catalog"
	"soliddojo/internal/explain"
	"soliddojo/internal/llm"
	"soliddojo/internal/quiz"
	"soliddojo/internal/state"
	"soliddojo/internal/store"
)

// runApp opens the store, reconciles quiz state against the catalog, builds
// the optional LLM explanation service, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tree := state.NewTree()
	report := state.Reconcile(ctx, catalog.All(), st.SnapshotRepo(), tree)
	if report.LoadErr != nil {
		fmt.Fprintln(os.Stderr, "Saved progress could not be read; starting fresh:", report.LoadErr)
	}

	events := st.EventRepo()

	var explainSvc *explain.Service
	provider, err := llm.NewProvider(ctx, cfg.LLMConfigFor(), events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Deep-dive explanations will be unavailable.")
	} else {
		explainSvc = explain.NewService(provider, explain.DefaultConfig())
	}

	return app.Run(app.Options{
		Tree:   tree,
		Events: events,
		RunConfig: quiz.RunConfig{
			Snapshots:    st.SnapshotRepo(),
			SnapshotKeep: cfg.Quiz.SnapshotKeep,
			Shuffle:      cfg.Quiz.Shuffle,
		},
		ExplainSvc: explainSvc,
		Report:     report,
	})
}
