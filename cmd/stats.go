package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"soliddojo/internal/catalog"
	"soliddojo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show all-time quiz attempt statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		stats, err := st.EventRepo().AttemptStats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No attempts recorded yet. Run `soliddojo` to start practicing.")
			return nil
		}

		fmt.Printf("%-16s  %-24s  %8s  %8s  %9s\n",
			"Quiz", "Principle", "Attempts", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 74))

		var totalAttempts, totalCorrect int
		for _, s := range stats {
			principle := ""
			if def, err := catalog.Get(s.QuizName); err == nil {
				principle = catalog.PrincipleDisplayName(def.Principle)
			}
			acc := float64(s.Correct) / float64(s.Attempts)
			fmt.Printf("%-16s  %-24s  %8d  %8d  %8.0f%%\n",
				s.QuizName, principle, s.Attempts, s.Correct, acc*100)
			totalAttempts += s.Attempts
			totalCorrect += s.Correct
		}

		fmt.Println(strings.Repeat("─", 74))
		acc := float64(totalCorrect) / float64(totalAttempts)
		fmt.Printf("%-16s  %-24s  %8d  %8d  %8.0f%%\n",
			"TOTAL", "", totalAttempts, totalCorrect, acc*100)
		return nil
	},
}
