package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"soliddojo/internal/catalog"
	"soliddojo/internal/quiz"
	"soliddojo/internal/state"
	"soliddojo/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <name>",
	Short: "Answer a single quiz without the TUI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := catalog.Get(args[0])
		if err != nil {
			return err
		}

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
		report := state.Reconcile(cmd.Context(), catalog.All(), st.SnapshotRepo(), tree)
		if report.LoadErr != nil {
			fmt.Fprintln(os.Stderr, "Saved progress could not be read; starting fresh:", report.LoadErr)
		}

		rs := quiz.NewRunOver(def.Name, []catalog.QuizDefinition{def}, tree, st.EventRepo())
		rs.Configure(quiz.RunConfig{
			Snapshots:    st.SnapshotRepo(),
			SnapshotKeep: cfg.Quiz.SnapshotKeep,
		})

		fmt.Printf("%s [%s]\n\n", def.Name, catalog.PrincipleDisplayName(def.Principle))
		fmt.Println(def.Prompt)
		fmt.Println()
		for i, opt := range def.Options {
			fmt.Printf("  %s) %s\n", quiz.OptionLabel(i), opt)
		}
		fmt.Println()
		if def.MultiSelect() {
			fmt.Print("Your answers (comma-separated, e.g. A,C): ")
		} else {
			fmt.Print("Your answer: ")
		}

		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read answer: %w", err)
		}
		selected := splitSelections(line)
		if len(selected) == 0 {
			return fmt.Errorf("no answer given")
		}

		correct := rs.HandleAnswer(selected)
		rs.Advance()

		fmt.Println()
		if correct {
			fmt.Println("✓ Correct")
		} else {
			fmt.Printf("✗ Incorrect. Correct: %s\n", strings.Join(def.Meta.CorrectAnswers, ", "))
		}
		fmt.Println()
		fmt.Println(def.Explanation)
		return nil
	},
}

// splitSelections parses "A, c b" style input into selection tokens.
func splitSelections(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, strings.TrimSpace(f))
	}
	return out
}
