package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"soliddojo/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in articles and quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range catalog.AllPrinciples() {
			fmt.Printf("%s (%s)\n", catalog.PrincipleDisplayName(p), catalog.PrincipleLetter(p))
			fmt.Println(strings.Repeat("─", 50))

			for _, a := range catalog.ArticlesByPrinciple(p) {
				fmt.Printf("  article  %-24s %s\n", a.Slug, a.Title)
			}
			for _, q := range catalog.ByPrinciple(p) {
				kind := "single"
				if q.MultiSelect() {
					kind = "multi"
				}
				fmt.Printf("  quiz     %-24s %d options, %s\n", q.Name, len(q.Options), kind)
			}
			fmt.Println()
		}
		return nil
	},
}
