package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claimkit/nexusgrade/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored analyses, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		category, _ := cmd.Flags().GetString("category")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		list, err := s.AnalysisRepo().List(ctx, store.ListOpts{Limit: limit, Category: category})
		if err != nil {
			return fmt.Errorf("list analyses: %w", err)
		}

		if len(list) == 0 {
			fmt.Println("No analyses found.")
			return nil
		}

		// Header.
		fmt.Printf("%-12s  %-19s  %9s  %-17s  %-8s  %s\n",
			"Fingerprint", "When", "Aggregate", "Category", "Ruleset", "Assessor")
		fmt.Println(strings.Repeat("─", 96))

		for _, a := range list {
			model := a.AssessorModel
			if model == "" {
				model = "-"
			}
			fmt.Printf("%-12s  %-19s  %9d  %-17s  %-8s  %s\n",
				shortFingerprint(a.Fingerprint),
				a.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				a.Aggregate,
				a.Category,
				a.RulesetVersion,
				model,
			)
		}

		fmt.Printf("\n%d analyses\n", len(list))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of analyses to show")
	historyCmd.Flags().StringP("category", "c", "", "Filter by category (auto_approve, attorney_review, revision_required)")
}
