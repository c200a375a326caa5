package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claimkit/nexusgrade/internal/rubric"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule pack's scoring bands and patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := loadRuleSet(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Rule pack %s\n\n", rs.Version)

		// Bands.
		fmt.Printf("%-8s  %5s  %7s\n", "Tier", "Floor", "Ceiling")
		fmt.Println(strings.Repeat("─", 24))
		for _, s := range rubric.Strengths() {
			b := rs.Bands.For(s)
			fmt.Printf("%-8s  %5d  %7d\n", s, b.Floor, b.Ceiling)
		}

		// Rules.
		fmt.Println()
		fmt.Printf("%-26s  %-20s  %-6s  %s\n", "ID", "Component", "Tier", "Note")
		fmt.Println(strings.Repeat("─", 96))
		for _, r := range rs.Rules {
			fmt.Printf("%-26s  %-20s  %-6s  %s\n", r.ID, r.Component, r.Strength, r.Note)
		}

		fmt.Printf("\n%d rules\n", len(rs.Rules))
		return nil
	},
}

func init() {
	rulesCmd.Flags().String("ruleset", "", "Path to a YAML rule pack (default: built-in pack)")
}
