package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claimkit/nexusgrade/internal/analysis"
	"github.com/claimkit/nexusgrade/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <fingerprint>",
	Short: "Show a stored analysis by fingerprint prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "text" && format != "json" {
			return fmt.Errorf("invalid format %q: must be text or json", format)
		}

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
		a, err := s.AnalysisRepo().Find(ctx, args[0])
		if err != nil {
			return fmt.Errorf("find analysis: %w", err)
		}
		if a == nil {
			return fmt.Errorf("no analysis matches fingerprint %q", args[0])
		}

		if format == "json" {
			data, err := json.MarshalIndent(a.Record, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal record: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		rec, err := decodeRecord(a.Record)
		if err != nil {
			return err
		}

		fmt.Printf("Run %s  saved %s\n\n", a.RunID, a.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		printReport(rec)

		if show, _ := cmd.Flags().GetBool("letter"); show {
			sep := strings.Repeat("─", 60)
			fmt.Println()
			fmt.Println(sep)
			fmt.Println("LETTER")
			fmt.Println(sep)
			fmt.Println(a.LetterText)
		}
		return nil
	},
}

// decodeRecord rebuilds the typed engine record from its stored JSON map.
func decodeRecord(m map[string]any) (*analysis.Record, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("re-marshal stored record: %w", err)
	}
	var rec analysis.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode stored record: %w", err)
	}
	return &rec, nil
}

func init() {
	showCmd.Flags().Bool("letter", false, "Print the stored letter text after the report")
	showCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
}
