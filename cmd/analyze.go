package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/claimkit/nexusgrade/internal/analysis"
	"github.com/claimkit/nexusgrade/internal/assessor"
	"github.com/claimkit/nexusgrade/internal/letter"
	"github.com/claimkit/nexusgrade/internal/llm"
	"github.com/claimkit/nexusgrade/internal/ruleset"
	"github.com/claimkit/nexusgrade/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <letter-file>",
	Short: "Score a nexus letter and print its recommendation",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: must be text or json", format)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read letter: %w", err)
	}

	rs, err := loadRuleSet(cmd)
	if err != nil {
		return err
	}

	analyzer := analysis.New(rs)
	if appCfg != nil {
		analyzer.Limits = appCfg.LetterLimits()
	}

	let, err := letter.New(string(raw), analyzer.Limits)
	if err != nil {
		return fmt.Errorf("letter %s: %w", args[0], err)
	}

	save, _ := cmd.Flags().GetBool("save")
	noAssessor, _ := cmd.Flags().GetBool("no-assessor")
	replayPath, _ := cmd.Flags().GetString("assessment")

	runID := uuid.NewString()
	ctx = llm.WithRun(ctx, runID)

	// The store is needed to persist the result and to audit live
	// assessor calls; replay and --no-assessor runs with --save=false
	// never touch it.
	var st *store.Store
	if save || (!noAssessor && replayPath == "") {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err = store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
	}

	out := assessLetter(ctx, st, let, noAssessor, replayPath)

	rec, err := analyzer.Analyze(let, out)
	if err != nil {
		return err
	}

	if save {
		if err := saveAnalysis(ctx, st, runID, let.Text, rec); err != nil {
			return err
		}
	}

	if format == "json" {
		return printJSON(rec)
	}
	printReport(rec)
	return nil
}

// assessLetter produces the assessor's judgment of the letter, or nil
// when the assessor is skipped or fails. A nil output downgrades scoring
// to textual evidence alone; the record marks itself degraded.
func assessLetter(ctx context.Context, st *store.Store, let letter.Letter, skip bool, replayPath string) *assessor.Output {
	if skip {
		return nil
	}

	if replayPath != "" {
		raw, err := os.ReadFile(replayPath)
		if err != nil {
			slog.Warn("cannot read saved assessment; scoring without assessor", "path", replayPath, "error", err)
			return nil
		}
		out, problems := assessor.ParseOutput(raw)
		for _, p := range problems {
			slog.Warn("saved assessment problem", "path", replayPath, "problem", p)
		}
		out.Model = "replay"
		return out
	}

	provider, err := buildProvider(ctx, st.EventRepo())
	if err != nil {
		slog.Warn("assessor unavailable; scoring on textual evidence alone", "error", err)
		return nil
	}

	out, err := assessor.NewLLM(provider, assessor.DefaultConfig()).Assess(ctx, let.Text)
	if err != nil {
		slog.Warn("assessor call failed; scoring on textual evidence alone", "error", err)
		return nil
	}
	return out
}

// buildProvider resolves LLM configuration from the environment. The app
// config may pin the provider; otherwise, when the configured provider
// has no key, standard API key variables are probed as a fallback.
func buildProvider(ctx context.Context, events store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if appCfg != nil && appCfg.Provider != "" {
		cfg.Provider = appCfg.Provider
	}

	if err := cfg.Validate(); err != nil {
		pinned := (appCfg != nil && appCfg.Provider != "") || os.Getenv("NEXUSGRADE_LLM_PROVIDER") != ""
		if pinned {
			return nil, err
		}
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}

	return llm.NewProvider(ctx, cfg, events)
}

func saveAnalysis(ctx context.Context, st *store.Store, runID, letterText string, rec *analysis.Record) error {
	m, err := rec.AsMap()
	if err != nil {
		return err
	}
	a := &store.Analysis{
		RunID:          runID,
		Fingerprint:    rec.Fingerprint,
		RulesetVersion: rec.RulesetVersion,
		EngineVersion:  rec.EngineVersion,
		Aggregate:      rec.Aggregate,
		Category:       string(rec.Category),
		AssessorModel:  rec.AssessorModel,
		AssessorRef:    rec.AssessorRef,
		Record:         m,
		LetterText:     letterText,
	}
	if err := st.AnalysisRepo().Save(ctx, a); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

// loadRuleSet returns the pack named by --ruleset, then the configured
// pack path, then the built-in default.
func loadRuleSet(cmd *cobra.Command) (*ruleset.RuleSet, error) {
	path, _ := cmd.Flags().GetString("ruleset")
	if path == "" && appCfg != nil {
		path = appCfg.Ruleset
	}
	if path == "" {
		return ruleset.Default(), nil
	}
	return ruleset.Load(path)
}

func printReport(rec *analysis.Record) {
	fmt.Printf("Letter %s  (ruleset %s, engine %s)\n\n",
		shortFingerprint(rec.Fingerprint), rec.RulesetVersion, rec.EngineVersion)

	fmt.Printf("%-19s  %5s  %-6s  %s\n", "Component", "Score", "Tier", "Assessor")
	fmt.Println(strings.Repeat("─", 44))
	for _, cs := range rec.Components {
		mark := "✓"
		if !cs.AssessorUsed {
			mark = "✗"
		}
		fmt.Printf("%-19s  %2d/25  %-6s  %s\n",
			cs.Component.DisplayName(), cs.Value, cs.Strength, mark)
	}

	fmt.Printf("\nAggregate: %d/100\n", rec.Aggregate)
	fmt.Printf("Recommendation: %s\n", rec.Category.DisplayName())

	if len(rec.Degraded) > 0 {
		fmt.Println()
		for _, d := range rec.Degraded {
			fmt.Println("note:", d)
		}
	}

	fmt.Println("\nSuggestions (worst first):")
	for i, s := range rec.Suggestions {
		fmt.Printf("%3d. [%s %d/25] %s\n", i+1, s.Component.DisplayName(), s.Score, s.Text)
	}
}

func printJSON(rec *analysis.Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}

func init() {
	analyzeCmd.Flags().String("ruleset", "", "Path to a YAML rule pack (default: built-in pack)")
	analyzeCmd.Flags().String("assessment", "", "Path to a saved assessor response to replay instead of calling the API")
	analyzeCmd.Flags().Bool("no-assessor", false, "Skip the assessor and score on textual evidence alone")
	analyzeCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	analyzeCmd.Flags().Bool("save", true, "Persist the analysis to the database")
}
