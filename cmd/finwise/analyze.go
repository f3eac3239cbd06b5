package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tejuiceB/finwiseai/internal/analysis"
	"github.com/tejuiceB/finwiseai/internal/cli"
	"github.com/tejuiceB/finwiseai/internal/model"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Summarize the loaded transactions",
		Long: `Compute totals, averages, the income/expense split, and a per-category
breakdown over the session's transactions (or fresh --file/--text input).`,
		RunE: runAnalyze,
	}

	addSourceFlags(cmd)

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	file, text, jsonOut := sourceArgs(cmd)

	sess, closeSession, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession()

	txns, err := resolveTransactions(cmd.Context(), sess, file, text)
	if err != nil {
		return fail(jsonOut, err)
	}

	a, err := analysis.Analyze(txns)
	if err != nil {
		return fail(jsonOut, err)
	}

	return emit(jsonOut, a, func() { renderAnalysis(a) })
}

func renderAnalysis(a model.Analysis) {
	fmt.Println(cli.FormatTitle("Transaction Analysis"))
	fmt.Printf("  Transactions: %s\n", cli.BoldStyle.Render(fmt.Sprintf("%d", a.Count)))
	fmt.Printf("  Net total:    %s\n", cli.FormatAmount(a.NetTotal))
	fmt.Printf("  Average:      %s\n", cli.FormatAmount(a.AvgAmount))
	fmt.Printf("  Income:       %s\n", cli.FormatAmount(a.IncomeTotal))
	fmt.Printf("  Expenses:     %s\n", cli.FormatAmount(-a.ExpenseTotal))

	fmt.Println()
	fmt.Println(cli.SubtleStyle.Render("  By category (largest first):"))
	for _, cat := range categoriesBySpend(a.ByCategory) {
		fmt.Printf("    %-14s %s\n", cat, cli.FormatAmount(a.ByCategory[cat]))
	}
}

// categoriesBySpend orders category names by descending absolute sum, name
// as tiebreaker.
func categoriesBySpend(byCategory map[string]float64) []string {
	cats := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		ai, aj := math.Abs(byCategory[cats[i]]), math.Abs(byCategory[cats[j]])
		if ai != aj {
			return ai > aj
		}
		return cats[i] < cats[j]
	})
	return cats
}
