package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tejuiceB/finwiseai/internal/analysis"
	"github.com/tejuiceB/finwiseai/internal/cli"
	"github.com/tejuiceB/finwiseai/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Suggest spending cuts toward a savings target",
		Long: `Estimate current savings from the loaded transactions and, when that falls
short of --target, propose 10% cuts in the largest categories until the gap
is covered.`,
		RunE: runBudget,
	}

	addSourceFlags(cmd)
	cmd.Flags().Float64("target", 0, "savings target to aim for")

	return cmd
}

func runBudget(cmd *cobra.Command, _ []string) error {
	file, text, jsonOut := sourceArgs(cmd)
	target, _ := cmd.Flags().GetFloat64("target")

	sess, closeSession, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession()

	txns, err := resolveTransactions(cmd.Context(), sess, file, text)
	if err != nil {
		return fail(jsonOut, err)
	}

	plan, err := analysis.SuggestBudget(txns, target)
	if err != nil {
		return fail(jsonOut, err)
	}

	return emit(jsonOut, plan, func() { renderBudget(plan) })
}

func renderBudget(plan model.BudgetPlan) {
	fmt.Println(cli.FormatTitle("Budget Suggestions"))
	fmt.Printf("  Estimated savings: %s\n", cli.FormatAmount(plan.CurrentSavingsEst))
	fmt.Printf("  Target:            %s\n", cli.FormatAmount(plan.TargetSavings))
	fmt.Printf("  Still needed:      %s\n", cli.FormatAmount(plan.NeededToSave))

	if len(plan.Suggestions) == 0 {
		fmt.Println()
		fmt.Println(cli.FormatSuccess("No cuts needed — the target is already covered."))
		return
	}

	fmt.Println()
	for _, s := range plan.Suggestions {
		fmt.Printf("  %s %s: cut %s (from %s to %s)\n",
			cli.TargetIcon,
			cli.BoldStyle.Render(s.Category),
			cli.FormatAmount(s.SuggestedCut),
			cli.FormatAmount(s.CurrentSpend),
			cli.FormatAmount(s.NewEstimatedSpend))
	}
}
