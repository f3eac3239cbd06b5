package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tejuiceB/finwiseai/internal/analysis"
	"github.com/tejuiceB/finwiseai/internal/cli"
	"github.com/tejuiceB/finwiseai/internal/model"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Plan monthly and weekly savings toward a goal",
		Long: `Break a savings goal into monthly and weekly targets and suggest category
cuts from the top spend categories to cover the monthly amount.

Example:
  finwise goal --amount 1200 --months 12`,
		RunE: runGoal,
	}

	addSourceFlags(cmd)
	cmd.Flags().Float64("amount", 0, "goal amount to save")
	cmd.Flags().Int("months", 0, "months to reach the goal in")

	return cmd
}

func runGoal(cmd *cobra.Command, _ []string) error {
	file, text, jsonOut := sourceArgs(cmd)
	amount, _ := cmd.Flags().GetFloat64("amount")
	months, _ := cmd.Flags().GetInt("months")

	sess, closeSession, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession()

	txns, err := resolveTransactions(cmd.Context(), sess, file, text)
	if err != nil {
		return fail(jsonOut, err)
	}

	plan, err := analysis.PlanGoal(txns, amount, months)
	if err != nil {
		return fail(jsonOut, err)
	}

	return emit(jsonOut, plan, func() { renderGoal(plan) })
}

func renderGoal(plan model.GoalPlan) {
	fmt.Println(cli.FormatTitle("Savings Goal Plan"))
	fmt.Printf("  Goal:           %s over %d months\n", cli.FormatAmount(plan.GoalAmount), plan.Months)
	fmt.Printf("  Monthly target: %s\n", cli.FormatAmount(plan.MonthlyTarget))
	fmt.Printf("  Weekly target:  %s\n", cli.FormatAmount(plan.WeeklyTarget))

	if len(plan.Tips) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(cli.SubtleStyle.Render("  Where the monthly amount could come from:"))
	for _, tip := range plan.Tips {
		fmt.Printf("    %s %s: cut %s of %s\n",
			cli.TargetIcon,
			cli.BoldStyle.Render(tip.Category),
			cli.FormatAmount(tip.SuggestedMonthlyCut),
			cli.FormatAmount(tip.CurrentMonthly))
	}
}
