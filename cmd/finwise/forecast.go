package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tejuiceB/finwiseai/internal/analysis"
	"github.com/tejuiceB/finwiseai/internal/cli"
	"github.com/tejuiceB/finwiseai/internal/model"
)

func forecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project savings over the coming months",
		Long: `Project cumulative savings as a straight line from the average monthly net
of the loaded transactions. The data is assumed to cover a single month.`,
		RunE: runForecast,
	}

	addSourceFlags(cmd)
	cmd.Flags().Int("months", 3, "months to project")

	return cmd
}

func runForecast(cmd *cobra.Command, _ []string) error {
	file, text, jsonOut := sourceArgs(cmd)
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

	f, err := analysis.ForecastSavings(txns, months)
	if err != nil {
		return fail(jsonOut, err)
	}

	return emit(jsonOut, f, func() { renderForecast(f) })
}

func renderForecast(f model.Forecast) {
	fmt.Println(cli.FormatTitle("Savings Forecast"))
	fmt.Printf("  Average monthly net: %s\n", cli.FormatAmount(f.AvgMonthlyNet))

	if len(f.Entries) == 0 {
		fmt.Println(cli.SubtleStyle.Render("  Nothing to project."))
		return
	}

	fmt.Println()
	for _, e := range f.Entries {
		fmt.Printf("  %s Month %d: %s\n", cli.ChartIcon, e.Month, cli.FormatAmount(e.EstimatedSavings))
	}
}
