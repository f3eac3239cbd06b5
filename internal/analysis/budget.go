package analysis

import (
	"math"

	"github.com/tejuiceB/finwiseai/internal/model"
)

// cutRate is the fraction of a category's spend proposed as a reduction.
const cutRate = 0.10

// SuggestBudget proposes trimming top categories by 10% until the savings
// target is met. An aggregation failure is returned unchanged.
//
// Only categories with a positive net sum qualify for cuts. That mirrors the
// advisor's long-standing behavior and is preserved as-is; whether cuts
// should instead target negative-sum categories is an open product question.
func SuggestBudget(transactions []model.Transaction, targetSavings float64) (model.BudgetPlan, error) {
	a, err := Analyze(transactions)
	if err != nil {
		return model.BudgetPlan{}, err
	}

	currentSavingsEst := math.Max(0, a.IncomeTotal-math.Abs(a.ExpenseTotal))
	needed := math.Max(0, targetSavings-currentSavingsEst)

	suggestions := []model.CutSuggestion{}
	remain := needed
	for _, cs := range sortedByAbsSum(a.ByCategory) {
		if cs.sum <= 0 || remain <= 0 {
			continue
		}
		cut := math.Abs(cs.sum) * cutRate
		suggestions = append(suggestions, model.CutSuggestion{
			Category:          cs.category,
			CurrentSpend:      round2(cs.sum),
			SuggestedCut:      round2(cut),
			NewEstimatedSpend: round2(cs.sum - cut),
		})
		remain -= cut
	}

	return model.BudgetPlan{
		CurrentSavingsEst: round2(currentSavingsEst),
		TargetSavings:     round2(targetSavings),
		NeededToSave:      round2(needed),
		Suggestions:       suggestions,
	}, nil
}
