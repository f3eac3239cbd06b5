// Package analysis implements the core personal-finance analytics:
// aggregation, budget-cut suggestions, goal planning, and naive forecasting.
// Every function is a pure transform over an in-memory transaction list; no
// I/O happens here.
package analysis

import (
	"math"
	"sort"

	"github.com/tejuiceB/finwiseai/internal/categorize"
	"github.com/tejuiceB/finwiseai/internal/common"
	"github.com/tejuiceB/finwiseai/internal/model"
)

// round2 rounds to two decimals. Applied only when a result is built, never
// to per-transaction accumulation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Analyze computes basic stats and a per-category breakdown for a transaction
// set. Returns common.ErrNoTransactions on an empty list.
//
// Income counts amounts that are positive OR explicitly typed "income"; the
// expense total is the positive sum of negative amounts regardless of type.
// The two intentionally overlap for income-typed non-positive amounts, so
// income - expense is not guaranteed to equal the net total.
func Analyze(transactions []model.Transaction) (model.Analysis, error) {
	if len(transactions) == 0 {
		return model.Analysis{}, common.ErrNoTransactions
	}

	var total, incomes, expenses float64
	byCategory := make(map[string]float64)

	for _, t := range transactions {
		total += t.Amount

		if t.Type == model.TypeIncome || t.Amount > 0 {
			incomes += t.Amount
		}
		if t.Amount < 0 {
			expenses += -t.Amount
		}

		cat := t.Category
		if cat == "" {
			cat = categorize.Categorize(t.Description)
		}
		byCategory[cat] += t.Amount
	}

	for cat, sum := range byCategory {
		byCategory[cat] = round2(sum)
	}

	return model.Analysis{
		Count:        len(transactions),
		NetTotal:     round2(total),
		AvgAmount:    round2(total / float64(len(transactions))),
		IncomeTotal:  round2(incomes),
		ExpenseTotal: round2(expenses),
		ByCategory:   byCategory,
	}, nil
}

// categorySum pairs a category with its signed sum for sorting.
type categorySum struct {
	category string
	sum      float64
}

// sortedByAbsSum orders categories by descending absolute sum. Ties break on
// category name so output is deterministic across map iteration orders.
func sortedByAbsSum(byCategory map[string]float64) []categorySum {
	sums := make([]categorySum, 0, len(byCategory))
	for cat, sum := range byCategory {
		sums = append(sums, categorySum{category: cat, sum: sum})
	}
	sort.Slice(sums, func(i, j int) bool {
		ai, aj := math.Abs(sums[i].sum), math.Abs(sums[j].sum)
		if ai != aj {
			return ai > aj
		}
		return sums[i].category < sums[j].category
	})
	return sums
}
