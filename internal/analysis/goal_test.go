package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejuiceB/finwiseai/internal/common"
	"github.com/tejuiceB/finwiseai/internal/model"
)

func TestPlanGoalTargets(t *testing.T) {
	plan, err := PlanGoal(testTransactions(), 1200, 12)
	require.NoError(t, err)

	assert.InDelta(t, 1200, plan.GoalAmount, 0.001)
	assert.Equal(t, 12, plan.Months)
	assert.InDelta(t, 100.0, plan.MonthlyTarget, 0.001)
	assert.InDelta(t, 25.0, plan.WeeklyTarget, 0.001)
}

func TestPlanGoalInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		months int
	}{
		{name: "zero goal amount", amount: 0, months: 5},
		{name: "negative goal amount", amount: -100, months: 5},
		{name: "zero months", amount: 500, months: 0},
		{name: "negative months", amount: 500, months: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanGoal(testTransactions(), tt.amount, tt.months)
			assert.True(t, errors.Is(err, common.ErrInvalidGoal))
		})
	}
}

func TestPlanGoalPropagatesAnalyzeError(t *testing.T) {
	_, err := PlanGoal(nil, 1200, 12)
	require.Error(t, err)
	assert.Equal(t, common.ErrNoTransactions, err)
}

func TestPlanGoalCapsCutAtRemain(t *testing.T) {
	// Monthly target 100; Income's 10% would be 300, capped at the remaining
	// 100, and the loop stops once the target is covered.
	plan, err := PlanGoal(testTransactions(), 1200, 12)
	require.NoError(t, err)

	require.Len(t, plan.Tips, 1)
	tip := plan.Tips[0]
	assert.Equal(t, model.CategoryIncome, tip.Category)
	assert.InDelta(t, 3000, tip.CurrentMonthly, 0.001)
	assert.InDelta(t, 100, tip.SuggestedMonthlyCut, 0.001)
}

func TestPlanGoalLimitsTipsToTopFive(t *testing.T) {
	txns := []model.Transaction{
		{Description: "a", Amount: 1000, Category: "A"},
		{Description: "b", Amount: 900, Category: "B"},
		{Description: "c", Amount: 800, Category: "C"},
		{Description: "d", Amount: 700, Category: "D"},
		{Description: "e", Amount: 600, Category: "E"},
		{Description: "f", Amount: 500, Category: "F"},
	}

	// Monthly target 1000 is far above what 10% cuts of the top 5 cover, so
	// every considered category contributes a tip, but F is never considered.
	plan, err := PlanGoal(txns, 12000, 12)
	require.NoError(t, err)

	require.Len(t, plan.Tips, 5)
	for i, want := range []string{"A", "B", "C", "D", "E"} {
		assert.Equal(t, want, plan.Tips[i].Category)
	}
	assert.InDelta(t, 100, plan.Tips[0].SuggestedMonthlyCut, 0.001)
	assert.InDelta(t, 60, plan.Tips[4].SuggestedMonthlyCut, 0.001)
}

func TestPlanGoalSkipsNegativeSumCategories(t *testing.T) {
	txns := []model.Transaction{
		{Description: "House rent", Amount: -2000},
		{Description: "Monthly Salary", Amount: 150},
	}

	plan, err := PlanGoal(txns, 120, 12)
	require.NoError(t, err)

	// Rent sorts first by absolute sum but is net-negative, so only Income
	// yields a tip.
	require.Len(t, plan.Tips, 1)
	assert.Equal(t, model.CategoryIncome, plan.Tips[0].Category)
	assert.InDelta(t, 10, plan.Tips[0].SuggestedMonthlyCut, 0.001)
}
