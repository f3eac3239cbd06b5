package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejuiceB/finwiseai/internal/common"
	"github.com/tejuiceB/finwiseai/internal/model"
)

func testTransactions() []model.Transaction {
	return []model.Transaction{
		{Date: "2024-01-01", Description: "Monthly Salary", Amount: 3000, Type: model.TypeIncome},
		{Date: "2024-01-03", Description: "House rent", Amount: -1200, Type: model.TypeExpense},
		{Date: "2024-01-05", Description: "Uber ride home", Amount: -45.50, Type: model.TypeExpense},
		{Date: "2024-01-08", Description: "Dominos Pizza", Amount: -32.25, Type: model.TypeExpense},
		{Date: "2024-01-12", Description: "Grocery run", Amount: -180, Category: "Groceries", Type: model.TypeExpense},
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	_, err := Analyze(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoTransactions))

	_, err = Analyze([]model.Transaction{})
	assert.True(t, errors.Is(err, common.ErrNoTransactions))
}

func TestAnalyzeTotals(t *testing.T) {
	a, err := Analyze(testTransactions())
	require.NoError(t, err)

	assert.Equal(t, 5, a.Count)
	assert.InDelta(t, 1542.25, a.NetTotal, 0.001)
	assert.InDelta(t, 308.45, a.AvgAmount, 0.001)
	assert.InDelta(t, 3000, a.IncomeTotal, 0.001)
	assert.InDelta(t, 1457.75, a.ExpenseTotal, 0.001)
}

// Income-typed transactions count toward income even with a non-positive
// amount, and negative amounts always count toward expenses. The overlap is
// deliberate, so net total is not income minus expense here.
func TestAnalyzeIncomeTypeOverlap(t *testing.T) {
	a, err := Analyze([]model.Transaction{
		{Description: "salary clawback", Amount: -500, Type: model.TypeIncome},
		{Description: "Monthly Salary", Amount: 2000, Type: model.TypeIncome},
	})
	require.NoError(t, err)

	assert.InDelta(t, 1500, a.IncomeTotal, 0.001) // -500 + 2000
	assert.InDelta(t, 500, a.ExpenseTotal, 0.001) // still an expense
	assert.InDelta(t, 1500, a.NetTotal, 0.001)
	assert.InDelta(t, a.IncomeTotal-a.ExpenseTotal, 1000, 0.001)
}

func TestAnalyzeCategoryBreakdown(t *testing.T) {
	a, err := Analyze(testTransactions())
	require.NoError(t, err)

	// Explicit categories win; everything else falls back to the categorizer.
	assert.InDelta(t, -180, a.ByCategory["Groceries"], 0.001)
	assert.InDelta(t, 3000, a.ByCategory[model.CategoryIncome], 0.001)
	assert.InDelta(t, -1200, a.ByCategory[model.CategoryRent], 0.001)
	assert.InDelta(t, -45.50, a.ByCategory[model.CategoryTransport], 0.001)
	assert.InDelta(t, -32.25, a.ByCategory[model.CategoryDining], 0.001)

	// Every transaction lands in exactly one bucket, so the buckets sum back
	// to the net total.
	var sum float64
	for _, v := range a.ByCategory {
		sum += v
	}
	assert.InDelta(t, a.NetTotal, sum, 0.001)
}

func TestAnalyzeZeroAmounts(t *testing.T) {
	a, err := Analyze([]model.Transaction{
		{Description: "pending hold", Amount: 0},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0, a.NetTotal, 0.001)
	assert.InDelta(t, 0, a.IncomeTotal, 0.001)
	assert.InDelta(t, 0, a.ExpenseTotal, 0.001)
	assert.InDelta(t, 0, a.ByCategory[model.CategoryOther], 0.001)
}

// Accumulation happens at full precision; only the result is rounded. Ten
// cents of 0.105 would drift if each transaction were rounded on its own.
func TestAnalyzeRoundsAtBoundaryOnly(t *testing.T) {
	txns := make([]model.Transaction, 10)
	for i := range txns {
		txns[i] = model.Transaction{Description: "coffee cafe", Amount: -0.105}
	}

	a, err := Analyze(txns)
	require.NoError(t, err)

	assert.InDelta(t, -1.05, a.NetTotal, 0.001)
	assert.InDelta(t, -1.05, a.ByCategory[model.CategoryDining], 0.001)
}

func TestSortedByAbsSumDeterministic(t *testing.T) {
	byCategory := map[string]float64{
		"Dining":    -50,
		"Transport": 50,
		"Rent":      -900,
		"Income":    3000,
	}

	got := sortedByAbsSum(byCategory)
	want := []categorySum{
		{"Income", 3000},
		{"Rent", -900},
		{"Dining", -50}, // tie with Transport breaks on name
		{"Transport", 50},
	}
	assert.Equal(t, want, got)
}
