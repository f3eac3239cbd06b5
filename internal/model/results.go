package model

// Analysis summarizes a transaction set. All monetary fields are rounded to
// two decimals when the result is built; intermediate sums keep full
// precision.
type Analysis struct {
	ByCategory   map[string]float64 `json:"by_category"`
	Count        int                `json:"total_txns"`
	NetTotal     float64            `json:"net_total"`
	AvgAmount    float64            `json:"avg_amount"`
	IncomeTotal  float64            `json:"income_total"`
	ExpenseTotal float64            `json:"expense_total"`
}

// CutSuggestion proposes reducing spend in one category by 10%.
type CutSuggestion struct {
	Category          string  `json:"category"`
	CurrentSpend      float64 `json:"current_spend"`
	SuggestedCut      float64 `json:"suggested_cut"`
	NewEstimatedSpend float64 `json:"new_estimated_spend"`
}

// BudgetPlan is the budget advisor result: how far the user is from a savings
// target and which categories to trim to close the gap.
type BudgetPlan struct {
	Suggestions       []CutSuggestion `json:"suggestions"`
	CurrentSavingsEst float64         `json:"current_savings_est"`
	TargetSavings     float64         `json:"target_savings"`
	NeededToSave      float64         `json:"needed_to_save"`
}

// GoalTip proposes a monthly cut in one category toward a savings goal.
type GoalTip struct {
	Category            string  `json:"category"`
	CurrentMonthly      float64 `json:"current_monthly"`
	SuggestedMonthlyCut float64 `json:"suggested_monthly_cut"`
}

// GoalPlan breaks a savings goal into monthly and weekly targets plus
// category tips drawn from the top spend categories.
type GoalPlan struct {
	Tips          []GoalTip `json:"top_category_tips"`
	GoalAmount    float64   `json:"goal_amount"`
	Months        int       `json:"months"`
	MonthlyTarget float64   `json:"monthly_target"`
	WeeklyTarget  float64   `json:"weekly_target"`
}

// ForecastEntry is one projected month of cumulative savings.
type ForecastEntry struct {
	Month            int     `json:"month"`
	EstimatedSavings float64 `json:"estimated_savings"`
}

// Forecast is a straight-line savings projection from average monthly net.
type Forecast struct {
	Entries       []ForecastEntry `json:"forecast"`
	AvgMonthlyNet float64         `json:"avg_monthly_net"`
}
