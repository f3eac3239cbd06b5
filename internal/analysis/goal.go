package analysis

import (
	"math"

	"github.com/tejuiceB/finwiseai/internal/common"
	"github.com/tejuiceB/finwiseai/internal/model"
)

// maxGoalTips caps how many categories a goal plan draws tips from.
const maxGoalTips = 5

// PlanGoal breaks a savings goal into monthly and weekly targets and proposes
// category cuts covering the monthly target. Returns common.ErrInvalidGoal on
// a non-positive goal amount or horizon; aggregation failures are returned
// unchanged.
func PlanGoal(transactions []model.Transaction, goalAmount float64, months int) (model.GoalPlan, error) {
	if months <= 0 || goalAmount <= 0 {
		return model.GoalPlan{}, common.ErrInvalidGoal
	}

	a, err := Analyze(transactions)
	if err != nil {
		return model.GoalPlan{}, err
	}

	monthlyTarget := goalAmount / float64(months)
	weeklyTarget := goalAmount / float64(months*4)

	top := sortedByAbsSum(a.ByCategory)
	if len(top) > maxGoalTips {
		top = top[:maxGoalTips]
	}

	tips := []model.GoalTip{}
	remain := monthlyTarget
	for _, cs := range top {
		if remain <= 0 {
			break
		}
		if cs.sum <= 0 {
			continue
		}
		cut := math.Min(math.Abs(cs.sum)*cutRate, remain)
		if cut > 0 {
			tips = append(tips, model.GoalTip{
				Category:            cs.category,
				CurrentMonthly:      round2(cs.sum),
				SuggestedMonthlyCut: round2(cut),
			})
			remain -= cut
		}
	}

	return model.GoalPlan{
		GoalAmount:    round2(goalAmount),
		Months:        months,
		MonthlyTarget: round2(monthlyTarget),
		WeeklyTarget:  round2(weeklyTarget),
		Tips:          tips,
	}, nil
}
