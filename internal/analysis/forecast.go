package analysis

import (
	"github.com/tejuiceB/finwiseai/internal/common"
	"github.com/tejuiceB/finwiseai/internal/model"
)

// ForecastSavings projects cumulative savings as a straight line from the
// average monthly net. The data is assumed to span a single month; no
// calendar inference is attempted. A non-positive horizon yields an empty
// forecast rather than an error.
func ForecastSavings(transactions []model.Transaction, months int) (model.Forecast, error) {
	if len(transactions) == 0 {
		return model.Forecast{}, common.ErrNoTransactions
	}

	var totalNet float64
	for _, t := range transactions {
		totalNet += t.Amount
	}
	avgMonthlyNet := totalNet // single-period assumption

	entries := []model.ForecastEntry{}
	for i := 1; i <= months; i++ {
		entries = append(entries, model.ForecastEntry{
			Month:            i,
			EstimatedSavings: round2(float64(i) * avgMonthlyNet),
		})
	}

	return model.Forecast{
		AvgMonthlyNet: round2(avgMonthlyNet),
		Entries:       entries,
	}, nil
}
