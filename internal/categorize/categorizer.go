// Package categorize provides deterministic keyword-based transaction
// categorization. It is the fallback used when a transaction carries no
// explicit category; the loader never invokes it.
package categorize

import (
	"strings"

	"github.com/tejuiceB/finwiseai/internal/model"
)

// rule maps a set of description keywords to a category. Rules are checked
// in order; the first match wins.
type rule struct {
	category string
	keywords []string
}

var rules = []rule{
	{model.CategoryTransport, []string{"uber", "ola", "taxi", "grab", "ride"}},
	{model.CategoryDining, []string{"restaurant", "dine", "cafe", "pizza", "dominos", "swiggy"}},
	{model.CategoryIncome, []string{"salary", "pay", "invoice"}},
	{model.CategoryRent, []string{"rent", "house", "flat"}},
}

// Categorize maps a free-text transaction description to a category using
// case-insensitive substring matching. Unmatched or empty descriptions map
// to Other. Pure function, no side effects.
func Categorize(description string) string {
	d := strings.ToLower(description)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(d, kw) {
				return r.category
			}
		}
	}
	return model.CategoryOther
}
