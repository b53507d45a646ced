package usecase

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"moneymitra/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const (
	topCategoryLimit = 3
	defaultCategory  = "other"
)

// AnalyzeSpending totals a transaction list. Records whose amount is missing
// or unparsable are left out of every sum but still count towards
// TransactionCount.
func AnalyzeSpending(transactions []entity.Transaction) entity.SpendingAnalysis {
	total := decimal.Zero
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, t := range transactions {
		amount, ok := parseAmount(t.Amount)
		if !ok {
			continue
		}
		category := strings.ToLower(t.Category.Or(defaultCategory))
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] = totals[category].Add(amount)
		total = total.Add(amount)
	}

	breakdown := make(map[string]float64, len(order))
	top := make([]entity.CategoryTotal, 0, len(order))
	for _, category := range order {
		amount := totals[category].InexactFloat64()
		breakdown[category] = amount
		top = append(top, entity.CategoryTotal{Category: category, Amount: amount})
	}
	// Stable, so equal totals keep first-seen order.
	slices.SortStableFunc(top, func(a, b entity.CategoryTotal) int {
		return totals[b.Category].Cmp(totals[a.Category])
	})
	if len(top) > topCategoryLimit {
		top = top[:topCategoryLimit]
	}

	average := decimal.Zero
	if n := len(transactions); n > 0 {
		average = total.Div(decimal.NewFromInt(int64(n))).Round(2)
	}

	return entity.SpendingAnalysis{
		TotalSpent:         total.InexactFloat64(),
		CategoryBreakdown:  breakdown,
		TransactionCount:   len(transactions),
		AverageTransaction: average.InexactFloat64(),
		TopCategories:      top,
	}
}

// parseAmount reads a float64 and converts it to its shortest decimal form.
// The float64 range bounds the exponent of every decimal that reaches Add or
// Div; "1e-20000000" underflows to 0 and "1e400" is rejected.
func parseAmount(t entity.Text) (decimal.Decimal, bool) {
	if !t.Set {
		return decimal.Zero, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).String()
}
