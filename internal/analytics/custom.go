// internal/analytics/custom.go
package analytics

import (
	"fmt"

	"github.com/Knetic/govaluate"
)

// EvaluateFormula вычисляет пользовательскую формулу над агрегированными
// метриками кампании. Формула может ссылаться на переменные total_revenue,
// total_payout, organic_baseline_revenue, incremental_revenue, orders,
// а также roi и incremental_roas — последние две доступны, только когда
// определены (при нулевой выплате ссылка на них вернет ошибку, а не NaN).
func EvaluateFormula(m Metrics, formula string) (float64, error) {
	expression, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return 0, fmt.Errorf("bad formula %q: %w", formula, err)
	}

	parameters := map[string]interface{}{
		"total_revenue":            m.TotalRevenue.InexactFloat64(),
		"total_payout":             m.TotalPayout.InexactFloat64(),
		"organic_baseline_revenue": m.OrganicBaseline.InexactFloat64(),
		"incremental_revenue":      m.IncrementalRevenue.InexactFloat64(),
		"orders":                   float64(m.Orders),
	}
	if m.ROI.Valid {
		parameters["roi"] = m.ROI.Value
	}
	if m.IncrementalROAS.Valid {
		parameters["incremental_roas"] = m.IncrementalROAS.Value
	}

	result, err := expression.Evaluate(parameters)
	if err != nil {
		return 0, fmt.Errorf("evaluate formula: %w", err)
	}

	value, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("formula result is not a number")
	}
	return value, nil
}
