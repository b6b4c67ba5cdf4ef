package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func januaryMetrics() Metrics {
	snap := testSnapshot()
	sel := january()
	return ComputeMetrics(snap, sel, FilterTracking(snap, sel))
}

func TestEvaluateFormula(t *testing.T) {
	m := januaryMetrics()

	v, err := EvaluateFormula(m, "total_revenue - total_payout")
	require.NoError(t, err)
	assert.InDelta(t, 2600.0, v, 1e-9)

	v, err = EvaluateFormula(m, "incremental_revenue / orders")
	require.NoError(t, err)
	assert.InDelta(t, 2100.0/4.0, v, 1e-9)

	v, err = EvaluateFormula(m, "roi * 100")
	require.NoError(t, err)
	assert.InDelta(t, 4100.0/1500.0*100, v, 1e-9)
}

func TestEvaluateFormulaBadSyntax(t *testing.T) {
	_, err := EvaluateFormula(januaryMetrics(), "total_revenue +* 2")
	assert.Error(t, err)
}

func TestEvaluateFormulaUnknownVariable(t *testing.T) {
	_, err := EvaluateFormula(januaryMetrics(), "total_revenue / follower_count")
	assert.Error(t, err)
}

// При нулевой выплате roi не определен: формула, ссылающаяся на него,
// возвращает ошибку, а не NaN.
func TestEvaluateFormulaROIUndefined(t *testing.T) {
	snap := testSnapshot()
	sel := january()
	sel.Categories = []string{"Tech"} // у Priya нет выплат
	m := ComputeMetrics(snap, sel, FilterTracking(snap, sel))
	require.False(t, m.ROI.Valid)

	_, err := EvaluateFormula(m, "roi * 2")
	assert.Error(t, err)

	// Остальные переменные при этом доступны.
	v, err := EvaluateFormula(m, "total_revenue")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, v, 1e-9)
}

func TestEvaluateFormulaBooleanResult(t *testing.T) {
	_, err := EvaluateFormula(januaryMetrics(), "total_revenue > 0")
	assert.Error(t, err)
}
