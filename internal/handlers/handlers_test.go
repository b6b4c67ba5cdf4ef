package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"influencer-dashboard/config"
	"influencer-dashboard/internal/dataset"
	"influencer-dashboard/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(id int64) *int64 {
	return &id
}

// setupTest готовит общее состояние обработчиков: снимок данных,
// конфигурацию и тестовый режим gin.
func setupTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	config.App = config.Config{
		TopN:         10,
		Login:        "admin",
		PasswordHash: string(hash),
	}
	config.JwtKey = []byte("test-signing-key")

	influencers := []models.Influencer{
		{ID: 1, Name: "Asha", Category: "Fitness", Platform: "Instagram"},
		{ID: 2, Name: "Rohan", Category: "Beauty", Platform: "YouTube"},
	}
	tracking := []models.Tracking{
		{OrderID: "ORD-1", InfluencerID: ptr(1), Date: day("2025-01-10"), Revenue: dec("2500")},
		{OrderID: "ORD-2", InfluencerID: ptr(2), Date: day("2025-01-15"), Revenue: dec("500")},
		{OrderID: "ORD-3", InfluencerID: nil, Date: day("2025-01-12"), Revenue: dec("1000")},
	}
	payouts := []models.Payout{
		{InfluencerID: 1, Basis: models.PayoutBasisPerPost, Rate: dec("500"), TotalPayout: dec("1000")},
		{InfluencerID: 2, Basis: models.PayoutBasisPerOrder, Rate: dec("100"), TotalPayout: dec("100")},
	}
	SetSnapshot(dataset.New(influencers, nil, tracking, payouts, dataset.SkipCounts{}))
}

func perform(handler gin.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, "/test", handler)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetMetricsHandler(t *testing.T) {
	setupTest(t)
	w := perform(GetMetricsHandler, http.MethodGet, "/test?categories=all&platforms=all", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	metrics := body["metrics"].(map[string]any)
	assert.Equal(t, "3000", metrics["totalRevenue"])
	assert.Equal(t, "1100", metrics["totalPayout"])
	assert.Equal(t, "1000", metrics["organicBaselineRevenue"])
	assert.Equal(t, "2000", metrics["incrementalRevenue"])
	assert.InDelta(t, 3000.0/1100.0, metrics["roi"].(float64), 1e-9)
}

func TestGetMetricsHandlerEmptySelection(t *testing.T) {
	setupTest(t)
	w := perform(GetMetricsHandler, http.MethodGet, "/test?platforms=TikTok", "")

	require.Equal(t, http.StatusOK, w.Code)
	metrics := decodeBody(t, w)["metrics"].(map[string]any)
	assert.Equal(t, "0", metrics["totalRevenue"])
	// Неопределенный ROI сериализуется как null.
	assert.Nil(t, metrics["roi"])
}

func TestGetMetricsHandlerBadDate(t *testing.T) {
	setupTest(t)
	w := perform(GetMetricsHandler, http.MethodGet, "/test?from=not-a-date", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(GetMetricsHandler, http.MethodGet, "/test?to=2025-99-99", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetInfluencerMetricsHandler(t *testing.T) {
	setupTest(t)
	w := perform(GetInfluencerMetricsHandler, http.MethodGet, "/test?categories=Fitness", "")

	require.Equal(t, http.StatusOK, w.Code)
	influencers := decodeBody(t, w)["influencers"].([]any)
	require.Len(t, influencers, 1)
	first := influencers[0].(map[string]any)
	assert.Equal(t, "Asha", first["name"])
	assert.Equal(t, "2500", first["revenue"])
}

func TestGetLeaderboardHandler(t *testing.T) {
	setupTest(t)
	w := perform(GetLeaderboardHandler, http.MethodGet, "/test?order=asc&limit=1", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	leaderboard := body["leaderboard"].([]any)
	require.Len(t, leaderboard, 1)
	// При возрастании первым идет худший ROI: 2500/1000=2.5 против 500/100=5.
	worst := leaderboard[0].(map[string]any)
	assert.Equal(t, "Asha", worst["name"])
}

func TestGetLeaderboardHandlerBadParams(t *testing.T) {
	setupTest(t)

	w := perform(GetLeaderboardHandler, http.MethodGet, "/test?order=sideways", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(GetLeaderboardHandler, http.MethodGet, "/test?limit=-3", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(GetLeaderboardHandler, http.MethodGet, "/test?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluateCustomMetricHandler(t *testing.T) {
	setupTest(t)

	w := perform(EvaluateCustomMetricHandler, http.MethodPost, "/test",
		`{"formula": "total_revenue - total_payout"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 1900.0, decodeBody(t, w)["value"].(float64), 1e-9)

	w = perform(EvaluateCustomMetricHandler, http.MethodPost, "/test", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(EvaluateCustomMetricHandler, http.MethodPost, "/test",
		`{"formula": "total_revenue +* 2"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFilterOptionsHandler(t *testing.T) {
	setupTest(t)
	w := perform(GetFilterOptionsHandler, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, []any{"Beauty", "Fitness"}, body["categories"])
	assert.Equal(t, []any{"Instagram", "YouTube"}, body["platforms"])
	assert.Equal(t, "2025-01-10", body["minDate"])
	assert.Equal(t, "2025-01-15", body["maxDate"])
}

func TestGetReportHandlerDeterministic(t *testing.T) {
	setupTest(t)

	first := perform(GetReportHandler, http.MethodGet, "/test", "")
	second := perform(GetReportHandler, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, first.Body.String(), "#### Campaign Summary")
	assert.Contains(t, first.Body.String(), "- Total Revenue: ₹3,000.00")
}

func TestDownloadReportHandler(t *testing.T) {
	setupTest(t)
	w := perform(DownloadReportHandler, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=campaign_report_")
	assert.Contains(t, w.Body.String(), "Detailed Campaign Insights Report")
}

func TestLoginHandler(t *testing.T) {
	setupTest(t)

	w := perform(LoginHandler, http.MethodPost, "/test", `{"login":"admin","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)

	w = perform(LoginHandler, http.MethodPost, "/test", `{"login":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(LoginHandler, http.MethodPost, "/test", `{"login":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
