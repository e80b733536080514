package mockapi

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-aggregator/internal/mockdata"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
	"github.com/magabrotheeeer/gym-aggregator/internal/services/dashboard"
	"github.com/magabrotheeeer/gym-aggregator/internal/services/report"
)

var testNow = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

func testFacade(t *testing.T, latencyMin, latencyMax time.Duration) *Facade {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := mockdata.New(321, testNow)
	return New(dashboard.New(store, log), report.New(321, log), 321, latencyMin, latencyMax, log)
}

func TestGetDashboardMetricsKnownRanges(t *testing.T) {
	f := testFacade(t, 0, 0)

	for _, rng := range []string{"today", "week", "month", "last30days"} {
		res := f.GetDashboardMetrics(rng)
		require.True(t, res.Success, rng)
		snapshot, ok := res.Data.(models.MetricsSnapshot)
		require.True(t, ok, rng)
		assert.GreaterOrEqual(t, snapshot.Reservas.Value, 0.0)
	}
}

// Нераспознанный диапазон трактуется как month.
func TestGetDashboardMetricsDefaultsToMonth(t *testing.T) {
	f := testFacade(t, 0, 0)

	unknown := f.GetDashboardMetrics("quarter")
	month := f.GetDashboardMetrics("month")
	require.True(t, unknown.Success)
	require.True(t, month.Success)
	assert.Equal(t, month.Data, unknown.Data)
}

func TestGetUsageChartDataNeverNil(t *testing.T) {
	f := testFacade(t, 0, 0)

	res := f.GetUsageChartData("month")
	require.True(t, res.Success)
	charts, ok := res.Data.(models.ChartData)
	require.True(t, ok)
	assert.NotNil(t, charts.AttendanceTrend)
	assert.NotNil(t, charts.UsageByCategory)
	assert.NotNil(t, charts.MonthlyRevenue)
	assert.NotNil(t, charts.AttendanceByHour)
}

func TestGenerateFinancialReport(t *testing.T) {
	f := testFacade(t, 0, 0)

	res := f.GenerateFinancialReport("2026-08-01", "2026-08-10")
	require.True(t, res.Success)
	rep, ok := res.Data.(*models.FinancialReport)
	require.True(t, ok)
	assert.Len(t, rep.Days, 10)
}

func TestGenerateReportInvalidRangeGivesErrEnvelope(t *testing.T) {
	f := testFacade(t, 0, 0)

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "мусор вместо даты", start: "garbage", end: "2026-08-01"},
		{name: "конец раньше начала", start: "2026-08-10", end: "2026-08-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.GenerateFinancialReport(tt.start, tt.end)
			assert.False(t, res.Success)
			assert.Equal(t, CodeBadRequest, res.Code)
			assert.NotEmpty(t, res.Error)

			res = f.GenerateUsageReport(tt.start, tt.end)
			assert.False(t, res.Success)
			assert.Equal(t, CodeBadRequest, res.Code)
		})
	}
}

func TestLatencyAtLeastMinimum(t *testing.T) {
	f := testFacade(t, 30*time.Millisecond, 60*time.Millisecond)

	start := time.Now()
	res := f.GetDashboardMetrics("today")
	elapsed := time.Since(start)

	require.True(t, res.Success)
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
}

func TestFacadeRecoversPanics(t *testing.T) {
	f := testFacade(t, 0, 0)

	res := f.call("boom", func() Result {
		panic("boom")
	})
	assert.False(t, res.Success)
	assert.Equal(t, CodeInternal, res.Code)
	assert.Equal(t, "internal error", res.Error)
}
