package report

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-aggregator/internal/mockdata"
)

func testService() *Service {
	return New(98765, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFinancialReportTotalsConsistent(t *testing.T) {
	svc := testService()

	rep, err := svc.Financial("2026-08-01", "2026-08-10")
	require.NoError(t, err)
	require.Len(t, rep.Days, 10)

	var total float64
	var pagos int
	for _, d := range rep.Days {
		total += d.Ingresos
		pagos += d.Pagos
		assert.GreaterOrEqual(t, d.Ingresos, 0.0)
	}
	assert.Equal(t, total, rep.TotalIngresos)
	assert.Equal(t, pagos, rep.TotalPagos)
	assert.InDelta(t, total/10, rep.AverageDaily, 1e-9)
}

func TestFinancialReportReproducibleWithinProcess(t *testing.T) {
	svc := testService()

	a, err := svc.Financial("2026-07-01", "2026-07-15")
	require.NoError(t, err)
	b, err := svc.Financial("2026-07-01", "2026-07-15")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFinancialReportSingleDay(t *testing.T) {
	svc := testService()
	rep, err := svc.Financial("2026-08-05", "2026-08-05")
	require.NoError(t, err)
	require.Len(t, rep.Days, 1)
	assert.Equal(t, rep.TotalIngresos, rep.AverageDaily)
}

func TestUsageReportCoversAllRooms(t *testing.T) {
	svc := testService()

	rep, err := svc.Usage("2026-08-01", "2026-08-07")
	require.NoError(t, err)
	require.Len(t, rep.Rooms, len(mockdata.Rooms))

	total := 0
	for i, row := range rep.Rooms {
		assert.Equal(t, mockdata.Rooms[i], row.Room)
		assert.Positive(t, row.Reservas)
		assert.GreaterOrEqual(t, row.Ocupacion, 25)
		assert.LessOrEqual(t, row.Ocupacion, 95)
		total += row.Reservas
	}
	assert.Equal(t, total, rep.TotalReservas)
}

func TestReportRejectsBadRanges(t *testing.T) {
	svc := testService()

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "мусор вместо даты", start: "not-a-date", end: "2026-08-01"},
		{name: "пустые даты", start: "", end: ""},
		{name: "конец раньше начала", start: "2026-08-10", end: "2026-08-01"},
		{name: "слишком широкий диапазон", start: "2020-01-01", end: "2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Financial(tt.start, tt.end)
			assert.Error(t, err)
			_, err = svc.Usage(tt.start, tt.end)
			assert.Error(t, err)
		})
	}
}
