package export

import (
	"path/filepath"
	"testing"

	"newsvendor/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteFillRateCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fill_rate.xlsx")
	points := []model.FillRatePoint{
		{Quantity: 0, FillRate: 0},
		{Quantity: 10, FillRate: 0.1},
		{Quantity: 20, FillRate: 0.2},
	}

	require.NoError(t, WriteFillRateCurve(path, points))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per point")

	assert.Equal(t, []string{"Quantity", "Fill Rate"}, rows[0])
	assert.Equal(t, "10", rows[2][0])
	assert.Equal(t, "0.1", rows[2][1])
}

func TestWriteProfitProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profit.xlsx")
	points := []model.ProfitPoint{
		{Quantity: 100, AvgProfit: 336.2, MaxProfit: 400, MinProfit: -40.5,
			AvgUnitsSold: 92, AvgLostSales: 8, AvgLeftover: 8},
	}

	require.NoError(t, WriteProfitProfile(path, points))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 7)
	assert.Equal(t, "336.2", rows[1][1])
	assert.Equal(t, "-40.5", rows[1][3])
}
