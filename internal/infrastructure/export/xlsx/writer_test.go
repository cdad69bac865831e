package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.xlsx")

	err := Write(path, []Sheet{
		{
			Name:    "category-performance",
			Columns: []string{"category", "total_revenue", "avg_category_rating"},
			Rows: [][]any{
				{"Books", 40.0, 5.0},
				{"Toys", 12.5, nil},
			},
		},
		{Name: "product-performance", Columns: []string{"product_name"}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"category-performance", "product-performance"}, f.GetSheetList())

	rows, err := f.GetRows("category-performance")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"category", "total_revenue", "avg_category_rating"}, rows[0])
	assert.Equal(t, []string{"Books", "40", "5"}, rows[1])
	assert.Equal(t, []string{"Toys", "12.5"}, rows[2])

	rows, err = f.GetRows("product-performance")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"product_name"}}, rows)
}

func TestWrite_NoSheets(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "empty.xlsx"), nil)
	assert.ErrorIs(t, err, ErrNoSheets)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "report", sheetName(""))
	assert.Len(t, sheetName("a-very-long-report-name-that-overflows"), maxSheetName)
}
