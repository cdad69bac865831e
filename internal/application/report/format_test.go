package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: "NULL"},
		{name: "float", in: 12.345, want: "12.35"},
		{name: "whole float", in: 50.0, want: "50.00"},
		{name: "int", in: int64(683), want: "683"},
		{name: "long text", in: "Home & Kitchen Essentials", want: "Home & Kitchen Ess"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cell(tt.in))
		})
	}
}

func TestWriteText(t *testing.T) {
	var b strings.Builder
	err := WriteText(&b, &Table{
		Title:   "Category Performance Analysis",
		Columns: []string{"category", "avg_category_rating"},
		Rows:    [][]any{{"Books", 4.5}, {"Toys", nil}},
	})
	require.NoError(t, err)

	lines := strings.Split(b.String(), "\n")
	assert.Equal(t, "Category Performance Analysis", lines[2])
	assert.Equal(t, "category           | avg_category_ratin", lines[5])
	assert.Equal(t, strings.Repeat("-", 39), lines[6])
	assert.Equal(t, "Books              | 4.50              ", lines[7])
	assert.Equal(t, "Toys               | NULL              ", lines[8])
	assert.Contains(t, b.String(), "\nTotal rows: 2\n")
}

func TestWriteText_Empty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteText(&b, &Table{Title: "Empty", Columns: []string{"a"}}))

	assert.Contains(t, b.String(), "No results found.\n")
	assert.NotContains(t, b.String(), "Total rows")
}
