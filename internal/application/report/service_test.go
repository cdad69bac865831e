package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopdata/pkg/logger"
)

type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) Query(ctx context.Context, query string, args ...any) ([]string, [][]any, error) {
	called := m.Called(ctx, query, args)
	var cols []string
	if v := called.Get(0); v != nil {
		cols = v.([]string)
	}
	var rows [][]any
	if v := called.Get(1); v != nil {
		rows = v.([][]any)
	}
	return cols, rows, called.Error(2)
}

var asOf = time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC)

func TestService_List(t *testing.T) {
	s := NewService(new(MockQuerier), asOf, logger.NewNop())

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, CustomerPurchase, list[0].Name)
	assert.Equal(t, ProductPerformance, list[1].Name)
	assert.Equal(t, CategoryPerformance, list[2].Name)

	list[0].Name = "mutated"
	assert.Equal(t, CustomerPurchase, s.List()[0].Name)
}

func TestService_RunBindsReferenceDate(t *testing.T) {
	q := new(MockQuerier)
	q.On("Query", mock.Anything, categoryPerformanceSQL, []any{"2025-11-14"}).
		Return([]string{"category", "total_revenue"}, [][]any{{"Books", 40.0}}, nil).Once()

	s := NewService(q, asOf, logger.NewNop())
	table, err := s.Run(context.Background(), CategoryPerformance)

	require.NoError(t, err)
	assert.Equal(t, "Category Performance Analysis", table.Title)
	assert.Equal(t, []map[string]any{{"category": "Books", "total_revenue": 40.0}}, table.Records())
	q.AssertExpectations(t)
}

func TestService_RunUnknown(t *testing.T) {
	s := NewService(new(MockQuerier), asOf, logger.NewNop())

	_, err := s.Run(context.Background(), "top-suppliers")
	assert.ErrorIs(t, err, ErrUnknownReport)
}

func TestService_RunAll(t *testing.T) {
	t.Run("all reports in order", func(t *testing.T) {
		q := new(MockQuerier)
		q.On("Query", mock.Anything, mock.Anything, mock.Anything).Return([]string{"x"}, nil, nil).Times(3)

		tables, err := NewService(q, asOf, logger.NewNop()).RunAll(context.Background())
		require.NoError(t, err)
		require.Len(t, tables, 3)
		assert.Equal(t, ProductPerformance, tables[1].Name)
		q.AssertExpectations(t)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		q := new(MockQuerier)
		q.On("Query", mock.Anything, customerPurchaseSQL, mock.Anything).Return(nil, nil, errors.New("no such table: orders")).Once()

		_, err := NewService(q, asOf, logger.NewNop()).RunAll(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer-purchase")
		q.AssertNumberOfCalls(t, "Query", 1)
	})
}
