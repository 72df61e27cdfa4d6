package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func searchRow(typ, id, label string) func(dest ...any) error {
	return func(dest ...any) error {
		*(dest[0].(*string)) = typ
		*(dest[1].(*string)) = id
		*(dest[2].(*string)) = label
		return nil
	}
}

func TestSearchService_MergesAcrossEntities(t *testing.T) {
	db := &mockDB{}
	svc := NewSearchService(db)

	db.On("Query", mock.Anything, mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, "FROM customers")
	}), mock.Anything).Return(newMockRows(searchRow("customer", "CID240101120000", "Asha Rao")), nil)
	db.On("Query", mock.Anything, mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, "FROM products")
	}), mock.Anything).Return(newMockRows(searchRow("product", "7", "Gold Hosting")), nil)
	db.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(newEmptyMockRows(), nil)

	results, err := svc.Search(context.Background(), "gold", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	types := []string{results[0].Type, results[1].Type}
	assert.Contains(t, types, "customer")
	assert.Contains(t, types, "product")
}

func TestSearchService_QueryError(t *testing.T) {
	db := &mockDB{}
	svc := NewSearchService(db)

	db.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := svc.Search(context.Background(), "gold", 5)
	require.Error(t, err)
}
