package core

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testListSpec = ListSpec{
	Table:  "widgets",
	Select: "id, name",
	Columns: map[string]string{
		"widget_id":   "id",
		"widget_name": "name",
	},
	DefaultSort: "widget_name",
}

type testWidget struct {
	ID   int64
	Name string
}

func scanTestWidget(rows pgx.Rows) (testWidget, error) {
	var w testWidget
	err := rows.Scan(&w.ID, &w.Name)
	return w, err
}

func widgetRow(id int64, name string) func(dest ...any) error {
	return func(dest ...any) error {
		*(dest[0].(*int64)) = id
		*(dest[1].(*string)) = name
		return nil
	}
}

func TestListPage_Defaults(t *testing.T) {
	db := &mockDB{}
	ctx := context.Background()

	db.On("Query", ctx,
		"SELECT id, name FROM widgets ORDER BY name ASC LIMIT $1 OFFSET $2",
		[]any{10, 0}).Return(newMockRows(widgetRow(1, "alpha"), widgetRow(2, "beta")), nil)

	countRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*int)) = 2
		return nil
	}}
	db.On("QueryRow", ctx, "SELECT COUNT(*) FROM widgets", []any(nil)).Return(countRow)

	page, err := listPage(ctx, db, testListSpec, ListParams{}, scanTestWidget)
	require.NoError(t, err)
	assert.Len(t, page.Rows, 2)
	assert.Equal(t, "alpha", page.Rows[0].Name)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	db.AssertExpectations(t)
}

func TestListPage_SearchAndPagination(t *testing.T) {
	db := &mockDB{}
	ctx := context.Background()

	db.On("Query", ctx,
		"SELECT id, name FROM widgets WHERE name::text ILIKE $1 ORDER BY id DESC LIMIT $2 OFFSET $3",
		[]any{"%al%", 5, 5}).Return(newMockRows(widgetRow(1, "alpha")), nil)

	countRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*int)) = 11
		return nil
	}}
	db.On("QueryRow", ctx, "SELECT COUNT(*) FROM widgets WHERE name::text ILIKE $1", []any{"%al%"}).Return(countRow)

	p := ListParams{
		SearchColumn: "widget_name",
		SearchTerm:   "al",
		SortColumn:   "widget_id",
		SortOrder:    "desc",
		Page:         2,
		PageSize:     5,
	}
	page, err := listPage(ctx, db, testListSpec, p, scanTestWidget)
	require.NoError(t, err)
	assert.Equal(t, 11, page.TotalCount)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	db.AssertExpectations(t)
}

func TestListPage_InvalidSearchColumn(t *testing.T) {
	db := &mockDB{}

	_, err := listPage(context.Background(), db, testListSpec,
		ListParams{SearchColumn: "password", SearchTerm: "x"}, scanTestWidget)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "invalid search field")
	db.AssertNotCalled(t, "Query")
}

func TestListPage_InvalidSortColumn(t *testing.T) {
	db := &mockDB{}

	_, err := listPage(context.Background(), db, testListSpec,
		ListParams{SortColumn: "evil; DROP TABLE widgets"}, scanTestWidget)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "invalid sort field")
	db.AssertNotCalled(t, "Query")
}

func TestListPage_EmptyResult(t *testing.T) {
	db := &mockDB{}
	ctx := context.Background()

	db.On("Query", ctx, mock.AnythingOfType("string"), mock.Anything).Return(newEmptyMockRows(), nil)
	countRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*int)) = 0
		return nil
	}}
	db.On("QueryRow", ctx, mock.AnythingOfType("string"), mock.Anything).Return(countRow)

	page, err := listPage(ctx, db, testListSpec, ListParams{}, scanTestWidget)
	require.NoError(t, err)
	assert.Empty(t, page.Rows)
	assert.NotNil(t, page.Rows)
	assert.Equal(t, 0, page.TotalPages)
	db.AssertExpectations(t)
}
