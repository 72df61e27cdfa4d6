package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/subsync/subsync/internal/model"
)

func validCustomer() *model.Customer {
	return &model.Customer{
		FirstName:   "Asha",
		LastName:    "Rao",
		Email:       "asha@example.com",
		Phone:       "9876543210",
		DisplayName: "Asha Rao",
		GSTIN:       "22AAAAA0000A1Z5",
	}
}

func TestCustomerService_Create_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewCustomerService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	c := validCustomer()
	err := svc.Create(ctx, c)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(c.ID, "CID"))
	assert.Len(t, c.ID, 15)
	assert.Equal(t, model.CustomerActive, c.Status)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
	db.AssertExpectations(t)
}

func TestCustomerService_Create_FormatGates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Customer)
		msg    string
	}{
		{"bad gstin", func(c *model.Customer) { c.GSTIN = "22AAAAA0000A1Y5" }, "invalid GSTIN format"},
		{"bad email", func(c *model.Customer) { c.Email = "not-an-email" }, "invalid email format"},
		{"bad phone", func(c *model.Customer) { c.Phone = "12345" }, "invalid phone number format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &mockDB{}
			svc := NewCustomerService(db)

			c := validCustomer()
			tt.mutate(c)

			err := svc.Create(context.Background(), c)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, tt.msg, err.Error())
			db.AssertNotCalled(t, "Exec")
		})
	}
}

func TestCustomerService_GetByID_NotFound(t *testing.T) {
	db := &mockDB{}
	svc := NewCustomerService(db)
	ctx := context.Background()

	row := &mockRow{scanFunc: func(dest ...any) error {
		return errors.New("no rows in result set")
	}}
	db.On("QueryRow", ctx, mock.AnythingOfType("string"), mock.Anything).Return(row)

	result, err := svc.GetByID(ctx, "CID000000000000")
	require.Error(t, err)
	assert.Nil(t, result)
	db.AssertExpectations(t)
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	db := &mockDB{}
	svc := NewCustomerService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	c := validCustomer()
	c.ID = "CID000000000000"
	err := svc.Update(ctx, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	db.AssertExpectations(t)
}

func TestCustomerService_Update_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewCustomerService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).
		Return(pgconn.NewCommandTag("UPDATE 1"), nil)

	c := validCustomer()
	c.ID = "CID240101120000"
	c.Status = model.CustomerInactive
	err := svc.Update(ctx, c)
	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestCustomerService_Delete_NotFound(t *testing.T) {
	db := &mockDB{}
	svc := NewCustomerService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	err := svc.Delete(ctx, "CID000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	db.AssertExpectations(t)
}

func TestCustomerService_List_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewCustomerService(db)
	ctx := context.Background()

	now := time.Now()
	rows := newMockRows(func(dest ...any) error {
		*(dest[0].(*string)) = "CID240101120000"
		*(dest[8].(*string)) = "Asha Rao"
		*(dest[20].(*model.CustomerStatus)) = model.CustomerActive
		*(dest[21].(*time.Time)) = now
		*(dest[22].(*time.Time)) = now
		return nil
	})
	db.On("Query", ctx, mock.AnythingOfType("string"), mock.Anything).Return(rows, nil)

	countRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*int)) = 1
		return nil
	}}
	db.On("QueryRow", ctx, mock.AnythingOfType("string"), mock.Anything).Return(countRow)

	page, err := svc.List(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "Asha Rao", page.Rows[0].DisplayName)
	assert.Equal(t, 1, page.TotalCount)
	db.AssertExpectations(t)
}
