package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/subsync/subsync/internal/core"
	"github.com/subsync/subsync/internal/model"
)

func newCustomerHandler(db *handlerMockDB) *Customer {
	return NewCustomer(core.NewCustomerService(db), core.NewSubscriptionService(db), nil)
}

func validCustomerBody() map[string]any {
	return map[string]any{
		"first_name":           "Asha",
		"last_name":            "Rao",
		"primary_email":        "asha@example.com",
		"primary_phone_number": "9876543210",
		"display_name":         "Asha Rao",
		"gst_in":               "22AAAAA0000A1Z5",
	}
}

func TestCustomerCreate_Success(t *testing.T) {
	db := &handlerMockDB{}
	h := newCustomerHandler(db)

	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(pgconn.CommandTag{}, nil)

	rec := httptest.NewRecorder()
	h.Create(rec, newRequest(http.MethodPost, "/customers", validCustomerBody()))

	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.CustomerActive, created.Status)
	db.AssertExpectations(t)
}

func TestCustomerCreate_InvalidJSON(t *testing.T) {
	h := newCustomerHandler(&handlerMockDB{})

	rec := httptest.NewRecorder()
	h.Create(rec, newRequestRaw(http.MethodPost, "/customers", "{bad json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErrorResponse(rec)["error"], "invalid JSON")
}

func TestCustomerCreate_MissingRequiredFields(t *testing.T) {
	h := newCustomerHandler(&handlerMockDB{})

	rec := httptest.NewRecorder()
	h.Create(rec, newRequest(http.MethodPost, "/customers", map[string]any{}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErrorResponse(rec)["error"], "validation error")
}

func TestCustomerCreate_BadGSTIN(t *testing.T) {
	db := &handlerMockDB{}
	h := newCustomerHandler(db)

	body := validCustomerBody()
	body["gst_in"] = "22AAAAA0000A1Y5"

	rec := httptest.NewRecorder()
	h.Create(rec, newRequest(http.MethodPost, "/customers", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid GSTIN format", decodeErrorResponse(rec)["error"])
	db.AssertNotCalled(t, "Exec")
}

func TestCustomerGet_IncludesSubscriptions(t *testing.T) {
	db := &handlerMockDB{}
	h := newCustomerHandler(db)

	now := time.Now()
	customerRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*string)) = "CID240101120000"
		*(dest[8].(*string)) = "Asha Rao"
		*(dest[20].(*model.CustomerStatus)) = model.CustomerActive
		*(dest[21].(*time.Time)) = now
		*(dest[22].(*time.Time)) = now
		return nil
	}}
	db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(customerRow)

	subRows := newMockRows(func(dest ...any) error {
		*(dest[0].(*string)) = "SID240301100000"
		*(dest[1].(*string)) = "CID240101120000"
		*(dest[2].(*int64)) = 7
		*(dest[3].(*float64)) = 499.0
		*(dest[4].(*time.Time)) = now
		*(dest[5].(*time.Time)) = now.AddDate(0, 0, 30)
		*(dest[6].(*model.SubscriptionStatus)) = model.SubscriptionActive
		return nil
	})
	db.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(subRows, nil)

	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodGet, "/customers/CID240101120000", nil), "id", "CID240101120000")
	h.Get(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Customer             model.Customer       `json:"customer"`
		RelatedSubscriptions []model.Subscription `json:"relatedSubscriptions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CID240101120000", body.Customer.ID)
	require.Len(t, body.RelatedSubscriptions, 1)
	assert.Equal(t, "SID240301100000", body.RelatedSubscriptions[0].ID)
	db.AssertExpectations(t)
}

func TestCustomerGet_MissingID(t *testing.T) {
	h := newCustomerHandler(&handlerMockDB{})

	rec := httptest.NewRecorder()
	h.Get(rec, newRequest(http.MethodGet, "/customers/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerGet_NotFound(t *testing.T) {
	db := &handlerMockDB{}
	h := newCustomerHandler(db)

	row := &mockRow{scanFunc: func(dest ...any) error {
		return pgx.ErrNoRows
	}}
	db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(row)

	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodGet, "/customers/CID0", nil), "id", "CID000000000000")
	h.Get(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomerDelete_NotFound(t *testing.T) {
	db := &handlerMockDB{}
	h := newCustomerHandler(db)

	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(pgconn.CommandTag{}, nil)

	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodDelete, "/customers/CID0", nil), "id", "CID000000000000")
	h.Delete(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	db.AssertExpectations(t)
}

func TestCustomerList_Envelope(t *testing.T) {
	db := &handlerMockDB{}
	h := newCustomerHandler(db)

	now := time.Now()
	rows := newMockRows(func(dest ...any) error {
		*(dest[0].(*string)) = "CID240101120000"
		*(dest[8].(*string)) = "Asha Rao"
		*(dest[20].(*model.CustomerStatus)) = model.CustomerActive
		*(dest[21].(*time.Time)) = now
		*(dest[22].(*time.Time)) = now
		return nil
	})
	db.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(rows, nil)

	countRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*int)) = 21
		return nil
	}}
	db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(countRow)

	rec := httptest.NewRecorder()
	h.List(rec, newRequest(http.MethodGet, "/customers?page=3&pageSize=10", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		DataArray   []model.Customer `json:"dataArray"`
		CurrentPage int              `json:"currentPage"`
		TotalPages  int              `json:"totalPages"`
		TotalCount  int              `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.DataArray, 1)
	assert.Equal(t, 3, body.CurrentPage)
	assert.Equal(t, 3, body.TotalPages)
	assert.Equal(t, 21, body.TotalCount)
	db.AssertExpectations(t)
}

func TestCustomerList_InvalidSearchColumn(t *testing.T) {
	db := &handlerMockDB{}
	h := newCustomerHandler(db)

	rec := httptest.NewRecorder()
	h.List(rec, newRequest(http.MethodGet, "/customers?searchType=password_hash&search=x", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid search field", decodeErrorResponse(rec)["error"])
	db.AssertNotCalled(t, "Query")
}
