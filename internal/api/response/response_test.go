package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsync/subsync/internal/core"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	payload := map[string]string{"hello": "world"}

	WriteJSON(w, http.StatusOK, payload)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "world", body["hello"])
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusBadRequest, "something went wrong")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "something went wrong", body["error"])
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid", core.Invalid("bad input"), http.StatusBadRequest},
		{"not found", core.NotFound("customer not found"), http.StatusNotFound},
		{"conflict", core.Conflict("already exists"), http.StatusConflict},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteServiceError(w, tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestWritePage(t *testing.T) {
	w := httptest.NewRecorder()
	page := core.Page[string]{
		Rows:        []string{"a", "b"},
		TotalCount:  12,
		CurrentPage: 2,
		TotalPages:  6,
	}

	WritePage(w, http.StatusOK, page)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		DataArray   []string `json:"dataArray"`
		CurrentPage int      `json:"currentPage"`
		TotalPages  int      `json:"totalPages"`
		TotalCount  int      `json:"totalCount"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, body.DataArray)
	assert.Equal(t, 2, body.CurrentPage)
	assert.Equal(t, 6, body.TotalPages)
	assert.Equal(t, 12, body.TotalCount)
}

func TestWritePage_EmptyRows(t *testing.T) {
	w := httptest.NewRecorder()
	page := core.Page[string]{CurrentPage: 1, TotalPages: 0, TotalCount: 0}

	WritePage(w, http.StatusOK, page)

	// nil rows must serialize as an empty array, not null.
	assert.Contains(t, w.Body.String(), `"dataArray":[]`)
}
