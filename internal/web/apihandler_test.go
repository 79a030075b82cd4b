package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehrcode/guestbook/internal/guestbook"
)

func TestAPICreate(t *testing.T) {
	svc, repo := newStubService()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries",
		strings.NewReader(`{"name": "Test", "email": "test@example.org", "message": "Good"}`))
	rec := httptest.NewRecorder()
	NewAPIHandler(svc).Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var entry guestbook.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.EqualValues(t, 1, entry.ID)
	assert.Equal(t, "Test", entry.Name)
	require.Len(t, repo.added, 1)
}

func TestAPICreateMissingFields(t *testing.T) {
	svc, repo := newStubService()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries",
		strings.NewReader(`{"message": "Bad Request"}`))
	rec := httptest.NewRecorder()
	NewAPIHandler(svc).Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing field: name")
	assert.Empty(t, repo.added)
}

func TestAPICreateMalformedBody(t *testing.T) {
	svc, _ := newStubService()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader(`{"name": `))
	rec := httptest.NewRecorder()
	NewAPIHandler(svc).Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIList(t *testing.T) {
	svc, repo := newStubService()
	for _, message := range []string{"A", "B", "C"} {
		_, err := repo.AddEntry(context.Background(), "Alice", "alice@example.org", message)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/entries", nil)
	rec := httptest.NewRecorder()
	NewAPIHandler(svc).List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var view guestbook.ListView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, guestbook.DefaultPageSize, view.PageSize)
	require.Len(t, view.Entries, 3)
	assert.Equal(t, "C", view.Entries[0].Message)
}

func TestAPIListInvalidPage(t *testing.T) {
	svc, _ := newStubService()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/entries?page=0", nil)
	rec := httptest.NewRecorder()
	NewAPIHandler(svc).List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid page argument")
}
