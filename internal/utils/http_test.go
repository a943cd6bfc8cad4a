package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var m Message
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
	return m.Message
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{NewError(NotAcceptable, "no"), http.StatusNotAcceptable, "no"},
		{NewError(UnsupportedMediaType, "no"), http.StatusUnsupportedMediaType, "no"},
		{NewError(UnprocessableEntity, "bad"), http.StatusUnprocessableEntity, "bad"},
		{NewError(NotFound, "Could not find post with id %d", 3), http.StatusNotFound, "Could not find post with id 3"},
		{NewError(MalformedInput, "bad"), http.StatusBadRequest, "bad"},
		{NewError(MethodNotAllowed, "no"), http.StatusMethodNotAllowed, "no"},
		{errors.New("dial tcp: secret-host:5432 refused"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		WriteError(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil), tt.err)
		assert.Equal(t, tt.wantStatus, rec.Code)
		assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
	}
}

func TestReadBody(t *testing.T) {
	rec := httptest.NewRecorder()
	data, err := ReadBody(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"a": 1}`)))
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(data))

	big := strings.NewReader(strings.Repeat("x", MaxBodyBytes+1))
	_, err = ReadBody(rec, httptest.NewRequest(http.MethodPost, "/api/posts", big))
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, MalformedInput, apiErr.Kind)
	assert.Equal(t, "Request body too large", apiErr.Message)
}
