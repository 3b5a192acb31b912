package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CIA-PoPS/HACKATHON-24-25/srvcerror"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriteSuccessJson(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccessJson(w, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp JsonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Empty(t, resp.ErrCode)
}

func TestHandleErrorWithServiceError(t *testing.T) {
	w := httptest.NewRecorder()
	err := srvcerror.New("teapot", "i am a teapot").
		SetHttpStatusCode(http.StatusTeapot)
	HandleError(discardLogger(), w, err)

	assert.Equal(t, http.StatusTeapot, w.Code)

	var resp JsonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "teapot", resp.ErrCode)
	assert.Equal(t, "i am a teapot", resp.ErrMsg)
}

func TestHandleErrorWithPlainError(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(discardLogger(), w, errors.New("pg connection lost"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp JsonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.NotContains(t, resp.ErrMsg, "pg connection lost",
		"internal details must not leak to the client")
}
