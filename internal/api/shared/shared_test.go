package shared_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wortwahl/wortwahl-api/internal/api/shared"
)

func TestSetAndGetTraceID(t *testing.T) {
	t.Parallel()

	ctx := shared.SetTraceID(context.Background())
	traceID := shared.GetTraceID(ctx)

	assert.NotEmpty(t, traceID)
	assert.Len(t, traceID, 36, "trace IDs are UUID strings")

	other := shared.GetTraceID(shared.SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}

func TestGetTraceID_Missing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, shared.GetTraceID(context.Background()))
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	shared.RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"ok": "ja"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":"ja"}`, recorder.Body.String())
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := shared.SetTraceID(req.Context())
	req = req.WithContext(ctx)
	recorder := httptest.NewRecorder()

	shared.RespondWithError(recorder, req, http.StatusNotFound, "Unknown drill mode")

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var response shared.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Unknown drill mode", response.Error)
	assert.Equal(t, shared.GetTraceID(ctx), response.TraceID)
}

func TestRespondWithErrorAndLog_HidesRawError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	shared.RespondWithErrorAndLog(recorder, req,
		http.StatusInternalServerError, "Failed to load statistics",
		errors.New("pq: connection refused host=db.internal port=5432"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Failed to load statistics")
	assert.NotContains(t, recorder.Body.String(), "db.internal")
}

type decodeTarget struct {
	Mode  string `json:"mode" validate:"required"`
	Count int    `json:"count" validate:"gte=0"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/",
			bytes.NewBufferString(`{"mode":"gender","count":5}`))

		var target decodeTarget
		require.NoError(t, shared.DecodeJSON(req, &target))
		assert.Equal(t, "gender", target.Mode)
		assert.Equal(t, 5, target.Count)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/",
			bytes.NewBufferString(`{"mode":"gender","extra":true}`))

		var target decodeTarget
		assert.Error(t, shared.DecodeJSON(req, &target))
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, shared.ValidateRequest(&decodeTarget{Mode: "gender"}))
	assert.Error(t, shared.ValidateRequest(&decodeTarget{}))
	assert.Error(t, shared.ValidateRequest(&decodeTarget{Mode: "gender", Count: -1}))
}
