package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wortwahl/wortwahl-api/internal/api"
	"github.com/wortwahl/wortwahl-api/internal/domain"
	"github.com/wortwahl/wortwahl-api/internal/service/drill"
)

func TestGetStats_Success(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{report: &drill.StatsReport{
		Modes: map[domain.Mode]drill.ModeReport{
			domain.ModeGender: {TotalAttempted: 4, TotalCorrect: 3, Accuracy: 75},
		},
		Sessions: []domain.SessionRecord{
			{Mode: domain.ModeGender, Total: 10, Correct: 8, Date: "2024-03-15T10:00:00Z"},
		},
		Questions: domain.QuestionStatsMap{
			"gender:0": {Attempts: 4, Correct: 3, LastSeen: "2024-03-15T10:00:00Z"},
		},
	}}
	handler := api.NewStatsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	recorder := httptest.NewRecorder()
	handler.GetStats(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var report drill.StatsReport
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &report))
	assert.Equal(t, 75, report.Modes[domain.ModeGender].Accuracy)
	require.Len(t, report.Sessions, 1)
	assert.Equal(t, 10, report.Sessions[0].Total)
	assert.Equal(t, 4, report.Questions["gender:0"].Attempts)
}

func TestGetStats_ServiceError(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{err: errors.New("storage offline")}
	handler := api.NewStatsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	recorder := httptest.NewRecorder()
	handler.GetStats(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Failed to load statistics")
	assert.NotContains(t, recorder.Body.String(), "storage offline")
}

func TestResetStats_Success(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{}
	handler := api.NewStatsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/stats", nil)
	recorder := httptest.NewRecorder()
	handler.ResetStats(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, 1, svc.resets)
}

func TestResetStats_ServiceError(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{err: errors.New("storage offline")}
	handler := api.NewStatsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/stats", nil)
	recorder := httptest.NewRecorder()
	handler.ResetStats(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, 0, svc.resets)
}

func TestNewStatsHandler_NilService(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		api.NewStatsHandler(nil, testLogger())
	})
}
