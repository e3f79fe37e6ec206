package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wortwahl/wortwahl-api/internal/api"
	"github.com/wortwahl/wortwahl-api/internal/domain"
	"github.com/wortwahl/wortwahl-api/internal/service/drill"
)

// mockDrillService implements drill.Service for handler tests.
type mockDrillService struct {
	questions []drill.Question
	report    *drill.StatsReport
	err       error

	startedMode  domain.Mode
	startedCount int
	submissions  []drill.AnswerSubmission
	sessions     []drill.SessionSummary
	resets       int
}

func (m *mockDrillService) StartDrill(
	_ context.Context,
	mode domain.Mode,
	count int,
) ([]drill.Question, error) {
	m.startedMode = mode
	m.startedCount = count
	if m.err != nil {
		return nil, m.err
	}
	return m.questions, nil
}

func (m *mockDrillService) SubmitAnswer(_ context.Context, submission drill.AnswerSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.submissions = append(m.submissions, submission)
	return nil
}

func (m *mockDrillService) CompleteSession(_ context.Context, summary drill.SessionSummary) error {
	if m.err != nil {
		return m.err
	}
	m.sessions = append(m.sessions, summary)
	return nil
}

func (m *mockDrillService) Stats(context.Context) (*drill.StatsReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockDrillService) Reset(context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.resets++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDrillHandler(svc drill.Service) *api.DrillHandler {
	return api.NewDrillHandler(svc, 10, testLogger())
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestStartDrill_Success(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{questions: []drill.Question{
		{
			ID: "gender:0",
			Exercise: domain.Exercise{
				Mode:    domain.ModeGender,
				Word:    "Mann",
				Answer:  "der",
				Options: []string{"die", "der", "das"},
			},
		},
	}}
	handler := newDrillHandler(svc)

	recorder := postJSON(t, handler.StartDrill, `{"mode":"gender","count":5}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, domain.ModeGender, svc.startedMode)
	assert.Equal(t, 5, svc.startedCount)

	var response api.DrillResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "gender", response.Mode)
	require.Len(t, response.Questions, 1)
	assert.Equal(t, "gender:0", response.Questions[0].ID)
	assert.Equal(t, "der", response.Questions[0].Answer)
	assert.Equal(t, []string{"die", "der", "das"}, response.Questions[0].Options)
}

func TestStartDrill_ZeroCountUsesDefault(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{}
	handler := newDrillHandler(svc)

	recorder := postJSON(t, handler.StartDrill, `{"mode":"gender"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 10, svc.startedCount)
}

func TestStartDrill_UnknownModeMapsTo404(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{err: drill.ErrUnknownMode}
	handler := newDrillHandler(svc)

	recorder := postJSON(t, handler.StartDrill, `{"mode":"kasusjagd"}`)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Unknown drill mode")
}

func TestStartDrill_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{"mode":`},
		{"missing mode", `{"count":5}`},
		{"count too large", `{"mode":"gender","count":999}`},
		{"unknown field", `{"mode":"gender","flavor":"spicy"}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := newDrillHandler(&mockDrillService{})

			recorder := postJSON(t, handler.StartDrill, tc.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestSubmitAnswer_Success(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{}
	handler := newDrillHandler(svc)

	recorder := postJSON(t, handler.SubmitAnswer,
		`{"question_id":"gender:3","mode":"gender","correct":true}`)

	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.Len(t, svc.submissions, 1)
	assert.Equal(t, "gender:3", svc.submissions[0].QuestionID)
	assert.Equal(t, domain.ModeGender, svc.submissions[0].Mode)
	assert.True(t, svc.submissions[0].Correct)
}

func TestSubmitAnswer_CorrectFalseIsValid(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{}
	handler := newDrillHandler(svc)

	recorder := postJSON(t, handler.SubmitAnswer,
		`{"question_id":"gender:3","mode":"gender","correct":false}`)

	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.Len(t, svc.submissions, 1)
	assert.False(t, svc.submissions[0].Correct)
}

func TestSubmitAnswer_MissingCorrectField(t *testing.T) {
	t.Parallel()

	handler := newDrillHandler(&mockDrillService{})

	recorder := postJSON(t, handler.SubmitAnswer,
		`{"question_id":"gender:3","mode":"gender"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSubmitAnswer_InvalidSubmissionMapsTo400(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{err: drill.ErrInvalidSubmission}
	handler := newDrillHandler(svc)

	recorder := postJSON(t, handler.SubmitAnswer,
		`{"question_id":"plurals:0","mode":"gender","correct":true}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid answer submission")
}

func TestCompleteSession_Success(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{}
	handler := newDrillHandler(svc)

	recorder := postJSON(t, handler.CompleteSession,
		`{"mode":"plurals","total":10,"correct":7}`)

	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.Len(t, svc.sessions, 1)
	assert.Equal(t, domain.ModePlurals, svc.sessions[0].Mode)
	assert.Equal(t, 10, svc.sessions[0].Total)
	assert.Equal(t, 7, svc.sessions[0].Correct)
}

func TestCompleteSession_InvalidSessionMapsTo400(t *testing.T) {
	t.Parallel()

	svc := &mockDrillService{err: drill.ErrInvalidSession}
	handler := newDrillHandler(svc)

	recorder := postJSON(t, handler.CompleteSession,
		`{"mode":"plurals","total":3,"correct":5}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
