package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wortwahl/wortwahl-api/internal/api"
	"github.com/wortwahl/wortwahl-api/internal/service/drill"
	"github.com/wortwahl/wortwahl-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown mode", drill.ErrUnknownMode, http.StatusNotFound},
		{
			"wrapped unknown mode",
			fmt.Errorf("%w: kasusjagd", drill.ErrUnknownMode),
			http.StatusNotFound,
		},
		{"invalid submission", drill.ErrInvalidSubmission, http.StatusBadRequest},
		{"invalid session", drill.ErrInvalidSession, http.StatusBadRequest},
		{"store key not found", store.ErrKeyNotFound, http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unknown drill mode", api.GetSafeErrorMessage(drill.ErrUnknownMode))
	assert.Equal(t, "Invalid answer submission",
		api.GetSafeErrorMessage(fmt.Errorf("%w: bad id", drill.ErrInvalidSubmission)))
	assert.Equal(t, "Invalid session result", api.GetSafeErrorMessage(drill.ErrInvalidSession))
	assert.Equal(t, "An unexpected error occurred",
		api.GetSafeErrorMessage(errors.New("pq: relation does not exist")))
	assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	t.Run("required field", func(t *testing.T) {
		t.Parallel()

		err := validator.New().Struct(&api.DrillRequest{})
		require.Error(t, err)

		msg := api.SanitizeValidationError(err)
		assert.Equal(t, "Invalid Mode: required field", msg)
	})

	t.Run("count too large", func(t *testing.T) {
		t.Parallel()

		err := validator.New().Struct(&api.DrillRequest{Mode: "gender", Count: 1000})
		require.Error(t, err)

		msg := api.SanitizeValidationError(err)
		assert.Equal(t, "Invalid Count: too large", msg)
	})

	t.Run("non-validation error falls back", func(t *testing.T) {
		t.Parallel()

		msg := api.SanitizeValidationError(errors.New("something else entirely"))
		assert.Equal(t, "Validation error", msg)
	})
}
