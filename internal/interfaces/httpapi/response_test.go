package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/playfield/tournament-service/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"invalid input", usecase.ErrInvalidInput, http.StatusBadRequest, "invalidInput"},
		{"not found", usecase.ErrNotFound, http.StatusNotFound, "notFound"},
		{"conflict", usecase.ErrConflict, http.StatusConflict, "conflict"},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"unauthenticated", usecase.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"dependency unavailable", usecase.ErrDependencyUnavailable, http.StatusServiceUnavailable, "dependencyUnavailable"},
		{"unknown error", fmt.Errorf("disk on fire"), http.StatusInternalServerError, "internalError"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapError(tc.err)
			require.Equal(t, tc.wantStatus, mapped.HTTPStatus)
			require.Equal(t, tc.wantReason, mapped.Reason)
		})
	}
}

func TestMapError_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("%w: event=abc", usecase.ErrNotFound)
	require.Equal(t, http.StatusNotFound, mapError(err).HTTPStatus)
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(t.Context(), rec, fmt.Errorf("%w: sport Cricket already exists", usecase.ErrConflict))

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var envelope googleResponseEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, googleAPIVersion, envelope.APIVersion)
	require.Nil(t, envelope.Data)
	require.NotNil(t, envelope.Error)
	require.Equal(t, http.StatusConflict, envelope.Error.Code)
	require.Equal(t, "ALREADY_EXISTS", envelope.Error.Status)
	require.Len(t, envelope.Error.Errors, 1)
	require.Equal(t, errorDomain, envelope.Error.Errors[0].Domain)
}

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	writeSuccess(t.Context(), rec, http.StatusCreated, map[string]string{"id": "abc"})

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		APIVersion string            `json:"apiVersion"`
		Data       map[string]string `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, googleAPIVersion, envelope.APIVersion)
	require.Equal(t, "abc", envelope.Data["id"])
}

func TestWriteInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	writeInternalError(t.Context(), rec)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "panic")

	var envelope googleResponseEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	require.Equal(t, "internal server error", envelope.Error.Message)
}
