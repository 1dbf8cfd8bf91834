package handlertools

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlens/reviewlens/pkg/models"
)

func TestEncodeJSON(t *testing.T) {
	recorder := httptest.NewRecorder()
	err := EncodeJSON(recorder, map[string]string{"answer": "fine"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"answer":"fine"}`, recorder.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest(
		"POST",
		"/",
		bytes.NewBufferString(`{"asin":"B07LFV749P","question":"How is it?"}`),
	)
	var payload struct {
		ASIN     string `json:"asin"`
		Question string `json:"question"`
	}
	require.NoError(t, DecodeJSON(req, &payload))
	assert.Equal(t, "B07LFV749P", payload.ASIN)
	assert.Equal(t, "How is it?", payload.Question)
}

func TestRenderError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		status     int
		wantStatus int
	}{
		{
			name:       "passes through default status",
			err:        assert.AnError,
			status:     http.StatusInternalServerError,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "bad request error upgrades status",
			err:        models.ErrBadRequest,
			status:     http.StatusInternalServerError,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found error upgrades status",
			err:        models.NewNotFoundError("session abc"),
			status:     http.StatusInternalServerError,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "no review data maps to not found",
			err:        models.NewNoReviewDataError("B07LFV749P"),
			status:     http.StatusInternalServerError,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			RenderError(recorder, tc.err, tc.status)
			assert.Equal(t, tc.wantStatus, recorder.Code)
		})
	}
}
