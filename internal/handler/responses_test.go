package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{domain.ErrPlayerNotFound, http.StatusNotFound, ErrMsgPlayerNotFoundError},
		{domain.ErrPackNotFound, http.StatusNotFound, ErrMsgPackNotFoundError},
		{domain.ErrInsufficientFunds, http.StatusPaymentRequired, ErrMsgNotEnoughPointsError},
		{domain.ErrAlreadyClaimedToday, http.StatusConflict, ErrMsgAlreadyClaimedTodayError},
		{domain.ErrFreePackNotBatchable, http.StatusBadRequest, ErrMsgFreePackBatchError},
		{domain.ErrNotEligible, http.StatusForbidden, ErrMsgNotEligibleError},
		{domain.ErrInvalidCell, http.StatusBadRequest, ErrMsgInvalidCellError},
		{domain.ErrAlreadyRevealed, http.StatusConflict, ErrMsgAlreadyRevealedError},
		{domain.ErrNoActiveRaid, http.StatusNotFound, ErrMsgNoActiveRaidError},
		{domain.ErrRaidAlreadyActive, http.StatusConflict, ErrMsgRaidAlreadyActiveError},
		{domain.ErrAttemptsExhausted, http.StatusTooManyRequests, ErrMsgAttemptsExhaustedError},
		{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{domain.ErrInvalidConfiguration, http.StatusServiceUnavailable, ErrMsgFeatureUnavailableError},
		{domain.ErrNoEligibleItems, http.StatusServiceUnavailable, ErrMsgFeatureUnavailableError},
		{domain.ErrContention, http.StatusServiceUnavailable, ErrMsgBusyError},
		{errors.New("connection reset"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			status, msg := mapServiceErrorToUserMessage(wrapped)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestMapServiceErrorToUserMessage_HidesInternals(t *testing.T) {
	_, msg := mapServiceErrorToUserMessage(errors.New("pq: relation players does not exist"))
	assert.NotContains(t, msg, "pq")
}

func TestRespondJSON(t *testing.T) {
	t.Run("writes status and body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondJSON(rec, http.StatusCreated, SuccessResponse{Message: "drawn"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"drawn"}`, rec.Body.String())
	})

	t.Run("encoding failure is a server error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondJSON(rec, http.StatusOK, DataResponse{Data: make(chan int)})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgGenericServerError)
	})

	t.Run("large bodies are not pooled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		big := strings.Repeat("x", 2*maxPooledBuffer)
		respondJSON(rec, http.StatusOK, SuccessResponse{Message: big})
		assert.Equal(t, http.StatusOK, rec.Code)

		buf := responseBuffers.Get().(*bytes.Buffer)
		assert.LessOrEqual(t, buf.Cap(), maxPooledBuffer)
		responseBuffers.Put(buf)
	})
}
