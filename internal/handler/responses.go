package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// maxPooledBuffer is the largest buffer returned to the pool.
const maxPooledBuffer = 64 << 10

var responseBuffers = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

func releaseBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}

// respondJSON encodes payload fully before writing the status; an encoding
// failure is reported as a 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := responseBuffers.Get().(*bytes.Buffer)
	defer releaseBuffer(buf)
	buf.Reset()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed operation and writes the mapped response.
// Client errors log at warn so only server faults page anyone.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrPackNotFound):
		return http.StatusNotFound, ErrMsgPackNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgNotEnoughPointsError
	case errors.Is(err, domain.ErrAlreadyClaimedToday):
		return http.StatusConflict, ErrMsgAlreadyClaimedTodayError
	case errors.Is(err, domain.ErrFreePackNotBatchable):
		return http.StatusBadRequest, ErrMsgFreePackBatchError
	case errors.Is(err, domain.ErrNotEligible):
		return http.StatusForbidden, ErrMsgNotEligibleError
	case errors.Is(err, domain.ErrInvalidCell):
		return http.StatusBadRequest, ErrMsgInvalidCellError
	case errors.Is(err, domain.ErrAlreadyRevealed):
		return http.StatusConflict, ErrMsgAlreadyRevealedError
	case errors.Is(err, domain.ErrNoActiveRaid):
		return http.StatusNotFound, ErrMsgNoActiveRaidError
	case errors.Is(err, domain.ErrRaidAlreadyActive):
		return http.StatusConflict, ErrMsgRaidAlreadyActiveError
	case errors.Is(err, domain.ErrAttemptsExhausted):
		return http.StatusTooManyRequests, ErrMsgAttemptsExhaustedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidConfiguration), errors.Is(err, domain.ErrNoEligibleItems):
		return http.StatusServiceUnavailable, ErrMsgFeatureUnavailableError
	case errors.Is(err, domain.ErrContention):
		return http.StatusServiceUnavailable, ErrMsgBusyError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
