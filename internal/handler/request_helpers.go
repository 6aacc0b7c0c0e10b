package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// Parameters:
//   - r: The HTTP request containing the JSON body
//   - w: The HTTP response writer to send error responses
//   - req: Pointer to the request struct to decode into (must implement validation tags)
//   - actionName: Human-readable name for the action (e.g., "Draw", "Pick cell")
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req DrawRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Draw"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter from the request.
// If the parameter is missing or empty, it writes an error response and returns false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back to defaultValue.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// playerIDFromURL parses the {playerID} route parameter.
func playerIDFromURL(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return parsePlayerID(w, r, chi.URLParam(r, "playerID"))
}

// playerIDFromQuery parses an optional player_id query parameter. An absent
// parameter yields uuid.Nil.
func playerIDFromQuery(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.URL.Query().Get("player_id")
	if raw == "" {
		return uuid.Nil, true
	}
	return parsePlayerID(w, r, raw)
}

func parsePlayerID(w http.ResponseWriter, r *http.Request, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid player id", "player_id", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlayerID)
		return uuid.Nil, false
	}
	return id, true
}

// limitFromQuery parses an optional positive limit query parameter; zero means unset.
func limitFromQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return n, true
}

// LogRequestFields logs common request fields at debug level.
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}

// handleAction decodes and validates REQ, runs action and writes its result with status.
func handleAction[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	status int,
	action func(context.Context, REQ) (RES, error),
) {
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	res, err := action(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, status, res)
}
