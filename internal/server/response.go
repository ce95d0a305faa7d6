package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/limaJavier/interview-scheduling/internal/request"
	"github.com/limaJavier/interview-scheduling/internal/roster"
	"github.com/limaJavier/interview-scheduling/pkg/model"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the envelope of every API answer
type Response struct {
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
}

func respondOK(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusOK, reqID, data, nil)
}

func respondCreated(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusCreated, reqID, data, nil)
}

func respondError(w http.ResponseWriter, reqID string, status int, apiErr *APIError) {
	respondJSON(w, status, reqID, nil, apiErr)
}

func respondJSON(w http.ResponseWriter, status int, reqID string, data any, apiErr *APIError) {
	resp := Response{
		RequestID: reqID,
		Timestamp: time.Now().UTC(),
		Data:      data,
		Error:     apiErr,
	}
	if apiErr != nil {
		resp.Status = "error"
	} else {
		resp.Status = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// respondFailure maps domain errors to HTTP statuses
func respondFailure(w http.ResponseWriter, reqID string, err error) {
	var (
		validationErr *request.ValidationError
		configErr     *model.ConfigError
		formatErr     *model.FormatError
		integrityErr  *model.DataIntegrityError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &configErr), errors.As(err, &formatErr):
		respondError(w, reqID, http.StatusBadRequest, &APIError{Code: "validation_error", Message: err.Error()})
	case errors.Is(err, roster.ErrInvalidProfessor), errors.Is(err, roster.ErrInvalidTeam):
		respondError(w, reqID, http.StatusBadRequest, &APIError{Code: "validation_error", Message: err.Error()})
	case errors.As(err, &integrityErr):
		respondError(w, reqID, http.StatusUnprocessableEntity, &APIError{Code: "data_integrity_error", Message: err.Error()})
	case errors.Is(err, roster.ErrNotFound):
		respondError(w, reqID, http.StatusNotFound, &APIError{Code: "not_found", Message: err.Error()})
	case errors.Is(err, roster.ErrDuplicateProfessor):
		respondError(w, reqID, http.StatusConflict, &APIError{Code: "conflict", Message: err.Error()})
	default:
		respondError(w, reqID, http.StatusInternalServerError, &APIError{Code: "internal_error", Message: err.Error()})
	}
}
