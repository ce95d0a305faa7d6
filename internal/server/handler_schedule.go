package server

import (
	"encoding/json"
	"net/http"

	"github.com/limaJavier/interview-scheduling/internal/report"
	"github.com/limaJavier/interview-scheduling/internal/request"
	"github.com/limaJavier/interview-scheduling/pkg/model"
)

// scheduleBody is a request plus an optional inline roster that replaces the stored one
type scheduleBody struct {
	request.ScheduleRequest
	Roster *model.RawRosterInput `json:"roster,omitempty"`
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var body scheduleBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &APIError{Code: "invalid_body", Message: err.Error()})
		return
	}

	var (
		rep report.Report
		err error
	)
	if body.Roster != nil {
		input, inputErr := model.ProcessRawInput(*body.Roster)
		if inputErr != nil {
			respondError(w, reqID, http.StatusBadRequest, &APIError{Code: "validation_error", Message: inputErr.Error()})
			return
		}
		rep, err = s.service.RunRoster(r.Context(), body.ScheduleRequest, input)
	} else {
		rep, err = s.service.Run(r.Context(), body.ScheduleRequest)
	}
	if err != nil {
		respondFailure(w, reqID, err)
		return
	}

	respondOK(w, reqID, rep)
}
