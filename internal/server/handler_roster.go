package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/limaJavier/interview-scheduling/pkg/model"
)

type professorBody struct {
	Name           string `json:"name"`
	AvailableStart string `json:"availableStart"`
	AvailableEnd   string `json:"availableEnd"`
}

type teamBody struct {
	Id         uint64   `json:"id"`
	Professors []string `json:"professors"`
}

func professorView(professor model.Professor) professorBody {
	return professorBody{
		Name:           professor.Name,
		AvailableStart: model.FormatMinutes(professor.AvailableStart),
		AvailableEnd:   model.FormatMinutes(professor.AvailableEnd),
	}
}

func (s *Server) handleListProfessors(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	professors, err := s.repository.Professors(r.Context())
	if err != nil {
		s.logger.Error("list professors", zap.Error(err), zap.String("request_id", reqID))
		respondFailure(w, reqID, err)
		return
	}
	respondOK(w, reqID, lo.Map(professors, func(professor model.Professor, _ int) professorBody { return professorView(professor) }))
}

func (s *Server) handleCreateProfessor(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var body professorBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &APIError{Code: "invalid_body", Message: err.Error()})
		return
	}

	// Same rules as roster files
	input, err := model.ProcessRawInput(model.RawRosterInput{
		Professors: []model.RawProfessor{{Name: body.Name, AvailableStart: body.AvailableStart, AvailableEnd: body.AvailableEnd}},
	})
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, &APIError{Code: "validation_error", Message: err.Error()})
		return
	}

	professor := input.Professors[0]
	if err := s.repository.AddProfessor(r.Context(), professor); err != nil {
		respondFailure(w, reqID, err)
		return
	}
	respondCreated(w, reqID, professorView(professor))
}

func (s *Server) handleDeleteProfessor(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	if err := s.repository.RemoveProfessor(r.Context(), chi.URLParam(r, "name")); err != nil {
		respondFailure(w, reqID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	teams, err := s.repository.Teams(r.Context())
	if err != nil {
		s.logger.Error("list teams", zap.Error(err), zap.String("request_id", reqID))
		respondFailure(w, reqID, err)
		return
	}
	respondOK(w, reqID, lo.Map(teams, func(team model.Team, _ int) teamBody {
		return teamBody{Id: team.Id, Professors: team.Professors}
	}))
}

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var body teamBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &APIError{Code: "invalid_body", Message: err.Error()})
		return
	}

	team, err := s.repository.AddTeam(r.Context(), body.Professors)
	if err != nil {
		respondFailure(w, reqID, err)
		return
	}
	respondCreated(w, reqID, teamBody{Id: team.Id, Professors: team.Professors})
}

func (s *Server) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, &APIError{Code: "invalid_id", Message: "team id must be a positive integer"})
		return
	}
	if err := s.repository.RemoveTeam(r.Context(), id); err != nil {
		respondFailure(w, reqID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
