package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// handleAnalyzeFile accepts a multipart upload ("file" field, PDF or plain
// text) and returns the full analysis report. An optional "job_title" form
// value adds a job comparison.
func (s *Server) handleAnalyzeFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(extraction.MaxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing 'file' field")
		return
	}
	defer file.Close()

	res := extraction.Extract(header.Filename, header.Size, file)
	if !res.Success {
		writeError(w, http.StatusUnprocessableEntity, res.Error)
		return
	}

	report, err := s.pipeline.RunExtraction(res, r.FormValue("job_title"))
	if err != nil {
		s.analysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// handleAnalyzeText accepts raw resume text as JSON and returns the full
// analysis report.
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.pipeline.RunText(req.Text, req.JobTitle)
	if err != nil {
		s.analysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// handleCompare compares resume text against a job title's required keywords
// without running the full report.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req types.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	comparison, err := s.pipeline.Compare(req.Text, req.JobTitle)
	if err != nil {
		s.analysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comparison)
}

// handleListJobs lists the job titles available for comparison.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	titles := s.pipeline.Dictionary().JobTitles()
	writeJSON(w, http.StatusOK, map[string]any{
		"job_titles": titles,
		"count":      len(titles),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// analysisError maps pipeline failures to response codes: empty or
// unanalyzable input is the client's problem, anything else is ours.
func (s *Server) analysisError(w http.ResponseWriter, err error) {
	if errors.Is(err, analysis.ErrEmptyInput) {
		writeError(w, http.StatusUnprocessableEntity, analysis.ErrEmptyInput.Error())
		return
	}
	s.log.Error("analysis failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "analysis failed")
}
