package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Kieseatic/Ats/internal/ingestion"
	"github.com/Kieseatic/Ats/internal/parsing"
	"github.com/Kieseatic/Ats/internal/types"
)

// handleUploadJobDescription ingests one or more job descriptions. The body
// may be a JSON object/array of job records, a plain-text or HTML posting, or
// a multipart upload of either. Parsed jobs are appended to the job store.
func (s *Server) handleUploadJobDescription(w http.ResponseWriter, r *http.Request) {
	data, filename, err := s.readUpload(r, "job_description")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(data) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "job description is required")
		return
	}

	var jobs []types.JobRecord
	trimmed := strings.TrimSpace(string(data))
	isJSON := strings.HasSuffix(strings.ToLower(filename), ".json") ||
		strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
	if isJSON {
		jobs, err = ingestion.ParseJobsJSON(data)
	} else {
		var job types.JobRecord
		job, err = ingestion.ParseJobText(string(data))
		jobs = []types.JobRecord{job}
	}
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.jobs.Add(r.Context(), jobs); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store jobs")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("%d job(s) uploaded successfully", len(jobs)),
		"jobs":    jobs,
	})
}

// handleUploadResume accepts a resume file, extracts its text, runs the full
// parse cascade, and scores the resume against every stored job.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	text, err := s.resumeTextFromUpload(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	parsed, err := s.parser.Parse(r.Context(), text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobs, err := s.jobs.List(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load jobs")
		return
	}

	matches := []map[string]any{}
	if len(jobs) > 0 {
		results, err := s.matcher.MatchAll(r.Context(), jobs, text)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		for i := range results {
			matches = append(matches, matchResponse(&results[i]))
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume_text": text,
		"parsed":      parsed,
		"matches":     matches,
	})
}

// handleExtractResumeText accepts a resume file and returns its plain text
// without parsing.
func (s *Server) handleExtractResumeText(w http.ResponseWriter, r *http.Request) {
	text, err := s.resumeTextFromUpload(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"text":   text,
		"length": len(text),
	})
}

type analyzeJobRequest struct {
	Description string `json:"description" validate:"required"`
}

// handleAnalyzeJob parses a plain-text job description into a structured job
// record without storing it.
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req analyzeJobRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := ingestion.ParseJobText(req.Description)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"job": job})
}

type matchRequest struct {
	ResumeText string           `json:"resume_text" validate:"required"`
	JobID      string           `json:"job_id,omitempty"`
	Job        *types.JobRecord `json:"job,omitempty"`
}

// handleMatchResumeJob scores a resume against one job (by ID or inline) or,
// when neither is given, against every stored job.
func (s *Server) handleMatchResumeJob(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	switch {
	case req.Job != nil:
		s.matchOne(w, r, req.Job, req.ResumeText)

	case req.JobID != "":
		job, err := s.jobs.Get(r.Context(), req.JobID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to load job")
			return
		}
		if job == nil {
			notFound := &ErrJobNotFound{JobID: req.JobID}
			s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
			return
		}
		s.matchOne(w, r, job, req.ResumeText)

	default:
		jobs, err := s.jobs.List(r.Context())
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to load jobs")
			return
		}
		if len(jobs) == 0 {
			s.errorResponse(w, http.StatusBadRequest, "no jobs uploaded")
			return
		}

		results, err := s.matcher.MatchAll(r.Context(), jobs, req.ResumeText)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}

		matches := make([]map[string]any, len(results))
		for i := range results {
			matches[i] = matchResponse(&results[i])
		}
		s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
	}
}

func (s *Server) matchOne(w http.ResponseWriter, r *http.Request, job *types.JobRecord, resumeText string) {
	result, err := s.matcher.Match(r.Context(), job, resumeText)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, matchResponse(result))
}

// matchResponse shapes a match result for the API: the overall percentage, a
// per-factor breakdown, the recommendation tier, and the factor explanations.
func matchResponse(result *types.MatchResult) map[string]any {
	breakdown := map[string]float64{}
	if d, ok := result.Explanation[types.FactorSkills]; ok {
		breakdown["skills_score"] = d.Score
	}
	if d, ok := result.Explanation[types.FactorExperience]; ok {
		breakdown["experience_score"] = d.Score
	}
	if d, ok := result.Explanation[types.FactorQualification]; ok {
		breakdown["education_score"] = d.Score
	}
	if d, ok := result.Explanation[types.FactorContextual]; ok {
		breakdown["contextual_score"] = d.Score
	}

	return map[string]any{
		"job_id":           result.JobID,
		"match_percentage": result.Score,
		"breakdown":        breakdown,
		"recommendation":   types.Recommendation(result.Score),
		"explanation":      result.Explanation,
	}
}

type parseCareerRequest struct {
	Text string `json:"text" validate:"required"`
}

// handleParseCareer runs only the structured section parser, for callers that
// want deterministic output or nothing.
func (s *Server) handleParseCareer(w http.ResponseWriter, r *http.Request) {
	var req parseCareerRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	text := parsing.Normalize(req.Text)
	sections := parsing.ExtractSections(text)
	education, experience := parsing.ParseStructured(sections)

	found := make([]string, 0, len(sections))
	for name := range sections {
		found = append(found, name)
	}
	sort.Strings(found)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"education":       parsing.CleanEducation(education),
		"work_experience": parsing.CleanExperience(experience),
		"sections_found":  found,
	})
}

// handleParseCareerRobust runs the full cascade and always returns a result
// with parsing metadata.
func (s *Server) handleParseCareerRobust(w http.ResponseWriter, r *http.Request) {
	var req parseCareerRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	parsed, err := s.parser.Parse(r.Context(), req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, parsed)
}

// decodeAndValidate decodes a JSON body into dst and validates it.
func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	body := io.LimitReader(r.Body, s.cfg.MaxUploadBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := s.validator.Struct(dst); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &ErrValidation{Field: errs[0].Field(), Message: "failed " + errs[0].Tag() + " validation"}
		}
		return err
	}
	return nil
}

// resumeTextFromUpload reads a resume upload and extracts its plain text.
func (s *Server) resumeTextFromUpload(r *http.Request) (string, error) {
	data, filename, err := s.readUpload(r, "resume")
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("resume file is required")
	}

	text := ingestion.ExtractText(filename, data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("could not extract text from %s", filename)
	}
	return text, nil
}

// readUpload returns the body of a multipart file field (trying the given
// field name, then "file"), or the raw request body for non-multipart
// requests.
func (s *Server) readUpload(r *http.Request, field string) ([]byte, string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
			return nil, "", fmt.Errorf("invalid multipart form: %w", err)
		}
		file, header, err := r.FormFile(field)
		if err != nil {
			file, header, err = r.FormFile("file")
		}
		if err != nil {
			return nil, "", fmt.Errorf("missing file field %q", field)
		}
		defer file.Close()

		data, err := ingestion.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes))
		if err != nil {
			return nil, "", fmt.Errorf("failed to read upload: %w", err)
		}
		return data, header.Filename, nil
	}

	data, err := ingestion.ReadAll(io.LimitReader(r.Body, s.cfg.MaxUploadBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read request body: %w", err)
	}
	return data, "", nil
}
