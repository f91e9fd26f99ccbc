package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/job-finder/internal/pipeline"
	"github.com/jonathan/job-finder/internal/types"
)

// maxUploadSize bounds the multipart form, résumé file included.
const maxUploadSize = 32 << 20

// runPipelineRequest is the validated form of a POST /api/run-pipeline body.
type runPipelineRequest struct {
	JobTitle string `validate:"required"`
	Location string
	NumJobs  int `validate:"min=1,max=50"`
}

// handleHealth returns server health plus the cached match count.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	count := 0
	if snapshot, ok := s.cache.Latest(); ok {
		count = len(snapshot.Matches)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"matches_count": count,
	})
}

// handleJobMatches returns the latest cached results and their search config.
func (s *Server) handleJobMatches(w http.ResponseWriter, _ *http.Request) {
	snapshot, ok := s.cache.Latest()
	if !ok {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"matches": []types.MatchResult{},
			"config":  pipeline.SearchConfig{},
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matches": snapshot.Matches,
		"config":  snapshot.Config,
	})
}

// handleRunPipeline runs the pipeline with parameters from a multipart form
// and an optional résumé upload, then refreshes the results cache.
func (s *Server) handleRunPipeline(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := runPipelineRequest{
		JobTitle: r.FormValue("job_title"),
		Location: r.FormValue("location"),
		NumJobs:  pipeline.DefaultNumJobs,
	}
	if raw := r.FormValue("num_jobs"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "num_jobs must be a number")
			return
		}
		req.NumJobs = n
	}
	if err := s.validate.Struct(req); err != nil {
		if req.JobTitle == "" {
			s.errorResponse(w, http.StatusBadRequest, "job_title is required")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "num_jobs must be between 1 and 50")
		return
	}

	resumePath, err := s.resolveResume(r)
	if err != nil {
		s.logger.Error("saving resume upload", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "could not store uploaded resume")
		return
	}

	result, err := s.pipeline.Run(r.Context(), pipeline.Options{
		ResumePath: resumePath,
		JobTitle:   req.JobTitle,
		Location:   req.Location,
		NumJobs:    req.NumJobs,
	})
	if err != nil {
		s.logger.Error("pipeline run failed", zap.Error(err))
		s.jsonResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   err.Error(),
			"message": "Failed to run job search",
		})
		return
	}

	config := pipeline.SearchConfig{
		Role:       req.JobTitle,
		Location:   req.Location,
		CVAnalyzed: true,
		NumJobs:    len(result.Matches),
	}
	s.cache.Store(result.RunID, result.Matches, config)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matches": result.Matches,
		"config":  config,
		"message": fmt.Sprintf("Found %d job matches", len(result.Matches)),
	})
}

// resolveResume saves an uploaded cv_file under the uploads dir, or falls
// back to the configured default résumé.
func (s *Server) resolveResume(r *http.Request) (string, error) {
	file, header, err := r.FormFile("cv_file")
	if err != nil {
		if err == http.ErrMissingFile {
			return s.defaultResume, nil
		}
		return "", err
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		return s.defaultResume, nil
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	// Base strips any path components a hostile client might send.
	name := "uploaded_" + filepath.Base(header.Filename)
	path := filepath.Join(s.uploadDir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, file); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}
	return path, nil
}
