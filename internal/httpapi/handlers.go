package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/webstatus/internal/batch"
	"github.com/hamed0406/webstatus/internal/extract"
	"github.com/hamed0406/webstatus/internal/probe"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Website Status Checker API",
		"version": apiVersion,
		"endpoints": map[string]string{
			"POST /api/check-single": "Check single domain status",
			"POST /api/check-bulk":   "Check multiple domains status",
			"POST /api/upload-file":  "Upload and process CSV/Excel file",
			"GET /api/health":        "Health check",
		},
		"documentation": map[string]any{
			"check-single": map[string]any{
				"method":      "POST",
				"body":        map[string]string{"domain": "example.com"},
				"description": "Check status of a single domain",
			},
			"check-bulk": map[string]any{
				"method":      "POST",
				"body":        map[string][]string{"domains": {"example.com", "google.com"}},
				"description": "Check status of multiple domains",
			},
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(probe.TimeFormat),
		"version":   apiVersion,
	})
}

func (s *Server) handleCheckSingle(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Domain *string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Domain == nil {
		writeError(w, http.StatusBadRequest, "Domain is required")
		return
	}
	domain := strings.TrimSpace(*p.Domain)
	if domain == "" {
		writeError(w, http.StatusBadRequest, "Domain cannot be empty")
		return
	}

	res := s.Checker.Check(r.Context(), domain)
	s.Logger.Info("single_check",
		zap.String("domain", domain),
		zap.String("status", res.Status.String()),
	)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleCheckBulk(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Domains json.RawMessage `json:"domains"`
	}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || len(p.Domains) == 0 {
		writeError(w, http.StatusBadRequest, "Domains list is required")
		return
	}

	var domains []string
	if string(p.Domains) == "null" || json.Unmarshal(p.Domains, &domains) != nil {
		writeError(w, http.StatusBadRequest, "Domains must be a list")
		return
	}

	rep, err := s.Runner.Run(r.Context(), domains)
	if err != nil {
		switch {
		case errors.Is(err, batch.ErrEmptyBatch):
			writeError(w, http.StatusBadRequest, "At least one domain is required")
		case errors.Is(err, batch.ErrBatchTooLarge):
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("Maximum %d domains allowed", s.Runner.MaxBatch))
		default:
			s.Logger.Error("bulk_check_failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Bulk check failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No file selected")
		return
	}

	raw, err := extract.FromUpload(header.Filename, file)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			writeError(w, http.StatusBadRequest,
				"Unsupported file format. Please use CSV or Excel files.")
			return
		}
		s.Logger.Warn("upload_parse_error",
			zap.String("filename", header.Filename),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "Error processing file: "+err.Error())
		return
	}

	cleaned := extract.Clean(raw)
	if len(cleaned) == 0 {
		writeError(w, http.StatusBadRequest, "No valid domains found in the file")
		return
	}

	capped := cleaned
	if len(capped) > s.Runner.MaxBatch {
		capped = capped[:s.Runner.MaxBatch]
	}
	s.Logger.Info("file_extracted",
		zap.String("filename", header.Filename),
		zap.Int("total_found", len(cleaned)),
		zap.Int("returned", len(capped)),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"domains":     capped,
		"total_found": len(cleaned),
	})
}
