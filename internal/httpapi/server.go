package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/webstatus/internal/batch"
	"github.com/hamed0406/webstatus/internal/probe"
)

const apiVersion = "1.0.0"

type Server struct {
	Logger  *zap.Logger
	Checker probe.Checker
	Runner  *batch.Runner
}

func NewServer(l *zap.Logger, checker probe.Checker, runner *batch.Runner) *Server {
	return &Server{Logger: l, Checker: checker, Runner: runner}
}

// Router wires all routes. An empty origin list keeps the permissive CORS
// default the browser frontend expects.
func (s *Server) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	if len(allowedOrigins) == 0 {
		r.Use(cors.AllowAll().Handler)
	} else {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", s.handleIndex)
	r.Get("/api/health", s.handleHealth)
	r.Post("/api/check-single", s.handleCheckSingle)
	r.Post("/api/check-bulk", s.handleCheckBulk)
	r.Post("/api/upload-file", s.handleUploadFile)

	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
