package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/magazine/internal/config"
	"github.com/sidereusnuntius/magazine/internal/service"
)

const (
	ApiRoute  = "/api"
	MaxMemory = 64 * 1024
	// MaxBodyBytes bounds every JSON request body.
	MaxBodyBytes = 1 << 20
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError answers with the status matching err. Internal errors are logged and never shown to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := GetCode(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		msg = "internal server error"
	}
	writeJSON(w, code, errorResponse{msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body: %s", service.ErrInvalidInput, err)
	}
	return nil
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", service.ErrInvalidInput, name)
	}
	return id, nil
}
