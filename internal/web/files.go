package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// UploadPhoto sets the profile photo of the current user's author profile from the "photo" field of a
// multipart form.
func UploadPhoto(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		r.Body = http.MaxBytesReader(w, r.Body, h.Config.MaxUploadBytes)
		err := r.ParseMultipartForm(MaxMemory)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{"photo too large"})
				return
			}
			log.Debug().
				Err(err).
				Msg("failed to read multipart form from request")
			writeJSON(w, http.StatusBadRequest, errorResponse{"expected a multipart form"})
			return
		}

		file, _, err := r.FormFile("photo")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{"missing photo"})
			return
		}
		defer file.Close()

		body, err := io.ReadAll(file)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{"failed to read photo"})
			return
		}

		author, err := h.service.SetAuthorPhoto(r.Context(), u.ID, body)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, author)
	}
}

func GetPhoto(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		digest := chi.URLParam(r, "digest")
		content, err := h.service.GetPhoto(r.Context(), digest)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", http.DetectContentType(content))
		// Photos are addressed by the digest of their content.
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.Write(content)
	}
}
