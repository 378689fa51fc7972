package web

import (
	"net/http"

	"github.com/sidereusnuntius/magazine/internal/domain"
)

func ListAuthors(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authors, err := h.service.ListAuthors(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, authors)
	}
}

func GetAuthor(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		author, err := h.service.GetAuthor(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, author)
	}
}

func GetAuthorByUser(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userId, err := idParam(r, "userId")
		if err != nil {
			writeError(w, r, err)
			return
		}

		author, err := h.service.GetAuthorByUser(r.Context(), userId)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, author)
	}
}

func MyAuthor(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		author, err := h.service.GetAuthorByUser(r.Context(), u.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, author)
	}
}

func CreateAuthor(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		var fields domain.AuthorFields
		if err := decodeJSON(w, r, &fields); err != nil {
			writeError(w, r, err)
			return
		}

		author, err := h.service.CreateAuthor(r.Context(), u.ID, fields)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, author)
	}
}

func UpdateAuthor(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var fields domain.AuthorFields
		if err = decodeJSON(w, r, &fields); err != nil {
			writeError(w, r, err)
			return
		}

		author, err := h.service.UpdateAuthor(r.Context(), u.ID, id, fields)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, author)
	}
}

func DeleteAuthor(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err = h.service.DeleteAuthor(r.Context(), u.ID, id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
