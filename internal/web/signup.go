package web

import (
	"errors"
	"net/http"

	"github.com/sidereusnuntius/magazine/internal/domain"
	"github.com/sidereusnuntius/magazine/internal/service"
)

type registerRequest struct {
	Username string               `json:"username"`
	Name     string               `json:"name"`
	Password string               `json:"password"`
	Type     domain.UserType      `json:"type"`
	Author   *domain.AuthorFields `json:"author"`
}

func Register(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		id, err := h.service.CreateUser(r.Context(), domain.Registration{
			Username: req.Username,
			Name:     req.Name,
			Password: req.Password,
			Type:     req.Type,
			Author:   req.Author,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, struct {
			ID int64 `json:"id"`
		}{id})
	}
}

func GetCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
