package web

import (
	"net/http"
)

type likeResponse struct {
	IsLiked bool `json:"isLiked"`
}

type favouriteResponse struct {
	IsFavourite bool `json:"isFavourite"`
}

type checkResponse struct {
	IsFavourite bool `json:"isFavourite"`
	IsLiked     bool `json:"isLiked"`
}

func RecordView(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		if _, err = h.service.RecordView(r.Context(), u.ID, id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ToggleLike(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		liked, err := h.service.ToggleLike(r.Context(), u.ID, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, likeResponse{liked})
	}
}

func ToggleFavourite(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		id, err := idParam(r, "articleId")
		if err != nil {
			writeError(w, r, err)
			return
		}

		favourite, err := h.service.ToggleFavourite(r.Context(), u.ID, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, favouriteResponse{favourite})
	}
}

// CheckInteraction reports whether the current user likes and has favourited the article. An article the user
// never viewed is neither.
func CheckInteraction(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		id, err := idParam(r, "articleId")
		if err != nil {
			writeError(w, r, err)
			return
		}

		i, err := h.service.GetInteraction(r.Context(), u.ID, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, checkResponse{
			IsFavourite: i.Favourite,
			IsLiked:     i.Liked,
		})
	}
}

func ListFavourites(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		articles, err := h.service.ListFavourites(r.Context(), u.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, articles)
	}
}
