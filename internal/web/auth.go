package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/magazine/internal/domain"
	"github.com/sidereusnuntius/magazine/internal/service"
)

// SessionKey is the session entry holding the id of the logged in user.
const SessionKey = "userID"

type key struct{}

// GetSession returns the user of an authenticated request.
func GetSession(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(key{}).(domain.User)
	return u, ok
}

func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetSession(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			writeJSON(w, http.StatusUnauthorized, errorResponse{"Not authenticated"})
		})
	}
}

// SessionMiddleware resolves the session's user id to the current user record, so that changes to the account
// take effect on the next request. A session whose user no longer exists is destroyed.
func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			session := handler.SessionManager.Load(r)
			id, err := session.GetInt64(SessionKey)
			if err != nil {
				log.Error().Err(err).Msg("failed to read session")
			}

			if id != 0 {
				u, err := handler.service.GetUser(ctx, id)
				switch {
				case err == nil:
					r = r.WithContext(context.WithValue(ctx, key{}, u))
				case errors.Is(err, service.ErrNotFound):
					if err := session.Destroy(w); err != nil {
						log.Error().Err(err).Msg("failed to destroy stale session")
					}
				default:
					writeError(w, r, err)
					return
				}
			}

			h.ServeHTTP(w, r)
		})
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies the credentials and starts a session under a new token.
func Login(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		u, err := handler.service.AuthenticateUser(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		session := handler.SessionManager.Load(r)
		if err = session.RenewToken(w); err == nil {
			err = session.PutInt64(w, SessionKey, u.ID)
		}
		if err != nil {
			log.Error().Err(err).Int64("user", u.ID).Msg("failed to create session")
			writeJSON(w, http.StatusInternalServerError, errorResponse{"failed to create session"})
			return
		}

		log.Debug().Int64("user", u.ID).Msg("user logged in")
		writeJSON(w, http.StatusCreated, u)
	}
}

func CurrentUser(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		writeJSON(w, http.StatusOK, u)
	}
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := handler.SessionManager.Load(r)
		if err := session.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
			writeJSON(w, http.StatusInternalServerError, errorResponse{"failed to destroy session"})
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
