package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/magazine/internal/config"
	"github.com/sidereusnuntius/magazine/internal/domain"
	mock_service "github.com/sidereusnuntius/magazine/internal/mocks"
	"github.com/sidereusnuntius/magazine/internal/service"
	"go.uber.org/mock/gomock"
)

var alice = domain.User{ID: 7, Name: "Alice", Username: "alice", Type: domain.Reader}

type testServer struct {
	*httptest.Server
	svc    *mock_service.MockService
	client *http.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock_service.NewMockService(ctrl)

	cfg := &config.Configuration{MaxUploadBytes: 1 << 20}
	h := New(cfg, svc, scs.NewCookieManager("u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4"))
	router := chi.NewRouter()
	h.Mount(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &testServer{
		Server: srv,
		svc:    svc,
		client: &http.Client{Jar: jar},
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, s.URL+path, r)
	if err != nil {
		t.Fatal(err)
	}
	res, err := s.client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	return res.StatusCode, b
}

// login authenticates as alice; every later request reloads her from the service.
func (s *testServer) login(t *testing.T) {
	t.Helper()
	s.svc.EXPECT().AuthenticateUser(gomock.Any(), "alice", "password").Return(alice, nil)
	s.svc.EXPECT().GetUser(gomock.Any(), alice.ID).Return(alice, nil).AnyTimes()

	code, body := s.do(t, http.MethodPost, "/api/login", loginRequest{"alice", "password"})
	if code != http.StatusCreated {
		t.Fatalf("login failed with status %d: %s", code, body)
	}
}

func assertJSON(t *testing.T, want any, body []byte) {
	t.Helper()
	expected, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}

	var got, exp any
	if err = json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json %q: %s", body, err)
	}
	json.Unmarshal(expected, &exp)
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: bad", service.ErrInvalidInput), http.StatusBadRequest},
		{service.ErrNotAuthor, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: not yours", service.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("article 3: %w", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: username already in use", service.ErrConflict), http.StatusConflict},
		{service.ErrInternal, http.StatusInternalServerError},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if code := GetCode(c.err); code != c.code {
			t.Errorf("%q: expected %d, got %d", c.err, c.code, code)
		}
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	s := newTestServer(t)
	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/login/current"},
		{http.MethodGet, "/api/articles/private"},
		{http.MethodGet, "/api/articles/own"},
		{http.MethodPost, "/api/articles/own/new"},
		{http.MethodPut, "/api/articles/1"},
		{http.MethodGet, "/api/articles/1/ownership"},
		{http.MethodPost, "/api/articles/1/visuals"},
		{http.MethodPost, "/api/articles/1/likes"},
		{http.MethodGet, "/api/favourites"},
		{http.MethodPost, "/api/favourites/1"},
		{http.MethodGet, "/api/favourites/1/check"},
		{http.MethodPost, "/api/authors"},
		{http.MethodDelete, "/api/authors/1"},
	}

	for _, r := range routes {
		code, body := s.do(t, r.method, r.path, nil)
		if code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", r.method, r.path, code)
			continue
		}
		assertJSON(t, errorResponse{"Not authenticated"}, body)
	}
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	s.svc.EXPECT().
		AuthenticateUser(gomock.Any(), "alice", "wrong").
		Return(domain.User{}, service.ErrInvalidCredentials)

	code, body := s.do(t, http.MethodPost, "/api/login", loginRequest{"alice", "wrong"})
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	assertJSON(t, errorResponse{service.ErrInvalidCredentials.Error()}, body)

	s.login(t)
	code, body = s.do(t, http.MethodGet, "/api/login/current", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	assertJSON(t, alice, body)

	code, _ = s.do(t, http.MethodDelete, "/api/login/current", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	code, _ = s.do(t, http.MethodGet, "/api/login/current", nil)
	if code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", code)
	}
}

func TestMalformedLogin(t *testing.T) {
	s := newTestServer(t)
	res, err := s.client.Post(s.URL+"/api/login", "application/json", bytes.NewBufferString("{"))
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", res.StatusCode)
	}
}

func TestStaleSession(t *testing.T) {
	s := newTestServer(t)
	s.svc.EXPECT().AuthenticateUser(gomock.Any(), "alice", "password").Return(alice, nil)
	code, _ := s.do(t, http.MethodPost, "/api/login", loginRequest{"alice", "password"})
	if code != http.StatusCreated {
		t.Fatalf("login failed with status %d", code)
	}

	s.svc.EXPECT().
		GetUser(gomock.Any(), alice.ID).
		Return(domain.User{}, fmt.Errorf("user 7: %w", service.ErrNotFound))
	code, _ = s.do(t, http.MethodGet, "/api/favourites", nil)
	if code != http.StatusUnauthorized {
		t.Errorf("expected a session of a deleted user to be anonymous, got %d", code)
	}
}

func TestRegister(t *testing.T) {
	s := newTestServer(t)
	req := registerRequest{Username: "alice", Name: "Alice", Password: "password", Type: domain.Reader}
	reg := domain.Registration{Username: "alice", Name: "Alice", Password: "password", Type: domain.Reader}

	gomock.InOrder(
		s.svc.EXPECT().CreateUser(gomock.Any(), reg).Return(int64(1), nil),
		s.svc.EXPECT().CreateUser(gomock.Any(), reg).Return(int64(0), fmt.Errorf("%w: username already in use", service.ErrConflict)),
	)

	code, body := s.do(t, http.MethodPost, "/api/register", req)
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	assertJSON(t, map[string]int64{"id": 1}, body)

	code, _ = s.do(t, http.MethodPost, "/api/register", req)
	if code != http.StatusConflict {
		t.Errorf("expected 409, got %d", code)
	}
}

func TestInteractions(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	s.svc.EXPECT().RecordView(gomock.Any(), alice.ID, int64(3)).Return(domain.Interaction{Views: 1}, nil)
	s.svc.EXPECT().ToggleLike(gomock.Any(), alice.ID, int64(3)).Return(true, nil)
	s.svc.EXPECT().
		ToggleLike(gomock.Any(), alice.ID, int64(4)).
		Return(false, fmt.Errorf("interaction %w", service.ErrNotFound))
	s.svc.EXPECT().ToggleFavourite(gomock.Any(), alice.ID, int64(3)).Return(true, nil)
	s.svc.EXPECT().
		GetInteraction(gomock.Any(), alice.ID, int64(3)).
		Return(domain.Interaction{Views: 1, Liked: true, Favourite: true}, nil)
	s.svc.EXPECT().ListFavourites(gomock.Any(), alice.ID).Return([]domain.Article{{ID: 3}}, nil)

	code, body := s.do(t, http.MethodPost, "/api/articles/3/visuals", nil)
	if code != http.StatusNoContent || len(body) != 0 {
		t.Errorf("expected empty 204, got %d %q", code, body)
	}

	code, body = s.do(t, http.MethodPost, "/api/articles/3/likes", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	assertJSON(t, map[string]bool{"isLiked": true}, body)

	code, _ = s.do(t, http.MethodPost, "/api/articles/4/likes", nil)
	if code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}

	code, body = s.do(t, http.MethodPost, "/api/favourites/3", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	assertJSON(t, map[string]bool{"isFavourite": true}, body)

	code, body = s.do(t, http.MethodGet, "/api/favourites/3/check", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	assertJSON(t, map[string]bool{"isFavourite": true, "isLiked": true}, body)

	code, _ = s.do(t, http.MethodPost, "/api/favourites/abc", nil)
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for an invalid id, got %d", code)
	}

	code, body = s.do(t, http.MethodGet, "/api/favourites", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var list []domain.Article
	if err := json.Unmarshal(body, &list); err != nil || len(list) != 1 || list[0].ID != 3 {
		t.Errorf("unexpected favourites %s (%v)", body, err)
	}
}

func TestUpdateArticle(t *testing.T) {
	s := newTestServer(t)
	s.login(t)
	fields := domain.ArticleFields{Title: "t", Extract: "e", Text: "x", Category: 1}

	gomock.InOrder(
		s.svc.EXPECT().
			UpdateArticle(gomock.Any(), alice.ID, int64(5), fields).
			Return(domain.Article{}, fmt.Errorf("%w: user 7 does not own article 5", service.ErrForbidden)),
		s.svc.EXPECT().
			UpdateArticle(gomock.Any(), alice.ID, int64(5), fields).
			Return(domain.Article{ID: 5, Title: "t"}, nil),
	)
	s.svc.EXPECT().IsOwner(gomock.Any(), alice.ID, int64(5)).Return(true, nil)
	s.svc.EXPECT().
		IsOwner(gomock.Any(), alice.ID, int64(6)).
		Return(false, fmt.Errorf("article 6: %w", service.ErrNotFound))

	code, _ := s.do(t, http.MethodPut, "/api/articles/5", fields)
	if code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", code)
	}
	code, body := s.do(t, http.MethodPut, "/api/articles/5", fields)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var a domain.Article
	if err := json.Unmarshal(body, &a); err != nil || a.ID != 5 {
		t.Errorf("unexpected article %s (%v)", body, err)
	}

	code, _ = s.do(t, http.MethodPut, "/api/articles/x", fields)
	if code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}

	code, body = s.do(t, http.MethodGet, "/api/articles/5/ownership", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	assertJSON(t, map[string]bool{"isOwner": true}, body)

	code, _ = s.do(t, http.MethodGet, "/api/articles/6/ownership", nil)
	if code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestInternalErrorsAreHidden(t *testing.T) {
	s := newTestServer(t)
	s.svc.EXPECT().ListArticles(gomock.Any()).Return(nil, errors.New("database is on fire"))

	code, body := s.do(t, http.MethodGet, "/api/articles/public", nil)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	assertJSON(t, errorResponse{"internal server error"}, body)
}
