package main

import (
	auth "ChainDrive/internal/auth"
	config "ChainDrive/internal/config"
	repo "ChainDrive/internal/repo"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

type memRepo struct{ hash string }

func (m *memRepo) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	m.hash = password
	return 1, nil
}

func (m *memRepo) GetByLogin(ctx context.Context, login string) (int, string, error) {
	if m.hash == "" {
		return 0, "", repo.ErrNotFound
	}
	return 1, m.hash, nil
}

func newServer(t *testing.T) http.Handler {
	t.Helper()
	r := mux.NewRouter()
	HandleList(r, config.Config{TokenKey: "k", RateLimit: 1000, RateBurst: 1000}, &memRepo{})
	return CORS(r)
}

func TestRoutesRequireAuth(t *testing.T) {
	h := newServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/tools/chain/catalog", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestRoutesCalc(t *testing.T) {
	h := newServer(t)
	token, _ := (&auth.Authenv{JWTkey: []byte("k")}).NewToken(1, "ivan", time.Now())

	calls := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/api/user/tools/chain/catalog", "", http.StatusOK},
		{http.MethodPost, "/api/user/tools/chain/calc", `{"torque_nm":50,"speed_rpm":1440,"gear_ratio":2,"service_factor":1,"min_center_distance_mm":300}`, http.StatusOK},
		{http.MethodPost, "/api/user/tools/chain/calc", `{"torque_nm":1e7,"speed_rpm":1440,"gear_ratio":5,"service_factor":1,"min_center_distance_mm":300}`, http.StatusUnprocessableEntity},
		{http.MethodPost, "/api/user/tools/chain/service-factor", `{"load":"moderate"}`, http.StatusOK},
		{http.MethodGet, "/api/user/tools/chain/calc", "", http.StatusMethodNotAllowed},
	}
	for _, c := range calls {
		req := httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != c.want {
			t.Fatalf("%s %s: status %d, want %d (%s)", c.method, c.path, rec.Code, c.want, rec.Body.String())
		}
	}
}

func TestRoutesRegister(t *testing.T) {
	h := newServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"login":"a","password":"secret1","email":"a@b"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"login":"a","password":"secret1"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/user/tools/chain/calc", nil))
	if rec.Code != http.StatusNoContent || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("preflight: status %d", rec.Code)
	}
}
