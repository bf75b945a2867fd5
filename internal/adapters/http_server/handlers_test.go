package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mohsin_travel/internal/app"
	"mohsin_travel/internal/auth"
	"mohsin_travel/internal/domain"
)

type stubRepo struct {
	domain.ContentRepository

	createCalls int
	packages    map[int64]domain.Package
}

func newStubRepo() *stubRepo {
	return &stubRepo{packages: map[int64]domain.Package{}}
}

func (r *stubRepo) ListPackages(ctx context.Context) ([]domain.Package, error) {
	out := make([]domain.Package, 0, len(r.packages))
	for _, p := range r.packages {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubRepo) GetPackage(ctx context.Context, id int64) (domain.Package, error) {
	p, ok := r.packages[id]
	if !ok {
		return domain.Package{}, domain.ErrNotFound
	}
	return p, nil
}

func (r *stubRepo) CreatePackage(ctx context.Context, p domain.Package) (domain.Package, error) {
	r.createCalls++
	p.ID = int64(len(r.packages) + 1)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.packages[p.ID] = p
	return p, nil
}

func (r *stubRepo) DeletePackage(ctx context.Context, id int64) error {
	if _, ok := r.packages[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.packages, id)
	return nil
}

func (r *stubRepo) GetSiteSettings(ctx context.Context) (domain.SiteSettings, error) {
	return domain.SiteSettings{}, domain.ErrNotFound
}

type stubCache struct{ data map[string][]byte }

func newStubCache() *stubCache { return &stubCache{data: map[string][]byte{}} }

func (c *stubCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *stubCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *stubCache) Del(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

type stubAuth struct{}

func (stubAuth) Login(ctx context.Context, email, password string) (string, error) {
	if email == "admin@test" && password == "secret" {
		return "tok-1", nil
	}
	return "", domain.ErrUnauthorized
}

func (stubAuth) Verify(ctx context.Context, token string) (domain.Identity, error) {
	if token == "tok-1" {
		return domain.Identity{Email: "admin@test"}, nil
	}
	return domain.Identity{}, domain.ErrUnauthorized
}

func (stubAuth) Logout(ctx context.Context, token string) error { return nil }

func newTestServer(repo *stubRepo) http.Handler {
	s := New()
	cache := newStubCache()
	s.MountHandlers(&Handlers{
		Q:    app.NewQueryService(repo, cache, time.Minute),
		C:    app.NewContentService(repo, cache),
		Auth: stubAuth{},
	})
	return s.Mux()
}

func doReq(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	repo := newStubRepo()
	repo.packages[1] = domain.Package{ID: 1, Name: "Economy Umrah", HotelRating: 3}
	h := newTestServer(repo)

	rec := doReq(t, h, http.MethodGet, "/api/umrah-packages", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var got []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0]["hotelRating"] != float64(3) {
		t.Fatalf("body = %s", rec.Body)
	}
}

func TestMutationsRejectMissingToken(t *testing.T) {
	repo := newStubRepo()
	h := newTestServer(repo)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/umrah-packages"},
		{http.MethodPut, "/api/umrah-packages/1"},
		{http.MethodDelete, "/api/umrah-packages/1"},
		{http.MethodPost, "/api/site-settings"},
		{http.MethodPut, "/api/about-content"},
	} {
		rec := doReq(t, h, tc.method, tc.path, "", map[string]any{"name": "x"})
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d", tc.method, tc.path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
			t.Errorf("%s %s: content type = %q", tc.method, tc.path, ct)
		}
	}
	if repo.createCalls != 0 {
		t.Fatalf("rejected requests reached the repo %d times", repo.createCalls)
	}
}

func TestMutationsRejectBadToken(t *testing.T) {
	repo := newStubRepo()
	h := newTestServer(repo)

	rec := doReq(t, h, http.MethodPost, "/api/umrah-packages", "forged", map[string]any{"name": "x"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if repo.createCalls != 0 {
		t.Fatal("rejected request reached the repo")
	}
}

func TestCreatePackageLifecycle(t *testing.T) {
	repo := newStubRepo()
	h := newTestServer(repo)

	body := map[string]any{
		"name": "Test", "duration": "7 Days", "price": "PKR 100,000",
		"hotel": "Hilton", "distance": "500m",
	}
	rec := doReq(t, h, http.MethodPost, "/api/umrah-packages", "tok-1", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body)
	}
	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created["hotelRating"] != float64(3) {
		t.Fatalf("hotelRating = %v", created["hotelRating"])
	}
	id := int64(created["id"].(float64))

	rec = doReq(t, h, http.MethodGet, "/api/umrah-packages/1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = doReq(t, h, http.MethodDelete, "/api/umrah-packages/1", "tok-1", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if _, ok := repo.packages[id]; ok {
		t.Fatal("row survived delete")
	}

	rec = doReq(t, h, http.MethodDelete, "/api/umrah-packages/1", "tok-1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", rec.Code)
	}
}

func TestCreatePackageValidation(t *testing.T) {
	h := newTestServer(newStubRepo())

	rec := doReq(t, h, http.MethodPost, "/api/umrah-packages", "tok-1", map[string]any{"name": "Test"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var p problem
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Errors["price"]; !ok {
		t.Fatalf("errors = %v", p.Errors)
	}
}

func TestGetPackageBadID(t *testing.T) {
	h := newTestServer(newStubRepo())

	rec := doReq(t, h, http.MethodGet, "/api/umrah-packages/abc", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSiteSettingsNullWhenAbsent(t *testing.T) {
	h := newTestServer(newStubRepo())

	rec := doReq(t, h, http.MethodGet, "/api/site-settings", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := bytes.TrimSpace(rec.Body.Bytes()); !bytes.Equal(got, []byte("null")) {
		t.Fatalf("body = %q, want null", got)
	}
}

func TestLoginAndMe(t *testing.T) {
	h := newTestServer(newStubRepo())

	rec := doReq(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email": "admin@test", "password": "secret",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d", rec.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out["token"] == "" {
		t.Fatal("no token issued")
	}

	rec = doReq(t, h, http.MethodGet, "/api/me", out["token"], nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d", rec.Code)
	}
	var ident domain.Identity
	if err := json.Unmarshal(rec.Body.Bytes(), &ident); err != nil {
		t.Fatal(err)
	}
	if ident.Email != "admin@test" {
		t.Fatalf("email = %q", ident.Email)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	h := newTestServer(newStubRepo())

	rec := doReq(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email": "admin@test", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

// The real auth service plugs into the same gate the stubs exercise above.
var _ AuthService = (*auth.Service)(nil)

var errBoom = errors.New("boom")

type failingRepo struct{ *stubRepo }

func (failingRepo) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return nil, errBoom
}

func TestRepoFailureIsA500Problem(t *testing.T) {
	s := New()
	cache := newStubCache()
	s.MountHandlers(&Handlers{
		Q:    app.NewQueryService(failingRepo{newStubRepo()}, cache, time.Minute),
		C:    app.NewContentService(newStubRepo(), cache),
		Auth: stubAuth{},
	})

	rec := doReq(t, s.Mux(), http.MethodGet, "/api/umrah-packages", "", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type = %q", ct)
	}
}
