package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mohsin_travel/internal/adapters/apiclient"
)

func TestClient_AttachesBearerAndDecodes(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 7, "name": "Economy Umrah", "hotelRating": 3},
		})
	}))
	defer ts.Close()

	cl := apiclient.New(ts.URL, nil)
	if err := loginFake(cl, "tok-123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ps, err := cl.ListPackages(ctx)
	if err != nil {
		t.Fatalf("ListPackages: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if len(ps) != 1 || ps[0].Name != "Economy Umrah" {
		t.Fatalf("unexpected payload: %+v", ps)
	}
	// numeric server id decodes into the string-typed client ID
	if ps[0].ID.String() != "7" {
		t.Fatalf("expected id \"7\", got %q", ps[0].ID)
	}
}

// loginFake points the client's session at a token without a login round trip.
func loginFake(cl *apiclient.Client, token string) error {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))
	defer ts.Close()
	inner := apiclient.New(ts.URL, cl.Session())
	return inner.Login(context.Background(), "x@y.z", "pw")
}

func TestClient_NoContentReturnsNil(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	cl := apiclient.New(ts.URL, nil)
	if err := cl.DeletePackage(context.Background(), "3"); err != nil {
		t.Fatalf("DeletePackage: %v", err)
	}
}

func TestClient_NonOKSurfacesStatusText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	cl := apiclient.New(ts.URL, nil)
	_, err := cl.CreatePackage(context.Background(), apiclient.Package{Name: "X"})
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.StatusText != "Unauthorized" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestClient_StringIDAlsoDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "42", "city": "Dubai"})
	}))
	defer ts.Close()

	cl := apiclient.New(ts.URL, nil)
	d, err := cl.GetDestination(context.Background(), "42")
	if err != nil {
		t.Fatalf("GetDestination: %v", err)
	}
	if d.ID.String() != "42" || d.City != "Dubai" {
		t.Fatalf("unexpected destination: %+v", d)
	}
}

func TestClient_GetCounterStat(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/counter-stats/3" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3, "icon": "Award", "target": 10000, "suffix": "+", "label": "Happy Clients"})
	}))
	defer ts.Close()

	cl := apiclient.New(ts.URL, nil)
	s, err := cl.GetCounterStat(context.Background(), "3")
	if err != nil {
		t.Fatalf("GetCounterStat: %v", err)
	}
	if s.ID.String() != "3" || s.Label != "Happy Clients" || s.Target != 10000 {
		t.Fatalf("unexpected stat: %+v", s)
	}
}

func TestClient_PartialSaveSiteSettingsOmitsUnsetFields(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"companyName": "Acme Travel"})
	}))
	defer ts.Close()

	cl := apiclient.New(ts.URL, nil)
	saved, err := cl.SaveSiteSettings(context.Background(), apiclient.SiteSettings{
		CompanyName: "Acme Travel",
		Phones:      []string{"+92 300 0180347"},
	})
	if err != nil {
		t.Fatalf("SaveSiteSettings: %v", err)
	}
	if saved.CompanyName != "Acme Travel" {
		t.Fatalf("unexpected response: %+v", saved)
	}
	if body["companyName"] != "Acme Travel" {
		t.Fatalf("companyName missing from request: %v", body)
	}
	// unset fields must stay off the wire or the server patches them to zero
	for _, k := range []string{"email", "whatsapp", "address", "socialLinks", "businessHours"} {
		if _, present := body[k]; present {
			t.Errorf("unset field %q sent: %v", k, body)
		}
	}
}

func TestClient_LogoutClearsSession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
		case "/logout":
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer ts.Close()

	cl := apiclient.New(ts.URL, nil)
	if err := cl.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if cl.Session().Token() != "tok" {
		t.Fatalf("expected session token set")
	}
	if err := cl.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if cl.Session().Token() != "" {
		t.Fatalf("expected session cleared")
	}
}
