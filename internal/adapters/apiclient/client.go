// Package apiclient is the typed REST client used by the admin-side data
// cache and the seeder. Every call is a fresh round trip: no retry, no
// caching, just an overall client timeout.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"mohsin_travel/internal/adapters/observability"
)

// Session holds the bearer token with an explicit lifecycle: set by Login,
// cleared by Logout, read-only everywhere else.
type Session struct {
	mu    sync.RWMutex
	token string
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) set(t string) {
	s.mu.Lock()
	s.token = t
	s.mu.Unlock()
}

// APIError carries the HTTP status of a non-2xx response.
type APIError struct {
	Status     int
	StatusText string
}

func (e *APIError) Error() string { return "api error: " + e.StatusText }

type Client struct {
	base    string
	hc      *http.Client
	session *Session
}

func New(base string, session *Session) *Client {
	if session == nil {
		session = &Session{}
	}
	return &Client{
		base:    base,
		hc:      &http.Client{Timeout: 20 * time.Second},
		session: session,
	}
}

func (c *Client) Session() *Session { return c.session }

// do performs one request. A 204 leaves out untouched; a non-2xx status
// surfaces as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any, entity, op string) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if t := c.session.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	observability.ObserveClient(entity, op, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &APIError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ---- auth ----

func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &out, "auth", "login"); err != nil {
		return err
	}
	c.session.set(out.Token)
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/logout", nil, nil, "auth", "logout"); err != nil {
		return err
	}
	c.session.set("")
	return nil
}

func (c *Client) Me(ctx context.Context) (Identity, error) {
	var out Identity
	err := c.do(ctx, http.MethodGet, "/me", nil, &out, "auth", "me")
	return out, err
}

// ---- umrah packages ----

func (c *Client) ListPackages(ctx context.Context) ([]Package, error) {
	var out []Package
	err := c.do(ctx, http.MethodGet, "/umrah-packages", nil, &out, "packages", "list")
	return out, err
}

func (c *Client) GetPackage(ctx context.Context, id string) (Package, error) {
	var out Package
	err := c.do(ctx, http.MethodGet, "/umrah-packages/"+id, nil, &out, "packages", "get")
	return out, err
}

func (c *Client) CreatePackage(ctx context.Context, p Package) (Package, error) {
	var out Package
	err := c.do(ctx, http.MethodPost, "/umrah-packages", p, &out, "packages", "create")
	return out, err
}

func (c *Client) UpdatePackage(ctx context.Context, id string, p Package) (Package, error) {
	var out Package
	err := c.do(ctx, http.MethodPut, "/umrah-packages/"+id, p, &out, "packages", "update")
	return out, err
}

func (c *Client) DeletePackage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/umrah-packages/"+id, nil, nil, "packages", "delete")
}

// ---- destinations ----

func (c *Client) ListDestinations(ctx context.Context) ([]Destination, error) {
	var out []Destination
	err := c.do(ctx, http.MethodGet, "/destinations", nil, &out, "destinations", "list")
	return out, err
}

func (c *Client) GetDestination(ctx context.Context, id string) (Destination, error) {
	var out Destination
	err := c.do(ctx, http.MethodGet, "/destinations/"+id, nil, &out, "destinations", "get")
	return out, err
}

func (c *Client) CreateDestination(ctx context.Context, d Destination) (Destination, error) {
	var out Destination
	err := c.do(ctx, http.MethodPost, "/destinations", d, &out, "destinations", "create")
	return out, err
}

func (c *Client) UpdateDestination(ctx context.Context, id string, d Destination) (Destination, error) {
	var out Destination
	err := c.do(ctx, http.MethodPut, "/destinations/"+id, d, &out, "destinations", "update")
	return out, err
}

func (c *Client) DeleteDestination(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/destinations/"+id, nil, nil, "destinations", "delete")
}

// ---- airlines ----

func (c *Client) ListAirlines(ctx context.Context) ([]Airline, error) {
	var out []Airline
	err := c.do(ctx, http.MethodGet, "/airlines", nil, &out, "airlines", "list")
	return out, err
}

func (c *Client) GetAirline(ctx context.Context, id string) (Airline, error) {
	var out Airline
	err := c.do(ctx, http.MethodGet, "/airlines/"+id, nil, &out, "airlines", "get")
	return out, err
}

func (c *Client) CreateAirline(ctx context.Context, a Airline) (Airline, error) {
	var out Airline
	err := c.do(ctx, http.MethodPost, "/airlines", a, &out, "airlines", "create")
	return out, err
}

func (c *Client) UpdateAirline(ctx context.Context, id string, a Airline) (Airline, error) {
	var out Airline
	err := c.do(ctx, http.MethodPut, "/airlines/"+id, a, &out, "airlines", "update")
	return out, err
}

func (c *Client) DeleteAirline(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/airlines/"+id, nil, nil, "airlines", "delete")
}

// ---- team members ----

func (c *Client) ListTeamMembers(ctx context.Context) ([]TeamMember, error) {
	var out []TeamMember
	err := c.do(ctx, http.MethodGet, "/team-members", nil, &out, "team-members", "list")
	return out, err
}

func (c *Client) GetTeamMember(ctx context.Context, id string) (TeamMember, error) {
	var out TeamMember
	err := c.do(ctx, http.MethodGet, "/team-members/"+id, nil, &out, "team-members", "get")
	return out, err
}

func (c *Client) CreateTeamMember(ctx context.Context, m TeamMember) (TeamMember, error) {
	var out TeamMember
	err := c.do(ctx, http.MethodPost, "/team-members", m, &out, "team-members", "create")
	return out, err
}

func (c *Client) UpdateTeamMember(ctx context.Context, id string, m TeamMember) (TeamMember, error) {
	var out TeamMember
	err := c.do(ctx, http.MethodPut, "/team-members/"+id, m, &out, "team-members", "update")
	return out, err
}

func (c *Client) DeleteTeamMember(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/team-members/"+id, nil, nil, "team-members", "delete")
}

// ---- counter stats ----

func (c *Client) ListCounterStats(ctx context.Context) ([]CounterStat, error) {
	var out []CounterStat
	err := c.do(ctx, http.MethodGet, "/counter-stats", nil, &out, "counter-stats", "list")
	return out, err
}

func (c *Client) GetCounterStat(ctx context.Context, id string) (CounterStat, error) {
	var out CounterStat
	err := c.do(ctx, http.MethodGet, "/counter-stats/"+id, nil, &out, "counter-stats", "get")
	return out, err
}

func (c *Client) CreateCounterStat(ctx context.Context, s CounterStat) (CounterStat, error) {
	var out CounterStat
	err := c.do(ctx, http.MethodPost, "/counter-stats", s, &out, "counter-stats", "create")
	return out, err
}

func (c *Client) UpdateCounterStat(ctx context.Context, id string, s CounterStat) (CounterStat, error) {
	var out CounterStat
	err := c.do(ctx, http.MethodPut, "/counter-stats/"+id, s, &out, "counter-stats", "update")
	return out, err
}

func (c *Client) DeleteCounterStat(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/counter-stats/"+id, nil, nil, "counter-stats", "delete")
}

// ---- singletons ----

// GetSiteSettings returns (nil, nil) while no settings row exists.
func (c *Client) GetSiteSettings(ctx context.Context) (*SiteSettings, error) {
	var out *SiteSettings
	err := c.do(ctx, http.MethodGet, "/site-settings", nil, &out, "site-settings", "get")
	return out, err
}

// SaveSiteSettings is the create-or-replace write (POST).
func (c *Client) SaveSiteSettings(ctx context.Context, s SiteSettings) (SiteSettings, error) {
	var out SiteSettings
	err := c.do(ctx, http.MethodPost, "/site-settings", s, &out, "site-settings", "save")
	return out, err
}

func (c *Client) GetAboutContent(ctx context.Context) (*AboutContent, error) {
	var out *AboutContent
	err := c.do(ctx, http.MethodGet, "/about-content", nil, &out, "about-content", "get")
	return out, err
}

func (c *Client) SaveAboutContent(ctx context.Context, a AboutContent) (AboutContent, error) {
	var out AboutContent
	err := c.do(ctx, http.MethodPost, "/about-content", a, &out, "about-content", "save")
	return out, err
}
