package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mohsin_travel/internal/app"
	"mohsin_travel/internal/domain"
)

// AuthService issues, verifies and revokes admin sessions.
type AuthService interface {
	domain.SessionVerifier
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

type Handlers struct {
	Q    *app.QueryService
	C    *app.ContentService
	Auth AuthService
}

type problem struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api", func(r chi.Router) {
		r.Post("/login", h.login)

		// public reads
		r.Get("/umrah-packages", h.listPackages)
		r.Get("/umrah-packages/{id}", h.getPackage)
		r.Get("/destinations", h.listDestinations)
		r.Get("/destinations/{id}", h.getDestination)
		r.Get("/airlines", h.listAirlines)
		r.Get("/airlines/{id}", h.getAirline)
		r.Get("/team-members", h.listTeamMembers)
		r.Get("/team-members/{id}", h.getTeamMember)
		r.Get("/counter-stats", h.listCounterStats)
		r.Get("/counter-stats/{id}", h.getCounterStat)
		r.Get("/site-settings", h.getSiteSettings)
		r.Get("/about-content", h.getAboutContent)

		// admin-only mutations behind the auth gate
		r.Group(func(pr chi.Router) {
			pr.Use(RequireAuth(h.Auth))

			pr.Post("/logout", h.logout)
			pr.Get("/me", h.me)

			pr.Post("/umrah-packages", h.createPackage)
			pr.Put("/umrah-packages/{id}", h.updatePackage)
			pr.Delete("/umrah-packages/{id}", h.deletePackage)

			pr.Post("/destinations", h.createDestination)
			pr.Put("/destinations/{id}", h.updateDestination)
			pr.Delete("/destinations/{id}", h.deleteDestination)

			pr.Post("/airlines", h.createAirline)
			pr.Put("/airlines/{id}", h.updateAirline)
			pr.Delete("/airlines/{id}", h.deleteAirline)

			pr.Post("/team-members", h.createTeamMember)
			pr.Put("/team-members/{id}", h.updateTeamMember)
			pr.Delete("/team-members/{id}", h.deleteTeamMember)

			pr.Post("/counter-stats", h.createCounterStat)
			pr.Put("/counter-stats/{id}", h.updateCounterStat)
			pr.Delete("/counter-stats/{id}", h.deleteCounterStat)

			pr.Post("/site-settings", h.saveSiteSettings)
			pr.Put("/site-settings", h.updateSiteSettings)

			pr.Post("/about-content", h.saveAboutContent)
			pr.Put("/about-content", h.updateAboutContent)
		})
	})
}

// ---- shared helpers ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeError(w http.ResponseWriter, err error) {
	var verr *app.ValidationError
	switch {
	case errors.As(err, &verr):
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(problem{
			Type: "about:blank", Title: "Unprocessable Entity",
			Status: http.StatusUnprocessableEntity, Errors: verr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "resource not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid credentials")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be a JSON object")
		return nil, false
	}
	return payload, true
}

// ---- auth ----

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be a JSON object")
		return
	}
	token, err := h.Auth.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), bearerToken(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFrom(r.Context())
	if !ok {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "no identity")
		return
	}
	writeJSON(w, http.StatusOK, ident)
}

// ---- umrah packages ----

func (h *Handlers) listPackages(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Q.ListPackages(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.PackagesToWire(ps))
}

func (h *Handlers) getPackage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	p, err := h.Q.GetPackage(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.PackageToWire(p))
}

func (h *Handlers) createPackage(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	p, err := h.C.CreatePackage(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app.PackageToWire(p))
}

func (h *Handlers) updatePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	p, err := h.C.UpdatePackage(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.PackageToWire(p))
}

func (h *Handlers) deletePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.C.DeletePackage(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- destinations ----

func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	ds, err := h.Q.ListDestinations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.DestinationsToWire(ds))
}

func (h *Handlers) getDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	d, err := h.Q.GetDestination(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.DestinationToWire(d))
}

func (h *Handlers) createDestination(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	d, err := h.C.CreateDestination(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app.DestinationToWire(d))
}

func (h *Handlers) updateDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	d, err := h.C.UpdateDestination(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.DestinationToWire(d))
}

func (h *Handlers) deleteDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.C.DeleteDestination(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- airlines ----

func (h *Handlers) listAirlines(w http.ResponseWriter, r *http.Request) {
	as, err := h.Q.ListAirlines(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.AirlinesToWire(as))
}

func (h *Handlers) getAirline(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	a, err := h.Q.GetAirline(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.AirlineToWire(a))
}

func (h *Handlers) createAirline(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	a, err := h.C.CreateAirline(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app.AirlineToWire(a))
}

func (h *Handlers) updateAirline(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	a, err := h.C.UpdateAirline(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.AirlineToWire(a))
}

func (h *Handlers) deleteAirline(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.C.DeleteAirline(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- team members ----

func (h *Handlers) listTeamMembers(w http.ResponseWriter, r *http.Request) {
	ms, err := h.Q.ListTeamMembers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.TeamMembersToWire(ms))
}

func (h *Handlers) getTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	m, err := h.Q.GetTeamMember(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.TeamMemberToWire(m))
}

func (h *Handlers) createTeamMember(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	m, err := h.C.CreateTeamMember(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app.TeamMemberToWire(m))
}

func (h *Handlers) updateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	m, err := h.C.UpdateTeamMember(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.TeamMemberToWire(m))
}

func (h *Handlers) deleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.C.DeleteTeamMember(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- counter stats ----

func (h *Handlers) listCounterStats(w http.ResponseWriter, r *http.Request) {
	ss, err := h.Q.ListCounterStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.CounterStatsToWire(ss))
}

func (h *Handlers) getCounterStat(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	s, err := h.Q.GetCounterStat(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.CounterStatToWire(s))
}

func (h *Handlers) createCounterStat(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s, err := h.C.CreateCounterStat(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app.CounterStatToWire(s))
}

func (h *Handlers) updateCounterStat(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s, err := h.C.UpdateCounterStat(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.CounterStatToWire(s))
}

func (h *Handlers) deleteCounterStat(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.C.DeleteCounterStat(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- singletons ----

func (h *Handlers) getSiteSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.Q.GetSiteSettings(r.Context())
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusOK, nil) // no row yet -> literal null
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.SiteSettingsToWire(s))
}

func (h *Handlers) saveSiteSettings(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s, err := h.C.SaveSiteSettings(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app.SiteSettingsToWire(s))
}

func (h *Handlers) updateSiteSettings(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s, err := h.C.UpdateSiteSettings(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.SiteSettingsToWire(s))
}

func (h *Handlers) getAboutContent(w http.ResponseWriter, r *http.Request) {
	c, err := h.Q.GetAboutContent(r.Context())
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.AboutContentToWire(c))
}

func (h *Handlers) saveAboutContent(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	c, err := h.C.SaveAboutContent(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app.AboutContentToWire(c))
}

func (h *Handlers) updateAboutContent(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}
	c, err := h.C.UpdateAboutContent(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.AboutContentToWire(c))
}
