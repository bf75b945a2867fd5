// Package sitedata keeps an in-memory copy of the public site content for
// server-rendered pages and the admin preview. The server is authoritative:
// every mutation replaces the local slot with the entity the server returned,
// never with the draft that was submitted.
package sitedata

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"mohsin_travel/internal/adapters/apiclient"
)

// SiteData aggregates every content collection under the legacy JSON keys
// the frontend bundle expects.
type SiteData struct {
	SiteSettings  apiclient.SiteSettings  `json:"siteSettings"`
	UmrahPackages []apiclient.Package     `json:"umrahPackages"`
	Destinations  []apiclient.Destination `json:"destinations"`
	Airlines      []apiclient.Airline     `json:"airlines"`
	TeamMembers   []apiclient.TeamMember  `json:"teamMembers"`
	CounterStats  []apiclient.CounterStat `json:"counterStats"`
	AboutContent  apiclient.AboutContent  `json:"aboutContent"`
}

// API is the slice of apiclient.Client the store depends on.
type API interface {
	ListPackages(ctx context.Context) ([]apiclient.Package, error)
	CreatePackage(ctx context.Context, p apiclient.Package) (apiclient.Package, error)
	UpdatePackage(ctx context.Context, id string, p apiclient.Package) (apiclient.Package, error)
	DeletePackage(ctx context.Context, id string) error

	ListDestinations(ctx context.Context) ([]apiclient.Destination, error)
	CreateDestination(ctx context.Context, d apiclient.Destination) (apiclient.Destination, error)
	UpdateDestination(ctx context.Context, id string, d apiclient.Destination) (apiclient.Destination, error)
	DeleteDestination(ctx context.Context, id string) error

	ListAirlines(ctx context.Context) ([]apiclient.Airline, error)
	CreateAirline(ctx context.Context, a apiclient.Airline) (apiclient.Airline, error)
	UpdateAirline(ctx context.Context, id string, a apiclient.Airline) (apiclient.Airline, error)
	DeleteAirline(ctx context.Context, id string) error

	ListTeamMembers(ctx context.Context) ([]apiclient.TeamMember, error)
	CreateTeamMember(ctx context.Context, m apiclient.TeamMember) (apiclient.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, m apiclient.TeamMember) (apiclient.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error

	ListCounterStats(ctx context.Context) ([]apiclient.CounterStat, error)
	CreateCounterStat(ctx context.Context, s apiclient.CounterStat) (apiclient.CounterStat, error)
	UpdateCounterStat(ctx context.Context, id string, s apiclient.CounterStat) (apiclient.CounterStat, error)
	DeleteCounterStat(ctx context.Context, id string) error

	GetSiteSettings(ctx context.Context) (*apiclient.SiteSettings, error)
	SaveSiteSettings(ctx context.Context, s apiclient.SiteSettings) (apiclient.SiteSettings, error)
	GetAboutContent(ctx context.Context) (*apiclient.AboutContent, error)
	SaveAboutContent(ctx context.Context, a apiclient.AboutContent) (apiclient.AboutContent, error)
}

// Store is safe for concurrent use.
type Store struct {
	api API
	log zerolog.Logger

	mu   sync.RWMutex
	data SiteData
}

func NewStore(api API, log zerolog.Logger) *Store {
	return &Store{api: api, log: log, data: Defaults()}
}

// Snapshot returns a copy of the current dataset. The collection slices
// are duplicated so later mutations never write into a snapshot a caller
// is still rendering.
func (s *Store) Snapshot() SiteData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.data
	d.UmrahPackages = append([]apiclient.Package(nil), s.data.UmrahPackages...)
	d.Destinations = append([]apiclient.Destination(nil), s.data.Destinations...)
	d.Airlines = append([]apiclient.Airline(nil), s.data.Airlines...)
	d.TeamMembers = append([]apiclient.TeamMember(nil), s.data.TeamMembers...)
	d.CounterStats = append([]apiclient.CounterStat(nil), s.data.CounterStats...)
	return d
}

// Refresh fetches every collection in parallel. A slot that fails to load is
// logged and keeps its previous value; the others are still replaced.
func (s *Store) Refresh(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if items, err := s.api.ListPackages(ctx); err != nil {
			s.log.Warn().Err(err).Msg("site data: packages refresh failed")
		} else {
			s.replace(func(d *SiteData) { d.UmrahPackages = items })
		}
		return nil
	})
	g.Go(func() error {
		if items, err := s.api.ListDestinations(ctx); err != nil {
			s.log.Warn().Err(err).Msg("site data: destinations refresh failed")
		} else {
			s.replace(func(d *SiteData) { d.Destinations = items })
		}
		return nil
	})
	g.Go(func() error {
		if items, err := s.api.ListAirlines(ctx); err != nil {
			s.log.Warn().Err(err).Msg("site data: airlines refresh failed")
		} else {
			s.replace(func(d *SiteData) { d.Airlines = items })
		}
		return nil
	})
	g.Go(func() error {
		if items, err := s.api.ListTeamMembers(ctx); err != nil {
			s.log.Warn().Err(err).Msg("site data: team members refresh failed")
		} else {
			s.replace(func(d *SiteData) { d.TeamMembers = items })
		}
		return nil
	})
	g.Go(func() error {
		if items, err := s.api.ListCounterStats(ctx); err != nil {
			s.log.Warn().Err(err).Msg("site data: counter stats refresh failed")
		} else {
			s.replace(func(d *SiteData) { d.CounterStats = items })
		}
		return nil
	})
	g.Go(func() error {
		settings, err := s.api.GetSiteSettings(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("site data: site settings refresh failed")
		} else if settings != nil {
			s.replace(func(d *SiteData) { d.SiteSettings = *settings })
		}
		return nil
	})
	g.Go(func() error {
		about, err := s.api.GetAboutContent(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("site data: about content refresh failed")
		} else if about != nil {
			s.replace(func(d *SiteData) { d.AboutContent = *about })
		}
		return nil
	})

	_ = g.Wait()
}

// ResetToDefaults discards the cached dataset and restores the bundled copy.
func (s *Store) ResetToDefaults() {
	s.mu.Lock()
	s.data = Defaults()
	s.mu.Unlock()
}

func (s *Store) replace(mut func(*SiteData)) {
	s.mu.Lock()
	mut(&s.data)
	s.mu.Unlock()
}

// Packages.

func (s *Store) CreatePackage(ctx context.Context, draft apiclient.Package) (apiclient.Package, error) {
	created, err := s.api.CreatePackage(ctx, draft)
	if err != nil {
		return apiclient.Package{}, err
	}
	s.replace(func(d *SiteData) { d.UmrahPackages = append(d.UmrahPackages, created) })
	return created, nil
}

func (s *Store) UpdatePackage(ctx context.Context, id string, draft apiclient.Package) (apiclient.Package, error) {
	updated, err := s.api.UpdatePackage(ctx, id, draft)
	if err != nil {
		return apiclient.Package{}, err
	}
	s.replace(func(d *SiteData) {
		for i := range d.UmrahPackages {
			if d.UmrahPackages[i].ID.String() == id {
				d.UmrahPackages[i] = updated
				return
			}
		}
	})
	return updated, nil
}

func (s *Store) DeletePackage(ctx context.Context, id string) error {
	if err := s.api.DeletePackage(ctx, id); err != nil {
		return err
	}
	s.replace(func(d *SiteData) { d.UmrahPackages = dropByID(d.UmrahPackages, id, func(p apiclient.Package) string { return p.ID.String() }) })
	return nil
}

// Destinations.

func (s *Store) CreateDestination(ctx context.Context, draft apiclient.Destination) (apiclient.Destination, error) {
	created, err := s.api.CreateDestination(ctx, draft)
	if err != nil {
		return apiclient.Destination{}, err
	}
	s.replace(func(d *SiteData) { d.Destinations = append(d.Destinations, created) })
	return created, nil
}

func (s *Store) UpdateDestination(ctx context.Context, id string, draft apiclient.Destination) (apiclient.Destination, error) {
	updated, err := s.api.UpdateDestination(ctx, id, draft)
	if err != nil {
		return apiclient.Destination{}, err
	}
	s.replace(func(d *SiteData) {
		for i := range d.Destinations {
			if d.Destinations[i].ID.String() == id {
				d.Destinations[i] = updated
				return
			}
		}
	})
	return updated, nil
}

func (s *Store) DeleteDestination(ctx context.Context, id string) error {
	if err := s.api.DeleteDestination(ctx, id); err != nil {
		return err
	}
	s.replace(func(d *SiteData) { d.Destinations = dropByID(d.Destinations, id, func(x apiclient.Destination) string { return x.ID.String() }) })
	return nil
}

// Airlines.

func (s *Store) CreateAirline(ctx context.Context, draft apiclient.Airline) (apiclient.Airline, error) {
	created, err := s.api.CreateAirline(ctx, draft)
	if err != nil {
		return apiclient.Airline{}, err
	}
	s.replace(func(d *SiteData) { d.Airlines = append(d.Airlines, created) })
	return created, nil
}

func (s *Store) UpdateAirline(ctx context.Context, id string, draft apiclient.Airline) (apiclient.Airline, error) {
	updated, err := s.api.UpdateAirline(ctx, id, draft)
	if err != nil {
		return apiclient.Airline{}, err
	}
	s.replace(func(d *SiteData) {
		for i := range d.Airlines {
			if d.Airlines[i].ID.String() == id {
				d.Airlines[i] = updated
				return
			}
		}
	})
	return updated, nil
}

func (s *Store) DeleteAirline(ctx context.Context, id string) error {
	if err := s.api.DeleteAirline(ctx, id); err != nil {
		return err
	}
	s.replace(func(d *SiteData) { d.Airlines = dropByID(d.Airlines, id, func(x apiclient.Airline) string { return x.ID.String() }) })
	return nil
}

// Team members.

func (s *Store) CreateTeamMember(ctx context.Context, draft apiclient.TeamMember) (apiclient.TeamMember, error) {
	created, err := s.api.CreateTeamMember(ctx, draft)
	if err != nil {
		return apiclient.TeamMember{}, err
	}
	s.replace(func(d *SiteData) { d.TeamMembers = append(d.TeamMembers, created) })
	return created, nil
}

func (s *Store) UpdateTeamMember(ctx context.Context, id string, draft apiclient.TeamMember) (apiclient.TeamMember, error) {
	updated, err := s.api.UpdateTeamMember(ctx, id, draft)
	if err != nil {
		return apiclient.TeamMember{}, err
	}
	s.replace(func(d *SiteData) {
		for i := range d.TeamMembers {
			if d.TeamMembers[i].ID.String() == id {
				d.TeamMembers[i] = updated
				return
			}
		}
	})
	return updated, nil
}

func (s *Store) DeleteTeamMember(ctx context.Context, id string) error {
	if err := s.api.DeleteTeamMember(ctx, id); err != nil {
		return err
	}
	s.replace(func(d *SiteData) { d.TeamMembers = dropByID(d.TeamMembers, id, func(x apiclient.TeamMember) string { return x.ID.String() }) })
	return nil
}

// Counter stats.

func (s *Store) CreateCounterStat(ctx context.Context, draft apiclient.CounterStat) (apiclient.CounterStat, error) {
	created, err := s.api.CreateCounterStat(ctx, draft)
	if err != nil {
		return apiclient.CounterStat{}, err
	}
	s.replace(func(d *SiteData) { d.CounterStats = append(d.CounterStats, created) })
	return created, nil
}

func (s *Store) UpdateCounterStat(ctx context.Context, id string, draft apiclient.CounterStat) (apiclient.CounterStat, error) {
	updated, err := s.api.UpdateCounterStat(ctx, id, draft)
	if err != nil {
		return apiclient.CounterStat{}, err
	}
	s.replace(func(d *SiteData) {
		for i := range d.CounterStats {
			if d.CounterStats[i].ID.String() == id {
				d.CounterStats[i] = updated
				return
			}
		}
	})
	return updated, nil
}

func (s *Store) DeleteCounterStat(ctx context.Context, id string) error {
	if err := s.api.DeleteCounterStat(ctx, id); err != nil {
		return err
	}
	s.replace(func(d *SiteData) { d.CounterStats = dropByID(d.CounterStats, id, func(x apiclient.CounterStat) string { return x.ID.String() }) })
	return nil
}

// Singletons.

func (s *Store) UpdateSiteSettings(ctx context.Context, draft apiclient.SiteSettings) (apiclient.SiteSettings, error) {
	saved, err := s.api.SaveSiteSettings(ctx, draft)
	if err != nil {
		return apiclient.SiteSettings{}, err
	}
	s.replace(func(d *SiteData) { d.SiteSettings = saved })
	return saved, nil
}

func (s *Store) UpdateAboutContent(ctx context.Context, draft apiclient.AboutContent) (apiclient.AboutContent, error) {
	saved, err := s.api.SaveAboutContent(ctx, draft)
	if err != nil {
		return apiclient.AboutContent{}, err
	}
	s.replace(func(d *SiteData) { d.AboutContent = saved })
	return saved, nil
}

// dropByID allocates a fresh slice; compacting in place would write into
// the backing array earlier snapshots still reference.
func dropByID[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}
