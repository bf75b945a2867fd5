package app

import (
	"context"
	"fmt"
	"time"

	"mohsin_travel/internal/domain"
)

// QueryService serves the public read paths through a read-through cache.
// Mutations invalidate the same keys (see commands.go).
type QueryService struct {
	repo     domain.ContentRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.ContentRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) ttlSec() int { return int(s.cacheTTL.Seconds()) }

func cachedList[T any](ctx context.Context, s *QueryService, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	var out []T
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, out, s.ttlSec())
	return out, nil
}

func cachedOne[T any](ctx context.Context, s *QueryService, key string, fetch func(context.Context) (T, error)) (T, error) {
	var out T
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	_ = s.cache.Set(ctx, key, out, s.ttlSec())
	return out, nil
}

func (s *QueryService) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return cachedList(ctx, s, "packages:all", s.repo.ListPackages)
}

func (s *QueryService) GetPackage(ctx context.Context, id int64) (domain.Package, error) {
	return cachedOne(ctx, s, fmt.Sprintf("package:%d", id), func(ctx context.Context) (domain.Package, error) {
		return s.repo.GetPackage(ctx, id)
	})
}

func (s *QueryService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return cachedList(ctx, s, "destinations:all", s.repo.ListDestinations)
}

func (s *QueryService) GetDestination(ctx context.Context, id int64) (domain.Destination, error) {
	return cachedOne(ctx, s, fmt.Sprintf("destination:%d", id), func(ctx context.Context) (domain.Destination, error) {
		return s.repo.GetDestination(ctx, id)
	})
}

func (s *QueryService) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	return cachedList(ctx, s, "airlines:all", s.repo.ListAirlines)
}

func (s *QueryService) GetAirline(ctx context.Context, id int64) (domain.Airline, error) {
	return cachedOne(ctx, s, fmt.Sprintf("airline:%d", id), func(ctx context.Context) (domain.Airline, error) {
		return s.repo.GetAirline(ctx, id)
	})
}

func (s *QueryService) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	return cachedList(ctx, s, "team-members:all", s.repo.ListTeamMembers)
}

func (s *QueryService) GetTeamMember(ctx context.Context, id int64) (domain.TeamMember, error) {
	return cachedOne(ctx, s, fmt.Sprintf("team-member:%d", id), func(ctx context.Context) (domain.TeamMember, error) {
		return s.repo.GetTeamMember(ctx, id)
	})
}

func (s *QueryService) ListCounterStats(ctx context.Context) ([]domain.CounterStat, error) {
	return cachedList(ctx, s, "counter-stats:all", s.repo.ListCounterStats)
}

func (s *QueryService) GetCounterStat(ctx context.Context, id int64) (domain.CounterStat, error) {
	return cachedOne(ctx, s, fmt.Sprintf("counter-stat:%d", id), func(ctx context.Context) (domain.CounterStat, error) {
		return s.repo.GetCounterStat(ctx, id)
	})
}

// Singleton reads: absence is not cached, callers map ErrNotFound to null.

func (s *QueryService) GetSiteSettings(ctx context.Context) (domain.SiteSettings, error) {
	return cachedOne(ctx, s, "site-settings", s.repo.GetSiteSettings)
}

func (s *QueryService) GetAboutContent(ctx context.Context) (domain.AboutContent, error) {
	return cachedOne(ctx, s, "about-content", s.repo.GetAboutContent)
}
