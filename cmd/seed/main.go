// Seeds an empty deployment with the bundled default dataset by pushing it
// through the public REST API, exactly the way the admin UI would.
package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"mohsin_travel/internal/adapters/apiclient"
	"mohsin_travel/internal/adapters/observability"
	"mohsin_travel/internal/shared"
	"mohsin_travel/internal/sitedata"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.APIBaseURL).
		Int("workers", cfg.SeedWorkers).
		Int("rps", cfg.SeedRPS).
		Msg("seeder starting")

	client := apiclient.New(cfg.APIBaseURL, &apiclient.Session{})
	if err := client.Login(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("login failed; set ADMIN_EMAIL and ADMIN_PASSWORD")
	}

	defaults := sitedata.Defaults()
	limiter := rate.NewLimiter(rate.Limit(cfg.SeedRPS), 1)
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	// run schedules one API call through the limiter and the worker pool.
	run := func(label string, call func(context.Context) error) {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := limiter.Wait(ctx); err != nil {
				log.Warn().Str("item", label).Err(err).Msg("rate limiter interrupted")
				return
			}
			if err := call(ctx); err != nil {
				log.Warn().Str("item", label).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("item", label).Msg("seed ok")
		}()
	}

	for _, p := range defaults.UmrahPackages {
		p := p
		p.ID = ""
		run("package "+p.Name, func(ctx context.Context) error {
			_, err := client.CreatePackage(ctx, p)
			return err
		})
	}
	for _, d := range defaults.Destinations {
		d := d
		d.ID = ""
		run("destination "+d.City, func(ctx context.Context) error {
			_, err := client.CreateDestination(ctx, d)
			return err
		})
	}
	for _, a := range defaults.Airlines {
		a := a
		a.ID = ""
		run("airline "+a.Name, func(ctx context.Context) error {
			_, err := client.CreateAirline(ctx, a)
			return err
		})
	}
	for _, m := range defaults.TeamMembers {
		m := m
		m.ID = ""
		run("team member "+m.Name, func(ctx context.Context) error {
			_, err := client.CreateTeamMember(ctx, m)
			return err
		})
	}
	for _, s := range defaults.CounterStats {
		s := s
		s.ID = ""
		run("counter stat "+s.Label, func(ctx context.Context) error {
			_, err := client.CreateCounterStat(ctx, s)
			return err
		})
	}
	run("site settings", func(ctx context.Context) error {
		_, err := client.SaveSiteSettings(ctx, defaults.SiteSettings)
		return err
	})
	run("about content", func(ctx context.Context) error {
		_, err := client.SaveAboutContent(ctx, defaults.AboutContent)
		return err
	})

	wg.Wait()

	if err := client.Logout(ctx); err != nil {
		log.Warn().Err(err).Msg("logout failed")
	}
	log.Info().Msg("seeding completed")
}
