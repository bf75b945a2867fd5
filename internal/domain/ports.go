package domain

import "context"

// ContentRepository owns durable state for all seven entity kinds.
// Get/Update/Delete return ErrNotFound when the row (or singleton) is absent.
type ContentRepository interface {
	// Packages
	ListPackages(ctx context.Context) ([]Package, error)
	GetPackage(ctx context.Context, id int64) (Package, error)
	CreatePackage(ctx context.Context, p Package) (Package, error)
	UpdatePackage(ctx context.Context, id int64, patch PackagePatch) (Package, error)
	DeletePackage(ctx context.Context, id int64) error

	// Destinations
	ListDestinations(ctx context.Context) ([]Destination, error)
	GetDestination(ctx context.Context, id int64) (Destination, error)
	CreateDestination(ctx context.Context, d Destination) (Destination, error)
	UpdateDestination(ctx context.Context, id int64, patch DestinationPatch) (Destination, error)
	DeleteDestination(ctx context.Context, id int64) error

	// Airlines
	ListAirlines(ctx context.Context) ([]Airline, error)
	GetAirline(ctx context.Context, id int64) (Airline, error)
	CreateAirline(ctx context.Context, a Airline) (Airline, error)
	UpdateAirline(ctx context.Context, id int64, patch AirlinePatch) (Airline, error)
	DeleteAirline(ctx context.Context, id int64) error

	// Team members
	ListTeamMembers(ctx context.Context) ([]TeamMember, error)
	GetTeamMember(ctx context.Context, id int64) (TeamMember, error)
	CreateTeamMember(ctx context.Context, m TeamMember) (TeamMember, error)
	UpdateTeamMember(ctx context.Context, id int64, patch TeamMemberPatch) (TeamMember, error)
	DeleteTeamMember(ctx context.Context, id int64) error

	// Counter stats
	ListCounterStats(ctx context.Context) ([]CounterStat, error)
	GetCounterStat(ctx context.Context, id int64) (CounterStat, error)
	CreateCounterStat(ctx context.Context, s CounterStat) (CounterStat, error)
	UpdateCounterStat(ctx context.Context, id int64, patch CounterStatPatch) (CounterStat, error)
	DeleteCounterStat(ctx context.Context, id int64) error

	// Singletons. The create-or-merge decision belongs to the content
	// service; the repo stays primitive.
	GetSiteSettings(ctx context.Context) (SiteSettings, error)
	InsertSiteSettings(ctx context.Context, s SiteSettings) (SiteSettings, error)
	UpdateSiteSettings(ctx context.Context, patch SiteSettingsPatch) (SiteSettings, error)

	GetAboutContent(ctx context.Context) (AboutContent, error)
	InsertAboutContent(ctx context.Context, c AboutContent) (AboutContent, error)
	UpdateAboutContent(ctx context.Context, patch AboutContentPatch) (AboutContent, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Identity is the resolved admin behind a bearer token. Downstream logic
// only gates on its presence.
type Identity struct {
	Email string `json:"email"`
}

type SessionVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
