package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"mohsin_travel/internal/domain"
)

const defaultHotelRating = 3

// ContentService owns the authenticated mutation paths. Payloads arrive as
// decoded JSON objects so the alias registry can normalize wire spellings
// before anything typed sees them.
type ContentService struct {
	repo     domain.ContentRepository
	cache    domain.Cache
	validate *validator.Validate
}

func NewContentService(r domain.ContentRepository, cache domain.Cache) *ContentService {
	return &ContentService{repo: r, cache: cache, validate: validator.New()}
}

func (s *ContentService) check(in any) error {
	if err := s.validate.Struct(in); err != nil {
		return validationError(err)
	}
	return nil
}

// ---- packages ----

func (s *ContentService) decodePackage(payload map[string]any, create bool) (packageInput, error) {
	norm := normalizePayload(payload, packageAliases)
	if create {
		if err := requireFields(norm, packageRequired); err != nil {
			return packageInput{}, err
		}
	}
	var in packageInput
	if err := decodeInto(norm, &in); err != nil {
		return packageInput{}, err
	}
	return in, s.check(in)
}

func (s *ContentService) CreatePackage(ctx context.Context, payload map[string]any) (domain.Package, error) {
	in, err := s.decodePackage(payload, true)
	if err != nil {
		return domain.Package{}, err
	}
	p := domain.Package{
		Name:        *in.Name,
		Duration:    *in.Duration,
		Price:       *in.Price,
		Hotel:       *in.Hotel,
		HotelRating: defaultHotelRating,
		Distance:    *in.Distance,
		Image:       in.Image,
	}
	if in.HotelRating != nil {
		p.HotelRating = *in.HotelRating
	}
	if in.Inclusions != nil {
		p.Inclusions = *in.Inclusions
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	created, err := s.repo.CreatePackage(ctx, p)
	if err != nil {
		return domain.Package{}, err
	}
	s.invalidatePackages(ctx, created.ID)
	return created, nil
}

func (s *ContentService) UpdatePackage(ctx context.Context, id int64, payload map[string]any) (domain.Package, error) {
	in, err := s.decodePackage(payload, false)
	if err != nil {
		return domain.Package{}, err
	}
	patch := domain.PackagePatch{
		Name: in.Name, Duration: in.Duration, Price: in.Price, Hotel: in.Hotel,
		HotelRating: in.HotelRating, Distance: in.Distance,
		Inclusions: in.Inclusions, Featured: in.Featured, Image: in.Image,
	}
	updated, err := s.repo.UpdatePackage(ctx, id, patch)
	if err != nil {
		return domain.Package{}, err
	}
	s.invalidatePackages(ctx, id)
	return updated, nil
}

func (s *ContentService) DeletePackage(ctx context.Context, id int64) error {
	if err := s.repo.DeletePackage(ctx, id); err != nil {
		return err
	}
	s.invalidatePackages(ctx, id)
	return nil
}

// ---- destinations ----

func (s *ContentService) decodeDestination(payload map[string]any, create bool) (destinationInput, error) {
	norm := normalizePayload(payload, destinationAliases)
	if create {
		if err := requireFields(norm, destinationRequired); err != nil {
			return destinationInput{}, err
		}
	}
	var in destinationInput
	if err := decodeInto(norm, &in); err != nil {
		return destinationInput{}, err
	}
	return in, s.check(in)
}

func (s *ContentService) CreateDestination(ctx context.Context, payload map[string]any) (domain.Destination, error) {
	in, err := s.decodeDestination(payload, true)
	if err != nil {
		return domain.Destination{}, err
	}
	created, err := s.repo.CreateDestination(ctx, domain.Destination{
		City: *in.City, Country: *in.Country, FromPrice: *in.FromPrice, Image: *in.Image,
	})
	if err != nil {
		return domain.Destination{}, err
	}
	s.invalidate(ctx, "destinations:all", fmt.Sprintf("destination:%d", created.ID))
	return created, nil
}

func (s *ContentService) UpdateDestination(ctx context.Context, id int64, payload map[string]any) (domain.Destination, error) {
	in, err := s.decodeDestination(payload, false)
	if err != nil {
		return domain.Destination{}, err
	}
	updated, err := s.repo.UpdateDestination(ctx, id, domain.DestinationPatch{
		City: in.City, Country: in.Country, FromPrice: in.FromPrice, Image: in.Image,
	})
	if err != nil {
		return domain.Destination{}, err
	}
	s.invalidate(ctx, "destinations:all", fmt.Sprintf("destination:%d", id))
	return updated, nil
}

func (s *ContentService) DeleteDestination(ctx context.Context, id int64) error {
	if err := s.repo.DeleteDestination(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, "destinations:all", fmt.Sprintf("destination:%d", id))
	return nil
}

// ---- airlines ----

func (s *ContentService) decodeAirline(payload map[string]any, create bool) (airlineInput, error) {
	norm := normalizePayload(payload, airlineAliases)
	if create {
		if err := requireFields(norm, airlineRequired); err != nil {
			return airlineInput{}, err
		}
	}
	var in airlineInput
	if err := decodeInto(norm, &in); err != nil {
		return airlineInput{}, err
	}
	return in, s.check(in)
}

func (s *ContentService) CreateAirline(ctx context.Context, payload map[string]any) (domain.Airline, error) {
	in, err := s.decodeAirline(payload, true)
	if err != nil {
		return domain.Airline{}, err
	}
	created, err := s.repo.CreateAirline(ctx, domain.Airline{Name: *in.Name, Logo: *in.Logo})
	if err != nil {
		return domain.Airline{}, err
	}
	s.invalidate(ctx, "airlines:all", fmt.Sprintf("airline:%d", created.ID))
	return created, nil
}

func (s *ContentService) UpdateAirline(ctx context.Context, id int64, payload map[string]any) (domain.Airline, error) {
	in, err := s.decodeAirline(payload, false)
	if err != nil {
		return domain.Airline{}, err
	}
	updated, err := s.repo.UpdateAirline(ctx, id, domain.AirlinePatch{Name: in.Name, Logo: in.Logo})
	if err != nil {
		return domain.Airline{}, err
	}
	s.invalidate(ctx, "airlines:all", fmt.Sprintf("airline:%d", id))
	return updated, nil
}

func (s *ContentService) DeleteAirline(ctx context.Context, id int64) error {
	if err := s.repo.DeleteAirline(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, "airlines:all", fmt.Sprintf("airline:%d", id))
	return nil
}

// ---- team members ----

func (s *ContentService) decodeTeamMember(payload map[string]any, create bool) (teamMemberInput, error) {
	norm := normalizePayload(payload, teamMemberAliases)
	if create {
		if err := requireFields(norm, teamMemberRequired); err != nil {
			return teamMemberInput{}, err
		}
	}
	var in teamMemberInput
	if err := decodeInto(norm, &in); err != nil {
		return teamMemberInput{}, err
	}
	return in, s.check(in)
}

func (s *ContentService) CreateTeamMember(ctx context.Context, payload map[string]any) (domain.TeamMember, error) {
	in, err := s.decodeTeamMember(payload, true)
	if err != nil {
		return domain.TeamMember{}, err
	}
	created, err := s.repo.CreateTeamMember(ctx, domain.TeamMember{
		Name: *in.Name, Role: *in.Role, Description: *in.Description,
	})
	if err != nil {
		return domain.TeamMember{}, err
	}
	s.invalidate(ctx, "team-members:all", fmt.Sprintf("team-member:%d", created.ID))
	return created, nil
}

func (s *ContentService) UpdateTeamMember(ctx context.Context, id int64, payload map[string]any) (domain.TeamMember, error) {
	in, err := s.decodeTeamMember(payload, false)
	if err != nil {
		return domain.TeamMember{}, err
	}
	updated, err := s.repo.UpdateTeamMember(ctx, id, domain.TeamMemberPatch{
		Name: in.Name, Role: in.Role, Description: in.Description,
	})
	if err != nil {
		return domain.TeamMember{}, err
	}
	s.invalidate(ctx, "team-members:all", fmt.Sprintf("team-member:%d", id))
	return updated, nil
}

func (s *ContentService) DeleteTeamMember(ctx context.Context, id int64) error {
	if err := s.repo.DeleteTeamMember(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, "team-members:all", fmt.Sprintf("team-member:%d", id))
	return nil
}

// ---- counter stats ----

func (s *ContentService) decodeCounterStat(payload map[string]any, create bool) (counterStatInput, error) {
	norm := normalizePayload(payload, counterStatAliases)
	if create {
		if err := requireFields(norm, counterStatRequired); err != nil {
			return counterStatInput{}, err
		}
	}
	var in counterStatInput
	if err := decodeInto(norm, &in); err != nil {
		return counterStatInput{}, err
	}
	return in, s.check(in)
}

func (s *ContentService) CreateCounterStat(ctx context.Context, payload map[string]any) (domain.CounterStat, error) {
	in, err := s.decodeCounterStat(payload, true)
	if err != nil {
		return domain.CounterStat{}, err
	}
	created, err := s.repo.CreateCounterStat(ctx, domain.CounterStat{
		Icon: *in.Icon, Target: *in.Target, Suffix: *in.Suffix, Label: *in.Label,
	})
	if err != nil {
		return domain.CounterStat{}, err
	}
	s.invalidate(ctx, "counter-stats:all", fmt.Sprintf("counter-stat:%d", created.ID))
	return created, nil
}

func (s *ContentService) UpdateCounterStat(ctx context.Context, id int64, payload map[string]any) (domain.CounterStat, error) {
	in, err := s.decodeCounterStat(payload, false)
	if err != nil {
		return domain.CounterStat{}, err
	}
	updated, err := s.repo.UpdateCounterStat(ctx, id, domain.CounterStatPatch{
		Icon: in.Icon, Target: in.Target, Suffix: in.Suffix, Label: in.Label,
	})
	if err != nil {
		return domain.CounterStat{}, err
	}
	s.invalidate(ctx, "counter-stats:all", fmt.Sprintf("counter-stat:%d", id))
	return updated, nil
}

func (s *ContentService) DeleteCounterStat(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCounterStat(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, "counter-stats:all", fmt.Sprintf("counter-stat:%d", id))
	return nil
}

// ---- singletons ----

func (s *ContentService) decodeSiteSettings(payload map[string]any) (siteSettingsInput, error) {
	var in siteSettingsInput
	if err := decodeInto(normalizePayload(payload, siteSettingsAliases), &in); err != nil {
		return siteSettingsInput{}, err
	}
	return in, s.check(in)
}

// SaveSiteSettings implements POST's create-or-replace: merge onto the
// existing row, or onto a blank record when none exists yet. Calling it
// twice with the same payload still leaves exactly one row.
func (s *ContentService) SaveSiteSettings(ctx context.Context, payload map[string]any) (domain.SiteSettings, error) {
	in, err := s.decodeSiteSettings(payload)
	if err != nil {
		return domain.SiteSettings{}, err
	}
	patch := domain.SiteSettingsPatch{
		CompanyName: in.CompanyName, Email: in.Email, Phones: in.Phones,
		Whatsapp: in.Whatsapp, Address: in.Address,
		SocialLinks: in.SocialLinks, BusinessHours: in.BusinessHours,
	}
	saved, err := s.repo.UpdateSiteSettings(ctx, patch)
	if err == domain.ErrNotFound {
		saved, err = s.repo.InsertSiteSettings(ctx, applySiteSettingsPatch(domain.SiteSettings{}, patch))
	}
	if err != nil {
		return domain.SiteSettings{}, err
	}
	s.invalidate(ctx, "site-settings")
	return saved, nil
}

// UpdateSiteSettings implements PUT: the row must already exist.
func (s *ContentService) UpdateSiteSettings(ctx context.Context, payload map[string]any) (domain.SiteSettings, error) {
	in, err := s.decodeSiteSettings(payload)
	if err != nil {
		return domain.SiteSettings{}, err
	}
	updated, err := s.repo.UpdateSiteSettings(ctx, domain.SiteSettingsPatch{
		CompanyName: in.CompanyName, Email: in.Email, Phones: in.Phones,
		Whatsapp: in.Whatsapp, Address: in.Address,
		SocialLinks: in.SocialLinks, BusinessHours: in.BusinessHours,
	})
	if err != nil {
		return domain.SiteSettings{}, err
	}
	s.invalidate(ctx, "site-settings")
	return updated, nil
}

func (s *ContentService) decodeAboutContent(payload map[string]any) (aboutContentInput, error) {
	var in aboutContentInput
	if err := decodeInto(normalizePayload(payload, aboutContentAliases), &in); err != nil {
		return aboutContentInput{}, err
	}
	return in, s.check(in)
}

func (s *ContentService) SaveAboutContent(ctx context.Context, payload map[string]any) (domain.AboutContent, error) {
	in, err := s.decodeAboutContent(payload)
	if err != nil {
		return domain.AboutContent{}, err
	}
	patch := domain.AboutContentPatch{
		HeroTitle: in.HeroTitle, HeroDescription: in.HeroDescription,
		MainTitle: in.MainTitle, Paragraphs: in.Paragraphs,
		Mission: in.Mission, Vision: in.Vision, YearsExperience: in.YearsExperience,
	}
	saved, err := s.repo.UpdateAboutContent(ctx, patch)
	if err == domain.ErrNotFound {
		saved, err = s.repo.InsertAboutContent(ctx, applyAboutContentPatch(domain.AboutContent{}, patch))
	}
	if err != nil {
		return domain.AboutContent{}, err
	}
	s.invalidate(ctx, "about-content")
	return saved, nil
}

func (s *ContentService) UpdateAboutContent(ctx context.Context, payload map[string]any) (domain.AboutContent, error) {
	in, err := s.decodeAboutContent(payload)
	if err != nil {
		return domain.AboutContent{}, err
	}
	updated, err := s.repo.UpdateAboutContent(ctx, domain.AboutContentPatch{
		HeroTitle: in.HeroTitle, HeroDescription: in.HeroDescription,
		MainTitle: in.MainTitle, Paragraphs: in.Paragraphs,
		Mission: in.Mission, Vision: in.Vision, YearsExperience: in.YearsExperience,
	})
	if err != nil {
		return domain.AboutContent{}, err
	}
	s.invalidate(ctx, "about-content")
	return updated, nil
}

func applySiteSettingsPatch(base domain.SiteSettings, p domain.SiteSettingsPatch) domain.SiteSettings {
	if p.CompanyName != nil {
		base.CompanyName = *p.CompanyName
	}
	if p.Email != nil {
		base.Email = *p.Email
	}
	if p.Phones != nil {
		base.Phones = *p.Phones
	}
	if p.Whatsapp != nil {
		base.Whatsapp = *p.Whatsapp
	}
	if p.Address != nil {
		base.Address = *p.Address
	}
	if p.SocialLinks != nil {
		base.SocialLinks = *p.SocialLinks
	}
	if p.BusinessHours != nil {
		base.BusinessHours = *p.BusinessHours
	}
	return base
}

func applyAboutContentPatch(base domain.AboutContent, p domain.AboutContentPatch) domain.AboutContent {
	if p.HeroTitle != nil {
		base.HeroTitle = *p.HeroTitle
	}
	if p.HeroDescription != nil {
		base.HeroDescription = *p.HeroDescription
	}
	if p.MainTitle != nil {
		base.MainTitle = *p.MainTitle
	}
	if p.Paragraphs != nil {
		base.Paragraphs = *p.Paragraphs
	}
	if p.Mission != nil {
		base.Mission = *p.Mission
	}
	if p.Vision != nil {
		base.Vision = *p.Vision
	}
	if p.YearsExperience != nil {
		base.YearsExperience = *p.YearsExperience
	}
	return base
}

// ---- cache invalidation ----

func (s *ContentService) invalidatePackages(ctx context.Context, id int64) {
	s.invalidate(ctx, "packages:all", fmt.Sprintf("package:%d", id))
}

func (s *ContentService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	for _, k := range keys {
		_ = s.cache.Del(ctx, k)
	}
}
