package app

import (
	"encoding/json"
	"time"

	"mohsin_travel/internal/domain"
)

/********** alias registries (single source of truth) **********/

// Inbound payloads may spell multi-word fields either camelCase (the wire
// form) or snake_case (the storage form). Each canonical storage key lists
// the spellings accepted for it; normalization rewrites payloads to
// canonical keys and drops anything unknown. Running an already-normalized
// payload through again is a no-op.

var packageAliases = map[string][]string{
	"name":         {"name"},
	"duration":     {"duration"},
	"price":        {"price"},
	"hotel":        {"hotel"},
	"hotel_rating": {"hotel_rating", "hotelRating"},
	"distance":     {"distance"},
	"inclusions":   {"inclusions"},
	"featured":     {"featured"},
	"image":        {"image"},
}

var destinationAliases = map[string][]string{
	"city":       {"city"},
	"country":    {"country"},
	"from_price": {"from_price", "from", "fromPrice"},
	"image":      {"image"},
}

var airlineAliases = map[string][]string{
	"name": {"name"},
	"logo": {"logo"},
}

var teamMemberAliases = map[string][]string{
	"name":        {"name"},
	"role":        {"role"},
	"description": {"description"},
}

var counterStatAliases = map[string][]string{
	"icon":   {"icon"},
	"target": {"target"},
	"suffix": {"suffix"},
	"label":  {"label"},
}

var siteSettingsAliases = map[string][]string{
	"company_name":   {"company_name", "companyName"},
	"email":          {"email"},
	"phones":         {"phones"},
	"whatsapp":       {"whatsapp"},
	"address":        {"address"},
	"social_links":   {"social_links", "socialLinks"},
	"business_hours": {"business_hours", "businessHours"},
}

var aboutContentAliases = map[string][]string{
	"hero_title":       {"hero_title", "heroTitle"},
	"hero_description": {"hero_description", "heroDescription"},
	"main_title":       {"main_title", "mainTitle"},
	"paragraphs":       {"paragraphs"},
	"mission":          {"mission"},
	"vision":           {"vision"},
	"years_experience": {"years_experience", "yearsExperience"},
}

// Required keys checked on create only; updates are partial merges.

var packageRequired = []string{"name", "duration", "price", "hotel", "distance"}
var destinationRequired = []string{"city", "country", "from_price", "image"}
var airlineRequired = []string{"name", "logo"}
var teamMemberRequired = []string{"name", "role", "description"}
var counterStatRequired = []string{"icon", "target", "suffix", "label"}

// normalizePayload rewrites wire keys to canonical storage keys. The first
// alias listed for a key wins when a payload carries both spellings.
func normalizePayload(raw map[string]any, aliases map[string][]string) map[string]any {
	out := make(map[string]any, len(raw))
	for canonical, spellings := range aliases {
		for _, k := range spellings {
			if v, ok := raw[k]; ok {
				out[canonical] = v
				break
			}
		}
	}
	return out
}

// decodeInto maps a canonical-keyed payload onto a pointer-field input
// struct via JSON, so absent keys stay nil.
func decodeInto(payload map[string]any, dst any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return &ValidationError{Fields: map[string]string{"body": "malformed field value"}}
	}
	return nil
}

/********** inbound input structs (canonical snake_case keys) **********/

type packageInput struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Duration    *string   `json:"duration" validate:"omitempty,min=1,max=255"`
	Price       *string   `json:"price" validate:"omitempty,min=1,max=255"`
	Hotel       *string   `json:"hotel" validate:"omitempty,min=1,max=255"`
	HotelRating *int      `json:"hotel_rating" validate:"omitempty,min=1,max=5"`
	Distance    *string   `json:"distance" validate:"omitempty,min=1,max=255"`
	Inclusions  *[]string `json:"inclusions"`
	Featured    *bool     `json:"featured"`
	Image       *string   `json:"image"`
}

type destinationInput struct {
	City      *string `json:"city" validate:"omitempty,min=1,max=255"`
	Country   *string `json:"country" validate:"omitempty,min=1,max=255"`
	FromPrice *string `json:"from_price" validate:"omitempty,min=1,max=255"`
	Image     *string `json:"image" validate:"omitempty,min=1"`
}

type airlineInput struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
	Logo *string `json:"logo" validate:"omitempty,min=1"`
}

type teamMemberInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Role        *string `json:"role" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

type counterStatInput struct {
	Icon   *string `json:"icon" validate:"omitempty,min=1,max=64"`
	Target *int    `json:"target" validate:"omitempty,min=0"`
	Suffix *string `json:"suffix" validate:"omitempty,max=16"`
	Label  *string `json:"label" validate:"omitempty,min=1,max=255"`
}

type siteSettingsInput struct {
	CompanyName   *string                `json:"company_name" validate:"omitempty,min=1,max=255"`
	Email         *string                `json:"email" validate:"omitempty,email"`
	Phones        *[]string              `json:"phones"`
	Whatsapp      *string                `json:"whatsapp" validate:"omitempty,max=32"`
	Address       *string                `json:"address"`
	SocialLinks   *domain.SocialLinks    `json:"social_links"`
	BusinessHours *[]domain.BusinessHour `json:"business_hours"`
}

type aboutContentInput struct {
	HeroTitle       *string   `json:"hero_title" validate:"omitempty,min=1,max=255"`
	HeroDescription *string   `json:"hero_description"`
	MainTitle       *string   `json:"main_title" validate:"omitempty,min=1,max=255"`
	Paragraphs      *[]string `json:"paragraphs"`
	Mission         *string   `json:"mission"`
	Vision          *string   `json:"vision"`
	YearsExperience *int      `json:"years_experience" validate:"omitempty,min=0"`
}

/********** outbound wire views (camelCase, derived from storage only) **********/

type PackageWire struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Duration    string    `json:"duration"`
	Price       string    `json:"price"`
	Hotel       string    `json:"hotel"`
	HotelRating int       `json:"hotelRating"`
	Distance    string    `json:"distance"`
	Inclusions  []string  `json:"inclusions"`
	Featured    bool      `json:"featured"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type DestinationWire struct {
	ID        int64     `json:"id"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	From      string    `json:"from"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AirlineWire struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TeamMemberWire struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CounterStatWire struct {
	ID        int64     `json:"id"`
	Icon      string    `json:"icon"`
	Target    int       `json:"target"`
	Suffix    string    `json:"suffix"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SiteSettingsWire struct {
	ID            int64                 `json:"id"`
	CompanyName   string                `json:"companyName"`
	Email         string                `json:"email"`
	Phones        []string              `json:"phones"`
	Whatsapp      string                `json:"whatsapp"`
	Address       string                `json:"address"`
	SocialLinks   domain.SocialLinks    `json:"socialLinks"`
	BusinessHours []domain.BusinessHour `json:"businessHours"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

type AboutContentWire struct {
	ID              int64     `json:"id"`
	HeroTitle       string    `json:"heroTitle"`
	HeroDescription string    `json:"heroDescription"`
	MainTitle       string    `json:"mainTitle"`
	Paragraphs      []string  `json:"paragraphs"`
	Mission         string    `json:"mission"`
	Vision          string    `json:"vision"`
	YearsExperience int       `json:"yearsExperience"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func PackageToWire(p domain.Package) PackageWire {
	return PackageWire{
		ID: p.ID, Name: p.Name, Duration: p.Duration, Price: p.Price,
		Hotel: p.Hotel, HotelRating: p.HotelRating, Distance: p.Distance,
		Inclusions: emptySlice(p.Inclusions), Featured: p.Featured, Image: p.Image,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

func PackagesToWire(ps []domain.Package) []PackageWire {
	out := make([]PackageWire, 0, len(ps))
	for _, p := range ps {
		out = append(out, PackageToWire(p))
	}
	return out
}

func DestinationToWire(d domain.Destination) DestinationWire {
	return DestinationWire{
		ID: d.ID, City: d.City, Country: d.Country, From: d.FromPrice,
		Image: d.Image, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

func DestinationsToWire(ds []domain.Destination) []DestinationWire {
	out := make([]DestinationWire, 0, len(ds))
	for _, d := range ds {
		out = append(out, DestinationToWire(d))
	}
	return out
}

func AirlineToWire(a domain.Airline) AirlineWire {
	return AirlineWire{ID: a.ID, Name: a.Name, Logo: a.Logo, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

func AirlinesToWire(as []domain.Airline) []AirlineWire {
	out := make([]AirlineWire, 0, len(as))
	for _, a := range as {
		out = append(out, AirlineToWire(a))
	}
	return out
}

func TeamMemberToWire(m domain.TeamMember) TeamMemberWire {
	return TeamMemberWire{
		ID: m.ID, Name: m.Name, Role: m.Role, Description: m.Description,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func TeamMembersToWire(ms []domain.TeamMember) []TeamMemberWire {
	out := make([]TeamMemberWire, 0, len(ms))
	for _, m := range ms {
		out = append(out, TeamMemberToWire(m))
	}
	return out
}

func CounterStatToWire(s domain.CounterStat) CounterStatWire {
	return CounterStatWire{
		ID: s.ID, Icon: s.Icon, Target: s.Target, Suffix: s.Suffix, Label: s.Label,
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

func CounterStatsToWire(ss []domain.CounterStat) []CounterStatWire {
	out := make([]CounterStatWire, 0, len(ss))
	for _, s := range ss {
		out = append(out, CounterStatToWire(s))
	}
	return out
}

func SiteSettingsToWire(s domain.SiteSettings) SiteSettingsWire {
	return SiteSettingsWire{
		ID: s.ID, CompanyName: s.CompanyName, Email: s.Email,
		Phones: emptySlice(s.Phones), Whatsapp: s.Whatsapp, Address: s.Address,
		SocialLinks: s.SocialLinks, BusinessHours: emptyHours(s.BusinessHours),
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

func AboutContentToWire(c domain.AboutContent) AboutContentWire {
	return AboutContentWire{
		ID: c.ID, HeroTitle: c.HeroTitle, HeroDescription: c.HeroDescription,
		MainTitle: c.MainTitle, Paragraphs: emptySlice(c.Paragraphs),
		Mission: c.Mission, Vision: c.Vision, YearsExperience: c.YearsExperience,
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

// emptySlice keeps JSON arrays as [] rather than null.
func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyHours(h []domain.BusinessHour) []domain.BusinessHour {
	if h == nil {
		return []domain.BusinessHour{}
	}
	return h
}
