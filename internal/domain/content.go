package domain

import "time"

// Collection entities. IDs are assigned by the store on create.

type Package struct {
	ID          int64
	Name        string
	Duration    string
	Price       string
	Hotel       string
	HotelRating int // 1..5, defaults to 3
	Distance    string
	Inclusions  []string
	Featured    bool
	Image       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Destination struct {
	ID        int64
	City      string
	Country   string
	FromPrice string // display string, e.g. "PKR 85,000"
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Airline struct {
	ID        int64
	Name      string
	Logo      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TeamMember struct {
	ID          int64
	Name        string
	Role        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CounterStat struct {
	ID        int64
	Icon      string // key into the client's fixed icon set
	Target    int
	Suffix    string
	Label     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Singleton entities: exactly one row each, created lazily on first write.

type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Youtube   string `json:"youtube"`
	Whatsapp  string `json:"whatsapp"`
}

type BusinessHour struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

type SiteSettings struct {
	ID            int64
	CompanyName   string
	Email         string
	Phones        []string
	Whatsapp      string // digits only, no leading +
	Address       string
	SocialLinks   SocialLinks
	BusinessHours []BusinessHour
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AboutContent struct {
	ID              int64
	HeroTitle       string
	HeroDescription string
	MainTitle       string
	Paragraphs      []string
	Mission         string
	Vision          string
	YearsExperience int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Patches carry only the fields present in a PUT body; nil means "leave as is".

type PackagePatch struct {
	Name        *string
	Duration    *string
	Price       *string
	Hotel       *string
	HotelRating *int
	Distance    *string
	Inclusions  *[]string
	Featured    *bool
	Image       *string
}

type DestinationPatch struct {
	City      *string
	Country   *string
	FromPrice *string
	Image     *string
}

type AirlinePatch struct {
	Name *string
	Logo *string
}

type TeamMemberPatch struct {
	Name        *string
	Role        *string
	Description *string
}

type CounterStatPatch struct {
	Icon   *string
	Target *int
	Suffix *string
	Label  *string
}

type SiteSettingsPatch struct {
	CompanyName   *string
	Email         *string
	Phones        *[]string
	Whatsapp      *string
	Address       *string
	SocialLinks   *SocialLinks
	BusinessHours *[]BusinessHour
}

type AboutContentPatch struct {
	HeroTitle       *string
	HeroDescription *string
	MainTitle       *string
	Paragraphs      *[]string
	Mission         *string
	Vision          *string
	YearsExperience *int
}
