package apiclient

import (
	"bytes"
	"strconv"
)

// ID is string-typed on the client while the server stores integers; it
// decodes from either JSON form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) >= 2 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	*id = ID(b)
	return nil
}

func (id ID) String() string { return string(id) }

// Wire shapes as the admin UI consumes them (camelCase, no timestamps).
// Zero-valued fields are omitted on marshal: the server treats every
// present key as a patch field, so an unset field must stay off the wire.

type Package struct {
	ID          ID       `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Price       string   `json:"price,omitempty"`
	Hotel       string   `json:"hotel,omitempty"`
	HotelRating int      `json:"hotelRating,omitempty"`
	Distance    string   `json:"distance,omitempty"`
	Inclusions  []string `json:"inclusions,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	Image       string   `json:"image,omitempty"`
}

type Destination struct {
	ID      ID     `json:"id,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	From    string `json:"from,omitempty"`
	Image   string `json:"image,omitempty"`
}

type Airline struct {
	ID   ID     `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Logo string `json:"logo,omitempty"`
}

type TeamMember struct {
	ID          ID     `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
}

type CounterStat struct {
	ID     ID     `json:"id,omitempty"`
	Icon   string `json:"icon,omitempty"`
	Target int    `json:"target,omitempty"`
	Suffix string `json:"suffix,omitempty"`
	Label  string `json:"label,omitempty"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
	Whatsapp  string `json:"whatsapp,omitempty"`
}

type BusinessHour struct {
	Day   string `json:"day,omitempty"`
	Hours string `json:"hours,omitempty"`
}

// SocialLinks is a pointer so a partial save leaves the stored links alone
// instead of overwriting them with zeros.
type SiteSettings struct {
	CompanyName   string         `json:"companyName,omitempty"`
	Email         string         `json:"email,omitempty"`
	Phones        []string       `json:"phones,omitempty"`
	Whatsapp      string         `json:"whatsapp,omitempty"`
	Address       string         `json:"address,omitempty"`
	SocialLinks   *SocialLinks   `json:"socialLinks,omitempty"`
	BusinessHours []BusinessHour `json:"businessHours,omitempty"`
}

type AboutContent struct {
	HeroTitle       string   `json:"heroTitle,omitempty"`
	HeroDescription string   `json:"heroDescription,omitempty"`
	MainTitle       string   `json:"mainTitle,omitempty"`
	Paragraphs      []string `json:"paragraphs,omitempty"`
	Mission         string   `json:"mission,omitempty"`
	Vision          string   `json:"vision,omitempty"`
	YearsExperience int      `json:"yearsExperience,omitempty"`
}

type Identity struct {
	Email string `json:"email"`
}
