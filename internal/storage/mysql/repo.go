package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"mohsin_travel/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
func valBool(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}

// jsonVal marshals a present patch field for a JSON column, nil otherwise.
func jsonVal[T any](p *T) any {
	if p == nil {
		return nil
	}
	b, _ := json.Marshal(*p)
	return string(b)
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

type rowScanner interface{ Scan(dest ...any) error }

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- packages ----

func scanPackage(r rowScanner) (domain.Package, error) {
	var p domain.Package
	var inclusions []byte
	var image sql.NullString
	if err := r.Scan(
		&p.ID, &p.Name, &p.Duration, &p.Price, &p.Hotel, &p.HotelRating,
		&p.Distance, &inclusions, &p.Featured, &image, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return domain.Package{}, err
	}
	_ = json.Unmarshal(inclusions, &p.Inclusions)
	if image.Valid {
		s := image.String
		p.Image = &s
	}
	return p, nil
}

func (r *Repo) ListPackages(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.db.QueryContext(ctx, listPackagesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetPackage(ctx context.Context, id int64) (domain.Package, error) {
	p, err := scanPackage(r.db.QueryRowContext(ctx, getPackageSQL, id))
	if err == sql.ErrNoRows {
		return domain.Package{}, domain.ErrNotFound
	}
	return p, err
}

func (r *Repo) CreatePackage(ctx context.Context, p domain.Package) (domain.Package, error) {
	res, err := r.db.ExecContext(ctx, insertPackageSQL,
		p.Name, p.Duration, p.Price, p.Hotel, p.HotelRating,
		p.Distance, mustJSON(p.Inclusions), p.Featured, valStr(p.Image),
	)
	if err != nil {
		return domain.Package{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Package{}, err
	}
	// re-read so the response carries store-assigned id and timestamps
	return r.GetPackage(ctx, id)
}

func (r *Repo) UpdatePackage(ctx context.Context, id int64, patch domain.PackagePatch) (domain.Package, error) {
	if _, err := r.db.ExecContext(ctx, updatePackageSQL,
		valStr(patch.Name), valStr(patch.Duration), valStr(patch.Price), valStr(patch.Hotel),
		valInt(patch.HotelRating), valStr(patch.Distance), jsonVal(patch.Inclusions),
		valBool(patch.Featured), valStr(patch.Image), id,
	); err != nil {
		return domain.Package{}, err
	}
	return r.GetPackage(ctx, id)
}

func (r *Repo) DeletePackage(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deletePackageSQL, id)
}

// ---- destinations ----

func scanDestination(r rowScanner) (domain.Destination, error) {
	var d domain.Destination
	err := r.Scan(&d.ID, &d.City, &d.Country, &d.FromPrice, &d.Image, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *Repo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, listDestinationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *Repo) GetDestination(ctx context.Context, id int64) (domain.Destination, error) {
	d, err := scanDestination(r.db.QueryRowContext(ctx, getDestinationSQL, id))
	if err == sql.ErrNoRows {
		return domain.Destination{}, domain.ErrNotFound
	}
	return d, err
}

func (r *Repo) CreateDestination(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	res, err := r.db.ExecContext(ctx, insertDestinationSQL, d.City, d.Country, d.FromPrice, d.Image)
	if err != nil {
		return domain.Destination{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Destination{}, err
	}
	return r.GetDestination(ctx, id)
}

func (r *Repo) UpdateDestination(ctx context.Context, id int64, patch domain.DestinationPatch) (domain.Destination, error) {
	if _, err := r.db.ExecContext(ctx, updateDestinationSQL,
		valStr(patch.City), valStr(patch.Country), valStr(patch.FromPrice), valStr(patch.Image), id,
	); err != nil {
		return domain.Destination{}, err
	}
	return r.GetDestination(ctx, id)
}

func (r *Repo) DeleteDestination(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteDestinationSQL, id)
}

// ---- airlines ----

func scanAirline(r rowScanner) (domain.Airline, error) {
	var a domain.Airline
	err := r.Scan(&a.ID, &a.Name, &a.Logo, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *Repo) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	rows, err := r.db.QueryContext(ctx, listAirlinesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Airline
	for rows.Next() {
		a, err := scanAirline(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) GetAirline(ctx context.Context, id int64) (domain.Airline, error) {
	a, err := scanAirline(r.db.QueryRowContext(ctx, getAirlineSQL, id))
	if err == sql.ErrNoRows {
		return domain.Airline{}, domain.ErrNotFound
	}
	return a, err
}

func (r *Repo) CreateAirline(ctx context.Context, a domain.Airline) (domain.Airline, error) {
	res, err := r.db.ExecContext(ctx, insertAirlineSQL, a.Name, a.Logo)
	if err != nil {
		return domain.Airline{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Airline{}, err
	}
	return r.GetAirline(ctx, id)
}

func (r *Repo) UpdateAirline(ctx context.Context, id int64, patch domain.AirlinePatch) (domain.Airline, error) {
	if _, err := r.db.ExecContext(ctx, updateAirlineSQL, valStr(patch.Name), valStr(patch.Logo), id); err != nil {
		return domain.Airline{}, err
	}
	return r.GetAirline(ctx, id)
}

func (r *Repo) DeleteAirline(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteAirlineSQL, id)
}

// ---- team members ----

func scanTeamMember(r rowScanner) (domain.TeamMember, error) {
	var m domain.TeamMember
	err := r.Scan(&m.ID, &m.Name, &m.Role, &m.Description, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *Repo) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx, listTeamMembersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *Repo) GetTeamMember(ctx context.Context, id int64) (domain.TeamMember, error) {
	m, err := scanTeamMember(r.db.QueryRowContext(ctx, getTeamMemberSQL, id))
	if err == sql.ErrNoRows {
		return domain.TeamMember{}, domain.ErrNotFound
	}
	return m, err
}

func (r *Repo) CreateTeamMember(ctx context.Context, m domain.TeamMember) (domain.TeamMember, error) {
	res, err := r.db.ExecContext(ctx, insertTeamMemberSQL, m.Name, m.Role, m.Description)
	if err != nil {
		return domain.TeamMember{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.TeamMember{}, err
	}
	return r.GetTeamMember(ctx, id)
}

func (r *Repo) UpdateTeamMember(ctx context.Context, id int64, patch domain.TeamMemberPatch) (domain.TeamMember, error) {
	if _, err := r.db.ExecContext(ctx, updateTeamMemberSQL,
		valStr(patch.Name), valStr(patch.Role), valStr(patch.Description), id,
	); err != nil {
		return domain.TeamMember{}, err
	}
	return r.GetTeamMember(ctx, id)
}

func (r *Repo) DeleteTeamMember(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteTeamMemberSQL, id)
}

// ---- counter stats ----

func scanCounterStat(r rowScanner) (domain.CounterStat, error) {
	var s domain.CounterStat
	err := r.Scan(&s.ID, &s.Icon, &s.Target, &s.Suffix, &s.Label, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *Repo) ListCounterStats(ctx context.Context) ([]domain.CounterStat, error) {
	rows, err := r.db.QueryContext(ctx, listCounterStatsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CounterStat
	for rows.Next() {
		s, err := scanCounterStat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) GetCounterStat(ctx context.Context, id int64) (domain.CounterStat, error) {
	s, err := scanCounterStat(r.db.QueryRowContext(ctx, getCounterStatSQL, id))
	if err == sql.ErrNoRows {
		return domain.CounterStat{}, domain.ErrNotFound
	}
	return s, err
}

func (r *Repo) CreateCounterStat(ctx context.Context, s domain.CounterStat) (domain.CounterStat, error) {
	res, err := r.db.ExecContext(ctx, insertCounterStatSQL, s.Icon, s.Target, s.Suffix, s.Label)
	if err != nil {
		return domain.CounterStat{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.CounterStat{}, err
	}
	return r.GetCounterStat(ctx, id)
}

func (r *Repo) UpdateCounterStat(ctx context.Context, id int64, patch domain.CounterStatPatch) (domain.CounterStat, error) {
	if _, err := r.db.ExecContext(ctx, updateCounterStatSQL,
		valStr(patch.Icon), valInt(patch.Target), valStr(patch.Suffix), valStr(patch.Label), id,
	); err != nil {
		return domain.CounterStat{}, err
	}
	return r.GetCounterStat(ctx, id)
}

func (r *Repo) DeleteCounterStat(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteCounterStatSQL, id)
}

// ---- site settings (singleton) ----

func scanSiteSettings(r rowScanner) (domain.SiteSettings, error) {
	var s domain.SiteSettings
	var phones, socials, hours []byte
	if err := r.Scan(
		&s.ID, &s.CompanyName, &s.Email, &phones, &s.Whatsapp, &s.Address,
		&socials, &hours, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return domain.SiteSettings{}, err
	}
	_ = json.Unmarshal(phones, &s.Phones)
	_ = json.Unmarshal(socials, &s.SocialLinks)
	_ = json.Unmarshal(hours, &s.BusinessHours)
	return s, nil
}

func (r *Repo) GetSiteSettings(ctx context.Context) (domain.SiteSettings, error) {
	s, err := scanSiteSettings(r.db.QueryRowContext(ctx, getSiteSettingsSQL))
	if err == sql.ErrNoRows {
		return domain.SiteSettings{}, domain.ErrNotFound
	}
	return s, err
}

func (r *Repo) InsertSiteSettings(ctx context.Context, s domain.SiteSettings) (domain.SiteSettings, error) {
	if _, err := r.db.ExecContext(ctx, insertSiteSettingsSQL,
		s.CompanyName, s.Email, mustJSON(s.Phones), s.Whatsapp, s.Address,
		mustJSON(s.SocialLinks), mustJSON(s.BusinessHours),
	); err != nil {
		return domain.SiteSettings{}, err
	}
	return r.GetSiteSettings(ctx)
}

func (r *Repo) UpdateSiteSettings(ctx context.Context, patch domain.SiteSettingsPatch) (domain.SiteSettings, error) {
	cur, err := r.GetSiteSettings(ctx)
	if err != nil {
		return domain.SiteSettings{}, err
	}
	if _, err := r.db.ExecContext(ctx, updateSiteSettingsSQL,
		valStr(patch.CompanyName), valStr(patch.Email), jsonVal(patch.Phones),
		valStr(patch.Whatsapp), valStr(patch.Address), jsonVal(patch.SocialLinks),
		jsonVal(patch.BusinessHours), cur.ID,
	); err != nil {
		return domain.SiteSettings{}, err
	}
	return r.GetSiteSettings(ctx)
}

// ---- about content (singleton) ----

func scanAboutContent(r rowScanner) (domain.AboutContent, error) {
	var c domain.AboutContent
	var paragraphs []byte
	if err := r.Scan(
		&c.ID, &c.HeroTitle, &c.HeroDescription, &c.MainTitle, &paragraphs,
		&c.Mission, &c.Vision, &c.YearsExperience, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return domain.AboutContent{}, err
	}
	_ = json.Unmarshal(paragraphs, &c.Paragraphs)
	return c, nil
}

func (r *Repo) GetAboutContent(ctx context.Context) (domain.AboutContent, error) {
	c, err := scanAboutContent(r.db.QueryRowContext(ctx, getAboutContentSQL))
	if err == sql.ErrNoRows {
		return domain.AboutContent{}, domain.ErrNotFound
	}
	return c, err
}

func (r *Repo) InsertAboutContent(ctx context.Context, c domain.AboutContent) (domain.AboutContent, error) {
	if _, err := r.db.ExecContext(ctx, insertAboutContentSQL,
		c.HeroTitle, c.HeroDescription, c.MainTitle, mustJSON(c.Paragraphs),
		c.Mission, c.Vision, c.YearsExperience,
	); err != nil {
		return domain.AboutContent{}, err
	}
	return r.GetAboutContent(ctx)
}

func (r *Repo) UpdateAboutContent(ctx context.Context, patch domain.AboutContentPatch) (domain.AboutContent, error) {
	cur, err := r.GetAboutContent(ctx)
	if err != nil {
		return domain.AboutContent{}, err
	}
	if _, err := r.db.ExecContext(ctx, updateAboutContentSQL,
		valStr(patch.HeroTitle), valStr(patch.HeroDescription), valStr(patch.MainTitle),
		jsonVal(patch.Paragraphs), valStr(patch.Mission), valStr(patch.Vision),
		valInt(patch.YearsExperience), cur.ID,
	); err != nil {
		return domain.AboutContent{}, err
	}
	return r.GetAboutContent(ctx)
}

// ---- shared ----

func (r *Repo) deleteByID(ctx context.Context, query string, id int64) error {
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
