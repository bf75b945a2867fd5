package mysql

// Partial updates use COALESCE(?, col) so that absent patch fields keep the
// stored value. `from` is reserved; the destinations price column is
// from_price for that reason.

const (
	listPackagesSQL = `
SELECT id, name, duration, price, hotel, hotel_rating, distance, inclusions, featured, image, created_at, updated_at
FROM umrah_packages
ORDER BY id`

	getPackageSQL = `
SELECT id, name, duration, price, hotel, hotel_rating, distance, inclusions, featured, image, created_at, updated_at
FROM umrah_packages
WHERE id = ?`

	insertPackageSQL = `
INSERT INTO umrah_packages
  (name, duration, price, hotel, hotel_rating, distance, inclusions, featured, image)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updatePackageSQL = `
UPDATE umrah_packages SET
  name         = COALESCE(?, name),
  duration     = COALESCE(?, duration),
  price        = COALESCE(?, price),
  hotel        = COALESCE(?, hotel),
  hotel_rating = COALESCE(?, hotel_rating),
  distance     = COALESCE(?, distance),
  inclusions   = COALESCE(?, inclusions),
  featured     = COALESCE(?, featured),
  image        = COALESCE(?, image)
WHERE id = ?`

	deletePackageSQL = `DELETE FROM umrah_packages WHERE id = ?`
)

const (
	listDestinationsSQL = `
SELECT id, city, country, from_price, image, created_at, updated_at
FROM destinations
ORDER BY id`

	getDestinationSQL = `
SELECT id, city, country, from_price, image, created_at, updated_at
FROM destinations
WHERE id = ?`

	insertDestinationSQL = `
INSERT INTO destinations (city, country, from_price, image) VALUES (?, ?, ?, ?)`

	updateDestinationSQL = `
UPDATE destinations SET
  city       = COALESCE(?, city),
  country    = COALESCE(?, country),
  from_price = COALESCE(?, from_price),
  image      = COALESCE(?, image)
WHERE id = ?`

	deleteDestinationSQL = `DELETE FROM destinations WHERE id = ?`
)

const (
	listAirlinesSQL = `
SELECT id, name, logo, created_at, updated_at FROM airlines ORDER BY id`

	getAirlineSQL = `
SELECT id, name, logo, created_at, updated_at FROM airlines WHERE id = ?`

	insertAirlineSQL = `INSERT INTO airlines (name, logo) VALUES (?, ?)`

	updateAirlineSQL = `
UPDATE airlines SET
  name = COALESCE(?, name),
  logo = COALESCE(?, logo)
WHERE id = ?`

	deleteAirlineSQL = `DELETE FROM airlines WHERE id = ?`
)

const (
	listTeamMembersSQL = `
SELECT id, name, role, description, created_at, updated_at FROM team_members ORDER BY id`

	getTeamMemberSQL = `
SELECT id, name, role, description, created_at, updated_at FROM team_members WHERE id = ?`

	insertTeamMemberSQL = `INSERT INTO team_members (name, role, description) VALUES (?, ?, ?)`

	updateTeamMemberSQL = `
UPDATE team_members SET
  name        = COALESCE(?, name),
  role        = COALESCE(?, role),
  description = COALESCE(?, description)
WHERE id = ?`

	deleteTeamMemberSQL = `DELETE FROM team_members WHERE id = ?`
)

const (
	listCounterStatsSQL = `
SELECT id, icon, target, suffix, label, created_at, updated_at FROM counter_stats ORDER BY id`

	getCounterStatSQL = `
SELECT id, icon, target, suffix, label, created_at, updated_at FROM counter_stats WHERE id = ?`

	insertCounterStatSQL = `INSERT INTO counter_stats (icon, target, suffix, label) VALUES (?, ?, ?, ?)`

	updateCounterStatSQL = `
UPDATE counter_stats SET
  icon   = COALESCE(?, icon),
  target = COALESCE(?, target),
  suffix = COALESCE(?, suffix),
  label  = COALESCE(?, label)
WHERE id = ?`

	deleteCounterStatSQL = `DELETE FROM counter_stats WHERE id = ?`
)

const (
	getSiteSettingsSQL = `
SELECT id, company_name, email, phones, whatsapp, address, social_links, business_hours, created_at, updated_at
FROM site_settings
ORDER BY id
LIMIT 1`

	insertSiteSettingsSQL = `
INSERT INTO site_settings
  (company_name, email, phones, whatsapp, address, social_links, business_hours)
VALUES
  (?, ?, ?, ?, ?, ?, ?)`

	updateSiteSettingsSQL = `
UPDATE site_settings SET
  company_name   = COALESCE(?, company_name),
  email          = COALESCE(?, email),
  phones         = COALESCE(?, phones),
  whatsapp       = COALESCE(?, whatsapp),
  address        = COALESCE(?, address),
  social_links   = COALESCE(?, social_links),
  business_hours = COALESCE(?, business_hours)
WHERE id = ?`
)

const (
	getAboutContentSQL = `
SELECT id, hero_title, hero_description, main_title, paragraphs, mission, vision, years_experience, created_at, updated_at
FROM about_content
ORDER BY id
LIMIT 1`

	insertAboutContentSQL = `
INSERT INTO about_content
  (hero_title, hero_description, main_title, paragraphs, mission, vision, years_experience)
VALUES
  (?, ?, ?, ?, ?, ?, ?)`

	updateAboutContentSQL = `
UPDATE about_content SET
  hero_title       = COALESCE(?, hero_title),
  hero_description = COALESCE(?, hero_description),
  main_title       = COALESCE(?, main_title),
  paragraphs       = COALESCE(?, paragraphs),
  mission          = COALESCE(?, mission),
  vision           = COALESCE(?, vision),
  years_experience = COALESCE(?, years_experience)
WHERE id = ?`
)
