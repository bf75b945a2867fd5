package app

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"mohsin_travel/internal/domain"
)

// fakeRepo embeds the interface so each test only overrides what it touches.
type fakeRepo struct {
	domain.ContentRepository

	createdPackage *domain.Package
	packagePatch   *domain.PackagePatch

	settings       *domain.SiteSettings
	settingsInsert int
	settingsUpdate int
}

func (f *fakeRepo) CreatePackage(ctx context.Context, p domain.Package) (domain.Package, error) {
	f.createdPackage = &p
	p.ID = 1
	return p, nil
}

func (f *fakeRepo) UpdatePackage(ctx context.Context, id int64, patch domain.PackagePatch) (domain.Package, error) {
	f.packagePatch = &patch
	return domain.Package{ID: id}, nil
}

func (f *fakeRepo) DeletePackage(ctx context.Context, id int64) error { return nil }

func (f *fakeRepo) GetSiteSettings(ctx context.Context) (domain.SiteSettings, error) {
	if f.settings == nil {
		return domain.SiteSettings{}, domain.ErrNotFound
	}
	return *f.settings, nil
}

func (f *fakeRepo) InsertSiteSettings(ctx context.Context, s domain.SiteSettings) (domain.SiteSettings, error) {
	f.settingsInsert++
	s.ID = 1
	f.settings = &s
	return s, nil
}

func (f *fakeRepo) UpdateSiteSettings(ctx context.Context, patch domain.SiteSettingsPatch) (domain.SiteSettings, error) {
	if f.settings == nil {
		return domain.SiteSettings{}, domain.ErrNotFound
	}
	f.settingsUpdate++
	*f.settings = applySiteSettingsPatch(*f.settings, patch)
	return *f.settings, nil
}

type memCache struct {
	data map[string][]byte
	dels []string
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memCache) Del(ctx context.Context, key string) error {
	delete(c.data, key)
	c.dels = append(c.dels, key)
	return nil
}

func TestCreatePackageDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewContentService(repo, newMemCache())

	created, err := svc.CreatePackage(context.Background(), map[string]any{
		"name": "Test", "duration": "7 Days", "price": "PKR 100,000",
		"hotel": "Hilton", "distance": "500m",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.HotelRating != 3 {
		t.Errorf("hotel rating = %d, want default 3", created.HotelRating)
	}
	if created.Featured {
		t.Error("featured defaulted true")
	}
	if created.ID != 1 {
		t.Errorf("id = %d", created.ID)
	}
}

func TestCreatePackageCamelRating(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewContentService(repo, newMemCache())

	created, err := svc.CreatePackage(context.Background(), map[string]any{
		"name": "Test", "duration": "7 Days", "price": "PKR 100,000",
		"hotel": "Hilton", "distance": "500m", "hotelRating": 5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.HotelRating != 5 {
		t.Errorf("hotel rating = %d, want 5", created.HotelRating)
	}
}

func TestCreatePackageMissingFields(t *testing.T) {
	svc := NewContentService(&fakeRepo{}, newMemCache())

	_, err := svc.CreatePackage(context.Background(), map[string]any{"name": "Test"})
	verr := &ValidationError{}
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want validation error", err)
	}
	for _, k := range []string{"duration", "price", "hotel", "distance"} {
		if _, ok := verr.Fields[k]; !ok {
			t.Errorf("field %q not reported: %v", k, verr.Fields)
		}
	}
}

func TestCreatePackageRatingOutOfRange(t *testing.T) {
	svc := NewContentService(&fakeRepo{}, newMemCache())

	_, err := svc.CreatePackage(context.Background(), map[string]any{
		"name": "Test", "duration": "7 Days", "price": "PKR 100,000",
		"hotel": "Hilton", "distance": "500m", "hotel_rating": 7,
	})
	verr := &ValidationError{}
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if _, ok := verr.Fields["hotel_rating"]; !ok {
		t.Fatalf("hotel_rating not reported: %v", verr.Fields)
	}
}

func TestUpdatePackagePartialPatch(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewContentService(repo, newMemCache())

	if _, err := svc.UpdatePackage(context.Background(), 4, map[string]any{"price": "PKR 199,000"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	patch := repo.packagePatch
	if patch == nil {
		t.Fatal("repo never saw a patch")
	}
	if patch.Price == nil || *patch.Price != "PKR 199,000" {
		t.Errorf("price not patched: %+v", patch)
	}
	if patch.Name != nil || patch.Hotel != nil || patch.HotelRating != nil || patch.Featured != nil {
		t.Errorf("absent fields set in patch: %+v", patch)
	}
}

func TestMutationsInvalidateCache(t *testing.T) {
	repo := &fakeRepo{}
	cache := newMemCache()
	svc := NewContentService(repo, cache)

	cache.data["packages:all"] = []byte(`[]`)
	cache.data["package:4"] = []byte(`{}`)

	if _, err := svc.UpdatePackage(context.Background(), 4, map[string]any{"price": "x"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	want := []string{"packages:all", "package:4"}
	if !reflect.DeepEqual(cache.dels, want) {
		t.Fatalf("deleted %v, want %v", cache.dels, want)
	}
	if _, ok := cache.data["packages:all"]; ok {
		t.Fatal("list key survived invalidation")
	}
}

func TestSaveSiteSettingsCreatesThenMerges(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewContentService(repo, newMemCache())

	first, err := svc.SaveSiteSettings(context.Background(), map[string]any{
		"companyName": "Acme Travel", "email": "hello@acme.test",
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if repo.settingsInsert != 1 {
		t.Fatalf("insert count = %d", repo.settingsInsert)
	}
	if first.CompanyName != "Acme Travel" {
		t.Fatalf("company = %q", first.CompanyName)
	}

	// Second save is a merge onto the existing row, not a second insert.
	second, err := svc.SaveSiteSettings(context.Background(), map[string]any{
		"whatsapp": "923000180347",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if repo.settingsInsert != 1 || repo.settingsUpdate != 1 {
		t.Fatalf("insert=%d update=%d, want 1/1", repo.settingsInsert, repo.settingsUpdate)
	}
	if second.CompanyName != "Acme Travel" || second.Whatsapp != "923000180347" {
		t.Fatalf("merge lost fields: %+v", second)
	}
}

func TestSaveSiteSettingsIdempotent(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewContentService(repo, newMemCache())
	payload := map[string]any{"companyName": "Acme Travel"}

	a, err := svc.SaveSiteSettings(context.Background(), payload)
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.SaveSiteSettings(context.Background(), payload)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != b.ID {
		t.Fatalf("second save created a new row: %d vs %d", a.ID, b.ID)
	}
	if repo.settingsInsert != 1 {
		t.Fatalf("insert count = %d, want 1", repo.settingsInsert)
	}
}
