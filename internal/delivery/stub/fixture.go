// Package stub serves the storefront listing contract from a local fixture so
// the service and the CLI can run without the real upstream.
package stub

import (
	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// FixtureStore is a store with the position used to compute its distance
type FixtureStore struct {
	StoreID      string  `yaml:"store_id"`
	Name         string  `yaml:"name"`
	RatingValue  float64 `yaml:"rating_value"`
	AveragePrice float64 `yaml:"average_price"`
	Latitude     float64 `yaml:"latitude"`
	Longitude    float64 `yaml:"longitude"`
	ImageRef     string  `yaml:"image_ref"`
	IsFavorite   bool    `yaml:"is_favorite"`
}

// Fixture is the whole catalog served by the stub
type Fixture struct {
	Stores     []FixtureStore    `yaml:"stores"`
	Banners    []FixtureBanner   `yaml:"banners"`
	Categories []FixtureCategory `yaml:"categories"`
}

// FixtureBanner is a banner entry of the fixture
type FixtureBanner struct {
	StoreID string `yaml:"store_id"`
	Img     string `yaml:"img"`
}

// FixtureCategory is a category entry of the fixture
type FixtureCategory struct {
	ConcernID  int    `yaml:"concern_id"`
	ShortLabel string `yaml:"short_label"`
	Label      string `yaml:"label"`
}

// LoadFixture reads a YAML fixture file
func LoadFixture(path string) (*Fixture, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to load fixture %s", path)
	}

	var fixture Fixture
	if err := k.UnmarshalWithConf("", &fixture, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode fixture %s", path)
	}

	for _, s := range fixture.Stores {
		if !(entity.Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}).Valid() {
			return nil, errors.Errorf("store %s has an invalid position", s.StoreID)
		}
	}

	return &fixture, nil
}

// Point returns the store position
func (s FixtureStore) Point() orb.Point {
	return orb.Point{s.Longitude, s.Latitude}
}

// Record renders the store as seen from origin. The distance is left at zero
// when origin is unknown.
func (s FixtureStore) Record(origin entity.Coordinate) entity.StoreRecord {
	record := entity.StoreRecord{
		StoreID:      s.StoreID,
		Name:         s.Name,
		RatingValue:  s.RatingValue,
		AveragePrice: s.AveragePrice,
		ImageRef:     s.ImageRef,
		IsFavorite:   s.IsFavorite,
	}
	if !origin.IsDefault() {
		record.Distance = geo.DistanceHaversine(origin.Point(), s.Point())
	}

	return record
}

// Page returns the stores of a 1-based page, or nil past the last page
func (f *Fixture) Page(page, size int, origin entity.Coordinate) []entity.StoreRecord {
	start := (page - 1) * size
	if page < 1 || size < 1 || start >= len(f.Stores) {
		return nil
	}

	end := min(start+size, len(f.Stores))
	records := make([]entity.StoreRecord, 0, end-start)
	for _, s := range f.Stores[start:end] {
		records = append(records, s.Record(origin))
	}

	return records
}

// BannerList returns the fixture banners
func (f *Fixture) BannerList() []entity.Banner {
	banners := make([]entity.Banner, 0, len(f.Banners))
	for _, b := range f.Banners {
		banners = append(banners, entity.Banner{StoreID: b.StoreID, ImageRef: b.Img})
	}

	return banners
}

// CategoryList returns the fixture categories
func (f *Fixture) CategoryList() []entity.Category {
	categories := make([]entity.Category, 0, len(f.Categories))
	for _, c := range f.Categories {
		categories = append(categories, entity.Category{ConcernID: c.ConcernID, ShortLabel: c.ShortLabel, Label: c.Label})
	}

	return categories
}
