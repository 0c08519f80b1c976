package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"jaktrip/internal/models/db_models"
	"jaktrip/internal/planner"
	"jaktrip/internal/repositories"
	"jaktrip/pkg/logger"
	mem "jaktrip/pkg/memcache"
	"jaktrip/pkg/utils"
)

const catalogCacheKey = "catalog"

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context) []planner.RawDestination
	ListCategories(ctx context.Context) []string
	GetDestination(ctx context.Context, id string) (*planner.RawDestination, error)
	EnrichPreselected(catalog []planner.RawDestination, items []planner.RawDestination) []planner.RawDestination
	SeedSamples(ctx context.Context) error
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepositoryInterface
	cache           mem.SnapshotStore[[]planner.RawDestination]
	cacheTTL        time.Duration
}

func NewDestinationService(
	destinationRepo repositories.DestinationRepositoryInterface,
	cache mem.SnapshotStore[[]planner.RawDestination],
	cacheTTL time.Duration) DestinationServiceInterface {

	return &DestinationService{
		destinationRepo: destinationRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
	}
}

// ListDestinations returns the full catalog. A failed fetch is logged and
// yields an empty catalog; it is not cached.
func (s *DestinationService) ListDestinations(ctx context.Context) []planner.RawDestination {
	if cached, ok := s.cache.Get(catalogCacheKey); ok {
		return cached
	}

	rows, err := s.destinationRepo.ListAll(ctx)
	if err != nil {
		logger.GetLogger().Errorw("Failed to fetch destinations, continuing with empty catalog", "error", err)
		return []planner.RawDestination{}
	}

	catalog := make([]planner.RawDestination, 0, len(rows))
	for _, row := range rows {
		catalog = append(catalog, row.ToRaw())
	}
	s.cache.Set(catalogCacheKey, catalog, s.cacheTTL)
	return catalog
}

// ListCategories returns the distinct non-empty category names, sorted.
func (s *DestinationService) ListCategories(ctx context.Context) []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, d := range s.ListDestinations(ctx) {
		name := strings.TrimSpace(d.Category)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		categories = append(categories, name)
	}
	sort.Strings(categories)
	return categories
}

// GetDestination reads one catalog row straight from the store, bypassing the
// catalog snapshot so a freshly seeded row is visible immediately.
func (s *DestinationService) GetDestination(ctx context.Context, id string) (*planner.RawDestination, error) {
	rows, err := s.destinationRepo.GetByIDs(ctx, []string{strings.TrimSpace(id)})
	if err != nil {
		logger.GetLogger().Errorw("Failed to fetch destination", "id", id, "error", err)
		return nil, utils.ErrDatabaseError
	}
	if len(rows) == 0 {
		return nil, utils.ErrDestinationNotFound
	}
	raw := rows[0].ToRaw()
	return &raw, nil
}

// EnrichPreselected fills empty fields of trip items from the catalog row
// with the same id. Items without a match are returned unchanged.
func (s *DestinationService) EnrichPreselected(catalog []planner.RawDestination, items []planner.RawDestination) []planner.RawDestination {
	byID := make(map[string]planner.RawDestination, len(catalog))
	for _, d := range catalog {
		if d.ID != "" {
			byID[d.ID] = d
		}
	}

	out := make([]planner.RawDestination, 0, len(items))
	for _, item := range items {
		src, ok := byID[item.ID]
		if !ok {
			out = append(out, item)
			continue
		}
		if item.Name == "" && item.Label == "" {
			item.Name = src.Name
		}
		if item.Category == "" {
			item.Category = src.Category
		}
		if item.Price == "" {
			item.Price = src.Price
		}
		if item.Location == "" {
			item.Location = src.Location
		}
		if item.IndoorOutdoor == "" {
			item.IndoorOutdoor = src.IndoorOutdoor
		}
		if item.Description == "" {
			item.Description = src.Description
		}
		out = append(out, item)
	}
	return out
}

// SeedSamples inserts the sample catalog when the destinations table is empty.
func (s *DestinationService) SeedSamples(ctx context.Context) error {
	log := logger.GetLogger()

	count, err := s.destinationRepo.Count(ctx)
	if err != nil {
		log.Errorw("Failed to count destinations", "error", err)
		return utils.ErrDatabaseError
	}
	if count > 0 {
		log.Infow("Destination catalog already populated, skipping seed", "count", count)
		return nil
	}

	samples := SampleDestinations()
	if err := s.destinationRepo.CreateBatch(ctx, samples); err != nil {
		log.Errorw("Failed to seed sample destinations", "error", err)
		return utils.ErrDatabaseError
	}
	s.cache.Invalidate(catalogCacheKey)
	log.Infow("Seeded sample destinations", "count", len(samples))
	return nil
}

func SampleDestinations() []db_models.Destination {
	return []db_models.Destination{
		{Name: "Warung Makan Enak", Category: "Kuliner", Price: "50000", IndoorOutdoor: "indoor", Description: "Tempat makan enak dan murah", Location: "Jakarta Selatan"},
		{Name: "Taman Mini", Category: "Rekreasi", Price: "100000", IndoorOutdoor: "outdoor", Description: "Tempat rekreasi keluarga", Location: "Jakarta Timur"},
		{Name: "Museum Nasional", Category: "Sejarah", Price: "50000", IndoorOutdoor: "indoor", Description: "Museum dengan koleksi sejarah", Location: "Jakarta Pusat"},
		{Name: "Hutan Kota", Category: "Alam", Price: "25000", IndoorOutdoor: "outdoor", Description: "Tempat refreshing di tengah kota", Location: "Jakarta Utara"},
		{Name: "Kopi Kenangan", Category: "Cafe", Price: "30000", IndoorOutdoor: "indoor", Description: "Tempat ngopi yang instagrammable", Location: "Jakarta Barat"},
	}
}
