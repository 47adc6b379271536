package services

import (
	"context"
	"time"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	MsgAlreadyInitialized = "Data already initialized"
	MsgInitialized        = "Data initialized successfully"
)

type seedProduct struct {
	name, category, image, description, unit string
	price                                    float64
}

var (
	defaultCategories = []struct{ name, image string }{
		{"Chicken", "https://images.unsplash.com/photo-1682991136736-a2b44623eeba?w=400"},
		{"Mutton", "https://images.unsplash.com/photo-1708974140638-8554bc01690d?w=400"},
		{"Others", "https://images.unsplash.com/photo-1627038259646-04600f5167a3?w=400"},
	}

	defaultPincodes = []string{"500001", "500002", "500003", "500004"}

	defaultProducts = []seedProduct{
		{"Chicken Breast", "Chicken", "https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=400", "Boneless chicken breast, tender and fresh", "500g", 280},
		{"Chicken Curry Cut", "Chicken", "https://images.unsplash.com/photo-1587593810167-a84920ea0781?w=400", "Fresh curry cut chicken pieces with bone", "500g", 220},
		{"Chicken Wings", "Chicken", "https://images.unsplash.com/photo-1527477396000-e27163b481c2?w=400", "Fresh chicken wings, perfect for frying", "500g", 200},
		{"Chicken Drumsticks", "Chicken", "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=400", "Juicy chicken drumsticks", "500g", 240},
		{"Mutton Curry Cut", "Mutton", "https://images.unsplash.com/photo-1603048297172-c92544798d5a?w=400", "Premium goat meat curry cut with bone", "500g", 650},
		{"Mutton Boneless", "Mutton", "https://images.unsplash.com/photo-1602470520998-f4a52199a3d6?w=400", "Tender boneless mutton pieces", "500g", 800},
		{"Mutton Keema", "Mutton", "https://images.unsplash.com/photo-1599921841143-819065a55cc6?w=400", "Fresh minced mutton", "500g", 700},
		{"Fish Fillet", "Others", "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=400", "Fresh boneless fish fillet", "500g", 450},
		{"Prawns", "Others", "https://images.unsplash.com/photo-1565680018434-b513d5e5fd47?w=400", "Fresh medium-sized prawns", "500g", 550},
		{"Eggs (12 pcs)", "Others", "https://images.unsplash.com/photo-1582722872445-44dc5f7e3c8f?w=400", "Farm fresh eggs, pack of 12", "12 pcs", 90},
	}
)

// SeedService loads the starter catalog into an empty store.
type SeedService struct {
	store *repository.Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewSeedService(store *repository.Store, log zerolog.Logger) *SeedService {
	return &SeedService{store: store, log: log, now: time.Now}
}

// Init seeds categories, pincodes and products unless any category exists.
// It returns the message to show the caller.
func (s *SeedService) Init(ctx context.Context) (string, error) {
	n, err := s.store.Categories.Count(ctx)
	if err != nil {
		return "", err
	}
	if n > 0 {
		return MsgAlreadyInitialized, nil
	}

	now := domain.Timestamp(s.now())

	cats := make([]*domain.Category, len(defaultCategories))
	for i, c := range defaultCategories {
		cats[i] = &domain.Category{ID: uuid.NewString(), Name: c.name, Image: c.image, CreatedAt: now}
	}
	pins := make([]*domain.Pincode, len(defaultPincodes))
	for i, code := range defaultPincodes {
		pins[i] = &domain.Pincode{ID: uuid.NewString(), Code: code, Active: true}
	}
	prods := make([]*domain.Product, len(defaultProducts))
	for i, p := range defaultProducts {
		prods[i] = &domain.Product{
			ID:          uuid.NewString(),
			Name:        p.name,
			Price:       p.price,
			Category:    p.category,
			Image:       p.image,
			InStock:     true,
			Description: p.description,
			Unit:        p.unit,
			CreatedAt:   now,
		}
	}

	if err := s.store.Categories.SaveBatch(ctx, cats); err != nil {
		return "", err
	}
	if err := s.store.Pincodes.SaveBatch(ctx, pins); err != nil {
		return "", err
	}
	if err := s.store.Products.SaveBatch(ctx, prods); err != nil {
		return "", err
	}

	s.log.Info().
		Int("categories", len(cats)).
		Int("pincodes", len(pins)).
		Int("products", len(prods)).
		Msg("seeded default catalog")
	return MsgInitialized, nil
}
