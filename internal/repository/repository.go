package repository

import (
	"context"

	"github.com/ShivChilu/chicken-shop/internal/domain"
)

// Result caps. Listings never page past them.
const (
	CategoryLimit = 100
	PincodeLimit  = 100
	ProductLimit  = 1000
	OrderLimit    = 1000
)

// Lookups return nil (or false) with a nil error when the document does not
// exist; callers decide whether that is an error.

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, c *domain.Category) error
	SaveBatch(ctx context.Context, cs []*domain.Category) error
	Delete(ctx context.Context, id string) (bool, error)
}

type ProductRepository interface {
	// List filters by exact category name when category is non-empty.
	List(ctx context.Context, category string) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Save(ctx context.Context, p *domain.Product) error
	SaveBatch(ctx context.Context, ps []*domain.Product) error
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type OrderRepository interface {
	// List returns newest first.
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	Save(ctx context.Context, o *domain.Order) error
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error)
}

type PincodeRepository interface {
	List(ctx context.Context) ([]domain.Pincode, error)
	FindByCode(ctx context.Context, code string) (*domain.Pincode, error)
	Save(ctx context.Context, p *domain.Pincode) error
	SaveBatch(ctx context.Context, ps []*domain.Pincode) error
	Delete(ctx context.Context, id string) (bool, error)
}

// Store groups the repositories of one backend.
type Store struct {
	Categories CategoryRepository
	Products   ProductRepository
	Orders     OrderRepository
	Pincodes   PincodeRepository
	Close      func(ctx context.Context) error
}
