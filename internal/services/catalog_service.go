package services

import (
	"context"
	"strings"
	"time"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound = domain.NotFound("Category not found")
	ErrProductNotFound  = domain.NotFound("Product not found")
)

type NewProduct struct {
	Name        string
	Price       *float64
	Category    string
	Image       string
	InStock     *bool
	Description string
	Unit        string
}

type CatalogService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	now        func() time.Time
}

func NewCatalogService(c repository.CategoryRepository, p repository.ProductRepository) *CatalogService {
	return &CatalogService{categories: c, products: p, now: time.Now}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// CreateCategory allows duplicate names.
func (s *CatalogService) CreateCategory(ctx context.Context, name, image string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.Validation("Name is required")
	}
	c := &domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Image:     image,
		CreatedAt: domain.Timestamp(s.now()),
	}
	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory leaves products that name the category untouched.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	ok, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	return s.products.List(ctx, category)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, in NewProduct) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price == nil || strings.TrimSpace(in.Category) == "" {
		return nil, domain.Validation("Name, price, and category are required")
	}
	if *in.Price < 0 {
		return nil, domain.Validation("Price must not be negative")
	}

	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Price:       *in.Price,
		Category:    in.Category,
		Image:       in.Image,
		InStock:     true,
		Description: in.Description,
		Unit:        in.Unit,
		CreatedAt:   domain.Timestamp(s.now()),
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if p.Unit == "" {
		p.Unit = domain.DefaultUnit
	}
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct merges the set fields of patch into the stored product. An
// empty patch returns the product unchanged.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return nil, domain.Validation("Price must not be negative")
	}
	p, err := s.products.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	ok, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}
