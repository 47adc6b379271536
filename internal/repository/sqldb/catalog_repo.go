package sqldb

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/repository"

	"gorm.io/gorm"
)

const batchSize = 100

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	out := []domain.Category{}
	if err := r.db.WithContext(ctx).Limit(repository.CategoryLimit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (r *categoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Category{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

func (r *categoryRepo) Save(ctx context.Context, c *domain.Category) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("save category: %w", translate(err))
	}
	return nil
}

func (r *categoryRepo) SaveBatch(ctx context.Context, cs []*domain.Category) error {
	if len(cs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(cs, batchSize).Error; err != nil {
		return fmt.Errorf("save categories: %w", translate(err))
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID[domain.Category](ctx, r.db, id)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) List(ctx context.Context, category string) ([]domain.Product, error) {
	q := r.db.WithContext(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	out := []domain.Product{}
	if err := q.Limit(repository.ProductLimit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (r *productRepo) Save(ctx context.Context, p *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("save product: %w", translate(err))
	}
	return nil
}

func (r *productRepo) SaveBatch(ctx context.Context, ps []*domain.Product) error {
	if len(ps) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(ps, batchSize).Error; err != nil {
		return fmt.Errorf("save products: %w", translate(err))
	}
	return nil
}

func (r *productRepo) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	current, err := r.FindByID(ctx, id)
	if err != nil || current == nil {
		return current, err
	}
	fields := patch.Fields()
	if len(fields) == 0 {
		return current, nil
	}
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *productRepo) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID[domain.Product](ctx, r.db, id)
}

type pincodeRepo struct {
	db *gorm.DB
}

func NewPincodeRepository(db *gorm.DB) repository.PincodeRepository {
	return &pincodeRepo{db: db}
}

func (r *pincodeRepo) List(ctx context.Context) ([]domain.Pincode, error) {
	out := []domain.Pincode{}
	if err := r.db.WithContext(ctx).Limit(repository.PincodeLimit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list pincodes: %w", err)
	}
	return out, nil
}

func (r *pincodeRepo) FindByCode(ctx context.Context, code string) (*domain.Pincode, error) {
	var p domain.Pincode
	cond := "code = ?"
	if r.db.Dialector.Name() == "mysql" {
		// MySQL's default collations compare case-insensitively.
		cond = "BINARY code = ?"
	}
	if err := r.db.WithContext(ctx).Where(cond, code).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find pincode: %w", err)
	}
	return &p, nil
}

func (r *pincodeRepo) Save(ctx context.Context, p *domain.Pincode) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("save pincode: %w", translate(err))
	}
	return nil
}

func (r *pincodeRepo) SaveBatch(ctx context.Context, ps []*domain.Pincode) error {
	if len(ps) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(ps, batchSize).Error; err != nil {
		return fmt.Errorf("save pincodes: %w", translate(err))
	}
	return nil
}

func (r *pincodeRepo) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID[domain.Pincode](ctx, r.db, id)
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id string) (bool, error) {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return false, fmt.Errorf("delete: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repository.ErrDuplicate
	}
	return err
}
